//go:build js && wasm

package canvas

import (
	"sync"
	"syscall/js"
	"time"

	"github.com/Zachkp/portfolio/internal/starfield"
)

// Scheduler implements starfield.Scheduler with requestAnimationFrame.
type Scheduler struct {
	mu    sync.Mutex
	funcs map[starfield.FrameHandle]js.Func
}

// NewScheduler returns a scheduler bound to the global window.
func NewScheduler() *Scheduler {
	return &Scheduler{funcs: make(map[starfield.FrameHandle]js.Func)}
}

// RequestFrame implements starfield.Scheduler.
func (s *Scheduler) RequestFrame(fn starfield.FrameFunc) starfield.FrameHandle {
	var h starfield.FrameHandle
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		s.release(h)
		var now time.Duration
		if len(args) > 0 {
			now = time.Duration(args[0].Float() * float64(time.Millisecond))
		}
		fn(now)
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	h = starfield.FrameHandle(js.Global().Call("requestAnimationFrame", cb).Int())
	s.funcs[h] = cb
	return h
}

// CancelFrame implements starfield.Scheduler.
func (s *Scheduler) CancelFrame(h starfield.FrameHandle) {
	js.Global().Call("cancelAnimationFrame", int(h))
	s.release(h)
}

func (s *Scheduler) release(h starfield.FrameHandle) {
	s.mu.Lock()
	cb, ok := s.funcs[h]
	delete(s.funcs, h)
	s.mu.Unlock()
	if ok {
		cb.Release()
	}
}

// Window implements starfield.InputSource over window events. Resize events
// refit the canvas before the handler sees the new size.
type Window struct {
	Surface *Surface
}

// Listen implements starfield.InputSource.
func (w Window) Listen(h starfield.InputHandler) func() {
	win := js.Global()
	listeners := map[string]js.Func{
		"mousemove": js.FuncOf(func(this js.Value, args []js.Value) any {
			e := args[0]
			h.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
			return nil
		}),
		"scroll": js.FuncOf(func(this js.Value, args []js.Value) any {
			h.Scroll(win.Get("scrollY").Float())
			return nil
		}),
		"resize": js.FuncOf(func(this js.Value, args []js.Value) any {
			h.Resize(w.Surface.FitWindow())
			return nil
		}),
	}
	for name, fn := range listeners {
		win.Call("addEventListener", name, fn)
	}

	return func() {
		for name, fn := range listeners {
			win.Call("removeEventListener", name, fn)
			fn.Release()
		}
	}
}

// PrefersDark reports the platform colour-scheme preference and calls
// onChange whenever it flips. The returned func stops watching.
func PrefersDark(onChange func(bool)) (bool, func()) {
	mq := js.Global().Call("matchMedia", "(prefers-color-scheme: dark)")
	if mq.IsNull() || mq.IsUndefined() {
		return false, func() {}
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		onChange(args[0].Get("matches").Bool())
		return nil
	})
	mq.Call("addEventListener", "change", fn)
	return mq.Get("matches").Bool(), func() {
		mq.Call("removeEventListener", "change", fn)
		fn.Release()
	}
}

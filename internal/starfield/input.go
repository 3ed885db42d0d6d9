package starfield

import (
	"math"
	"sync/atomic"

	"github.com/Zachkp/portfolio/internal/theme"
)

// InputHandler receives viewport events. Animator implements it.
type InputHandler interface {
	PointerMove(x, y float64)
	Scroll(y float64)
	Resize(w, h float64)
}

// InputSource delivers pointer, scroll and resize events until detached.
type InputSource interface {
	Listen(h InputHandler) (detach func())
}

// ThemeSource notifies resolved theme changes until cancelled.
// *theme.Source satisfies it.
type ThemeSource interface {
	Subscribe(fn func(theme.Mode)) (cancel func())
}

var _ ThemeSource = (*theme.Source)(nil)

// atomicFloat is written by input handlers and read by the frame callback.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Load() float64 { return math.Float64frombits(f.bits.Load()) }
func (f *atomicFloat) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

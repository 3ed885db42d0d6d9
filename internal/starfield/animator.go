// Package starfield renders the site's animated backdrop: twinkling stars
// with pointer and scroll parallax, shooting stars in dark mode and drifting
// aurora bands in light mode.
//
// An Animator owns its population and mutates it only inside the frame
// callback it schedules on the host. Pointer and scroll events update atomic
// scalars; resize and theme changes swap the population under the same lock
// the frame callback takes, so a frame never sees a half-built generation.
package starfield

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/theme"
)

// State is the animator lifecycle state.
type State int

const (
	StateUnmounted State = iota
	// StateIdle means mounted without a usable surface: either no drawing
	// context or zero area. Nothing is drawn and no frame is pending.
	StateIdle
	StateActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	default:
		return "unmounted"
	}
}

// Options wires an Animator to its host.
type Options struct {
	Scheduler Scheduler
	// Input and Theme are optional; when set they are subscribed on Mount
	// and detached on Unmount.
	Input  InputSource
	Theme  ThemeSource
	Rand   *rand.Rand
	Logger *zerolog.Logger
}

// Animator is the ambient background animator. The zero value is not usable;
// build one with New.
type Animator struct {
	sched  Scheduler
	input  InputSource
	themes ThemeSource
	log    zerolog.Logger

	mu            sync.Mutex
	rng           *rand.Rand
	state         State
	closed        bool
	surface       Surface
	width, height float64
	mode          theme.Mode
	r             renderer
	handle        FrameHandle
	scheduled     bool
	detach        []func()

	pointerX, pointerY atomicFloat
	scrollY            atomicFloat
}

// New builds an unmounted animator.
func New(opts Options) *Animator {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "starfield").Logger()
	}
	return &Animator{
		sched:  opts.Scheduler,
		input:  opts.Input,
		themes: opts.Theme,
		rng:    rng,
		log:    log,
	}
}

// Mount binds the animator to s and generates the first population for
// mode. A nil surface leaves the animator idle for good: nothing is drawn and
// no frame is requested. Mount is ignored once mounted or after Unmount.
func (a *Animator) Mount(s Surface, mode theme.Mode) {
	a.mu.Lock()
	if a.closed || a.state != StateUnmounted {
		a.mu.Unlock()
		return
	}
	a.mode = mode
	a.state = StateIdle
	if s == nil || a.sched == nil {
		a.mu.Unlock()
		a.log.Warn().Msg("drawing surface unavailable, background disabled")
		return
	}

	a.surface = s
	a.width, a.height = s.Size()
	a.pointerX.Store(a.width / 2)
	a.pointerY.Store(a.height / 2)
	a.r = newRenderer(variantFor(mode))
	a.regenerateLocked()
	w, h, state := a.width, a.height, a.state
	a.mu.Unlock()

	a.attach()
	a.log.Debug().
		Float64("width", w).
		Float64("height", h).
		Stringer("variant", variantFor(mode)).
		Stringer("state", state).
		Msg("mounted")
}

// attach subscribes to the input and theme sources outside the lock, since
// a source may deliver its first event synchronously.
func (a *Animator) attach() {
	var detach []func()
	if a.input != nil {
		detach = append(detach, a.input.Listen(a))
	}
	if a.themes != nil {
		detach = append(detach, a.themes.Subscribe(a.SetTheme))
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		for _, fn := range detach {
			fn()
		}
		return
	}
	a.detach = append(a.detach, detach...)
	a.mu.Unlock()
}

// Resize replaces the whole population for the new surface size.
func (a *Animator) Resize(w, h float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.surface == nil {
		return
	}
	a.width, a.height = w, h
	a.regenerateLocked()
	a.log.Debug().Float64("width", w).Float64("height", h).Int("stars", len(a.r.stars())).Msg("resized")
}

// SetTheme switches the rendering branch. The population is regenerated only
// when the branch actually changes.
func (a *Animator) SetTheme(mode theme.Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.mode = mode
	if a.r == nil || a.r.variant() == variantFor(mode) {
		return
	}
	a.r = newRenderer(variantFor(mode))
	a.regenerateLocked()
	a.log.Debug().Stringer("variant", a.r.variant()).Msg("theme changed")
}

// PointerMove records the pointer position for the next frame.
func (a *Animator) PointerMove(x, y float64) {
	a.pointerX.Store(x)
	a.pointerY.Store(y)
}

// Scroll records the vertical scroll offset for the next frame.
func (a *Animator) Scroll(y float64) {
	a.scrollY.Store(y)
}

// Unmount cancels the pending frame and detaches every listener. No frame
// draws after it returns, and the animator cannot be mounted again.
func (a *Animator) Unmount() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.state = StateUnmounted
	a.cancelLocked()
	a.r = nil
	a.surface = nil
	detach := a.detach
	a.detach = nil
	a.mu.Unlock()

	for _, fn := range detach {
		fn()
	}
	a.log.Debug().Msg("unmounted")
}

// regenerateLocked rebuilds the population and moves between Idle and
// Active depending on the surface area.
func (a *Animator) regenerateLocked() {
	a.r.regenerate(a.width, a.height, a.rng)

	if a.width <= 0 || a.height <= 0 {
		a.state = StateIdle
		a.cancelLocked()
		return
	}
	a.state = StateActive
	if !a.scheduled {
		a.handle = a.sched.RequestFrame(a.frame)
		a.scheduled = true
	}
}

func (a *Animator) cancelLocked() {
	if a.scheduled {
		a.sched.CancelFrame(a.handle)
		a.scheduled = false
	}
}

// frame is the recurring display-refresh callback.
func (a *Animator) frame(now time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.scheduled = false
	if a.closed || a.state != StateActive {
		return
	}

	f := frameState{
		width:    a.width,
		height:   a.height,
		pointerX: a.pointerX.Load(),
		pointerY: a.pointerY.Load(),
		scroll:   a.scrollY.Load(),
		now:      now,
	}
	a.r.render(a.surface, &f, a.rng)

	a.handle = a.sched.RequestFrame(a.frame)
	a.scheduled = true
}

// State reports the lifecycle state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Variant reports the active rendering branch. It is meaningless while
// unmounted.
func (a *Animator) Variant() Variant {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.r == nil {
		return variantFor(a.mode)
	}
	return a.r.variant()
}

// Particles returns a copy of the current star population.
func (a *Animator) Particles() []Particle {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.r == nil {
		return nil
	}
	stars := a.r.stars()
	out := make([]Particle, len(stars))
	copy(out, stars)
	return out
}

// AuroraLayers returns a copy of the aurora layers; empty in dark mode.
func (a *Animator) AuroraLayers() []AuroraLayer {
	a.mu.Lock()
	defer a.mu.Unlock()
	lr, ok := a.r.(*lightRenderer)
	if !ok {
		return nil
	}
	out := make([]AuroraLayer, len(lr.layers))
	for i, l := range lr.layers {
		l.Colors = append([]RGBA(nil), l.Colors...)
		out[i] = l
	}
	return out
}

// Streaks returns a copy of the shooting stars in flight; empty in light mode.
func (a *Animator) Streaks() []Streak {
	a.mu.Lock()
	defer a.mu.Unlock()
	dr, ok := a.r.(*darkRenderer)
	if !ok {
		return nil
	}
	return append([]Streak(nil), dr.streaks...)
}

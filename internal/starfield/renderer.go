package starfield

import (
	"math/rand/v2"
	"time"

	"github.com/Zachkp/portfolio/internal/theme"
)

// Variant names the rendering branch in use.
type Variant int

const (
	VariantDark Variant = iota
	VariantLight
)

func (v Variant) String() string {
	if v == VariantLight {
		return "light"
	}
	return "dark"
}

// variantFor maps a theme mode onto a branch. An unresolved "system" mode
// falls back to dark.
func variantFor(mode theme.Mode) Variant {
	if mode == theme.Light {
		return VariantLight
	}
	return VariantDark
}

// frameState is the read-only input of one render pass.
type frameState struct {
	width, height      float64
	pointerX, pointerY float64
	scroll             float64
	now                time.Duration
}

// renderer is implemented by darkRenderer and lightRenderer. Each owns its
// population and regenerates it wholesale.
type renderer interface {
	variant() Variant
	regenerate(w, h float64, rng *rand.Rand)
	render(s Surface, f *frameState, rng *rand.Rand)
	stars() []Particle
}

func newRenderer(v Variant) renderer {
	if v == VariantLight {
		return &lightRenderer{}
	}
	return &darkRenderer{}
}

const (
	glowThreshold    = 0.6
	sparkleOpacity   = 0.8
	sparkleChance    = 0.3
	lightGlowOpacity = 0.5
)

type darkRenderer struct {
	particles []Particle
	streaks   []Streak
}

func (r *darkRenderer) variant() Variant { return VariantDark }
func (r *darkRenderer) stars() []Particle { return r.particles }

func (r *darkRenderer) regenerate(w, h float64, rng *rand.Rand) {
	r.particles = generateDarkStars(w, h, rng)
	r.streaks = nil
}

func (r *darkRenderer) render(s Surface, f *frameState, rng *rand.Rand) {
	s.FillRect(0, 0, f.width, f.height, Solid(darkBackground))

	for i := range r.particles {
		p := &r.particles[i]
		p.step(rng, darkOpacity, nil)
		x, y := p.screen(f)

		if p.Opacity > glowThreshold {
			glow := (p.Opacity - glowThreshold) * 0.4
			s.FillCircle(x, y, p.Radius*4, Radial(x, y, p.Radius*4,
				Stop{Offset: 0, Color: indigo.WithAlpha(glow * 0.3)},
				Stop{Offset: 0.5, Color: violet.WithAlpha(glow * 0.2)},
				Stop{Offset: 1, Color: Transparent},
			))
		}

		s.FillCircle(x, y, p.Radius, Radial(x, y, p.Radius,
			Stop{Offset: 0, Color: white.WithAlpha(p.Opacity)},
			Stop{Offset: 0.7, Color: haze.WithAlpha(p.Opacity * 0.7)},
			Stop{Offset: 1, Color: violet.WithAlpha(p.Opacity * 0.3)},
		))

		if p.Opacity > sparkleOpacity && rng.Float64() < sparkleChance {
			s.FillCircle(x, y, p.Radius*0.3, Solid(white.WithAlpha((p.Opacity-sparkleOpacity)*2)))
		}
	}

	if rng.Float64() < streakChance {
		r.streaks = append(r.streaks, spawnStreak(f.width, rng))
	}

	live := r.streaks[:0]
	for _, st := range r.streaks {
		if !st.advance(f.width, f.height) {
			continue
		}
		st.draw(s)
		live = append(live, st)
	}
	clear(r.streaks[len(live):])
	r.streaks = live
}

type lightRenderer struct {
	particles []Particle
	layers    []AuroraLayer
}

func (r *lightRenderer) variant() Variant { return VariantLight }
func (r *lightRenderer) stars() []Particle { return r.particles }

func (r *lightRenderer) regenerate(w, h float64, rng *rand.Rand) {
	r.particles = generateLightStars(w, h, rng)
	r.layers = generateAurora(w, h, rng)
}

func (r *lightRenderer) render(s Surface, f *frameState, rng *rand.Rand) {
	s.ClearRect(0, 0, f.width, f.height)

	bounds := rect{maxX: f.width, maxY: f.height * lightBandRatio}
	for i := range r.particles {
		p := &r.particles[i]
		p.step(rng, lightOpacity, &bounds)
		x, y := p.screen(f)

		if p.Opacity > lightGlowOpacity {
			s.FillCircle(x, y, p.Radius*3, Radial(x, y, p.Radius*3,
				Stop{Offset: 0, Color: p.Color.WithAlpha(p.Opacity * 0.25)},
				Stop{Offset: 1, Color: Transparent},
			))
		}
		s.FillCircle(x, y, p.Radius, Solid(p.Color.WithAlpha(p.Opacity)))

		if p.Opacity > sparkleOpacity && rng.Float64() < sparkleChance {
			s.FillCircle(x, y, p.Radius*0.3, Solid(white.WithAlpha((p.Opacity-sparkleOpacity)*4)))
		}
	}

	s.SetComposite(CompositeScreen)
	for i := range r.layers {
		l := &r.layers[i]
		l.drift(f.width)
		l.draw(s, f)
	}
	s.SetComposite(CompositeNormal)
}

package starfield

import (
	"math"
	"math/rand/v2"
)

const (
	darkDensity  = 8000.0
	lightDensity = 4000.0

	// lightBandRatio confines light-mode stars to the top of the surface.
	lightBandRatio = 0.6

	pointerParallax = 0.03
	scrollParallax  = 0.05
)

// Particle is a single star. Radius and Depth never change after generation.
type Particle struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	Twinkle float64
	// Depth in (0,1] scales parallax displacement and glow.
	Depth  float64
	VX, VY float64
	// Color is only set by the light generator.
	Color RGBA
}

type opacityBand struct {
	min, max float64
}

var (
	darkOpacity  = opacityBand{min: 0.2, max: 1}
	lightOpacity = opacityBand{min: 0.3, max: 0.9}
)

func (b opacityBand) clamp(v float64) float64 {
	return clamp(v, b.min, b.max)
}

// rect is the region drifting particles bounce inside.
type rect struct {
	minX, minY, maxX, maxY float64
}

// populationSize is floor(area / divisor), or zero for an empty surface.
func populationSize(w, h, divisor float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Floor(w * h / divisor))
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func generateDarkStars(w, h float64, rng *rand.Rand) []Particle {
	n := populationSize(w, h, darkDensity)
	stars := make([]Particle, 0, n)
	for range n {
		stars = append(stars, Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			Radius:  between(rng, 0.5, 2.5),
			Opacity: between(rng, 0.2, 1.0),
			Twinkle: between(rng, 0.01, 0.04),
			Depth:   between(rng, 0.2, 1.0),
		})
	}
	return stars
}

func generateLightStars(w, h float64, rng *rand.Rand) []Particle {
	n := populationSize(w, h, lightDensity)
	band := h * lightBandRatio
	stars := make([]Particle, 0, n)
	for range n {
		stars = append(stars, Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * band,
			Radius:  between(rng, 0.6, 2.4),
			Opacity: between(rng, lightOpacity.min, lightOpacity.max),
			Twinkle: between(rng, 0.005, 0.02),
			Depth:   between(rng, 0.2, 1.0),
			VX:      between(rng, -0.15, 0.15),
			VY:      between(rng, -0.15, 0.15),
			Color:   lightStarPalette[rng.IntN(len(lightStarPalette))],
		})
	}
	return stars
}

// step advances one frame: drift, bounce, twinkle. Only the light variant
// passes bounds; dark stars are stationary.
func (p *Particle) step(rng *rand.Rand, band opacityBand, bounds *rect) {
	if bounds != nil {
		p.X += p.VX
		p.Y += p.VY
		if (p.X < bounds.minX && p.VX < 0) || (p.X > bounds.maxX && p.VX > 0) {
			p.VX = -p.VX
		}
		if (p.Y < bounds.minY && p.VY < 0) || (p.Y > bounds.maxY && p.VY > 0) {
			p.VY = -p.VY
		}
	}
	p.Opacity = band.clamp(p.Opacity + (rng.Float64()-0.5)*p.Twinkle)
}

// screen applies pointer and scroll parallax scaled by depth.
func (p *Particle) screen(f *frameState) (x, y float64) {
	offX := (f.pointerX - f.width/2) * pointerParallax
	offY := (f.pointerY - f.height/2) * pointerParallax
	return p.X + offX*p.Depth, p.Y + offY*p.Depth - f.scroll*scrollParallax*p.Depth
}

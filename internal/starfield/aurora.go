package starfield

import (
	"math"
	"math/rand/v2"
)

const (
	auroraLayerCount = 6

	auroraPointerParallax = 0.02
	auroraScrollParallax  = 0.1

	// Layers deeper than this get a second, fainter band.
	auroraEchoDepth = 0.6
	auroraStep      = 24.0
)

// AuroraLayer is a light-mode decorative band drifting horizontally.
type AuroraLayer struct {
	X, Y          float64
	Width, Height float64
	Phase         float64
	Colors        []RGBA
	Amplitude     float64
	Depth         float64
	Speed         float64
}

func generateAurora(w, h float64, rng *rand.Rand) []AuroraLayer {
	if w <= 0 || h <= 0 {
		return nil
	}
	layers := make([]AuroraLayer, 0, auroraLayerCount)
	for i := range auroraLayerCount {
		colors := make([]RGBA, 3)
		for c := range colors {
			colors[c] = auroraPalette[rng.IntN(len(auroraPalette))]
		}
		speed := between(rng, 0.1, 0.4)
		if rng.IntN(2) == 0 {
			speed = -speed
		}
		layers = append(layers, AuroraLayer{
			X:         between(rng, -0.2, 0.4) * w,
			Y:         h * (0.05 + 0.08*float64(i) + between(rng, 0, 0.05)),
			Width:     between(rng, 0.6, 1.2) * w,
			Height:    between(rng, 0.15, 0.3) * h,
			Phase:     rng.Float64() * 2 * math.Pi,
			Colors:    colors,
			Amplitude: between(rng, 20, 60),
			Depth:     between(rng, 0.2, 1.0),
			Speed:     speed,
		})
	}
	return layers
}

// drift moves the layer horizontally, wrapping it around the surface.
func (l *AuroraLayer) drift(w float64) {
	l.X += l.Speed
	switch {
	case l.X > w:
		l.X = -l.Width
	case l.X+l.Width < 0:
		l.X = w
	}
}

// offsetY combines the slow time wave with pointer and scroll parallax.
func (l *AuroraLayer) offsetY(f *frameState) float64 {
	t := f.now.Seconds()
	wave := math.Sin(t*0.5+l.Phase) * l.Amplitude
	pointer := (f.pointerY - f.height/2) * auroraPointerParallax * l.Depth
	scroll := -f.scroll * auroraScrollParallax * l.Depth
	return wave + pointer + scroll
}

// band traces a closed wavy strip: the top edge left to right, then the
// bottom edge back.
func (l *AuroraLayer) band(top, height, freq, phase, t float64) []Point {
	segments := max(int(math.Ceil(l.Width/auroraStep)), 8)
	pts := make([]Point, 0, 2*(segments+1))
	edge := func(i int) (float64, float64) {
		x := l.X + l.Width*float64(i)/float64(segments)
		return x, math.Sin(x*freq+t+phase) * l.Amplitude * 0.5
	}
	for i := 0; i <= segments; i++ {
		x, dy := edge(i)
		pts = append(pts, Point{X: x, Y: top + dy})
	}
	for i := segments; i >= 0; i-- {
		x, dy := edge(i)
		pts = append(pts, Point{X: x, Y: top + height + dy*0.6})
	}
	return pts
}

func (l *AuroraLayer) paint(alpha float64) Paint {
	stops := make([]Stop, 0, len(l.Colors)+2)
	stops = append(stops, Stop{Offset: 0, Color: Transparent})
	for i, c := range l.Colors {
		offset := 0.2 + 0.6*float64(i)/float64(max(len(l.Colors)-1, 1))
		stops = append(stops, Stop{Offset: offset, Color: c.WithAlpha(alpha)})
	}
	stops = append(stops, Stop{Offset: 1, Color: Transparent})
	return Linear(l.X, 0, l.X+l.Width, 0, stops...)
}

func (l *AuroraLayer) draw(s Surface, f *frameState) {
	t := f.now.Seconds()
	top := l.Y + l.offsetY(f)
	alpha := 0.05 + 0.18*l.Depth

	s.FillPolygon(l.band(top, l.Height, 0.004, l.Phase, t*0.8), l.paint(alpha))
	if l.Depth > auroraEchoDepth {
		s.FillPolygon(l.band(top+l.Height*0.25, l.Height*0.5, 0.0068, l.Phase+math.Pi/2, t*1.3), l.paint(alpha*0.5))
	}
}

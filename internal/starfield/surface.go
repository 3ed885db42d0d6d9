package starfield

import "math"

// RGBA is a colour with 8-bit channels and a fractional alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// WithAlpha returns c with its alpha replaced by a, clamped to [0,1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp(a, 0, 1)
	return c
}

// Stop is an ordered gradient colour stop; Offset is in [0,1].
type Stop struct {
	Offset float64
	Color  RGBA
}

// GradientKind selects between linear and radial gradients.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
)

// Gradient mirrors the canvas gradient model. Linear gradients run from
// (X0,Y0) to (X1,Y1); radial gradients grow from R0 around (X0,Y0) to R1
// around (X1,Y1).
type Gradient struct {
	Kind       GradientKind
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// ColorAt samples the gradient at t in [0,1] by interpolating between the
// surrounding stops. Hosts without native gradients use it to tessellate.
func (g *Gradient) ColorAt(t float64) RGBA {
	if g == nil || len(g.Stops) == 0 {
		return Transparent
	}
	t = clamp(t, 0, 1)
	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if t > next.Offset {
			continue
		}
		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color
		}
		return lerpColor(prev.Color, next.Color, (t-prev.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Paint is either a solid colour or a gradient; a non-nil Gradient wins.
type Paint struct {
	Color    RGBA
	Gradient *Gradient
}

// Solid paints with a single colour.
func Solid(c RGBA) Paint {
	return Paint{Color: c}
}

// Linear paints with a linear gradient between two points.
func Linear(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: LinearGradient, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// Radial paints with a radial gradient centred on (x, y) growing from 0 to r.
func Radial(x, y, r float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{Kind: RadialGradient, X0: x, Y0: y, X1: x, Y1: y, R1: r, Stops: stops}}
}

// At evaluates the paint at a point the way canvas gradients do. Hosts
// without native gradients sample it per vertex.
func (p Paint) At(x, y float64) RGBA {
	g := p.Gradient
	if g == nil {
		return p.Color
	}
	if g.Kind == RadialGradient {
		span := g.R1 - g.R0
		if span <= 0 {
			return g.ColorAt(1)
		}
		return g.ColorAt((math.Hypot(x-g.X1, y-g.Y1) - g.R0) / span)
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return g.ColorAt(0)
	}
	return g.ColorAt(((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq)
}

// Composite is the blend mode applied to subsequent drawing calls.
type Composite int

const (
	CompositeNormal Composite = iota
	// CompositeScreen is the additive "screen" blend used for aurora bands.
	CompositeScreen
)

func (c Composite) String() string {
	if c == CompositeScreen {
		return "screen"
	}
	return "source-over"
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Surface is the drawing target supplied by the host. Its size is owned by
// the host; the animator learns about changes through Resize.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, p Paint)
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, p Paint)
	// StrokeLine draws a segment with round caps.
	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
	FillPolygon(pts []Point, p Paint)
	SetComposite(c Composite)
}

func lerpColor(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: uint8(math.Round(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: uint8(math.Round(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: uint8(math.Round(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
		A: a.A + (b.A-a.A)*t,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

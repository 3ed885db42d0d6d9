//go:build js && wasm

// Package canvas hosts the starfield animator in a browser: the Surface
// wraps a CanvasRenderingContext2D, frames come from requestAnimationFrame
// and input from window listeners.
package canvas

import (
	"math"
	"strconv"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/starfield"
)

// Surface draws through a 2D canvas context.
type Surface struct {
	canvas js.Value
	ctx    js.Value
}

var _ starfield.Surface = (*Surface)(nil)

// NewSurface acquires the 2D context of el. It returns false when the
// context is unavailable, in which case the animator should be mounted with
// a nil surface.
func NewSurface(el js.Value) (*Surface, bool) {
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, false
	}
	return &Surface{canvas: el, ctx: ctx}, true
}

// Size implements starfield.Surface.
func (s *Surface) Size() (float64, float64) {
	return s.canvas.Get("width").Float(), s.canvas.Get("height").Float()
}

// FitWindow sizes the canvas to the viewport and returns the new size.
func (s *Surface) FitWindow() (float64, float64) {
	win := js.Global()
	w, h := win.Get("innerWidth").Int(), win.Get("innerHeight").Int()
	s.canvas.Set("width", w)
	s.canvas.Set("height", h)
	return float64(w), float64(h)
}

// FillRect implements starfield.Surface.
func (s *Surface) FillRect(x, y, w, h float64, p starfield.Paint) {
	s.ctx.Set("fillStyle", s.style(p))
	s.ctx.Call("fillRect", x, y, w, h)
}

// ClearRect implements starfield.Surface.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.ctx.Call("clearRect", x, y, w, h)
}

// FillCircle implements starfield.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, p starfield.Paint) {
	s.ctx.Set("fillStyle", s.style(p))
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", cx, cy, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}

// StrokeLine implements starfield.Surface.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, p starfield.Paint) {
	s.ctx.Set("strokeStyle", s.style(p))
	s.ctx.Set("lineWidth", width)
	s.ctx.Set("lineCap", "round")
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x0, y0)
	s.ctx.Call("lineTo", x1, y1)
	s.ctx.Call("stroke")
}

// FillPolygon implements starfield.Surface.
func (s *Surface) FillPolygon(pts []starfield.Point, p starfield.Paint) {
	if len(pts) < 3 {
		return
	}
	s.ctx.Set("fillStyle", s.style(p))
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.ctx.Call("lineTo", pt.X, pt.Y)
	}
	s.ctx.Call("closePath")
	s.ctx.Call("fill")
}

// SetComposite implements starfield.Surface.
func (s *Surface) SetComposite(c starfield.Composite) {
	s.ctx.Set("globalCompositeOperation", c.String())
}

func (s *Surface) style(p starfield.Paint) any {
	g := p.Gradient
	if g == nil {
		return cssColor(p.Color)
	}
	var grad js.Value
	if g.Kind == starfield.RadialGradient {
		grad = s.ctx.Call("createRadialGradient", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	} else {
		grad = s.ctx.Call("createLinearGradient", g.X0, g.Y0, g.X1, g.Y1)
	}
	for _, stop := range g.Stops {
		grad.Call("addColorStop", stop.Offset, cssColor(stop.Color))
	}
	return grad
}

func cssColor(c starfield.RGBA) string {
	b := make([]byte, 0, 32)
	b = append(b, "rgba("...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ", "...)
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ", "...)
	b = strconv.AppendUint(b, uint64(c.B), 10)
	b = append(b, ", "...)
	b = strconv.AppendFloat(b, c.A, 'f', 3, 64)
	b = append(b, ')')
	return string(b)
}

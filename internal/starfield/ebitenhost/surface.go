// Package ebitenhost runs the starfield animator in an ebiten window. It
// maps the animator's Surface onto ebiten triangles, with gradients sampled
// per vertex, and drives frames from ebiten's Draw.
package ebitenhost

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Zachkp/portfolio/internal/starfield"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(image.White)
}

// circleRings controls how finely radial gradients are sampled.
var circleRings = []float64{0.25, 0.5, 0.75, 1}

// Surface draws onto the image handed to it by Draw.
type Surface struct {
	target    *ebiten.Image
	w, h      float64
	composite starfield.Composite

	vs []ebiten.Vertex
	is []uint16
}

var _ starfield.Surface = (*Surface)(nil)

// NewSurface returns a surface of the given logical size.
func NewSurface(w, h int) *Surface {
	return &Surface{w: float64(w), h: float64(h)}
}

// Size implements starfield.Surface.
func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) setSize(w, h int) {
	s.w, s.h = float64(w), float64(h)
}

func (s *Surface) setTarget(img *ebiten.Image) {
	s.target = img
}

// SetComposite implements starfield.Surface.
func (s *Surface) SetComposite(c starfield.Composite) {
	s.composite = c
}

func (s *Surface) blend() ebiten.Blend {
	if s.composite == starfield.CompositeScreen {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// FillRect implements starfield.Surface.
func (s *Surface) FillRect(x, y, w, h float64, p starfield.Paint) {
	s.begin()
	s.quad(x, y, x+w, y, x+w, y+h, x, y+h, p)
	s.flush(s.blend(), ebiten.FillAll, false)
}

// ClearRect implements starfield.Surface.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.target == nil {
		return
	}
	if x <= 0 && y <= 0 && x+w >= s.w && y+h >= s.h {
		s.target.Clear()
		return
	}
	s.begin()
	s.quad(x, y, x+w, y, x+w, y+h, x, y+h, starfield.Solid(starfield.RGBA{A: 1}))
	s.flush(ebiten.BlendClear, ebiten.FillAll, false)
}

// FillCircle implements starfield.Surface. The disc is built from
// concentric rings so radial gradients keep their stops.
func (s *Surface) FillCircle(cx, cy, r float64, p starfield.Paint) {
	if r <= 0 {
		return
	}
	s.begin()
	segments := int(math.Min(48, math.Max(12, r*2)))
	center := s.vertex(cx, cy, p)
	s.vs = append(s.vs, center)

	for ring, frac := range circleRings {
		for i := range segments {
			a := 2 * math.Pi * float64(i) / float64(segments)
			s.vs = append(s.vs, s.vertex(cx+math.Cos(a)*r*frac, cy+math.Sin(a)*r*frac, p))
		}
		base := uint16(1 + ring*segments)
		for i := range segments {
			cur := base + uint16(i)
			next := base + uint16((i+1)%segments)
			if ring == 0 {
				s.is = append(s.is, 0, cur, next)
				continue
			}
			inCur := cur - uint16(segments)
			inNext := next - uint16(segments)
			s.is = append(s.is, inCur, cur, next, inCur, next, inNext)
		}
	}
	s.flush(s.blend(), ebiten.FillAll, true)
}

// StrokeLine implements starfield.Surface with round caps.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, p starfield.Paint) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		s.FillCircle(x0, y0, width/2, p)
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	s.begin()
	s.quad(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny, p)
	s.flush(s.blend(), ebiten.FillAll, true)

	s.FillCircle(x0, y0, width/2, p)
	s.FillCircle(x1, y1, width/2, p)
}

// FillPolygon implements starfield.Surface.
func (s *Surface) FillPolygon(pts []starfield.Point, p starfield.Paint) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	for i := range s.vs {
		s.vs[i] = s.vertex(float64(s.vs[i].DstX), float64(s.vs[i].DstY), p)
	}
	s.flush(s.blend(), ebiten.EvenOdd, true)
}

func (s *Surface) begin() {
	s.vs = s.vs[:0]
	s.is = s.is[:0]
}

func (s *Surface) quad(x0, y0, x1, y1, x2, y2, x3, y3 float64, p starfield.Paint) {
	base := uint16(len(s.vs))
	s.vs = append(s.vs,
		s.vertex(x0, y0, p),
		s.vertex(x1, y1, p),
		s.vertex(x2, y2, p),
		s.vertex(x3, y3, p),
	)
	s.is = append(s.is, base, base+1, base+2, base, base+2, base+3)
}

func (s *Surface) flush(blend ebiten.Blend, rule ebiten.FillRule, antialias bool) {
	if s.target == nil || len(s.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:     blend,
		FillRule:  rule,
		AntiAlias: antialias,
	}
	s.target.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

func (s *Surface) vertex(x, y float64, p starfield.Paint) ebiten.Vertex {
	c := p.At(x, y)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A),
	}
}

package starfield

import (
	"math/rand/v2"
	"sync"
)

// recorder is a Surface that counts calls and remembers the paints used.
type recorder struct {
	mu         sync.Mutex
	w, h       float64
	calls      int
	fills      int
	clears     int
	circles    int
	lines      int
	polygons   int
	composites []Composite
	colors     []RGBA
}

func newRecorder(w, h float64) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Size() (float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w, r.h
}

func (r *recorder) FillRect(x, y, w, h float64, p Paint) {
	r.record(p, &r.fills)
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.clears++
}

func (r *recorder) FillCircle(cx, cy, rad float64, p Paint) {
	r.record(p, &r.circles)
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	r.record(p, &r.lines)
}

func (r *recorder) FillPolygon(pts []Point, p Paint) {
	r.record(p, &r.polygons)
}

func (r *recorder) SetComposite(c Composite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.composites = append(r.composites, c)
}

func (r *recorder) record(p Paint, counter *int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	*counter++
	if p.Gradient == nil {
		r.colors = append(r.colors, p.Color)
	}
}

func (r *recorder) drawCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls, r.fills, r.clears, r.circles, r.lines, r.polygons = 0, 0, 0, 0, 0, 0
	r.composites, r.colors = nil, nil
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

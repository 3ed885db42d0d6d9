package starfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientColorAt(t *testing.T) {
	g := &Gradient{Stops: []Stop{
		{Offset: 0, Color: RGBA{R: 0, A: 0}},
		{Offset: 0.5, Color: RGBA{R: 200, A: 1}},
		{Offset: 1, Color: RGBA{R: 100, A: 0.5}},
	}}

	assert.Equal(t, RGBA{R: 0, A: 0}, g.ColorAt(-1))
	assert.Equal(t, RGBA{R: 100, A: 0.5}, g.ColorAt(0.25))
	assert.Equal(t, RGBA{R: 200, A: 1}, g.ColorAt(0.5))
	assert.Equal(t, RGBA{R: 150, A: 0.75}, g.ColorAt(0.75))
	assert.Equal(t, RGBA{R: 100, A: 0.5}, g.ColorAt(2))

	var empty *Gradient
	assert.Equal(t, Transparent, empty.ColorAt(0.3))
}

func TestWithAlphaClamps(t *testing.T) {
	assert.Equal(t, 1.0, white.WithAlpha(3).A)
	assert.Equal(t, 0.0, white.WithAlpha(-1).A)
}

func TestPaintAt(t *testing.T) {
	red := RGBA{R: 255, A: 1}
	assert.Equal(t, red, Solid(red).At(10, 10))

	lin := Linear(0, 0, 100, 0,
		Stop{Offset: 0, Color: RGBA{R: 0, A: 1}},
		Stop{Offset: 1, Color: RGBA{R: 200, A: 1}},
	)
	assert.Equal(t, RGBA{R: 100, A: 1}, lin.At(50, 40), "linear gradients vary along their axis only")
	assert.Equal(t, RGBA{R: 0, A: 1}, lin.At(-20, 0))

	rad := Radial(50, 50, 10,
		Stop{Offset: 0, Color: RGBA{G: 255, A: 1}},
		Stop{Offset: 1, Color: Transparent},
	)
	assert.Equal(t, RGBA{G: 255, A: 1}, rad.At(50, 50))
	assert.Equal(t, Transparent, rad.At(70, 50))
	assert.InDelta(t, 0.5, rad.At(55, 50).A, 1e-9)
}

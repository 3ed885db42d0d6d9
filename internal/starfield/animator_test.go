package starfield

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/theme"
)

func newTestAnimator(t *testing.T, opts Options) (*Animator, *FrameQueue) {
	t.Helper()
	q := NewFrameQueue()
	opts.Scheduler = q
	if opts.Rand == nil {
		opts.Rand = seeded(42)
	}
	return New(opts), q
}

func runFrames(q *FrameQueue, n int) {
	for i := range n {
		q.Tick(time.Duration(i) * 16 * time.Millisecond)
	}
}

func TestMountDarkPopulation(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	a.Mount(newRecorder(800, 600), theme.Dark)

	stars := a.Particles()
	require.Len(t, stars, 60)
	for _, p := range stars {
		assert.GreaterOrEqual(t, p.Radius, 0.5)
		assert.LessOrEqual(t, p.Radius, 2.5)
		assert.GreaterOrEqual(t, p.Depth, 0.2)
		assert.LessOrEqual(t, p.Depth, 1.0)
		assert.GreaterOrEqual(t, p.Opacity, darkOpacity.min)
		assert.LessOrEqual(t, p.Opacity, darkOpacity.max)
		assert.Zero(t, p.VX)
		assert.Equal(t, Transparent, p.Color)
	}
	assert.Empty(t, a.AuroraLayers())
	assert.Equal(t, StateActive, a.State())
	assert.Equal(t, VariantDark, a.Variant())
	assert.Equal(t, 1, q.Pending())
}

func TestMountLightPopulation(t *testing.T) {
	a, _ := newTestAnimator(t, Options{})
	a.Mount(newRecorder(1000, 500), theme.Light)

	layers := a.AuroraLayers()
	assert.Len(t, layers, 6)
	for _, l := range layers {
		assert.Len(t, l.Colors, 3)
		assert.Greater(t, l.Width, 0.0)
		assert.Greater(t, l.Height, 0.0)
	}

	stars := a.Particles()
	require.Len(t, stars, 125)
	for _, p := range stars {
		assert.LessOrEqual(t, p.Y, 300.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Contains(t, lightStarPalette, p.Color)
	}
	assert.Equal(t, VariantLight, a.Variant())
}

func TestOpacityStaysInBand(t *testing.T) {
	tests := []struct {
		mode theme.Mode
		band opacityBand
	}{
		{mode: theme.Dark, band: darkOpacity},
		{mode: theme.Light, band: lightOpacity},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			a, q := newTestAnimator(t, Options{})
			a.Mount(newRecorder(640, 480), tt.mode)

			for range 20 {
				runFrames(q, 25)
				for _, p := range a.Particles() {
					require.GreaterOrEqual(t, p.Opacity, tt.band.min)
					require.LessOrEqual(t, p.Opacity, tt.band.max)
				}
			}
		})
	}
}

func TestResizeRegeneratesPopulation(t *testing.T) {
	tests := []struct {
		name    string
		mode    theme.Mode
		divisor float64
	}{
		{name: "dark", mode: theme.Dark, divisor: darkDensity},
		{name: "light", mode: theme.Light, divisor: lightDensity},
	}
	sizes := [][2]float64{{1280, 720}, {333, 250}, {1920, 1080}, {800, 600}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, q := newTestAnimator(t, Options{})
			a.Mount(newRecorder(800, 600), tt.mode)
			before := a.Particles()
			runFrames(q, 3)

			for _, sz := range sizes {
				a.Resize(sz[0], sz[1])
				want := int(math.Floor(sz[0] * sz[1] / tt.divisor))
				assert.Len(t, a.Particles(), want)
			}
			assert.NotEqual(t, before, a.Particles())
			assert.Equal(t, 1, q.Pending())
		})
	}
}

func TestThemeChangeSwitchesGenerator(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	rec := newRecorder(800, 400)
	a.Mount(rec, theme.Dark)
	runFrames(q, 2)

	a.SetTheme(theme.Light)
	assert.Equal(t, VariantLight, a.Variant())
	assert.Len(t, a.Particles(), 80)
	assert.Len(t, a.AuroraLayers(), 6)
	assert.Empty(t, a.Streaks())
	for _, p := range a.Particles() {
		assert.Contains(t, lightStarPalette, p.Color)
	}

	rec.reset()
	runFrames(q, 1)
	assert.Zero(t, rec.fills, "light frames never paint the dark background")
	assert.Equal(t, 1, rec.clears)
	assert.Equal(t, []Composite{CompositeScreen, CompositeNormal}, rec.composites)
	assert.Positive(t, rec.polygons)

	a.SetTheme(theme.Dark)
	assert.Len(t, a.Particles(), 40)
	assert.Empty(t, a.AuroraLayers())
	for _, p := range a.Particles() {
		assert.Equal(t, Transparent, p.Color)
	}

	rec.reset()
	runFrames(q, 1)
	assert.Equal(t, 1, rec.fills)
	assert.Zero(t, rec.clears)
	assert.Zero(t, rec.polygons)
	assert.Empty(t, rec.composites)
}

func TestSameVariantKeepsPopulation(t *testing.T) {
	a, _ := newTestAnimator(t, Options{})
	a.Mount(newRecorder(400, 400), theme.Dark)
	before := a.Particles()

	a.SetTheme(theme.System)
	assert.Equal(t, before, a.Particles())
}

func TestUnmountStopsDrawing(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	rec := newRecorder(800, 600)
	a.Mount(rec, theme.Dark)
	runFrames(q, 5)

	drawn := rec.drawCalls()
	require.Positive(t, drawn)

	a.Unmount()
	runFrames(q, 50)

	assert.Equal(t, drawn, rec.drawCalls())
	assert.Zero(t, q.Pending())
	assert.Equal(t, StateUnmounted, a.State())

	a.Mount(rec, theme.Dark)
	a.Resize(100, 100)
	a.SetTheme(theme.Light)
	runFrames(q, 5)
	assert.Equal(t, drawn, rec.drawCalls(), "unmount is terminal")
}

func TestStaleFrameAfterUnmountDoesNotDraw(t *testing.T) {
	a, _ := newTestAnimator(t, Options{})
	rec := newRecorder(300, 300)
	a.Mount(rec, theme.Dark)
	a.Unmount()

	a.frame(time.Second)
	assert.Zero(t, rec.drawCalls())
}

func TestZeroAreaSurfaceIsIdle(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	rec := newRecorder(0, 600)
	a.Mount(rec, theme.Light)

	assert.Empty(t, a.Particles())
	assert.Empty(t, a.AuroraLayers())
	assert.Equal(t, StateIdle, a.State())
	assert.Zero(t, q.Pending())

	assert.NotPanics(t, func() { a.frame(0) })
	assert.Zero(t, rec.drawCalls())

	a.Resize(400, 400)
	assert.Equal(t, StateActive, a.State())
	assert.Len(t, a.Particles(), 40)
	assert.Equal(t, 1, q.Pending())

	a.Resize(400, 0)
	assert.Equal(t, StateIdle, a.State())
	assert.Zero(t, q.Pending())
}

func TestNilSurfaceDegradesToNoop(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	a.Mount(nil, theme.Dark)

	assert.Equal(t, StateIdle, a.State())
	assert.Zero(t, q.Pending())

	a.Resize(800, 600)
	a.SetTheme(theme.Light)
	assert.Empty(t, a.Particles())
	assert.Zero(t, q.Pending())
	assert.NotPanics(t, a.Unmount)
}

type fakeInput struct {
	handler  InputHandler
	detached int
}

func (f *fakeInput) Listen(h InputHandler) func() {
	f.handler = h
	return func() {
		f.detached++
		f.handler = nil
	}
}

func TestListenersAttachAndDetach(t *testing.T) {
	input := &fakeInput{}
	themes := theme.NewSource(theme.Dark, false)
	a, q := newTestAnimator(t, Options{Input: input, Theme: themes})
	a.Mount(newRecorder(800, 600), themes.Current())

	require.NotNil(t, input.handler)
	input.handler.Resize(400, 400)
	assert.Len(t, a.Particles(), 20)

	themes.Set(theme.Light)
	assert.Equal(t, VariantLight, a.Variant())
	assert.Len(t, a.Particles(), 40)

	a.Unmount()
	assert.Equal(t, 1, input.detached)
	assert.Nil(t, input.handler)

	themes.Set(theme.Dark)
	assert.Zero(t, q.Pending())
}

func TestPointerParallaxScalesWithDepth(t *testing.T) {
	f := &frameState{width: 800, height: 600, pointerX: 400, pointerY: 300}
	near := Particle{X: 100, Y: 100, Depth: 1}
	far := Particle{X: 100, Y: 100, Depth: 0.2}

	x, y := near.screen(f)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)

	f.pointerX, f.pointerY = 800, 600
	nx, ny := near.screen(f)
	fx, fy := far.screen(f)
	assert.InDelta(t, 112.0, nx, 1e-9)
	assert.InDelta(t, 109.0, ny, 1e-9)
	assert.Less(t, fx-100, nx-100)
	assert.Less(t, fy-100, ny-100)

	f.scroll = 200
	_, sy := near.screen(f)
	assert.InDelta(t, ny-10, sy, 1e-9)
}

func TestPointerMoveFeedsNextFrame(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	a.Mount(newRecorder(800, 600), theme.Dark)
	a.PointerMove(10, 20)
	a.Scroll(300)

	assert.Equal(t, 10.0, a.pointerX.Load())
	assert.Equal(t, 20.0, a.pointerY.Load())
	assert.Equal(t, 300.0, a.scrollY.Load())
	assert.Equal(t, 1, q.Pending(), "input never schedules extra frames")
}

func TestDriftingStarsBounce(t *testing.T) {
	rng := seeded(1)
	bounds := &rect{maxX: 100, maxY: 60}

	p := Particle{X: 100.1, Y: 30, VX: 0.15, VY: 0, Opacity: 0.5, Twinkle: 0.01}
	p.step(rng, lightOpacity, bounds)
	assert.Equal(t, -0.15, p.VX)

	p = Particle{X: 50, Y: -0.05, VX: 0, VY: -0.1, Opacity: 0.5, Twinkle: 0.01}
	p.step(rng, lightOpacity, bounds)
	assert.Equal(t, 0.1, p.VY)

	p = Particle{X: 50, Y: 30, VX: 0.1, VY: 0.1, Opacity: 0.5, Twinkle: 0.01}
	p.step(rng, lightOpacity, bounds)
	assert.Equal(t, 0.1, p.VX)
	assert.Equal(t, 0.1, p.VY)
}

func TestLightStarsStayNearBand(t *testing.T) {
	a, q := newTestAnimator(t, Options{})
	a.Mount(newRecorder(400, 300), theme.Light)
	runFrames(q, 600)

	for _, p := range a.Particles() {
		assert.GreaterOrEqual(t, p.Y, -0.5)
		assert.LessOrEqual(t, p.Y, 180.5)
		assert.GreaterOrEqual(t, p.X, -0.5)
		assert.LessOrEqual(t, p.X, 400.5)
	}
}

func TestStreaksArePrunedOffSurface(t *testing.T) {
	a, q := newTestAnimator(t, Options{Rand: seeded(7)})
	rec := newRecorder(400, 300)
	a.Mount(rec, theme.Dark)

	seen := 0
	for i := range 3000 {
		q.Tick(time.Duration(i) * time.Millisecond)
		for _, s := range a.Streaks() {
			seen++
			x, y := s.head()
			require.LessOrEqual(t, x, 400.0)
			require.LessOrEqual(t, y, 300.0)
		}
	}
	assert.Positive(t, seen, "expected at least one shooting star in 3000 frames")
	assert.Positive(t, rec.lines)
}

func TestStreakAdvanceExpires(t *testing.T) {
	s := Streak{OriginX: 10, Angle: math.Pi / 4, Length: 50, Speed: 10}
	frames := 0
	for s.advance(100, 100) {
		frames++
		require.Less(t, frames, 100)
	}
	x, y := s.head()
	assert.True(t, x > 100 || y > 100)
	assert.Equal(t, 12, frames)
}

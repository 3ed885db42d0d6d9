package ebitenhost

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/theme"
)

// wheelStep converts wheel notches into page pixels.
const wheelStep = 40.0

// Game hosts one animator. Update feeds input, Draw ticks the frame queue
// and Layout forwards size changes.
type Game struct {
	queue   *starfield.FrameQueue
	surface *Surface
	themes  *theme.Source
	anim    *starfield.Animator
	start   time.Time

	mu      sync.Mutex
	handler starfield.InputHandler

	w, h   int
	scroll float64
	lastX  int
	lastY  int
}

// Options configures a Game.
type Options struct {
	Width, Height int
	Themes        *theme.Source

	// Animator lets callers inject logging or a seeded RNG; its scheduler
	// and sources are overwritten.
	Animator starfield.Options
}

// New mounts an animator on a fresh surface of the requested size.
func New(opts Options) *Game {
	g := &Game{
		queue:   starfield.NewFrameQueue(),
		surface: NewSurface(opts.Width, opts.Height),
		themes:  opts.Themes,
		start:   time.Now(),
		w:       opts.Width,
		h:       opts.Height,
		lastX:   -1,
		lastY:   -1,
	}
	if g.themes == nil {
		g.themes = theme.NewSource(theme.Dark, true)
	}

	ao := opts.Animator
	ao.Scheduler = g.queue
	ao.Input = g
	ao.Theme = g.themes
	g.anim = starfield.New(ao)
	g.anim.Mount(g.surface, g.themes.Current())
	return g
}

// Animator exposes the hosted animator.
func (g *Game) Animator() *starfield.Animator {
	return g.anim
}

// Listen implements starfield.InputSource.
func (g *Game) Listen(h starfield.InputHandler) func() {
	g.mu.Lock()
	g.handler = h
	g.mu.Unlock()
	return func() {
		g.mu.Lock()
		g.handler = nil
		g.mu.Unlock()
	}
}

func (g *Game) input() starfield.InputHandler {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.handler
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.anim.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.themes.Toggle()
	}

	h := g.input()
	if h == nil {
		return nil
	}
	if x, y := ebiten.CursorPosition(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		h.PointerMove(float64(x), float64(y))
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll = max(0, g.scroll-dy*wheelStep)
		h.Scroll(g.scroll)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.setTarget(screen)
	g.queue.Tick(time.Since(g.start))
	g.surface.setTarget(nil)
}

// Layout implements ebiten.Game. Only real size changes reach the
// animator, since ebiten calls Layout every frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.surface.setSize(g.w, g.h)
		if h := g.input(); h != nil {
			h.Resize(float64(g.w), float64(g.h))
		}
	}
	return g.w, g.h
}

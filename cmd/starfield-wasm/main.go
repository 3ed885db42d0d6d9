//go:build js && wasm

// Command starfield-wasm mounts the background animator on the page's
// #starfield canvas. Build with GOOS=js GOARCH=wasm into static/starfield.wasm.
package main

import (
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/starfield/canvas"
	"github.com/Zachkp/portfolio/internal/theme"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).Level(zerolog.WarnLevel)

	doc := js.Global().Get("document")
	el := doc.Call("getElementById", "starfield")

	themes := theme.NewSource(initialMode(doc), false)
	prefersDark, stopWatching := canvas.PrefersDark(themes.SetPrefersDark)
	themes.SetPrefersDark(prefersDark)

	surface, ok := canvas.NewSurface(el)
	opts := starfield.Options{
		Scheduler: canvas.NewScheduler(),
		Theme:     themes,
		Logger:    &log,
	}
	var s starfield.Surface
	if ok {
		surface.FitWindow()
		opts.Input = canvas.Window{Surface: surface}
		s = surface
	}
	anim := starfield.New(opts)
	anim.Mount(s, themes.Current())

	setTheme := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		if mode, err := theme.Parse(args[0].String()); err == nil {
			themes.Set(mode)
		}
		return nil
	})
	unmount := js.FuncOf(func(this js.Value, args []js.Value) any {
		anim.Unmount()
		stopWatching()
		return nil
	})
	js.Global().Set("setStarfieldTheme", setTheme)
	js.Global().Set("unmountStarfield", unmount)

	select {}
}

// initialMode reads the data-theme attribute the page renders on <html>.
func initialMode(doc js.Value) theme.Mode {
	attr := doc.Get("documentElement").Call("getAttribute", "data-theme")
	if attr.IsNull() {
		return theme.System
	}
	mode, err := theme.Parse(attr.String())
	if err != nil {
		return theme.System
	}
	return mode
}

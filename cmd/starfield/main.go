// Command starfield previews the site background in a desktop window.
// Press T to toggle the theme and Esc to quit.
package main

import (
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/starfield/ebitenhost"
	"github.com/Zachkp/portfolio/internal/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		width, height int
		mode          string
		seed          uint64
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:          "starfield",
		Short:        "Preview the animated site background",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := theme.Parse(mode)
			if err != nil {
				return err
			}
			log, err := logger.New(logger.Options{Level: logLevel, Format: logger.FormatConsole})
			if err != nil {
				return err
			}

			opts := starfield.Options{Logger: &log}
			if seed != 0 {
				opts.Rand = rand.New(rand.NewPCG(seed, seed))
			}
			game := ebitenhost.New(ebitenhost.Options{
				Width:    width,
				Height:   height,
				Themes:   theme.NewSource(m, true),
				Animator: opts,
			})

			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle("starfield")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			log.Info().Int("width", width).Int("height", height).Str("theme", string(m)).Msg("starting preview")
			return ebiten.RunGame(game)
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "window width")
	cmd.Flags().IntVar(&height, "height", 720, "window height")
	cmd.Flags().StringVar(&mode, "theme", "dark", "light, dark or system")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/solar-city/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable desktop window.

Controls:
  Mouse click - Press buttons and install panels
  Q/Esc       - Quit

The window size follows display.scale in the config (1.0 = 1200x800).

Examples:
  solarcity window
  solarcity window --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	rt, err := setup(os.Stderr, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return window.Run(window.Options{
		Title:  rt.cfg.Display.Title,
		Scale:  rt.cfg.Display.Scale,
		TPS:    rt.cfg.Display.FPS,
		Seed:   flagSeed,
		Events: rt.events(),
		Store:  rt.store,
		Logger: rt.logger,
	})
}

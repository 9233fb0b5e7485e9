package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Click with the mouse, or use the keys.

Controls:
  Mouse click - Press buttons and install panels
  Enter/Space - Press the highlighted button
  1-9         - Install a panel on building N
  ?           - Show all keys
  Ctrl+S      - Save a text screenshot to ~/.solarcity/screenshots
  Q/Ctrl+C    - Quit

Logs are discarded while the game owns the terminal; use --log-file to keep them.

Examples:
  solarcity play
  solarcity play --seed 42 --mute
  solarcity play --log-file solarcity.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := setup(io.Discard, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	// Get terminal size; the first WindowSizeMsg corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: rt.cfg.Display.FPS,
			Seed:     flagSeed,
		},
		MaxStep: rt.cfg.Display.MaxStep,
		Events:  rt.events(),
		Store:   rt.store,
		Logger:  rt.logger,
	})
}

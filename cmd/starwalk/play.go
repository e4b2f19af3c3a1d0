package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andrevlas/starwalk/internal/config"
	"github.com/andrevlas/starwalk/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a walkway session",
	Long: `Start a session on the walkway.

The walker moves with the arrow keys or WASD; the companion follows the
path you took a moment ago. Collect all six stars and a fresh batch
appears. The HUD shows elapsed time, stars collected, average seconds
per star, and the gap to your companion.`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starwalk",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		// An explicit --config that cannot be read is fatal; the
		// implicit fallback paths never reach this branch.
		return err
	}

	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}

	// The game cannot start without a measurable terminal.
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Warn("could not detect terminal size, using 80x24", "error", err)
		width, height = 80, 24
	}

	return tui.Run(cfg, width, height, flagSeed)
}

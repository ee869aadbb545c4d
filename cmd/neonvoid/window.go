package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with real key state.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire (hold for auto-fire)
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  neonvoid window
  neonvoid window --seed 42 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := stderrLogger("neonvoid")
	if flagLogFile != "" {
		fl, closer, err := fileLogger("neonvoid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger = fl
	}

	store := openStore(logger)
	cfg := runtimeConfig()
	runErr := window.Run(neonvoid.New(), store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

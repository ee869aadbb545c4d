package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/platform/tui"
	"github.com/vovakirdan/neon-void/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match in the terminal",
	Long: `Start a match right away, skipping the title menu.

Controls:
  Left/A, Right/D  - Steer
  Space/Up         - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (while paused or after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.neonvoid/screenshots

Difficulty options:
  easy   - Slower spawns, more drops, waves ramp up from zero
  normal - Default spawns and drops, waves start ramped up a little
  hard   - Faster spawns, fewer drops, waves start well ramped up
  fixed  - Default spawns and drops, no wave scaling

Examples:
  neonvoid play
  neonvoid play --difficulty hard
  neonvoid play --seed 42 --log-file ./neonvoid.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := fileLogger("neonvoid")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	game, err := registry.Create(neonvoid.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

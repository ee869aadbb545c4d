// neonvoid is a vertical arcade shooter for the terminal, a desktop window
// and SSH.
//
// Usage:
//
//	neonvoid                 - Title menu in the terminal
//	neonvoid play            - Start a match right away
//	neonvoid window          - Play in a desktop window
//	neonvoid serve           - Start SSH server for remote play
//	neonvoid scores          - Show high scores and recent matches
//	neonvoid sim             - Run a headless match with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.neonvoid/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/logging"
	"github.com/vovakirdan/neon-void/internal/platform/tui"
	"github.com/vovakirdan/neon-void/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonvoid",
	Short: "Neon Void - a vertical arcade shooter",
	Long: `Neon Void is a wave-based arcade shooter. Steer your ship along the
bottom of the arena, shoot down enemy formations and collect power-ups.

Available commands:
  play     - Start a match right away
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and recent matches
  sim      - Run a headless match with the autopilot

Running neonvoid without a command opens the title menu.

Examples:
  neonvoid
  neonvoid play --difficulty hard
  neonvoid window --seed 42
  neonvoid serve --ssh :2222
  neonvoid sim --ticks 18000 --save`,
	PersistentPreRunE: applyGameFlags,
	SilenceUsage:      true,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neonvoid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags validates the shared flags and hands the config path and
// difficulty preset to the game before any match is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if _, err := logging.ParseLevel(flagLogLevel); err != nil {
		return err
	}
	if flagDifficulty != "" {
		switch config.ParsePreset(flagDifficulty) {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		default:
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}

	neonvoid.SetConfigPath(flagConfig)
	neonvoid.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fileLogger opens the --log-file logger. Full-screen programs own stdout,
// so without a file nothing is logged.
func fileLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(flagLogFile, level, prefix)
}

// stderrLogger returns a logger for commands that keep the terminal in
// line mode.
func stderrLogger(prefix string) *log.Logger {
	level, _ := logging.ParseLevel(flagLogLevel)
	return logging.New(os.Stderr, level, prefix)
}

// openStore opens the scores database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer, err := fileLogger("neonvoid")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	store := openStore(logger)
	runErr := tui.RunSession(neonvoid.GameID, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-void/internal/core"
	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match with the autopilot",
	Long: `Run a match without a screen. The autopilot steers under the lowest
enemy and keeps firing until the ship is destroyed or the tick limit is
reached. The summary is logged to stderr; --log-level debug also logs
every simulation event.

Examples:
  neonvoid sim
  neonvoid sim --seed 42 --ticks 36000
  neonvoid sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 18000, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the match in the scores database")
}

// simulate runs one autopilot match for at most maxTicks ticks. A match still
// running at the limit is ended with a quit request.
func simulate(game *neonvoid.Game, cfg core.RuntimeConfig, maxTicks int, logger *log.Logger) {
	game.Reset(cfg)
	pilot := neonvoid.NewAutopilot()

	for i := 0; i < maxTicks && !game.State().GameOver; i++ {
		result := game.Step(pilot.Next(game))
		for _, e := range result.Events {
			logger.Debug(e.Kind.String(), "tick", e.Tick, "value", e.Value, "detail", e.Detail)
		}
	}

	if !game.State().GameOver {
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		game.Step(quit)
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger := stderrLogger("neonvoid-sim")

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := neonvoid.New()
	started := time.Now()
	simulate(game, cfg, flagSimTicks, logger)
	stats := game.Stats()

	logger.Info("match over",
		"seed", cfg.Seed,
		"score", stats.Score,
		"wave", stats.Wave,
		"kills", stats.Kills,
		"shots", stats.Shots,
		"ticks", stats.Ticks,
		"reason", stats.EndReason,
		"hash", fmt.Sprintf("%016x", game.Snapshot().Hash()),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.RecordMatch(storage.MatchRecord{
		GameID:    game.ID(),
		Score:     stats.Score,
		Wave:      stats.Wave,
		Kills:     stats.Kills,
		Shots:     stats.Shots,
		Ticks:     stats.Ticks,
		EndReason: stats.EndReason,
		Seed:      cfg.Seed,
	})
	if err != nil {
		logger.Error("could not save match", "error", err)
		return
	}
	logger.Info("match saved", "match", id)
}

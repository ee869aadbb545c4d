package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-void/internal/games/neonvoid"
	"github.com/vovakirdan/neon-void/internal/platform/tui"
	"github.com/vovakirdan/neon-void/internal/storage"
)

var (
	flagScoresLimit int
	flagClearYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Subcommands:
  matches  - Recent matches with wave, kills and play time
  stats    - Aggregated statistics
  browse   - Interactive scoreboard
  clear    - Delete all scores and matches

Examples:
  neonvoid scores
  neonvoid scores --limit 20
  neonvoid scores matches
  neonvoid scores clear --yes`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var scoresMatchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show recent matches",
	Args:  cobra.NoArgs,
	Run:   runScoresMatches,
}

var scoresStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics",
	Args:  cobra.NoArgs,
	Run:   runScoresStats,
}

var scoresBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive scoreboard",
	Args:  cobra.NoArgs,
	Run:   runScoresBrowse,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all scores and matches",
	Args:  cobra.NoArgs,
	Run:   runScoresClear,
}

func init() {
	scoresCmd.PersistentFlags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresClearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm deletion")

	scoresCmd.AddCommand(scoresMatchesCmd)
	scoresCmd.AddCommand(scoresStatsCmd)
	scoresCmd.AddCommand(scoresBrowseCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// mustOpenStore opens the scores database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	scores, err := store.TopScores(neonvoid.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Neon Void")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'neonvoid play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}
}

func runScoresMatches(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	matches, err := store.RecentMatches(neonvoid.GameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-4s  %-5s  %-7s  %-9s  %s\n", "Match", "Score", "Wave", "Kills", "Time", "End", "Date")
	fmt.Printf("  %-8s  %-8s  %-4s  %-5s  %-7s  %-9s  %s\n", "-----", "-----", "----", "-----", "----", "---", "----")
	for _, m := range matches {
		fmt.Printf("  %-8s  %-8d  %-4d  %-5d  %-7s  %-9s  %s\n",
			shortID(m.MatchID),
			m.Score,
			m.Wave,
			m.Kills,
			m.Duration(flagFPS).Round(time.Second).String(),
			m.EndReason,
			m.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runScoresStats(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	stats, err := store.GetGameStats(neonvoid.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	if stats.GamesCount == 0 {
		fmt.Println("No games played yet.")
		return
	}

	fmt.Println("Neon Void statistics")
	fmt.Println()
	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:   %d\n", stats.TotalScore)
	fmt.Printf("  Best wave:     %d\n", stats.BestWave)
	fmt.Printf("  Total kills:   %d\n", stats.TotalKills)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runScoresBrowse(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	cfg := runtimeConfig()
	if err := tui.RunScoreboard(neonvoid.GameID, store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
	}
}

func runScoresClear(_ *cobra.Command, _ []string) {
	if !flagClearYes {
		fmt.Fprintln(os.Stderr, "Refusing to clear scores without --yes")
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if err := store.ClearScores(neonvoid.GameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		return
	}
	fmt.Println("All Neon Void scores and matches deleted.")
}

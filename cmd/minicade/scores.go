package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitbreak/minicade/internal/registry"
	"github.com/bitbreak/minicade/internal/storage"
)

var (
	flagScoresLimit int
	flagSessions    bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "View high scores",
	Long: `Show the top scores recorded for a game, or recent sessions.

Examples:
  minicade scores skyhop
  minicade scores skyhop --limit 25
  minicade scores --sessions
  minicade scores skyhop --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Show recent sessions instead of per-game scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the given game")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessions {
		showSessions(store)
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: a game is required unless --sessions is set")
		fmt.Fprintln(os.Stderr, "Run 'minicade list' to see available games.")
		os.Exit(1)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'minicade list' to see available games.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	entries, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Printf("No scores yet for %s. Go play!\n", gameID)
		return
	}

	info, _ := registry.Get(gameID)
	fmt.Printf("Top scores for %s:\n\n", info.Title)
	fmt.Printf("  %4s  %8s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %4s  %8s  %s\n", "----", "-----", "----")
	for i, e := range entries {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %4d  %8d  %s\n", i+1, e.Score, when)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("\n  %d games played, average score %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}

func showSessions(store *storage.Store) {
	records, err := store.RecentSessions(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %8s  %5s  %8s  %s\n", "Total", "Games", "Duration", "When")
	fmt.Printf("  %8s  %5s  %8s  %s\n", "-----", "-----", "--------", "----")
	for _, r := range records {
		when := "-"
		if !r.CreatedAt.IsZero() {
			when = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %8d  %5d  %7ds  %s\n", r.TotalScore, r.GamesPlayed, r.Duration, when)
	}
}

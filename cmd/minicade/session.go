package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/platform/tui"
	"github.com/bitbreak/minicade/internal/registry"
	"github.com/bitbreak/minicade/internal/session"
	"github.com/bitbreak/minicade/internal/storage"
)

var (
	flagBudget  int
	flagVerbose bool
)

var sessionCmd = &cobra.Command{
	Use:   "session <game> [game ...]",
	Short: "Play a timed sequence of games with a combined score",
	Long: `Play several games back to back as one session.

Each game runs until it ends on its own or its time budget expires,
whichever comes first. Scores accumulate into a session total shown
on the summary screen, and the session is recorded in the database.

A budget of 0 lets each game run until game over.

Examples:
  minicade session trivia tiltball skyhop
  minicade session skyhop rooftop --budget 45
  minicade session matchup --budget 0`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSession,
}

func init() {
	sessionCmd.Flags().IntVar(&flagBudget, "budget", 60, "Time budget per game in seconds (0 = until game over)")
	sessionCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log score updates and game completions to stderr")
}

func runSession(_ *cobra.Command, args []string) {
	// Validate the full plan before anything starts
	for _, gameID := range args {
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'minicade list' to see available games.")
			os.Exit(1)
		}
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Per-game setup before any game is created
	for _, gameID := range args {
		prepareGame(gameID)
	}

	plan := session.Plan{}
	for _, gameID := range args {
		plan.Games = append(plan.Games, session.PlannedGame{
			GameID: gameID,
			Budget: flagBudget * cfg.TickRate,
		})
	}

	var hooks session.Hooks
	if flagVerbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "session"})
		hooks = session.Hooks{
			OnScoreUpdate: func(gameID string, score int) {
				logger.Debug("score update", "game", gameID, "score", score)
			},
			OnComplete: func(gameID string, result session.GameResult) {
				logger.Info("game finished",
					"game", gameID,
					"score", result.Score,
					"completed", result.Completed,
					"ticks", result.Ticks,
				)
			},
		}
	}

	sess := session.New(plan, hooks)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(sess, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}

	// Recap on stdout after the alt screen closes
	fmt.Printf("Session %s\n", sess.ID())
	for _, r := range sess.Results() {
		status := "finished"
		if !r.Completed {
			status = "time up"
		}
		fmt.Printf("  %-16s %6d  (%s)\n", r.GameID, r.Score, status)
	}
	fmt.Printf("  %-16s %6d\n", "TOTAL", sess.TotalScore())
}

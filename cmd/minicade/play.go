package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bitbreak/minicade/internal/content"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/games/matchup"
	"github.com/bitbreak/minicade/internal/games/rooftop"
	"github.com/bitbreak/minicade/internal/games/skyhop"
	"github.com/bitbreak/minicade/internal/games/sloperider"
	"github.com/bitbreak/minicade/internal/games/tiltball"
	"github.com/bitbreak/minicade/internal/games/trivia"
	"github.com/bitbreak/minicade/internal/platform/tui"
	"github.com/bitbreak/minicade/internal/registry"
	"github.com/bitbreak/minicade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// Rows fetched per content-driven game.
const puzzleBatchSize = 20

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up     - Jump/Flap
  A/D, arrows  - Move/Tilt
  1-4          - Answer (trivia)
  Enter        - Flip a card (matchup)
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  minicade play skyhop
  minicade play rooftop --difficulty easy
  minicade play sloperider_turbo
  minicade play trivia
  minicade play skyhop --config ./my-skyhop.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the current terminal dimensions with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// prepareGame applies per-game setup before creation: config path and
// difficulty for the config-driven runners, puzzle injection for the
// content-driven games. Content is fetched once per game start; any
// failure falls back to the embedded pack.
func prepareGame(gameID string) {
	switch {
	case strings.HasPrefix(gameID, "sloperider"):
		sloperider.SetConfigPath(flagConfig)
		sloperider.SetDifficultyPreset(flagDifficulty)
	case gameID == "skyhop":
		skyhop.SetConfigPath(flagConfig)
		skyhop.SetDifficultyPreset(flagDifficulty)
	case gameID == "rooftop":
		rooftop.SetConfigPath(flagConfig)
		rooftop.SetDifficultyPreset(flagDifficulty)
	case gameID == "tiltball":
		tiltball.SetConfigPath(flagConfig)
		tiltball.SetDifficultyPreset(flagDifficulty)
	case gameID == "trivia":
		trivia.SetPuzzles(fetchPuzzles("trivia"))
	case gameID == "matchup":
		matchup.SetPuzzles(fetchPuzzles("matchup"))
	}
}

// fetchPuzzles pulls one batch of rows for a content-driven game.
func fetchPuzzles(game string) []content.Puzzle {
	clientCfg, err := content.LoadClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return content.Fallback(game)
	}

	client := content.NewClient(clientCfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return client.FetchOrFallback(ctx, game, puzzleBatchSize)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'minicade list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Per-game setup before creation
	prepareGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// minicade is a casual minigame arcade for the terminal.
//
// Usage:
//
//	minicade list               - List available games
//	minicade play <game>        - Play a game
//	minicade menu               - Start menu to pick games interactively
//	minicade session <game>...  - Play a timed sequence of games
//	minicade serve              - Start SSH server for remote play
//	minicade scores <game>      - Show high scores for a game
//	minicade content            - Manage the puzzle content table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.minicade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/bitbreak/minicade/internal/games/juggle"
	_ "github.com/bitbreak/minicade/internal/games/matchup"
	_ "github.com/bitbreak/minicade/internal/games/rooftop"
	_ "github.com/bitbreak/minicade/internal/games/skyhop"
	_ "github.com/bitbreak/minicade/internal/games/sloperider"
	_ "github.com/bitbreak/minicade/internal/games/tiltball"
	_ "github.com/bitbreak/minicade/internal/games/trivia"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minicade",
	Short: "Minicade - A casual minigame arcade in your terminal",
	Long: `Minicade is a terminal arcade of quick, self-contained minigames:
physics runners, trivia, matching puzzles, and tilt catchers.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  session  - Play a timed sequence of games with a combined score
  serve    - Start SSH server for remote play
  scores   - View high scores
  content  - Manage the puzzle content table

Examples:
  minicade list
  minicade play skyhop
  minicade menu
  minicade session trivia tiltball skyhop --budget 60
  minicade serve --ssh :2222
  minicade scores skyhop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minicade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(contentCmd)
}

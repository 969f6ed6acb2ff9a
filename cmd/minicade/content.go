package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bitbreak/minicade/internal/content"
	"github.com/bitbreak/minicade/internal/storage"
)

var (
	flagContentAddr string
	flagContentKey  string
	flagSeedFile    string
	flagSeedReplace bool
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the puzzle content table",
	Long: `Manage the local puzzle table backing trivia and matchup.

The serve subcommand exposes the table over the same REST shape the
game client fetches from, so one arcade install can feed others:

  MINICADE_CONTENT_URL=http://host:8080 minicade play trivia

The seed subcommand loads puzzle rows from a YAML file into the table.`,
}

var contentServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local puzzle table over HTTP",
	Long: `Start an HTTP server over the local puzzle table.

If --key is set, clients must send it in the "apikey" header.

Examples:
  minicade content serve
  minicade content serve --addr :9000 --key secret`,
	Run: runContentServe,
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load puzzle rows from a YAML file",
	Long: `Load puzzle rows from a YAML file into the local table.

The file holds a list of rows in the same shape as the embedded
fallback pack:

  - game: trivia
    prompt: "Largest planet in the solar system?"
    choices: ["Saturn", "Jupiter", "Neptune", "Earth"]
    answer: 1
  - game: matchup
    prompt: "Tokyo"
    pair: "Japan"

Examples:
  minicade content seed --file pack.yaml
  minicade content seed --file pack.yaml --replace`,
	Run: runContentSeed,
}

func init() {
	contentServeCmd.Flags().StringVar(&flagContentAddr, "addr", ":8080", "HTTP listen address")
	contentServeCmd.Flags().StringVar(&flagContentKey, "key", "", "Require this api key on requests")

	contentSeedCmd.Flags().StringVar(&flagSeedFile, "file", "", "Path to a YAML puzzle pack (required)")
	contentSeedCmd.Flags().BoolVar(&flagSeedReplace, "replace", false, "Clear existing rows for each seeded game first")
	//nolint:errcheck // Flag exists, registered above
	contentSeedCmd.MarkFlagRequired("file")

	contentCmd.AddCommand(contentServeCmd)
	contentCmd.AddCommand(contentSeedCmd)
}

func runContentServe(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := content.NewServer(store, flagContentKey)

	fmt.Printf("Serving puzzle table on %s\n", flagContentAddr)
	if err := http.ListenAndServe(flagContentAddr, server.Routes()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runContentSeed(_ *cobra.Command, _ []string) {
	data, err := os.ReadFile(flagSeedFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", flagSeedFile, err)
		os.Exit(1)
	}

	var rows []content.Puzzle
	if err := yaml.Unmarshal(data, &rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse %s: %v\n", flagSeedFile, err)
		os.Exit(1)
	}

	var valid []content.Puzzle
	skipped := 0
	for _, p := range rows {
		if p.Valid() {
			valid = append(valid, p)
		} else {
			skipped++
		}
	}

	if len(valid) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no valid puzzle rows in file")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSeedReplace {
		seen := make(map[string]bool)
		for _, p := range valid {
			if seen[p.Game] {
				continue
			}
			seen[p.Game] = true
			if err := store.ClearPuzzles(p.Game); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if err := store.SavePuzzles(valid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d puzzle rows", len(valid))
	if skipped > 0 {
		fmt.Printf(" (%d invalid rows skipped)", skipped)
	}
	fmt.Println()
}

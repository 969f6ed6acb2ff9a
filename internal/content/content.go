// Package content fetches puzzle rows for content-driven games.
// Trivia and matching games consume one batch of rows per game session from a
// remote row-per-puzzle table; when the fetch fails, an embedded fallback
// dataset keeps the games playable offline.
package content

// Puzzle is a single remotely stored content row.
// Trivia games use Prompt/Choices/Answer; matching games use Prompt/Pair.
type Puzzle struct {
	ID      int64    `json:"id" yaml:"id"`
	Game    string   `json:"game" yaml:"game"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	Answer  int      `json:"answer" yaml:"answer"`
	Pair    string   `json:"pair,omitempty" yaml:"pair,omitempty"`
}

// Valid reports whether the row carries enough data for its game.
func (p Puzzle) Valid() bool {
	if p.Game == "" || p.Prompt == "" {
		return false
	}
	if len(p.Choices) > 0 {
		return p.Answer >= 0 && p.Answer < len(p.Choices)
	}
	return p.Pair != ""
}

// Package matchup implements a memory pairs game. Cards come from the
// remote content table (prompt/pair rows) with an embedded fallback
// pack; the CLI injects them before the game starts. The player flips
// two cards at a time: a match scores points plus a growing streak
// bonus, a mismatch costs a small penalty and flips back after a short
// reveal. The game completes when every pair is matched.
package matchup

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/bitbreak/minicade/internal/content"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Scoring and pacing
const (
	matchPoints     = 20
	streakBonus     = 10 // Extra points per consecutive match beyond the first
	maxStreakBonus  = 50
	mismatchPenalty = 5
	mismatchTicks   = 40 // Reveal duration before a mismatch flips back
	maxPairs        = 8  // Board cap: 8 pairs is a 4x4 grid
	gridCols        = 4
)

// Visual characters for rendering
const (
	FaceDownChar = '▒'
	cardWidth    = 14
	cardHeight   = 3
)

// Package-level puzzle injection (set by the CLI before game creation).
var injected []content.Puzzle

// SetPuzzles supplies the pair pack for the next game instance.
// Without it the embedded fallback pack is used.
func SetPuzzles(puzzles []content.Puzzle) {
	injected = puzzles
}

// card is one face on the board. Two cards share a pairID.
type card struct {
	label   string
	pairID  int64
	faceUp  bool
	matched bool
}

// Game implements the Match Up game logic.
type Game struct {
	cards     []card
	cursor    int
	first     int // Index of the first flipped card, -1 when none
	second    int // Index of the second flipped card, -1 when none
	reveal    int // Ticks left on a mismatch reveal
	score     int
	streak    int
	matched   int // Matched pairs so far
	flips     int
	gameOver  bool
	paused    bool
	config    core.RuntimeConfig
	tickCount int
}

// New creates a new Match Up game instance.
func New() *Game {
	rows := injected
	if len(rows) == 0 {
		rows = content.Fallback("matchup")
	}

	g := &Game{first: -1, second: -1}
	seen := make(map[int64]bool)
	synthetic := int64(-1)
	for _, p := range rows {
		if p.Game != "matchup" || !p.Valid() || p.Pair == "" {
			continue
		}
		// Rows without a table ID, or with a colliding one, still need
		// a distinct pair key
		id := p.ID
		if id == 0 || seen[id] {
			id = synthetic
			synthetic--
		}
		seen[id] = true
		g.cards = append(g.cards,
			card{label: p.Prompt, pairID: id},
			card{label: p.Pair, pairID: id},
		)
		if len(g.cards) >= maxPairs*2 {
			break
		}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "matchup"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Match Up"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.cursor = 0
	g.first = -1
	g.second = -1
	g.reveal = 0
	g.score = 0
	g.streak = 0
	g.matched = 0
	g.flips = 0
	g.gameOver = len(g.cards) == 0
	g.paused = false
	g.tickCount = 0

	for i := range g.cards {
		g.cards[i].faceUp = false
		g.cards[i].matched = false
	}

	// Card layout is seeded so runs are reproducible
	rng := rand.New(rand.NewSource(cfg.Seed))
	rng.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// A mismatch stays revealed for a moment, then flips back
	if g.reveal > 0 {
		g.reveal--
		if g.reveal == 0 {
			g.cards[g.first].faceUp = false
			g.cards[g.second].faceUp = false
			g.first = -1
			g.second = -1
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.flip()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor steps the cursor around the grid, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	row := g.cursor / gridCols
	col := g.cursor % gridCols

	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}

	rows := (len(g.cards) + gridCols - 1) / gridCols
	row = core.Clamp(row, 0, rows-1)
	col = core.Clamp(col, 0, gridCols-1)

	idx := row*gridCols + col
	if idx < len(g.cards) {
		g.cursor = idx
	}
}

// flip turns over the card under the cursor and settles the pair when
// it is the second one.
func (g *Game) flip() {
	c := &g.cards[g.cursor]
	if c.faceUp || c.matched {
		return
	}

	c.faceUp = true
	g.flips++

	if g.first < 0 {
		g.first = g.cursor
		return
	}
	g.second = g.cursor

	if g.cards[g.first].pairID == g.cards[g.second].pairID {
		g.cards[g.first].matched = true
		g.cards[g.second].matched = true
		g.first = -1
		g.second = -1

		g.streak++
		bonus := core.Min((g.streak-1)*streakBonus, maxStreakBonus)
		g.score += matchPoints + bonus
		g.matched++

		if g.matched*2 >= len(g.cards) {
			g.gameOver = true
		}
		return
	}

	// Mismatch: penalty, streak lost, reveal before flipping back
	g.streak = 0
	g.score = core.Max(g.score-mismatchPenalty, 0)
	g.reveal = mismatchTicks
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Pairs: %d/%d  Streak: %d ",
		g.score, g.matched, len(g.cards)/2, g.streak))

	for i, c := range g.cards {
		g.drawCard(dst, i, c)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "ALL MATCHED",
			fmt.Sprintf("Score: %d in %d flips", g.score, g.flips))
	}
}

// drawCard renders one card at its grid slot.
func (g *Game) drawCard(dst *core.Screen, idx int, c card) {
	x := 2 + (idx%gridCols)*(cardWidth+2)
	y := 2 + (idx/gridCols)*(cardHeight+1)

	rect := core.NewRect(x, y, cardWidth, cardHeight)

	if c.matched {
		dst.DrawBox(rect)
		label := truncate(c.label, cardWidth-2)
		dst.DrawTextColor(x+1+(cardWidth-2-runeLen(label))/2, y+1, label, core.ColorGreen)
	} else if c.faceUp {
		dst.DrawBox(rect)
		label := truncate(c.label, cardWidth-2)
		dst.DrawTextColor(x+1+(cardWidth-2-runeLen(label))/2, y+1, label, core.ColorBrightWhite)
	} else {
		dst.DrawRect(rect, FaceDownChar)
	}

	if idx == g.cursor && !g.gameOver {
		dst.SetColor(x-1, y+1, '▶', core.ColorBrightYellow)
	}
}

// truncate cuts a label to at most max cells. Counted in runes so
// multi-byte labels neither split mid-rune nor overflow the card face.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// runeLen is the label width in cells.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("matchup", func() registry.Game {
		return New()
	})
}

// Package trivia implements a timed multiple-choice quiz. Questions
// come from the remote content table with an embedded fallback pack;
// the CLI injects them before the game starts. Each question is worth
// more the faster it is answered: the award decays linearly from the
// maximum to a floor as the question timer runs down. Wrong answers
// and timeouts pay nothing. The game completes after the last question.
package trivia

import (
	"fmt"
	"math/rand"

	"github.com/bitbreak/minicade/internal/content"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Scoring and pacing
const (
	maxPoints       = 100 // Award for an instant answer
	minPoints       = 20  // Award floor when the timer is nearly out
	questionSeconds = 12  // Timer per question
	feedbackTicks   = 45  // Ticks the answer reveal stays on screen
)

// Package-level puzzle injection (set by the CLI before game creation).
var injected []content.Puzzle

// SetPuzzles supplies the question pack for the next game instance.
// Without it the embedded fallback pack is used.
func SetPuzzles(puzzles []content.Puzzle) {
	injected = puzzles
}

// question is one quiz entry after validation.
type question struct {
	prompt  string
	choices []string
	answer  int
}

// Game implements the Trivia game logic.
type Game struct {
	questions []question
	current   int
	timer     int // Ticks left on the current question
	feedback  int // Ticks left on the answer reveal, 0 when accepting input
	lastPick  int // Player's choice on the revealed question, -1 on timeout
	lastAward int
	score     int
	correct   int
	gameOver  bool
	paused    bool
	config    core.RuntimeConfig
	tickCount int
}

// New creates a new Trivia game instance.
func New() *Game {
	rows := injected
	if len(rows) == 0 {
		rows = content.Fallback("trivia")
	}

	qs := make([]question, 0, len(rows))
	for _, p := range rows {
		if p.Game != "trivia" || !p.Valid() {
			continue
		}
		qs = append(qs, question{
			prompt:  p.Prompt,
			choices: p.Choices,
			answer:  p.Answer,
		})
	}

	return &Game{questions: qs}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trivia"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Trivia"
}

// questionTicks returns the full timer for one question.
func (g *Game) questionTicks() int {
	return questionSeconds * g.config.TickRate
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.current = 0
	g.timer = g.questionTicks()
	g.feedback = 0
	g.lastPick = -1
	g.lastAward = 0
	g.score = 0
	g.correct = 0
	g.gameOver = len(g.questions) == 0
	g.paused = false
	g.tickCount = 0

	// Question order is seeded so runs are reproducible
	rng := rand.New(rand.NewSource(cfg.Seed))
	rng.Shuffle(len(g.questions), func(i, j int) {
		g.questions[i], g.questions[j] = g.questions[j], g.questions[i]
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

	// Answer reveal holds the board before moving on
	if g.feedback > 0 {
		g.feedback--
		if g.feedback == 0 {
			g.advance()
		}
		return core.StepResult{State: g.State()}
	}

	if pick := in.Choice(); pick >= 0 && pick < len(g.question().choices) {
		g.answer(pick)
		return core.StepResult{State: g.State()}
	}

	g.timer--
	if g.timer <= 0 {
		// Timeout pays nothing
		g.lastPick = -1
		g.lastAward = 0
		g.feedback = feedbackTicks
	}

	return core.StepResult{State: g.State()}
}

// question returns the current question.
func (g *Game) question() question {
	return g.questions[g.current]
}

// answer grades the player's pick and starts the reveal.
func (g *Game) answer(pick int) {
	g.lastPick = pick
	g.lastAward = 0

	if pick == g.question().answer {
		g.lastAward = g.award()
		g.score += g.lastAward
		g.correct++
	}

	g.feedback = feedbackTicks
}

// award returns the points for a correct answer right now: a linear
// decay from maxPoints to minPoints across the question timer.
func (g *Game) award() int {
	full := g.questionTicks()
	if full <= 0 {
		return minPoints
	}
	pts := minPoints + (maxPoints-minPoints)*g.timer/full
	return core.Clamp(pts, minPoints, maxPoints)
}

// advance moves to the next question or completes the quiz.
func (g *Game) advance() {
	g.current++
	if g.current >= len(g.questions) {
		g.gameOver = true
		return
	}
	g.timer = g.questionTicks()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Question %d/%d ", g.score, g.current+1, len(g.questions)))

	if g.gameOver {
		drawCenteredMessage(dst, "QUIZ COMPLETE",
			fmt.Sprintf("%d/%d correct  |  Score: %d", g.correct, len(g.questions), g.score))
		return
	}

	q := g.question()
	dst.DrawTextCentered(3, q.prompt)

	// Timer bar drains left to right
	full := g.questionTicks()
	if full > 0 {
		barW := dst.Width() - 8
		filled := barW * g.timer / full
		for x := 0; x < barW; x++ {
			ch := '░'
			color := core.ColorGray
			if x < filled {
				ch = '█'
				color = core.ColorBrightGreen
			}
			dst.SetColor(4+x, 5, ch, color)
		}
	}

	for i, choice := range q.choices {
		y := 8 + i*2
		line := fmt.Sprintf("[%d] %s", i+1, choice)
		color := core.ColorWhite
		if g.feedback > 0 {
			switch {
			case i == q.answer:
				color = core.ColorBrightGreen
			case i == g.lastPick:
				color = core.ColorBrightRed
			default:
				color = core.ColorGray
			}
		}
		dst.DrawTextColor(6, y, line, color)
	}

	if g.feedback > 0 {
		msg := "Time's up!"
		if g.lastPick == g.question().answer {
			msg = fmt.Sprintf("Correct! +%d", g.lastAward)
		} else if g.lastPick >= 0 {
			msg = "Wrong!"
		}
		dst.DrawTextCentered(dst.Height()-3, msg)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
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
	registry.Register("trivia", func() registry.Game {
		return New()
	})
}

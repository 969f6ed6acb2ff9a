// Package juggle implements a keep-up game. A ball bounces off the
// walls and ceiling; the player slides a paddle along the bottom to
// keep it in the air. Every save scores points scaled by a combo
// multiplier that grows with consecutive saves, and the ball speeds
// up a little each time. Dropping the ball ends the game.
//
// Unlike the config-driven runners, the tuning here is small enough
// to live in package constants.
package juggle

import (
	"fmt"

	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▬'
	BallChar   = '●'
)

// Gameplay tuning
const (
	paddleWidth   = 9
	paddleSpeed   = 2
	basePoints    = 5     // Points per save before the combo multiplier
	maxCombo      = 10    // Multiplier cap
	speedUpFactor = 1.04  // Ball speed gain per save
	maxBallSpeed  = 1.8   // Cap on each velocity component
	startVelX     = 0.55  // Initial horizontal ball speed
	startVelY     = -0.45 // Initial vertical ball speed (upward)
	aimInfluence  = 0.25  // How much the hit position bends the bounce
)

// Game implements the Juggle game logic.
type Game struct {
	paddleX   int
	ballX     float64
	ballY     float64
	ballVelX  float64
	ballVelY  float64
	score     int
	combo     int
	saves     int
	gameOver  bool
	paused    bool
	config    core.RuntimeConfig
	tickCount int
}

// New creates a new Juggle game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "juggle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Juggle"
}

// paddleY returns the row the paddle sits on.
func (g *Game) paddleY() int {
	return g.config.ScreenH - 2
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paddleX = (cfg.ScreenW - paddleWidth) / 2
	g.ballX = float64(cfg.ScreenW) / 2.0
	g.ballY = float64(cfg.ScreenH) / 3.0
	g.ballVelX = startVelX
	g.ballVelY = startVelY
	// Seed picks the opening direction so runs differ per seed
	if cfg.Seed%2 == 0 {
		g.ballVelX = -startVelX
	}
	g.score = 0
	g.combo = 0
	g.saves = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
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

	// Paddle movement, clamped to the screen
	if in.Has(core.ActionLeft) {
		g.paddleX -= paddleSpeed
	}
	if in.Has(core.ActionRight) {
		g.paddleX += paddleSpeed
	}
	g.paddleX = core.Clamp(g.paddleX, 0, g.config.ScreenW-paddleWidth)

	// Ball movement
	g.ballX += g.ballVelX
	g.ballY += g.ballVelY

	// Wall bounces
	if g.ballX < 0 {
		g.ballX = 0
		g.ballVelX = -g.ballVelX
	}
	if g.ballX > float64(g.config.ScreenW-1) {
		g.ballX = float64(g.config.ScreenW - 1)
		g.ballVelX = -g.ballVelX
	}
	if g.ballY < 1 {
		g.ballY = 1
		g.ballVelY = -g.ballVelY
	}

	// Paddle save or drop
	if int(g.ballY) >= g.paddleY() && g.ballVelY > 0 {
		bx := int(g.ballX)
		if bx >= g.paddleX && bx < g.paddleX+paddleWidth {
			g.save(bx)
		} else {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// save handles a successful paddle hit: bounce, combo, score, speedup.
func (g *Game) save(ballX int) {
	g.ballY = float64(g.paddleY() - 1)
	g.ballVelY = -g.ballVelY

	// Hitting off-center bends the ball toward that side
	center := float64(g.paddleX) + float64(paddleWidth)/2.0
	g.ballVelX += (float64(ballX) - center) * aimInfluence

	// Speed up, capped per component
	g.ballVelX = core.ClampF(g.ballVelX*speedUpFactor, -maxBallSpeed, maxBallSpeed)
	g.ballVelY = core.ClampF(g.ballVelY*speedUpFactor, -maxBallSpeed, maxBallSpeed)

	g.saves++
	if g.combo < maxCombo {
		g.combo++
	}
	g.score += basePoints * g.combo
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Ceiling
	dst.DrawHLine(0, 0, dst.Width(), '═')

	// Ball
	dst.SetColor(int(g.ballX), int(g.ballY), BallChar, core.ColorBrightYellow)

	// Paddle
	for dx := 0; dx < paddleWidth; dx++ {
		dst.SetColor(g.paddleX+dx, g.paddleY(), PaddleChar, core.ColorBrightCyan)
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Combo: x%d ", g.score, g.combo))

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "DROPPED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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
	registry.Register("juggle", func() registry.Game {
		return New()
	})
}

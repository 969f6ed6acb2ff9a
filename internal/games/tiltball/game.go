// Package tiltball implements a tilt-and-catch game. The player slides
// a tray along the bottom of the screen with momentum-based controls
// and catches gems falling from the top. Consecutive catches build a
// streak that pays a fixed bonus at every threshold; too many misses
// ends the game.
package tiltball

import (
	"fmt"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Visual characters for rendering
const (
	TrayChar   = '▀'
	GemChar    = '◆'
	GoldenChar = '★'
	MissChar   = '✗'
)

// Package-level overrides applied before game creation (set by the CLI).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game instance.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the Tilt Ball game logic.
type Game struct {
	trayX      float64 // Tray left edge
	trayVel    float64
	gems       *GemManager
	score      int
	streak     int // Consecutive catches since the last miss
	misses     int
	gameOver   bool
	paused     bool
	config     core.RuntimeConfig
	gameCfg    config.TiltBallConfig
	difficulty *config.DifficultyManager
	tickCount  int
}

// New creates a new Tilt Ball game instance.
func New() *Game {
	cfg, err := config.LoadTiltBall(configPath)
	if err != nil {
		cfg = config.DefaultTiltBallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTiltBallPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	return &Game{
		gameCfg:    cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tiltball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tilt Ball"
}

// trayY returns the row the tray sits on.
func (g *Game) trayY() int {
	return g.config.ScreenH - 2
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.trayX = float64(cfg.ScreenW-g.gameCfg.Spawning.TrayWidth) / 2.0
	g.trayVel = 0
	g.score = 0
	g.streak = 0
	g.misses = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.gems == nil {
		g.gems = NewGemManager(cfg.Seed, cfg.ScreenW, &g.gameCfg, g.difficulty)
	} else {
		g.gems.UpdateScreenWidth(cfg.ScreenW)
		g.gems.Reset(cfg.Seed)
	}
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

	// Tilt controls: accelerate while held, coast with friction when idle
	phys := g.gameCfg.Physics
	switch {
	case in.Has(core.ActionLeft):
		g.trayVel -= phys.TrayAccel
	case in.Has(core.ActionRight):
		g.trayVel += phys.TrayAccel
	default:
		g.trayVel *= phys.TrayFriction
	}
	g.trayVel = core.ClampF(g.trayVel, -phys.TrayMaxSpeed, phys.TrayMaxSpeed)

	g.trayX += g.trayVel
	maxX := float64(g.config.ScreenW - g.gameCfg.Spawning.TrayWidth)
	if g.trayX < 0 {
		g.trayX = 0
		g.trayVel = 0
	}
	if g.trayX > maxX {
		g.trayX = maxX
		g.trayVel = 0
	}

	// Advance gems and settle catches and misses
	caught, missed := g.gems.Update(g.trayRect(), g.score, g.tickCount)

	for _, gem := range caught {
		g.streak++
		points := g.gameCfg.Scoring.CatchPoints
		if gem.Golden {
			points = g.gameCfg.Scoring.GoldenPoints
		}
		g.score += points
		if g.gameCfg.Scoring.StreakEvery > 0 && g.streak%g.gameCfg.Scoring.StreakEvery == 0 {
			g.score += g.gameCfg.Scoring.StreakBonus
		}
	}

	if missed > 0 {
		g.streak = 0
		g.misses += missed
		if g.misses >= g.gameCfg.Spawning.MaxMisses {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// trayRect returns the tray's catch rectangle.
func (g *Game) trayRect() core.Rect {
	return core.NewRect(int(g.trayX), g.trayY(), g.gameCfg.Spawning.TrayWidth, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Gems
	for _, gem := range g.gems.Gems() {
		ch := GemChar
		color := core.ColorBrightCyan
		if gem.Golden {
			ch = GoldenChar
			color = core.ColorBrightYellow
		}
		dst.SetColor(gem.X, int(gem.Y), ch, color)
	}

	// Tray
	tr := g.trayRect()
	for dx := 0; dx < tr.W; dx++ {
		dst.SetColor(tr.X+dx, tr.Y, TrayChar, core.ColorBrightGreen)
	}

	// HUD: score, streak, and remaining misses
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Streak: %d ", g.score, g.streak))
	missHUD := ""
	for i := 0; i < g.gameCfg.Spawning.MaxMisses-g.misses; i++ {
		missHUD += string(MissChar)
	}
	dst.DrawTextColor(dst.Width()-len(missHUD)-2, 0, missHUD, core.ColorBrightRed)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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
	registry.Register("tiltball", func() registry.Game {
		return New()
	})
}

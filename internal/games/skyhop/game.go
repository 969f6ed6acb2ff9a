// Package skyhop implements a vertical flap runner.
// The player hops between gaps in scrolling towers; each tower passed
// scores one point.
package skyhop

import (
	"fmt"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar     = '◆'
	TowerChar      = '█'
	TowerCapTop    = '▄'
	TowerCapBottom = '▀'
	GroundChar     = '═'
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

// Game implements the Sky Hop game logic.
type Game struct {
	playerY    float64 // Player vertical position (top of hitbox)
	playerVel  float64 // Player vertical velocity
	towers     *TowerManager
	score      int
	gameOver   bool
	paused     bool
	config     core.RuntimeConfig
	gameCfg    config.SkyHopConfig
	difficulty *config.DifficultyManager
	tickCount  int
}

// New creates a new Sky Hop game instance.
func New() *Game {
	cfg, err := config.LoadSkyHop(configPath)
	if err != nil {
		cfg = config.DefaultSkyHopConfig()
	}
	if difficultyPreset != "" {
		config.ApplySkyHopPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	return &Game{
		gameCfg:    cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.playerY = float64(cfg.ScreenH) / 2.0
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.towers == nil {
		g.towers = NewTowerManager(cfg.Seed, cfg.ScreenW, cfg.ScreenH, &g.gameCfg, g.difficulty)
	} else {
		g.towers.UpdateScreenSize(cfg.ScreenW, cfg.ScreenH)
		g.towers.Reset(cfg.Seed)
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

	// Handle flap input
	if in.Has(core.ActionJump) {
		g.playerVel = g.gameCfg.Physics.FlapImpulse
	}

	// Apply physics
	g.playerVel += g.gameCfg.Physics.Gravity
	if g.playerVel > g.gameCfg.Physics.MaxFallSpeed {
		g.playerVel = g.gameCfg.Physics.MaxFallSpeed
	}
	g.playerY += g.playerVel

	// Update towers and check for scoring
	passed := g.towers.Update(g.gameCfg.Player.X+g.gameCfg.Player.Width, g.score, g.tickCount)
	g.score += passed

	// Hit top of screen
	if g.playerY < 0 {
		g.playerY = 0
		g.gameOver = true
	}

	// Hit bottom of screen (ground)
	groundY := g.config.ScreenH - 2 // Leave space for ground line
	if int(g.playerY)+g.gameCfg.Player.Height >= groundY {
		g.playerY = float64(groundY - g.gameCfg.Player.Height)
		g.gameOver = true
	}

	// Hit a tower
	if g.towers.CheckCollision(g.playerRect(), g.config.ScreenH) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.gameCfg.Player.X, int(g.playerY), g.gameCfg.Player.Width, g.gameCfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw ground
	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	// Draw towers
	for _, tw := range g.towers.Towers() {
		g.drawTower(dst, tw)
	}

	// Draw player
	playerY := int(g.playerY)
	for dy := 0; dy < g.gameCfg.Player.Height; dy++ {
		for dx := 0; dx < g.gameCfg.Player.Width; dx++ {
			dst.SetColor(g.gameCfg.Player.X+dx, playerY+dy, PlayerChar, core.ColorBrightYellow)
		}
	}

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawTower renders a single tower to the screen.
func (g *Game) drawTower(dst *core.Screen, tw Tower) {
	screenH := dst.Height() - 1 // Account for ground
	left := tw.Left()
	gapTop := tw.GapTop()

	// Top column (from top of screen to gap)
	for y := 0; y < gapTop; y++ {
		for x := 0; x < tw.W; x++ {
			dst.SetColor(left+x, y, TowerChar, core.ColorGreen)
		}
	}
	if gapTop > 0 {
		for x := 0; x < tw.W; x++ {
			dst.SetColor(left+x, gapTop-1, TowerCapTop, core.ColorGreen)
		}
	}

	// Bottom column (from below gap to ground)
	bottomY := gapTop + tw.GapHeight
	for y := bottomY; y < screenH; y++ {
		for x := 0; x < tw.W; x++ {
			dst.SetColor(left+x, y, TowerChar, core.ColorGreen)
		}
	}
	if bottomY < screenH {
		for x := 0; x < tw.W; x++ {
			dst.SetColor(left+x, bottomY, TowerCapBottom, core.ColorGreen)
		}
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
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
}

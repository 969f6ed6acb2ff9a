// Package rooftop implements a horizontal runner across city rooftops.
// The player jumps over vents and ducks under patrol drones while the
// scroll speed ramps up; score grows with distance survived.
package rooftop

import (
	"fmt"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	VentChar   = '▓'
	DroneChar  = '▼'
	GroundChar = '─'
)

// Ticks the player stays ducked after a duck input.
const duckDuration = 20

// Distance ticks per score point.
const ticksPerPoint = 10

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

// Game implements the Rooftop Run game logic.
type Game struct {
	playerY    float64 // Player vertical position (top of hitbox)
	playerVel  float64
	onGround   bool
	duckTimer  int // Ticks remaining in the ducked stance
	obstacles  *ObstacleManager
	score      int
	gameOver   bool
	paused     bool
	config     core.RuntimeConfig
	gameCfg    config.RooftopConfig
	difficulty *config.DifficultyManager
	tickCount  int
}

// New creates a new Rooftop Run game instance.
func New() *Game {
	cfg, err := config.LoadRooftop(configPath)
	if err != nil {
		cfg = config.DefaultRooftopConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRooftopPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	return &Game{
		gameCfg:    cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rooftop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rooftop Run"
}

// groundY returns the y-coordinate of the rooftop surface.
func (g *Game) groundY() int {
	return g.config.ScreenH - g.gameCfg.Player.GroundOffset
}

// playerHeight returns the current hitbox height, reduced while ducking.
func (g *Game) playerHeight() int {
	if g.duckTimer > 0 {
		return g.gameCfg.Player.DuckHeight
	}
	return g.gameCfg.Player.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.playerY = float64(g.groundY() - g.gameCfg.Player.Height)
	g.playerVel = 0
	g.onGround = true
	g.duckTimer = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(cfg.Seed, cfg.ScreenW, &g.gameCfg, g.difficulty)
	} else {
		g.obstacles.UpdateScreenWidth(cfg.ScreenW)
		g.obstacles.Reset(cfg.Seed)
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

	// Jump only from the ground, duck only on the ground
	if in.Has(core.ActionJump) && g.onGround {
		g.playerVel = g.gameCfg.Physics.JumpImpulse
		g.onGround = false
		g.duckTimer = 0
	}
	if in.Has(core.ActionDown) && g.onGround {
		g.duckTimer = duckDuration
	}
	if g.duckTimer > 0 {
		g.duckTimer--
	}

	// Apply gravity while airborne
	if !g.onGround {
		g.playerVel += g.gameCfg.Physics.Gravity
		if g.playerVel > g.gameCfg.Physics.MaxFallSpeed {
			g.playerVel = g.gameCfg.Physics.MaxFallSpeed
		}
		g.playerY += g.playerVel

		floorY := float64(g.groundY() - g.gameCfg.Player.Height)
		if g.playerY >= floorY {
			g.playerY = floorY
			g.playerVel = 0
			g.onGround = true
		}
	}

	// Scroll world and accumulate distance score
	g.obstacles.Update(g.score, g.tickCount, g.groundY())
	if g.tickCount%ticksPerPoint == 0 {
		g.score++
	}

	// Collisions end the run
	if g.obstacles.CheckCollision(g.playerRect()) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's current collision rectangle.
// Ducking lowers the top edge so drones pass overhead.
func (g *Game) playerRect() core.Rect {
	h := g.playerHeight()
	top := g.groundY() - h
	if !g.onGround {
		top = int(g.playerY)
		h = g.gameCfg.Player.Height
	}
	return core.NewRect(g.gameCfg.Player.X, top, g.gameCfg.Player.Width, h)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Rooftop surface
	dst.DrawHLine(0, g.groundY(), dst.Width(), GroundChar)

	// Obstacles
	for _, o := range g.obstacles.Obstacles() {
		ch := VentChar
		color := core.ColorGray
		if o.Drone {
			ch = DroneChar
			color = core.ColorBrightRed
		}
		for dy := 0; dy < o.H; dy++ {
			for dx := 0; dx < o.W; dx++ {
				dst.SetColor(o.X+dx, o.Y+dy, ch, color)
			}
		}
	}

	// Player
	r := g.playerRect()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			dst.SetColor(r.X+dx, r.Y+dy, PlayerChar, core.ColorBrightCyan)
		}
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", g.score))

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Distance: %d  |  Press R to restart", g.score))
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
	registry.Register("rooftop", func() registry.Game {
		return New()
	})
}

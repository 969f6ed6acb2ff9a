// Package sloperider implements a downhill runner on a diagonal slope.
// The player rides the slope surface at a fixed column and jumps over
// rocks scrolling uphill toward them. Score grows with distance, plus
// a bonus for every rock cleared.
//
// The package registers five variants (classic, ice, night, storm,
// turbo) that share the game logic and differ only in tuned physics
// and obstacle constants.
package sloperider

import (
	"fmt"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '◉'
	RockChar   = '▲'
	SlopeChar  = '╲'
	SnowChar   = '·'
)

// Distance ticks per score point.
const ticksPerPoint = 8

// Bonus points for clearing a rock.
const rockBonus = 5

// Rows of slope visible above the screen top at x=0.
const slopeTopY = 4

// Package-level overrides applied before game creation (set by the CLI).
// They apply to every variant in the family.
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

// Game implements the Slope Rider game logic, parameterized by variant.
type Game struct {
	id         string
	title      string
	playerOff  float64 // Height above the slope surface (0 = riding it)
	playerVel  float64
	onSlope    bool
	rocks      *RockManager
	score      int
	gameOver   bool
	paused     bool
	config     core.RuntimeConfig
	gameCfg    config.SlopeRiderConfig
	difficulty *config.DifficultyManager
	tickCount  int
	accent     core.Color // Variant accent color for slope and HUD
}

// newGame creates a game instance for one variant. The tune function
// adjusts the loaded config with the variant's constants.
func newGame(id, title string, accent core.Color, tune func(*config.SlopeRiderConfig)) *Game {
	cfg, err := config.LoadSlopeRider(configPath)
	if err != nil {
		cfg = config.DefaultSlopeRiderConfig()
	}
	if tune != nil {
		tune(&cfg)
	}
	if difficultyPreset != "" {
		config.ApplySlopeRiderPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	return &Game{
		id:         id,
		title:      title,
		accent:     accent,
		gameCfg:    cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// New creates the classic Slope Rider variant.
func New() *Game {
	return newGame("sloperider", "Slope Rider", core.ColorWhite, nil)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// slopeY returns the y-coordinate of the slope surface at column x.
func (g *Game) slopeY(x int) int {
	drop := g.gameCfg.Physics.SlopeDrop
	if drop < 1 {
		drop = 1
	}
	return slopeTopY + x/drop
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.playerOff = 0
	g.playerVel = 0
	g.onSlope = true
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.rocks == nil {
		g.rocks = NewRockManager(cfg.Seed, cfg.ScreenW, &g.gameCfg, g.difficulty)
	} else {
		g.rocks.UpdateScreenWidth(cfg.ScreenW)
		g.rocks.Reset(cfg.Seed)
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

	// Jump only while riding the slope
	if in.Has(core.ActionJump) && g.onSlope {
		g.playerVel = g.gameCfg.Physics.JumpImpulse
		g.onSlope = false
	}

	// Vertical physics relative to the slope surface: offset grows
	// upward, gravity pulls it back to zero
	if !g.onSlope {
		g.playerVel += g.gameCfg.Physics.Gravity
		if g.playerVel > g.gameCfg.Physics.MaxFallSpeed {
			g.playerVel = g.gameCfg.Physics.MaxFallSpeed
		}
		g.playerOff -= g.playerVel

		if g.playerOff <= 0 {
			g.playerOff = 0
			g.playerVel = 0
			g.onSlope = true
		}
	}

	// Scroll rocks uphill and score passes
	passed := g.rocks.Update(g.gameCfg.Player.X, g.score, g.tickCount)
	g.score += passed * rockBonus

	if g.tickCount%ticksPerPoint == 0 {
		g.score++
	}

	if g.rocks.CheckCollision(g.playerRect(), g.slopeY) {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's collision rectangle. The player sits
// on the slope surface at their column, lifted by the jump offset.
func (g *Game) playerRect() core.Rect {
	px := g.gameCfg.Player.X
	surface := g.slopeY(px)
	top := surface - g.gameCfg.Player.Height - int(g.playerOff)
	return core.NewRect(px, top, g.gameCfg.Player.Width, g.gameCfg.Player.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Slope surface and the snowpack under it
	for x := 0; x < dst.Width(); x++ {
		sy := g.slopeY(x)
		dst.SetColor(x, sy, SlopeChar, g.accent)
		for y := sy + 2; y < dst.Height(); y += 3 {
			dst.Set(x, y, SnowChar)
		}
	}

	// Rocks sit on the slope surface
	for _, r := range g.rocks.Rocks() {
		rect := r.Rect(g.slopeY)
		for dy := 0; dy < rect.H; dy++ {
			for dx := 0; dx < rect.W; dx++ {
				dst.SetColor(rect.X+dx, rect.Y+dy, RockChar, core.ColorRed)
			}
		}
	}

	// Player
	pr := g.playerRect()
	for dy := 0; dy < pr.H; dy++ {
		for dx := 0; dx < pr.W; dx++ {
			dst.SetColor(pr.X+dx, pr.Y+dy, PlayerChar, core.ColorBrightYellow)
		}
	}

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" %s  Score: %d ", g.title, g.score), g.accent)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "WIPEOUT", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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

package skyhop

import (
	"testing"

	"github.com/bitbreak/minicade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, the game produces identical results
	cfg := testConfig(12345)

	// Flap every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount
	}

	state1, ticks1 := run()
	state2, ticks2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if ticks1 != ticks2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", ticks1, ticks2)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testConfig(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestGameFlapPhysics(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	initialY := g.playerY

	flap := core.NewInputFrame()
	flap.Set(core.ActionJump)
	g.Step(flap)

	// Player should have moved up (negative Y direction)
	if g.playerY >= initialY {
		t.Errorf("Flap should move player up, was %f, now %f", initialY, g.playerY)
	}
	if g.playerVel >= 0 {
		t.Errorf("Flap velocity should be negative, got %f", g.playerVel)
	}
}

func TestGameGravity(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.playerY = 10
	g.playerVel = 0

	g.Step(core.NewInputFrame())

	if g.playerY <= 10 {
		t.Errorf("Gravity should pull player down, Y is still %f", g.playerY)
	}
	if g.playerVel <= 0 {
		t.Errorf("Velocity should be positive after gravity, got %f", g.playerVel)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Error("Game should be paused")
	}

	yBefore := g.playerY
	g.Step(core.NewInputFrame())

	// Physics should not update while paused
	if g.playerY != yBefore {
		t.Errorf("Player position should not change while paused, was %f, now %f", yBefore, g.playerY)
	}

	g.Step(pause)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestGameOverOnGround(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	// Force player to hit the ground
	g.playerY = float64(cfg.ScreenH - 1)
	g.playerVel = 10

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over when player hits ground")
	}
}

func TestTowerCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Manually create a tower right at the player, gap at the top
	g.towers.towers = append(g.towers.towers, Tower{
		X:         float64(g.gameCfg.Player.X - 1),
		W:         5,
		GapHeight: 5,
	})

	// Position player to collide with the bottom tower section
	g.playerY = 15

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over when player hits tower")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Ground is drawn at the bottom
	groundY := cfg.ScreenH - 1
	if screen.Get(0, groundY) != GroundChar {
		t.Errorf("Ground should be drawn at bottom, got %q", screen.Get(0, groundY))
	}
}

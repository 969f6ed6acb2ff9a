package rooftop

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
	cfg := testConfig(777)

	// Jump every 20 ticks, duck every 35
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
		if i%35 == 0 {
			inputSequence[i].Set(core.ActionDown)
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

	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		if i%12 == 0 {
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
	if !g.onGround {
		t.Error("Reset should put player back on the ground")
	}
	if g.duckTimer != 0 {
		t.Errorf("Reset should clear duck timer, got %d", g.duckTimer)
	}
}

func TestJumpFromGround(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if g.onGround {
		t.Error("Jump should leave the ground")
	}
	if g.playerVel >= 0 {
		t.Errorf("Jump velocity should be negative, got %f", g.playerVel)
	}

	// A second jump mid-air must be ignored
	velBefore := g.playerVel
	g.Step(jump)
	if g.playerVel < velBefore {
		t.Error("Air jump should not add impulse")
	}
}

func TestJumpLandsBack(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	for i := 0; i < 200 && !g.onGround; i++ {
		g.Step(core.NewInputFrame())
		if g.gameOver {
			t.Fatal("Game ended mid-jump with no obstacle in reach")
		}
	}

	if !g.onGround {
		t.Error("Player should land back on the ground")
	}
	if g.playerVel != 0 {
		t.Errorf("Landing should zero velocity, got %f", g.playerVel)
	}
}

func TestDuckShrinksHitbox(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	standing := g.playerRect()

	duck := core.NewInputFrame()
	duck.Set(core.ActionDown)
	g.Step(duck)

	ducked := g.playerRect()

	if ducked.H >= standing.H {
		t.Errorf("Duck should shrink hitbox height, standing=%d ducked=%d", standing.H, ducked.H)
	}
	// Bottom edge stays on the ground
	if ducked.Y+ducked.H != standing.Y+standing.H {
		t.Error("Duck should keep the player's feet on the ground")
	}
}

func TestDuckExpires(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	duck := core.NewInputFrame()
	duck.Set(core.ActionDown)
	g.Step(duck)

	for i := 0; i < duckDuration+1; i++ {
		g.Step(core.NewInputFrame())
		if g.gameOver {
			t.Fatal("Game ended while waiting out the duck timer")
		}
	}

	if g.playerHeight() != g.gameCfg.Player.Height {
		t.Errorf("Duck should expire after %d ticks, height still %d", duckDuration, g.playerHeight())
	}
}

func TestDistanceScoring(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < ticksPerPoint*3 && !g.gameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.gameOver {
		t.Skip("Obstacle spawned within the scoring window for this seed")
	}
	if g.score != 3 {
		t.Errorf("Expected 3 distance points after %d ticks, got %d", ticksPerPoint*3, g.score)
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

	scoreBefore := g.score
	ticksBefore := g.tickCount
	g.Step(core.NewInputFrame())

	if g.score != scoreBefore || g.tickCount != ticksBefore {
		t.Error("Game should not advance while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestVentCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Place a vent directly on the player
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		X: g.gameCfg.Player.X,
		Y: g.groundY() - 2,
		W: 3,
		H: 2,
	})

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over when player hits a vent")
	}
}

func TestDroneClearsDuckedPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Drone at standing head height, wide enough to stay overlapped for a tick
	drone := Obstacle{
		X:     g.gameCfg.Player.X,
		Y:     g.groundY() - g.gameCfg.Player.Height,
		W:     10,
		H:     1,
		Drone: true,
	}
	g.obstacles.obstacles = append(g.obstacles.obstacles, drone)

	duck := core.NewInputFrame()
	duck.Set(core.ActionDown)
	result := g.Step(duck)

	if result.State.GameOver {
		t.Error("Ducked player should pass under a drone")
	}
}

func TestDroneHitsStandingPlayer(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		X:     g.gameCfg.Player.X,
		Y:     g.groundY() - g.gameCfg.Player.Height,
		W:     10,
		H:     1,
		Drone: true,
	})

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Standing player should collide with a drone")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if screen.Get(0, g.groundY()) != GroundChar {
		t.Errorf("Rooftop surface should be drawn, got %q", screen.Get(0, g.groundY()))
	}
}

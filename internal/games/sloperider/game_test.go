package sloperider

import (
	"testing"

	"github.com/bitbreak/minicade/internal/core"
	"github.com/bitbreak/minicade/internal/registry"
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
	cfg := testConfig(9001)

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%18 == 0 {
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

	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
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
	if !g.onSlope {
		t.Error("Reset should put player back on the slope")
	}
}

func TestSlopeSurface(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// The slope descends monotonically left to right
	prev := g.slopeY(0)
	for x := 1; x < 80; x++ {
		cur := g.slopeY(x)
		if cur < prev {
			t.Fatalf("Slope should never rise, slopeY(%d)=%d < slopeY(%d)=%d", x, cur, x-1, prev)
		}
		prev = cur
	}

	drop := g.gameCfg.Physics.SlopeDrop
	if g.slopeY(drop*3)-g.slopeY(0) != 3 {
		t.Errorf("Slope should drop one row every %d columns", drop)
	}
}

func TestJumpAndLand(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if g.onSlope {
		t.Error("Jump should leave the slope")
	}
	if g.playerOff <= 0 {
		t.Errorf("Jump should lift the player above the surface, offset %f", g.playerOff)
	}

	// Air jumps add nothing: gravity keeps decaying the velocity
	velBefore := g.playerVel
	g.Step(jump)
	if g.playerVel <= velBefore {
		t.Error("Air jump should not reapply the impulse")
	}

	for i := 0; i < 200 && !g.onSlope; i++ {
		g.Step(core.NewInputFrame())
		if g.gameOver {
			t.Fatal("Game ended mid-jump with no rock in reach")
		}
	}

	if !g.onSlope {
		t.Error("Player should land back on the slope")
	}
	if g.playerOff != 0 {
		t.Errorf("Landing should zero the offset, got %f", g.playerOff)
	}
}

func TestDistanceAndPassScoring(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < ticksPerPoint*2 && !g.gameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.gameOver {
		t.Skip("Rock spawned within the scoring window for this seed")
	}
	if g.score != 2 {
		t.Errorf("Expected 2 distance points after %d ticks, got %d", ticksPerPoint*2, g.score)
	}

	// A rock scrolling past the player column awards the pass bonus
	before := g.score
	g.rocks.rocks = append(g.rocks.rocks, Rock{X: g.gameCfg.Player.X - 10, W: 2, H: 1})
	g.Step(core.NewInputFrame())

	gained := g.score - before
	if gained < rockBonus {
		t.Errorf("Passing a rock should award at least %d points, gained %d", rockBonus, gained)
	}
}

func TestRockCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Rock directly at the player column, tall enough to hit a grounded rider
	g.rocks.rocks = append(g.rocks.rocks, Rock{
		X: g.gameCfg.Player.X,
		W: 4,
		H: g.gameCfg.Player.Height + 1,
	})

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("Game should be over when the rider hits a rock")
	}
}

func TestJumpClearsRock(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Small rock at the player column
	g.rocks.rocks = append(g.rocks.rocks, Rock{
		X: g.gameCfg.Player.X + 2,
		W: 2,
		H: 1,
	})

	// Lift the player well above it
	g.onSlope = false
	g.playerOff = 6
	g.playerVel = 0

	result := g.Step(core.NewInputFrame())

	if result.State.GameOver {
		t.Error("Airborne rider should clear a small rock")
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

	ticksBefore := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != ticksBefore {
		t.Error("Game should not advance while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestVariantsRegistered(t *testing.T) {
	ids := []string{
		"sloperider",
		"sloperider_ice",
		"sloperider_night",
		"sloperider_storm",
		"sloperider_turbo",
	}
	for _, id := range ids {
		if !registry.Exists(id) {
			t.Errorf("Variant %q should be registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Variant reports ID %q, want %q", g.ID(), id)
		}
	}
}

func TestVariantTuning(t *testing.T) {
	base := New()
	ice := NewIce()
	turbo := NewTurbo()

	if ice.gameCfg.Physics.BaseSpeed <= base.gameCfg.Physics.BaseSpeed {
		t.Error("Ice variant should scroll faster than classic")
	}
	if ice.gameCfg.Physics.Gravity >= base.gameCfg.Physics.Gravity {
		t.Error("Ice variant should have floatier gravity")
	}
	if turbo.gameCfg.Physics.BaseSpeed <= ice.gameCfg.Physics.BaseSpeed {
		t.Error("Turbo variant should be the fastest")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// The slope surface is drawn across the screen
	if screen.Get(0, g.slopeY(0)) != SlopeChar {
		t.Errorf("Slope should be drawn at column 0, got %q", screen.Get(0, g.slopeY(0)))
	}
	mid := cfg.ScreenW / 2
	if screen.Get(mid, g.slopeY(mid)) != SlopeChar {
		t.Errorf("Slope should be drawn at column %d", mid)
	}
}

package skyhop

import (
	"testing"

	"github.com/bitbreak/minicade/internal/config"
)

func newTestTowers(seed int64) *TowerManager {
	cfg := config.DefaultSkyHopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewTowerManager(seed, 80, 24, &cfg, diff)
}

func TestTowerWidthVaries(t *testing.T) {
	tm := newTestTowers(7)

	for i := 0; i < 50; i++ {
		tm.spawn(0, i)
	}

	base := tm.cfg.Obstacles.TowerWidth
	widths := make(map[int]bool)
	for _, tw := range tm.Towers() {
		if tw.W < base-1 || tw.W > base+1 {
			t.Errorf("Tower width %d outside [%d, %d]", tw.W, base-1, base+1)
		}
		if tw.W < 2 {
			t.Errorf("Tower width should never drop below 2, got %d", tw.W)
		}
		widths[tw.W] = true
	}
	if len(widths) < 2 {
		t.Errorf("Tower widths should vary across spawns, all %d towers share one width", len(tm.Towers()))
	}
}

func TestGapPlacementChains(t *testing.T) {
	tm := newTestTowers(3)

	for i := 0; i < 30; i++ {
		tm.spawn(0, i)
	}

	minTop := tm.cfg.Obstacles.TopMargin
	prev := -1
	for _, tw := range tm.Towers() {
		top := tw.GapTop()
		maxTop := tm.screenH - tm.cfg.Obstacles.BottomMargin - tw.GapHeight
		if top < minTop || top > maxTop {
			t.Errorf("Gap top %d outside margins [%d, %d]", top, minTop, maxTop)
		}

		center := top + tw.GapHeight/2
		if prev >= 0 {
			jump := center - prev
			if jump < 0 {
				jump = -jump
			}
			// Clamping against a narrower gap can add a couple of rows
			if jump > tw.GapHeight+gapReach+2 {
				t.Errorf("Gap center jumped %d rows from the previous tower, max %d",
					jump, tw.GapHeight+gapReach+2)
			}
		}
		prev = center
	}
}

func TestGapDriftFollowsDifficulty(t *testing.T) {
	tm := newTestTowers(5)

	tm.spawn(0, 0)
	if d := tm.towers[0].drift; d != 0 {
		t.Errorf("Towers should hold still before the difficulty curve starts, drift %f", d)
	}

	// Past the score ceiling the level is maxed
	tm.spawn(50, 3000)
	d := tm.towers[1].drift
	if d == 0 {
		t.Error("Towers should drift at max difficulty")
	}
	if d > maxDrift || d < -maxDrift {
		t.Errorf("Drift magnitude should cap at %f, got %f", maxDrift, d)
	}
}

func TestGapDriftBouncesOffMargins(t *testing.T) {
	tm := newTestTowers(1)
	tm.towers = append(tm.towers, Tower{
		X:         60,
		W:         5,
		GapHeight: 8,
		gapTop:    4,
		drift:     -0.5,
	})

	minTop := float64(tm.cfg.Obstacles.TopMargin)
	maxTop := float64(tm.screenH - tm.cfg.Obstacles.BottomMargin - 8)
	flipped := false
	for i := 0; i < 60; i++ {
		tm.Update(0, 0, i+1)
		tw := tm.towers[0]
		if tw.gapTop < minTop || tw.gapTop > maxTop {
			t.Fatalf("Gap top %f escaped margins [%f, %f]", tw.gapTop, minTop, maxTop)
		}
		if tw.drift > 0 {
			flipped = true
		}
	}
	if !flipped {
		t.Error("Drift should reverse at the top margin")
	}
}

func TestTinyScreenPinsGap(t *testing.T) {
	cfg := config.DefaultSkyHopConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	tm := NewTowerManager(1, 10, 4, &cfg, diff)

	// Margins plus any gap exceed four rows; the gap pins to the top margin
	for i := 0; i < 5; i++ {
		tm.spawn(0, i)
	}
	for _, tw := range tm.Towers() {
		if tw.GapTop() != cfg.Obstacles.TopMargin {
			t.Errorf("Tiny screen should pin the gap top at %d, got %d",
				cfg.Obstacles.TopMargin, tw.GapTop())
		}
	}
}

func TestTowersScrollAndExpire(t *testing.T) {
	tm := newTestTowers(9)

	tm.Update(12, 0, 1)
	if len(tm.Towers()) != 1 {
		t.Fatalf("First update should spawn a tower, got %d", len(tm.Towers()))
	}
	startX := tm.Towers()[0].X

	tm.Update(12, 0, 2)
	if tm.Towers()[0].X >= startX {
		t.Errorf("Towers should scroll left, was %f now %f", startX, tm.Towers()[0].X)
	}

	// Scroll far enough and the tower is dropped after passing the player
	passed := 0
	for i := 3; i <= 300; i++ {
		passed += tm.Update(12, 0, i)
	}
	if passed < 1 {
		t.Error("Scrolling past the player should count as passed")
	}
	for _, tw := range tm.Towers() {
		if tw.Left()+tw.W <= 0 {
			t.Errorf("Off-screen tower at %d should have been dropped", tw.Left())
		}
	}
}

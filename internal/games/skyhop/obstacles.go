package skyhop

import (
	"math/rand"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
)

// Gap drift in rows per tick. Fresh towers hold still until the
// difficulty curve starts climbing, then sway faster as it does.
const (
	baseDrift = 0.02
	maxDrift  = 0.08
)

// Max rows a gap center can jump from the previous tower's, beyond the
// gap height itself. Keeps every transition reachable with one flap.
const gapReach = 6

// Tower is one scrolling obstacle: a column pair with a passable gap
// between them. Position and gap top are fractional so slow scroll
// speeds and gentle drift still accumulate every tick.
type Tower struct {
	X         float64
	W         int
	GapHeight int
	Passed    bool // Player has cleared the right edge, scored once

	gapTop float64
	drift  float64 // Rows per tick, negative drifts up
}

// Left returns the column of the tower's left edge.
func (t Tower) Left() int {
	return int(t.X)
}

// GapTop returns the first passable row.
func (t Tower) GapTop() int {
	return int(t.gapTop)
}

// TopRect is the collision box of the upper column.
func (t Tower) TopRect() core.Rect {
	return core.NewRect(t.Left(), 0, t.W, t.GapTop())
}

// BottomRect is the collision box of the lower column.
func (t Tower) BottomRect(screenH int) core.Rect {
	bottom := t.GapTop() + t.GapHeight
	return core.NewRect(t.Left(), bottom, t.W, screenH-bottom)
}

// TowerManager owns the scrolling tower field: spawn cadence, movement,
// gap drift, and cleanup.
type TowerManager struct {
	towers     []Tower
	rng        *rand.Rand
	screenW    int
	screenH    int
	nextGap    float64 // Scroll distance left until the next spawn
	lastCenter int     // Gap center of the most recent spawn
	cfg        *config.SkyHopConfig
	difficulty *config.DifficultyManager
}

// NewTowerManager creates a new tower manager with the given RNG seed.
func NewTowerManager(seed int64, screenW, screenH int, cfg *config.SkyHopConfig, diff *config.DifficultyManager) *TowerManager {
	tm := &TowerManager{
		towers:     make([]Tower, 0, 8),
		screenW:    screenW,
		screenH:    screenH,
		cfg:        cfg,
		difficulty: diff,
	}
	tm.Reset(seed)
	return tm
}

// Reset clears all towers and resets the RNG. The first tower spawns on
// the next Update; gap chaining restarts from mid-screen.
func (tm *TowerManager) Reset(seed int64) {
	tm.towers = tm.towers[:0]
	tm.rng = rand.New(rand.NewSource(seed))
	tm.nextGap = 0
	tm.lastCenter = tm.screenH / 2
}

// UpdateScreenSize updates the screen dimensions.
func (tm *TowerManager) UpdateScreenSize(screenW, screenH int) {
	tm.screenW = screenW
	tm.screenH = screenH
}

// Update scrolls the field by one tick: towers move left at the
// difficulty-scaled speed, gaps drift between the margins, off-screen
// towers are dropped, and a new tower spawns when the scroll distance
// since the last one reaches the spacing curve. Returns the number of
// towers the player passed this tick.
func (tm *TowerManager) Update(playerX, score, ticks int) int {
	passed := 0

	speed := tm.difficulty.Speed(tm.cfg.Physics.BaseSpeed, score, ticks)
	minTop := tm.cfg.Obstacles.TopMargin

	for i := range tm.towers {
		t := &tm.towers[i]
		t.X -= speed

		// Sway the gap, bouncing off the margins
		t.gapTop += t.drift
		maxTop := tm.screenH - tm.cfg.Obstacles.BottomMargin - t.GapHeight
		if maxTop < minTop {
			maxTop = minTop
		}
		if t.gapTop < float64(minTop) {
			t.gapTop = float64(minTop)
			t.drift = -t.drift
		} else if t.gapTop > float64(maxTop) {
			t.gapTop = float64(maxTop)
			t.drift = -t.drift
		}

		if !t.Passed && t.Left()+t.W < playerX {
			t.Passed = true
			passed++
		}
	}

	live := tm.towers[:0]
	for _, t := range tm.towers {
		if t.Left()+t.W > 0 {
			live = append(live, t)
		}
	}
	tm.towers = live

	tm.nextGap -= speed
	if tm.nextGap <= 0 {
		tm.spawn(score, ticks)
		tm.nextGap = float64(tm.difficulty.Spacing(tm.cfg.Obstacles.TowerSpacing, score, ticks))
	}

	return passed
}

// spawn creates a tower at the right edge. Gap height and width vary
// per tower; the gap center is chained to the previous tower's so the
// path never demands an impossible climb.
func (tm *TowerManager) spawn(score, ticks int) {
	maxGap := tm.difficulty.GapSize(tm.cfg.Obstacles.MaxGapSize, score, ticks)
	minGap := tm.cfg.Obstacles.MinGapSize
	if maxGap < minGap {
		maxGap = minGap
	}
	gapHeight := minGap
	if maxGap > minGap {
		gapHeight = minGap + tm.rng.Intn(maxGap-minGap+1)
	}

	width := tm.cfg.Obstacles.TowerWidth + tm.rng.Intn(3) - 1
	if width < 2 {
		width = 2
	}

	reach := gapHeight + gapReach
	center := tm.lastCenter + tm.rng.Intn(2*reach+1) - reach

	minTop := tm.cfg.Obstacles.TopMargin
	maxTop := tm.screenH - tm.cfg.Obstacles.BottomMargin - gapHeight
	if maxTop < minTop {
		maxTop = minTop // Tiny screens pin the gap to the top margin
	}
	top := core.Clamp(center-gapHeight/2, minTop, maxTop)
	tm.lastCenter = top + gapHeight/2

	drift := 0.0
	if level := tm.difficulty.Level(score, ticks); level > 0 {
		drift = baseDrift + level*(maxDrift-baseDrift)
		if tm.rng.Intn(2) == 0 {
			drift = -drift
		}
	}

	tm.towers = append(tm.towers, Tower{
		X:         float64(tm.screenW),
		W:         width,
		GapHeight: gapHeight,
		gapTop:    float64(top),
		drift:     drift,
	})
}

// Towers returns the current list of towers.
func (tm *TowerManager) Towers() []Tower {
	return tm.towers
}

// CheckCollision tests if the given rectangle hits any tower column.
func (tm *TowerManager) CheckCollision(playerRect core.Rect, screenH int) bool {
	for _, t := range tm.towers {
		if playerRect.Intersects(t.TopRect()) || playerRect.Intersects(t.BottomRect(screenH)) {
			return true
		}
	}
	return false
}

package sloperider

import (
	"math/rand"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
)

// Rock is a hazard resting on the slope surface. Its vertical position
// follows the slope, so only the column and size are stored.
type Rock struct {
	X      int
	W      int
	H      int
	Passed bool // Whether the player has cleared this rock (for scoring)
}

// Rect returns the rock's collision rectangle, given the slope surface
// function. The rock stands on the surface at its left edge.
func (r Rock) Rect(slopeY func(int) int) core.Rect {
	surface := slopeY(r.X)
	return core.NewRect(r.X, surface-r.H, r.W, r.H)
}

// RockManager handles spawning, movement, and removal of rocks.
type RockManager struct {
	rocks      []Rock
	rng        *rand.Rand
	screenW    int
	nextGap    int // Columns until the next spawn
	cfg        *config.SlopeRiderConfig
	difficulty *config.DifficultyManager
}

// NewRockManager creates a new rock manager with the given RNG seed.
func NewRockManager(seed int64, screenW int, cfg *config.SlopeRiderConfig, diff *config.DifficultyManager) *RockManager {
	rm := &RockManager{
		rocks:      make([]Rock, 0, 8),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	rm.Reset(seed)
	return rm
}

// Reset clears all rocks and resets the RNG.
func (rm *RockManager) Reset(seed int64) {
	rm.rocks = rm.rocks[:0]
	rm.rng = rand.New(rand.NewSource(seed))
	rm.nextGap = rm.cfg.Obstacles.MaxSpacing
}

// UpdateScreenWidth updates the screen width used for spawning.
func (rm *RockManager) UpdateScreenWidth(screenW int) {
	rm.screenW = screenW
}

// Update moves rocks uphill (left) and spawns new ones as the gap runs
// out. Returns the number of rocks the player cleared this tick.
func (rm *RockManager) Update(playerX, score, ticks int) int {
	speed := rm.difficulty.Speed(rm.cfg.Physics.BaseSpeed, score, ticks)
	speedInt := int(speed)
	if speedInt < 1 {
		speedInt = 1
	}

	for i := range rm.rocks {
		rm.rocks[i].X -= speedInt
	}

	passed := 0
	for i := range rm.rocks {
		if !rm.rocks[i].Passed && rm.rocks[i].X+rm.rocks[i].W < playerX {
			rm.rocks[i].Passed = true
			passed++
		}
	}

	// Remove rocks that have scrolled off the left side
	valid := rm.rocks[:0]
	for _, r := range rm.rocks {
		if r.X+r.W > 0 {
			valid = append(valid, r)
		}
	}
	rm.rocks = valid

	rm.nextGap -= speedInt
	if rm.nextGap <= 0 {
		rm.spawn(score, ticks)
	}

	return passed
}

// spawn creates a new rock at the right edge of the screen.
func (rm *RockManager) spawn(score, ticks int) {
	oc := rm.cfg.Obstacles

	w := oc.MinWidth
	if oc.MaxWidth > oc.MinWidth {
		w += rm.rng.Intn(oc.MaxWidth - oc.MinWidth + 1)
	}
	h := oc.MinHeight
	if oc.MaxHeight > oc.MinHeight {
		h += rm.rng.Intn(oc.MaxHeight - oc.MinHeight + 1)
	}

	rm.rocks = append(rm.rocks, Rock{
		X: rm.screenW,
		W: w,
		H: h,
	})

	spacing := rm.difficulty.Spacing(oc.MaxSpacing, score, ticks)
	if spacing < oc.MinSpacing {
		spacing = oc.MinSpacing
	}
	gapRange := spacing - oc.MinSpacing
	rm.nextGap = oc.MinSpacing
	if gapRange > 0 {
		rm.nextGap += rm.rng.Intn(gapRange + 1)
	}
	rm.nextGap += w
}

// Rocks returns the current list of rocks.
func (rm *RockManager) Rocks() []Rock {
	return rm.rocks
}

// CheckCollision tests if the given rectangle collides with any rock.
func (rm *RockManager) CheckCollision(playerRect core.Rect, slopeY func(int) int) bool {
	for _, r := range rm.rocks {
		if playerRect.Intersects(r.Rect(slopeY)) {
			return true
		}
	}
	return false
}

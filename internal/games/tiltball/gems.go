package tiltball

import (
	"math/rand"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
)

// One in this many gems spawns golden.
const goldenOdds = 7

// Gem is a single falling collectible.
type Gem struct {
	X      int
	Y      float64
	Golden bool
}

// GemManager handles spawning, falling, and settling of gems.
type GemManager struct {
	gems       []Gem
	rng        *rand.Rand
	screenW    int
	cfg        *config.TiltBallConfig
	difficulty *config.DifficultyManager
}

// NewGemManager creates a new gem manager with the given RNG seed.
func NewGemManager(seed int64, screenW int, cfg *config.TiltBallConfig, diff *config.DifficultyManager) *GemManager {
	gm := &GemManager{
		gems:       make([]Gem, 0, 8),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	gm.Reset(seed)
	return gm
}

// Reset clears all gems and resets the RNG.
func (gm *GemManager) Reset(seed int64) {
	gm.gems = gm.gems[:0]
	gm.rng = rand.New(rand.NewSource(seed))
}

// UpdateScreenWidth updates the screen width used for spawning.
func (gm *GemManager) UpdateScreenWidth(screenW int) {
	gm.screenW = screenW
}

// Update advances all gems by one tick and settles the ones that
// reached the tray row. Returns the gems caught by the tray and the
// number that fell past it.
func (gm *GemManager) Update(tray core.Rect, score, ticks int) (caught []Gem, missed int) {
	// Spawn cadence shrinks with difficulty via the spacing curve
	interval := gm.difficulty.Spacing(gm.cfg.Spawning.IntervalTicks, score, ticks)
	if interval < 1 {
		interval = 1
	}
	if ticks%interval == 0 {
		gm.spawn()
	}

	fallSpeed := gm.difficulty.Speed(gm.cfg.Physics.FallSpeed, score, ticks)

	live := gm.gems[:0]
	for _, gem := range gm.gems {
		gem.Y += fallSpeed

		if int(gem.Y) >= tray.Y {
			if gem.X >= tray.X && gem.X < tray.X+tray.W {
				caught = append(caught, gem)
			} else {
				missed++
			}
			continue
		}
		live = append(live, gem)
	}
	gm.gems = live

	return caught, missed
}

// spawn adds a new gem at a random column above the screen.
func (gm *GemManager) spawn() {
	// Degenerate resizes can report zero columns
	w := gm.screenW
	if w < 1 {
		w = 1
	}
	gm.gems = append(gm.gems, Gem{
		X:      gm.rng.Intn(w),
		Y:      0,
		Golden: gm.rng.Intn(goldenOdds) == 0,
	})
}

// Gems returns the current list of falling gems.
func (gm *GemManager) Gems() []Gem {
	return gm.gems
}

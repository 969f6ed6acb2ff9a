package rooftop

import (
	"math/rand"

	"github.com/bitbreak/minicade/internal/config"
	"github.com/bitbreak/minicade/internal/core"
)

// Obstacle is a single hazard on the rooftop. Ground obstacles (vents,
// AC units) are jumped over; drones fly at head height and must be
// ducked under.
type Obstacle struct {
	X     int
	Y     int
	W     int
	H     int
	Drone bool
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	screenW    int
	nextGap    int // Columns until the next spawn
	spawnCount int // Total spawns, used for drone cadence
	cfg        *config.RooftopConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, screenW int, cfg *config.RooftopConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		obstacles:  make([]Obstacle, 0, 8),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset(seed)
	return om
}

// Reset clears all obstacles and resets the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
	om.spawnCount = 0
	om.nextGap = om.cfg.Obstacles.MaxSpacing
}

// UpdateScreenWidth updates the screen width used for spawning.
func (om *ObstacleManager) UpdateScreenWidth(screenW int) {
	om.screenW = screenW
}

// Update moves obstacles left and spawns new ones as the gap runs out.
func (om *ObstacleManager) Update(score, ticks, groundY int) {
	speed := om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks)
	speedInt := int(speed)
	if speedInt < 1 {
		speedInt = 1
	}

	for i := range om.obstacles {
		om.obstacles[i].X -= speedInt
	}

	// Remove obstacles that have moved off the left side
	valid := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X+o.W > 0 {
			valid = append(valid, o)
		}
	}
	om.obstacles = valid

	om.nextGap -= speedInt
	if om.nextGap <= 0 {
		om.spawn(score, ticks, groundY)
	}
}

// spawn creates a new obstacle at the right edge of the screen.
func (om *ObstacleManager) spawn(score, ticks, groundY int) {
	oc := om.cfg.Obstacles

	w := oc.MinWidth
	if oc.MaxWidth > oc.MinWidth {
		w += om.rng.Intn(oc.MaxWidth - oc.MinWidth + 1)
	}
	h := oc.MinHeight
	if oc.MaxHeight > oc.MinHeight {
		h += om.rng.Intn(oc.MaxHeight - oc.MinHeight + 1)
	}

	om.spawnCount++
	drone := oc.DroneRatio > 0 && om.spawnCount%oc.DroneRatio == 0

	y := groundY - h
	if drone {
		// Hover at standing head height: clears a ducked player, hits a
		// standing one.
		h = 1
		y = groundY - om.cfg.Player.Height
	}

	om.obstacles = append(om.obstacles, Obstacle{
		X:     om.screenW,
		Y:     y,
		W:     w,
		H:     h,
		Drone: drone,
	})

	spacing := om.difficulty.Spacing(oc.MaxSpacing, score, ticks)
	if spacing < oc.MinSpacing {
		spacing = oc.MinSpacing
	}
	// Randomize the gap between min spacing and the scaled maximum
	gapRange := spacing - oc.MinSpacing
	om.nextGap = oc.MinSpacing
	if gapRange > 0 {
		om.nextGap += om.rng.Intn(gapRange + 1)
	}
	om.nextGap += w
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// CheckCollision tests if the given rectangle collides with any obstacle.
func (om *ObstacleManager) CheckCollision(playerRect core.Rect) bool {
	for _, o := range om.obstacles {
		if playerRect.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// SlopeRiderConfig contains all configuration for the Slope Rider runner
// family. All five variants share this shape with different tuned values.
type SlopeRiderConfig struct {
	Physics    SlopeRiderPhysics   `yaml:"physics"`
	Obstacles  SlopeRiderObstacles `yaml:"obstacles"`
	Player     SlopeRiderPlayer    `yaml:"player"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// SlopeRiderPhysics defines physics parameters for Slope Rider.
type SlopeRiderPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SlopeDrop    int     `yaml:"slope_drop"` // Columns per one row of descent
}

// SlopeRiderObstacles defines obstacle parameters for Slope Rider.
type SlopeRiderObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// SlopeRiderPlayer defines player parameters for Slope Rider.
type SlopeRiderPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SkyHopConfig contains all configuration for the Sky Hop game.
type SkyHopConfig struct {
	Physics    SkyHopPhysics    `yaml:"physics"`
	Obstacles  SkyHopObstacles  `yaml:"obstacles"`
	Player     SkyHopPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyHopPhysics defines physics parameters for Sky Hop.
type SkyHopPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// SkyHopObstacles defines obstacle parameters for Sky Hop.
type SkyHopObstacles struct {
	TowerWidth   int `yaml:"tower_width"`
	TowerSpacing int `yaml:"tower_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// SkyHopPlayer defines player parameters for Sky Hop.
type SkyHopPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RooftopConfig contains all configuration for the Rooftop Run game.
type RooftopConfig struct {
	Physics    RooftopPhysics   `yaml:"physics"`
	Obstacles  RooftopObstacles `yaml:"obstacles"`
	Player     RooftopPlayer    `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RooftopPhysics defines physics parameters for Rooftop Run.
type RooftopPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// RooftopObstacles defines obstacle parameters for Rooftop Run.
type RooftopObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
	DroneRatio int `yaml:"drone_ratio"` // One in N obstacles spawns overhead (duck under it)
}

// RooftopPlayer defines player parameters for Rooftop Run.
type RooftopPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	DuckHeight   int `yaml:"duck_height"`
	GroundOffset int `yaml:"ground_offset"`
}

// TiltBallConfig contains all configuration for the Tilt Ball catcher.
type TiltBallConfig struct {
	Physics    TiltBallPhysics  `yaml:"physics"`
	Spawning   TiltBallSpawning `yaml:"spawning"`
	Scoring    TiltBallScoring  `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TiltBallPhysics defines movement parameters for Tilt Ball.
type TiltBallPhysics struct {
	TrayAccel    float64 `yaml:"tray_accel"`    // Acceleration per tick while tilting
	TrayFriction float64 `yaml:"tray_friction"` // Velocity decay per tick when idle
	TrayMaxSpeed float64 `yaml:"tray_max_speed"`
	FallSpeed    float64 `yaml:"fall_speed"` // Base gem fall speed
}

// TiltBallSpawning defines gem spawn parameters for Tilt Ball.
type TiltBallSpawning struct {
	IntervalTicks int `yaml:"interval_ticks"` // Ticks between spawns
	TrayWidth     int `yaml:"tray_width"`
	MaxMisses     int `yaml:"max_misses"`
}

// TiltBallScoring defines the threshold-based score formula for Tilt Ball.
type TiltBallScoring struct {
	CatchPoints  int `yaml:"catch_points"`
	StreakEvery  int `yaml:"streak_every"`  // Catches per streak bonus
	StreakBonus  int `yaml:"streak_bonus"`  // Fixed bonus per streak threshold
	GoldenPoints int `yaml:"golden_points"` // Rare gem award
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/sloperider.yaml
var defaultSlopeRiderYAML []byte

//go:embed defaults/skyhop.yaml
var defaultSkyHopYAML []byte

//go:embed defaults/rooftop.yaml
var defaultRooftopYAML []byte

//go:embed defaults/tiltball.yaml
var defaultTiltBallYAML []byte

// DefaultSlopeRiderConfig returns the default Slope Rider configuration.
func DefaultSlopeRiderConfig() SlopeRiderConfig {
	return SlopeRiderConfig{
		Physics: SlopeRiderPhysics{
			Gravity:      0.3,
			JumpImpulse:  -2.2,
			MaxFallSpeed: 3.5,
			BaseSpeed:    0.6,
			SlopeDrop:    12,
		},
		Obstacles: SlopeRiderObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  1,
			MaxHeight:  3,
			MinSpacing: 25,
			MaxSpacing: 45,
		},
		Player: SlopeRiderPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.5,
				GapReduction:     0,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultSkyHopConfig returns the default Sky Hop configuration.
func DefaultSkyHopConfig() SkyHopConfig {
	return SkyHopConfig{
		Physics: SkyHopPhysics{
			Gravity:      0.25,
			FlapImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: SkyHopObstacles{
			TowerWidth:   5,
			TowerSpacing: 40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: SkyHopPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultRooftopConfig returns the default Rooftop Run configuration.
func DefaultRooftopConfig() RooftopConfig {
	return RooftopConfig{
		Physics: RooftopPhysics{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
			BaseSpeed:    0.5,
		},
		Obstacles: RooftopObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  2,
			MaxHeight:  4,
			MinSpacing: 30,
			MaxSpacing: 50,
			DroneRatio: 4,
		},
		Player: RooftopPlayer{
			X:            8,
			Width:        3,
			Height:       3,
			DuckHeight:   2,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  2.0,
				GapReduction:     0,
				SpacingReduction: 20,
			},
		},
	}
}

// DefaultTiltBallConfig returns the default Tilt Ball configuration.
func DefaultTiltBallConfig() TiltBallConfig {
	return TiltBallConfig{
		Physics: TiltBallPhysics{
			TrayAccel:    0.25,
			TrayFriction: 0.85,
			TrayMaxSpeed: 2.0,
			FallSpeed:    0.3,
		},
		Spawning: TiltBallSpawning{
			IntervalTicks: 45,
			TrayWidth:     7,
			MaxMisses:     5,
		},
		Scoring: TiltBallScoring{
			CatchPoints:  10,
			StreakEvery:  5,
			StreakBonus:  25,
			GoldenPoints: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.2,
				GapReduction:     0,
				SpacingReduction: 10,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "sloperider":
		return defaultSlopeRiderYAML
	case "skyhop":
		return defaultSkyHopYAML
	case "rooftop":
		return defaultRooftopYAML
	case "tiltball":
		return defaultTiltBallYAML
	default:
		return nil
	}
}

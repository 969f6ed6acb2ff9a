package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlopeRider loads Slope Rider configuration.
// Search order: customPath -> ~/.minicade/configs/sloperider.yaml -> ./configs/sloperider.yaml -> embedded default
func LoadSlopeRider(customPath string) (SlopeRiderConfig, error) {
	var cfg SlopeRiderConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("sloperider.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/sloperider.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSlopeRiderYAML, &cfg); err != nil {
		return DefaultSlopeRiderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadSkyHop loads Sky Hop configuration.
// Search order: customPath -> ~/.minicade/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default
func LoadSkyHop(customPath string) (SkyHopConfig, error) {
	var cfg SkyHopConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyhop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skyhop.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkyHopYAML, &cfg); err != nil {
		return DefaultSkyHopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadRooftop loads Rooftop Run configuration.
// Search order: customPath -> ~/.minicade/configs/rooftop.yaml -> ./configs/rooftop.yaml -> embedded default
func LoadRooftop(customPath string) (RooftopConfig, error) {
	var cfg RooftopConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rooftop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/rooftop.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRooftopYAML, &cfg); err != nil {
		return DefaultRooftopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTiltBall loads Tilt Ball configuration.
// Search order: customPath -> ~/.minicade/configs/tiltball.yaml -> ./configs/tiltball.yaml -> embedded default
func LoadTiltBall(customPath string) (TiltBallConfig, error) {
	var cfg TiltBallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tiltball.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tiltball.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTiltBallYAML, &cfg); err != nil {
		return DefaultTiltBallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minicade", "configs", filename)
}

// ApplySlopeRiderPreset modifies the config based on a difficulty preset.
func ApplySlopeRiderPreset(cfg *SlopeRiderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplySkyHopPreset modifies the config based on a difficulty preset.
func ApplySkyHopPreset(cfg *SkyHopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyRooftopPreset modifies the config based on a difficulty preset.
func ApplyRooftopPreset(cfg *RooftopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyTiltBallPreset modifies the config based on a difficulty preset.
func ApplyTiltBallPreset(cfg *TiltBallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard mode also tightens the tray
	switch preset {
	case DifficultyEasy:
		cfg.Spawning.TrayWidth = 9
		cfg.Spawning.MaxMisses = 7
	case DifficultyHard:
		cfg.Spawning.TrayWidth = 5
		cfg.Spawning.MaxMisses = 3
	}
}

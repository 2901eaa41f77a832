package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default
func load[T validator](customPath, name string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		return parseFile[T](customPath)
	}

	filename := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := parseFile[T](userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := parseFile[T](filepath.Join("configs", filename)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads, decodes and validates a single YAML file.
func parseFile[T validator](path string) (T, error) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadHitPlane loads Hit Plane configuration.
func LoadHitPlane(customPath string) (HitPlaneConfig, error) {
	return load(customPath, "hitplane", defaultHitPlaneYAML, DefaultHitPlaneConfig)
}

// LoadJumpGod loads Jump God configuration.
func LoadJumpGod(customPath string) (JumpGodConfig, error) {
	return load(customPath, "jumpgod", defaultJumpGodYAML, DefaultJumpGodConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHitPlanePreset modifies the config based on a difficulty preset.
func ApplyHitPlanePreset(cfg *HitPlaneConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 150
		cfg.Spawn.BaseInterval = 80
	case DifficultyHard:
		cfg.Player.MaxHP = 80
		cfg.Spawn.BaseInterval = 45
	case DifficultyFixed:
		cfg.Spawn.Ramp = false
	}
	if cfg.Spawn.MinInterval > cfg.Spawn.BaseInterval {
		cfg.Spawn.MinInterval = cfg.Spawn.BaseInterval
	}
}

// ApplyJumpGodPreset modifies the config based on a difficulty preset.
func ApplyJumpGodPreset(cfg *JumpGodConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.StartSpeed = 4
		cfg.Obstacles.SkipChance = 0.45
	case DifficultyHard:
		cfg.Physics.StartSpeed = 6.5
		cfg.Obstacles.SkipChance = 0.15
	case DifficultyFixed:
		cfg.Physics.Ramp = false
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// Field is the fixed logical size of a game's drawing surface.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HitPlaneConfig contains all configuration for the Hit Plane shooter.
type HitPlaneConfig struct {
	Field    Field            `yaml:"field"`
	Player   HitPlanePlayer   `yaml:"player"`
	Weapon   HitPlaneWeapon   `yaml:"weapon"`
	Enemies  HitPlaneEnemies  `yaml:"enemies"`
	Spawn    HitPlaneSpawn    `yaml:"spawn"`
	Leveling HitPlaneLeveling `yaml:"leveling"`
}

// HitPlanePlayer defines the player's ship and starting stats.
type HitPlanePlayer struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	MoveSpeed      float64 `yaml:"move_speed"`
	MaxHP          int     `yaml:"max_hp"`
	ExpToNextLevel int     `yaml:"exp_to_next_level"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletCount    int     `yaml:"bullet_count"`
}

// HitPlaneWeapon defines the auto-fire weapon.
type HitPlaneWeapon struct {
	FireCooldown   int     `yaml:"fire_cooldown"` // Fire when the timer exceeds this many frames
	FanSpacing     float64 `yaml:"fan_spacing"`
	MaxBullets     int     `yaml:"max_bullets"`
	BulletWidth    float64 `yaml:"bullet_width"`
	BulletHeight   float64 `yaml:"bullet_height"`
	BaseDamage     int     `yaml:"base_damage"`
	DamagePerLevel int     `yaml:"damage_per_level"`
}

// HitPlaneEnemies defines how enemy stats scale with enemy level.
type HitPlaneEnemies struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SizePerLevel   float64 `yaml:"size_per_level"`
	HPPerLevel     int     `yaml:"hp_per_level"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"`
	BaseDamage     int     `yaml:"base_damage"`
	DamagePerLevel int     `yaml:"damage_per_level"`
	PointsPerLevel int     `yaml:"points_per_level"`
}

// HitPlaneSpawn defines the spawn-rate denominator and how it shrinks with score.
type HitPlaneSpawn struct {
	BaseInterval int  `yaml:"base_interval"`
	MinInterval  int  `yaml:"min_interval"`
	ScorePerStep int  `yaml:"score_per_step"` // Score needed to shorten the interval by one frame
	Ramp         bool `yaml:"ramp"`
}

// HitPlaneLeveling defines player level-up rewards.
type HitPlaneLeveling struct {
	ExpGrowth  float64 `yaml:"exp_growth"`
	HPPerLevel int     `yaml:"hp_per_level"`
	BonusHP    int     `yaml:"bonus_hp"`
}

// JumpGodConfig contains all configuration for the Jump God runner.
type JumpGodConfig struct {
	Field     Field            `yaml:"field"`
	Physics   JumpGodPhysics   `yaml:"physics"`
	Dino      JumpGodDino      `yaml:"dino"`
	Obstacles JumpGodObstacles `yaml:"obstacles"`
	Score     JumpGodScore     `yaml:"score"`
}

// JumpGodPhysics defines gravity, jump and scrolling speed.
type JumpGodPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"` // Negative is upward
	StartSpeed   float64 `yaml:"start_speed"`
	SpeedStep    float64 `yaml:"speed_step"`
	SpeedEvery   int     `yaml:"speed_every"` // Internal points between speed steps
	Ramp         bool    `yaml:"ramp"`
}

// JumpGodDino defines the runner's body.
type JumpGodDino struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Distance from the bottom of the field to the ground line
	HitboxInset  float64 `yaml:"hitbox_inset"`
}

// JumpGodObstacles defines the periodic obstacle spawner.
type JumpGodObstacles struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnEvery int     `yaml:"spawn_every"`
	SkipChance float64 `yaml:"skip_chance"`
}

// JumpGodScore defines how the internal counter maps to the displayed score.
type JumpGodScore struct {
	DisplayDivisor int `yaml:"display_divisor"`
	RefreshEvery   int `yaml:"refresh_every"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v)
	}
	return nil
}

// Validate checks that every size and interval is usable.
func (c HitPlaneConfig) Validate() error {
	return errors.Join(
		positive("field.width", c.Field.Width),
		positive("field.height", c.Field.Height),
		positive("player.width", c.Player.Width),
		positive("player.height", c.Player.Height),
		positive("player.max_hp", float64(c.Player.MaxHP)),
		positive("player.exp_to_next_level", float64(c.Player.ExpToNextLevel)),
		positive("player.bullet_count", float64(c.Player.BulletCount)),
		positive("weapon.bullet_width", c.Weapon.BulletWidth),
		positive("weapon.bullet_height", c.Weapon.BulletHeight),
		positive("weapon.max_bullets", float64(c.Weapon.MaxBullets)),
		positive("enemies.width", c.Enemies.Width),
		positive("enemies.height", c.Enemies.Height),
		positive("spawn.base_interval", float64(c.Spawn.BaseInterval)),
		positive("spawn.min_interval", float64(c.Spawn.MinInterval)),
		positive("spawn.score_per_step", float64(c.Spawn.ScorePerStep)),
		positive("leveling.exp_growth", c.Leveling.ExpGrowth),
	)
}

// Validate checks that every size and interval is usable.
func (c JumpGodConfig) Validate() error {
	var errs []error
	errs = append(errs,
		positive("field.width", c.Field.Width),
		positive("field.height", c.Field.Height),
		positive("physics.gravity", c.Physics.Gravity),
		positive("physics.start_speed", c.Physics.StartSpeed),
		positive("physics.speed_every", float64(c.Physics.SpeedEvery)),
		positive("dino.width", c.Dino.Width),
		positive("dino.height", c.Dino.Height),
		positive("obstacles.width", c.Obstacles.Width),
		positive("obstacles.height", c.Obstacles.Height),
		positive("obstacles.spawn_every", float64(c.Obstacles.SpawnEvery)),
		positive("score.display_divisor", float64(c.Score.DisplayDivisor)),
		positive("score.refresh_every", float64(c.Score.RefreshEvery)),
	)
	if c.Physics.JumpStrength >= 0 {
		errs = append(errs, fmt.Errorf("%w: physics.jump_strength must be negative, got %v", ErrInvalidConfig, c.Physics.JumpStrength))
	}
	if c.Dino.HitboxInset >= c.Dino.Width || c.Dino.HitboxInset >= c.Dino.Height {
		errs = append(errs, fmt.Errorf("%w: dino.hitbox_inset %v leaves no hitbox", ErrInvalidConfig, c.Dino.HitboxInset))
	}
	if c.Obstacles.SkipChance < 0 || c.Obstacles.SkipChance >= 1 {
		errs = append(errs, fmt.Errorf("%w: obstacles.skip_chance must be in [0, 1), got %v", ErrInvalidConfig, c.Obstacles.SkipChance))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

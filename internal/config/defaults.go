package config

import (
	_ "embed"
)

//go:embed defaults/hitplane.yaml
var defaultHitPlaneYAML []byte

//go:embed defaults/jumpgod.yaml
var defaultJumpGodYAML []byte

// DefaultHitPlaneConfig returns the default Hit Plane configuration.
func DefaultHitPlaneConfig() HitPlaneConfig {
	return HitPlaneConfig{
		Field: Field{Width: 480, Height: 600},
		Player: HitPlanePlayer{
			Width:          50,
			Height:         50,
			BottomMargin:   20,
			MoveSpeed:      5,
			MaxHP:          100,
			ExpToNextLevel: 100,
			BulletSpeed:    8,
			BulletCount:    1,
		},
		Weapon: HitPlaneWeapon{
			FireCooldown:   15,
			FanSpacing:     10,
			MaxBullets:     5,
			BulletWidth:    6,
			BulletHeight:   15,
			BaseDamage:     10,
			DamagePerLevel: 2,
		},
		Enemies: HitPlaneEnemies{
			Width:          40,
			Height:         40,
			SizePerLevel:   0.1,
			HPPerLevel:     20,
			BaseSpeed:      2,
			SpeedPerLevel:  0.2,
			BaseDamage:     10,
			DamagePerLevel: 5,
			PointsPerLevel: 10,
		},
		Spawn: HitPlaneSpawn{
			BaseInterval: 60,
			MinInterval:  20,
			ScorePerStep: 500,
			Ramp:         true,
		},
		Leveling: HitPlaneLeveling{
			ExpGrowth:  1.5,
			HPPerLevel: 20,
			BonusHP:    50,
		},
	}
}

// DefaultJumpGodConfig returns the default Jump God configuration.
func DefaultJumpGodConfig() JumpGodConfig {
	return JumpGodConfig{
		Field: Field{Width: 800, Height: 300},
		Physics: JumpGodPhysics{
			Gravity:      0.6,
			JumpStrength: -12,
			StartSpeed:   5,
			SpeedStep:    0.5,
			SpeedEvery:   500,
			Ramp:         true,
		},
		Dino: JumpGodDino{
			X:            50,
			Width:        40,
			Height:       50,
			GroundMargin: 30,
			HitboxInset:  10,
		},
		Obstacles: JumpGodObstacles{
			Width:      30,
			Height:     50,
			SpawnEvery: 100,
			SkipChance: 0.3,
		},
		Score: JumpGodScore{
			DisplayDivisor: 10,
			RefreshEvery:   10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hitplane":
		return defaultHitPlaneYAML
	case "jumpgod":
		return defaultJumpGodYAML
	default:
		return nil
	}
}

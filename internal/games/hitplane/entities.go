package hitplane

import (
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Entity is the common shape of everything on the playfield.
type Entity struct {
	core.RectF
	Color core.Color
}

// Player is the ship at the bottom of the screen. One per session.
type Player struct {
	Entity
	HP             int
	MaxHP          int
	Level          int
	Exp            int
	ExpToNextLevel int
	BulletSpeed    float64
	BulletCount    int
	BulletTimer    int // Frames since the last volley
}

// Bullet flies straight up from the player.
type Bullet struct {
	Entity
	Speed  float64
	Damage int
}

// Enemy falls from the top of the screen.
type Enemy struct {
	Entity
	HP     int
	MaxHP  int
	Level  int
	Speed  float64
	Damage int
}

// newPlayer returns a player with starting stats, centered above the bottom edge.
func newPlayer(cfg config.HitPlaneConfig) Player {
	p := cfg.Player
	return Player{
		Entity: Entity{
			RectF: core.NewRectF(
				cfg.Field.Width/2-p.Width/2,
				cfg.Field.Height-p.Height-p.BottomMargin,
				p.Width, p.Height,
			),
			Color: core.ColorBlue,
		},
		HP:             p.MaxHP,
		MaxHP:          p.MaxHP,
		Level:          1,
		ExpToNextLevel: p.ExpToNextLevel,
		BulletSpeed:    p.BulletSpeed,
		BulletCount:    p.BulletCount,
	}
}

// newEnemy builds an enemy whose size and stats scale with its level.
func newEnemy(cfg config.HitPlaneEnemies, level int, x, y float64) Enemy {
	size := 1 + float64(level)*cfg.SizePerLevel
	hp := level * cfg.HPPerLevel
	return Enemy{
		Entity: Entity{
			RectF: core.NewRectF(x, y, cfg.Width*size, cfg.Height*size),
			Color: enemyColor(level),
		},
		HP:     hp,
		MaxHP:  hp,
		Level:  level,
		Speed:  cfg.BaseSpeed + float64(level)*cfg.SpeedPerLevel,
		Damage: cfg.BaseDamage + level*cfg.DamagePerLevel,
	}
}

// enemyColor picks the color tier for an enemy level.
func enemyColor(level int) core.Color {
	switch {
	case level >= 3:
		return core.ColorPurple
	case level == 2:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// volley creates count bullets in a symmetric fan centered on the player.
func volley(p Player, w config.HitPlaneWeapon) []Bullet {
	centerX := p.X + p.W/2
	damage := w.BaseDamage + w.DamagePerLevel*p.Level
	bullets := make([]Bullet, 0, p.BulletCount)
	for i := 0; i < p.BulletCount; i++ {
		offset := (float64(i) - float64(p.BulletCount-1)/2) * w.FanSpacing
		bullets = append(bullets, Bullet{
			Entity: Entity{
				RectF: core.NewRectF(centerX+offset-w.BulletWidth/2, p.Y, w.BulletWidth, w.BulletHeight),
				Color: core.ColorYellow,
			},
			Speed:  p.BulletSpeed,
			Damage: damage,
		})
	}
	return bullets
}

// Upgrade is the stat granted on level-up, chosen by level mod 3.
type Upgrade int

const (
	UpgradeBulletCount Upgrade = iota
	UpgradeBulletSpeed
	UpgradeMaxHP
)

// gainExp adds experience and levels up at most once.
// Hit points are refilled before the max-HP upgrade is applied.
func (p *Player) gainExp(amount int, lv config.HitPlaneLeveling, maxBullets int) bool {
	p.Exp += amount
	if p.Exp < p.ExpToNextLevel {
		return false
	}

	p.Level++
	p.Exp -= p.ExpToNextLevel
	p.ExpToNextLevel = int(math.Floor(float64(p.ExpToNextLevel) * lv.ExpGrowth))
	p.MaxHP += lv.HPPerLevel
	p.HP = p.MaxHP

	switch Upgrade(p.Level % 3) {
	case UpgradeBulletCount:
		p.BulletCount = min(p.BulletCount+1, maxBullets)
	case UpgradeBulletSpeed:
		p.BulletSpeed++
	case UpgradeMaxHP:
		p.MaxHP += lv.BonusHP
	}
	return true
}

package hitplane

import "github.com/vovakirdan/canvas-arcade/internal/core"

// resolveBulletHits applies bullet damage in two passes.
//
// The first pass visits bullets in creation order. Each bullet hits the first
// enemy in spawn order that it overlaps and that is still alive after the
// damage already assigned this frame. A bullet hits at most one enemy.
// The second pass writes damage back, drops spent bullets and dead enemies,
// and awards kills in the order they happened.
func (g *Game) resolveBulletHits() {
	if len(g.bullets) == 0 || len(g.enemies) == 0 {
		return
	}

	hp := make([]int, len(g.enemies))
	for i, e := range g.enemies {
		hp[i] = e.HP
	}
	spent := make([]bool, len(g.bullets))
	var kills []int

	for bi, b := range g.bullets {
		for ei, e := range g.enemies {
			if hp[ei] <= 0 || !b.Intersects(e.RectF) {
				continue
			}
			hp[ei] -= b.Damage
			spent[bi] = true
			if hp[ei] <= 0 {
				kills = append(kills, ei)
			}
			break
		}
	}

	for bi, b := range g.bullets {
		if spent[bi] {
			g.emit(core.EventEnemyHit, b.Damage)
		}
	}
	for ei := range g.enemies {
		g.enemies[ei].HP = hp[ei]
	}

	keptBullets := g.bullets[:0]
	for bi, b := range g.bullets {
		if !spent[bi] {
			keptBullets = append(keptBullets, b)
		}
	}
	g.bullets = keptBullets

	if len(kills) == 0 {
		return
	}
	for _, ei := range kills {
		g.awardKill(g.enemies[ei])
	}

	keptEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.HP > 0 {
			keptEnemies = append(keptEnemies, e)
		}
	}
	g.enemies = keptEnemies
}

// awardKill adds score and experience for a destroyed enemy.
func (g *Game) awardKill(e Enemy) {
	points := e.Level * g.cfg.Enemies.PointsPerLevel
	g.score += points
	g.emit(core.EventEnemyKilled, points)

	if g.player.gainExp(points, g.cfg.Leveling, g.cfg.Weapon.MaxBullets) {
		g.emit(core.EventLevelUp, g.player.Level)
	}
}

// resolvePlayerHits handles enemies ramming the player or leaving the playfield.
// Rammed enemies are destroyed without score; escaped enemies cost nothing.
func (g *Game) resolvePlayerHits() {
	p := &g.player
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Intersects(p.RectF) {
			p.HP -= e.Damage
			g.emit(core.EventPlayerHit, e.Damage)
			continue
		}
		if e.Y > g.cfg.Field.Height {
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept

	if p.HP <= 0 {
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver, g.score)
	}
}

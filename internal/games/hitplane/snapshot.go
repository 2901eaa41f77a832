package hitplane

import "math"

// Snapshot contains the game state needed to compare two runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame   int
	Score   int
	Phase   string
	PlayerX float64
	HP      int
	MaxHP   int
	Level   int
	Exp     int

	// Each enemy is 4 values: X, Y, HP, Level
	EnemyData []float64
	// Each bullet is 2 values: X, Y
	BulletData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]float64, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		enemies = append(enemies, e.X, e.Y, float64(e.HP), float64(e.Level))
	}
	bullets := make([]float64, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bullets = append(bullets, b.X, b.Y)
	}

	return Snapshot{
		Frame:      g.frame,
		Score:      g.score,
		Phase:      g.phase.String(),
		PlayerX:    g.player.X,
		HP:         g.player.HP,
		MaxHP:      g.player.MaxHP,
		Level:      g.player.Level,
		Exp:        g.player.Exp,
		EnemyData:  enemies,
		BulletData: bullets,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)
	h = h*31 + uint64(snap.Score)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.HP)
	h = h*31 + uint64(snap.MaxHP)
	h = h*31 + uint64(snap.Level)
	h = h*31 + uint64(snap.Exp)
	h = h*31 + uint64(len(snap.Phase))
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

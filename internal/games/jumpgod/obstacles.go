package jumpgod

import (
	"math/rand"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Obstacle is a ground block the dino must jump over.
type Obstacle struct {
	core.RectF
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.JumpGodObstacles
	spawnX    float64 // Right edge of the playfield
	groundY   float64
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.JumpGodObstacles, spawnX, groundY float64) *ObstacleManager {
	om := &ObstacleManager{obstacles: make([]Obstacle, 0, 8)}
	om.Reset(seed, cfg, spawnX, groundY)
	return om
}

// Reset clears all obstacles, reseeds the RNG and takes the field geometry
// of the new run.
func (om *ObstacleManager) Reset(seed int64, cfg config.JumpGodObstacles, spawnX, groundY float64) {
	om.obstacles = om.obstacles[:0]
	om.rng = rand.New(rand.NewSource(seed))
	om.cfg = cfg
	om.spawnX = spawnX
	om.groundY = groundY
}

// MaybeSpawn appends one obstacle at the right edge on spawn frames,
// unless the random skip fires. Reports whether an obstacle was added.
func (om *ObstacleManager) MaybeSpawn(frame int) bool {
	if om.cfg.SpawnEvery <= 0 || frame%om.cfg.SpawnEvery != 0 {
		return false
	}
	if om.rng.Float64() < om.cfg.SkipChance {
		return false
	}
	om.obstacles = append(om.obstacles, Obstacle{
		RectF: core.NewRectF(om.spawnX, om.groundY-om.cfg.Height, om.cfg.Width, om.cfg.Height),
	})
	return true
}

// Advance moves obstacles left by speed and drops those fully off the left edge.
func (om *ObstacleManager) Advance(speed float64) {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.X -= speed
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// CheckCollision tests if the given rectangle collides with any obstacle.
func (om *ObstacleManager) CheckCollision(hitbox core.RectF) bool {
	for _, o := range om.obstacles {
		if hitbox.Intersects(o.RectF) {
			return true
		}
	}
	return false
}

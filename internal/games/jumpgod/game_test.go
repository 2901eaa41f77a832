package jumpgod

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  15,
	TickRate: 60,
	Seed:     7,
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// newGame returns a running game. skip sets the obstacle skip chance:
// 0 always spawns, 1 never does.
func newGame(skip float64) *Game {
	cfg := config.DefaultJumpGodConfig()
	cfg.Obstacles.SkipChance = skip
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInitialState(t *testing.T) {
	g := newGame(0.3)

	d := g.Dino()
	if d.X != 50 || d.Y != 220 || d.W != 40 || d.H != 50 {
		t.Errorf("dino rect = %+v, want {50 220 40 50}", d.RectF)
	}
	if d.Airborne || d.DY != 0 {
		t.Errorf("dino airborne=%v dy=%v, want grounded", d.Airborne, d.DY)
	}
	if g.GroundY() != 270 {
		t.Errorf("GroundY() = %v, want 270", g.GroundY())
	}
	if g.Speed() != 5 {
		t.Errorf("Speed() = %v, want 5", g.Speed())
	}
	if w, h := g.Surface(); w != 800 || h != 300 {
		t.Errorf("Surface() = %vx%v, want 800x300", w, h)
	}
}

func TestJump(t *testing.T) {
	g := newGame(1)

	res := g.Step(jump())
	d := g.Dino()
	if !d.Airborne {
		t.Fatal("Airborne = false after jump")
	}
	if d.Y != 208 || !approx(d.DY, -11.4) {
		t.Errorf("after jump y=%v dy=%v, want 208 and -11.4", d.Y, d.DY)
	}
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventJump {
		t.Errorf("events = %v, want a jump event", res.Events)
	}

	// A second jump mid-air is ignored.
	g.Step(jump())
	d = g.Dino()
	if !approx(d.Y, 196.6) || !approx(d.DY, -10.8) {
		t.Errorf("mid-air jump changed velocity: y=%v dy=%v", d.Y, d.DY)
	}
}

func TestGravityUntilLanding(t *testing.T) {
	g := newGame(1)
	g.Step(jump())

	prevDY := g.Dino().DY
	landed := false
	for i := 0; i < 100; i++ {
		res := g.Step(core.NewInputFrame())
		d := g.Dino()
		if !d.Airborne {
			if d.Y != 220 || d.DY != 0 {
				t.Errorf("landed at y=%v dy=%v, want 220 and 0", d.Y, d.DY)
			}
			foundLand := false
			for _, ev := range res.Events {
				if ev.Kind == core.EventLand {
					foundLand = true
				}
			}
			if !foundLand {
				t.Error("no land event")
			}
			landed = true
			break
		}
		if d.DY <= prevDY {
			t.Fatalf("frame %d: dy %v did not increase from %v", i, d.DY, prevDY)
		}
		if d.Y >= 220 {
			t.Fatalf("frame %d: airborne at y=%v below the rest line", i, d.Y)
		}
		prevDY = d.DY
	}
	if !landed {
		t.Fatal("dino never landed")
	}

	// Grounded again, so jumping works.
	g.Step(jump())
	if !g.Dino().Airborne {
		t.Error("jump after landing ignored")
	}
}

func TestObstacleSpawnAndAdvance(t *testing.T) {
	g := newGame(0)

	for i := 0; i < 99; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.Obstacles()); n != 0 {
		t.Fatalf("len(obstacles) = %d before frame 100, want 0", n)
	}

	g.Step(core.NewInputFrame())
	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("len(obstacles) = %d at frame 100, want 1", len(obs))
	}
	if obs[0].X != 795 || obs[0].Y != 220 || obs[0].W != 30 || obs[0].H != 50 {
		t.Errorf("obstacle = %+v, want {795 220 30 50}", obs[0].RectF)
	}

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	obs = g.Obstacles()
	if len(obs) != 1 || obs[0].X != 800-51*5 {
		t.Errorf("obstacle x = %v, want %v", obs[0].X, 800-51*5)
	}
}

func TestSkippedSpawn(t *testing.T) {
	g := newGame(1)
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.Obstacles()); n != 0 {
		t.Errorf("len(obstacles) = %d, want 0 with skip chance 1", n)
	}
}

func TestObstacleRemoval(t *testing.T) {
	cfg := config.DefaultJumpGodConfig().Obstacles
	om := NewObstacleManager(1, cfg, 800, 270)
	om.obstacles = []Obstacle{
		{RectF: core.NewRectF(-25, 220, 30, 50)},
		{RectF: core.NewRectF(-24, 220, 30, 50)},
	}

	om.Advance(5)

	obs := om.Obstacles()
	if len(obs) != 1 || obs[0].X != -29 {
		t.Errorf("obstacles = %+v, want one at x=-29", obs)
	}
}

func TestObstacleManagerResetTakesGeometry(t *testing.T) {
	cfg := config.DefaultJumpGodConfig().Obstacles
	om := NewObstacleManager(1, cfg, 800, 270)
	om.obstacles = append(om.obstacles, Obstacle{RectF: core.NewRectF(400, 220, 30, 50)})

	next := cfg
	next.SpawnEvery = 1
	next.SkipChance = 0
	next.Height = 40
	om.Reset(2, next, 500, 200)

	if len(om.Obstacles()) != 0 {
		t.Fatalf("obstacles survived reset: %+v", om.Obstacles())
	}
	if !om.MaybeSpawn(3) {
		t.Fatal("MaybeSpawn() = false with spawn every frame and no skip")
	}
	o := om.Obstacles()[0]
	if o.X != 500 || o.Y != 160 || o.H != 40 {
		t.Errorf("spawned %+v, want x=500 y=160 h=40", o.RectF)
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := newGame(1)
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{RectF: core.NewRectF(60, 220, 30, 50)})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("GameOver = false after collision")
	}
	if g.Jump() {
		t.Error("Jump() accepted after game over")
	}

	frame := g.frame
	g.Step(jump())
	if g.frame != frame {
		t.Error("simulation advanced after game over")
	}
}

func TestInsetHitboxMissesCorner(t *testing.T) {
	g := newGame(1)
	// After one advance the obstacle overlaps the drawn dino only in its right strip.
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{RectF: core.NewRectF(85, 220, 30, 50)})

	g.Step(core.NewInputFrame())
	if g.State().GameOver {
		t.Error("GameOver = true for an overlap outside the hitbox")
	}
}

func TestRestart(t *testing.T) {
	g := newGame(0)
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("expected a collision without jumping")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
	if len(g.Obstacles()) != 0 || g.Speed() != 5 || g.InternalScore() != 0 {
		t.Error("restart kept obstacles, speed or score")
	}
	if d := g.Dino(); d.Y != 220 || d.Airborne {
		t.Errorf("dino after restart = %+v", d)
	}
}

func TestDisplayedScore(t *testing.T) {
	g := newGame(1)

	tests := []struct {
		steps int
		want  int
	}{
		{9, 0},
		{1, 1},
		{15, 2},
		{5, 3},
	}
	for _, tt := range tests {
		for i := 0; i < tt.steps; i++ {
			g.Step(core.NewInputFrame())
		}
		if got := g.State().Score; got != tt.want {
			t.Errorf("after %d frames Score = %d, want %d", g.InternalScore(), got, tt.want)
		}
	}
}

func TestSpeedRamp(t *testing.T) {
	tests := []struct {
		name  string
		ramp  bool
		steps int
		want  float64
	}{
		{"before step", true, 499, 5},
		{"first step", true, 500, 5.5},
		{"second step", true, 1000, 6},
		{"fixed", false, 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultJumpGodConfig()
			cfg.Obstacles.SkipChance = 1
			cfg.Physics.Ramp = tt.ramp
			g := NewWithConfig(cfg)
			g.Reset(testRuntime)
			for i := 0; i < tt.steps; i++ {
				g.Step(core.NewInputFrame())
			}
			if g.Speed() != tt.want {
				t.Errorf("Speed() = %v, want %v", g.Speed(), tt.want)
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, int, float64) {
		g := NewWithConfig(config.DefaultJumpGodConfig())
		g.Reset(testRuntime)
		for i := 0; i < 2000; i++ {
			in := core.NewInputFrame()
			if i%37 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.InternalScore(), len(g.Obstacles()), g.Dino().Y
	}

	s1, n1, y1 := run()
	s2, n2, y2 := run()
	if s1 != s2 || n1 != n2 || y1 != y2 {
		t.Errorf("Determinism failed: (%d, %d, %v) vs (%d, %d, %v)", s1, n1, y1, s2, n2, y2)
	}
}

func TestRender(t *testing.T) {
	g := newGame(1)
	screen := core.NewScreen(80, 15)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("score missing")
	}
	if !strings.ContainsRune(out, GroundGlyph) || !strings.ContainsRune(out, DinoGlyph) {
		t.Error("ground or dino missing")
	}

	g.running = false
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}

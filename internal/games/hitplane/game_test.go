package hitplane

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  48,
	ScreenH:  30,
	TickRate: 60,
	Seed:     42,
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// newPlaying returns a game past the start screen with no simulated frames.
func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultHitPlaneConfig())
	g.Reset(testRuntime)
	g.Step(input(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("Phase = %v, want PLAYING", g.Phase())
	}
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInitialState(t *testing.T) {
	g := NewWithConfig(config.DefaultHitPlaneConfig())
	g.Reset(testRuntime)

	if g.Phase() != PhaseStart {
		t.Errorf("first session Phase = %v, want START", g.Phase())
	}

	p := g.Player()
	if p.X != 215 || p.Y != 530 || p.W != 50 || p.H != 50 {
		t.Errorf("player rect = %+v, want {215 530 50 50}", p.RectF)
	}
	if p.HP != 100 || p.MaxHP != 100 || p.Level != 1 || p.Exp != 0 || p.ExpToNextLevel != 100 {
		t.Errorf("player stats = %+v", p)
	}
	if p.BulletSpeed != 8 || p.BulletCount != 1 {
		t.Errorf("weapon = speed %v count %d, want 8 and 1", p.BulletSpeed, p.BulletCount)
	}

	w, h := g.Surface()
	if w != 480 || h != 600 {
		t.Errorf("Surface() = %vx%v, want 480x600", w, h)
	}
}

func TestStartScreenWaitsForInput(t *testing.T) {
	g := NewWithConfig(config.DefaultHitPlaneConfig())
	g.Reset(testRuntime)

	for i := 0; i < 30; i++ {
		g.Step(input())
	}
	if g.Phase() != PhaseStart {
		t.Fatalf("Phase = %v, want START", g.Phase())
	}
	if len(g.Enemies()) != 0 {
		t.Errorf("enemies spawned before start: %d", len(g.Enemies()))
	}

	g.Step(input(core.ActionJump))
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase = %v, want PLAYING after jump", g.Phase())
	}
}

func TestSecondResetSkipsStartScreen(t *testing.T) {
	g := NewWithConfig(config.DefaultHitPlaneConfig())
	g.Reset(testRuntime)
	g.Reset(testRuntime)

	if g.Phase() != PhasePlaying {
		t.Errorf("Phase = %v, want PLAYING", g.Phase())
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		action core.Action
		wantX  float64
	}{
		{"left", 215, core.ActionLeft, 210},
		{"right", 215, core.ActionRight, 220},
		{"left clamp", 2, core.ActionLeft, 0},
		{"right clamp", 428, core.ActionRight, 430},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t)
			g.player.X = tt.startX
			g.movePlayer(input(tt.action))
			if g.player.X != tt.wantX {
				t.Errorf("X = %v, want %v", g.player.X, tt.wantX)
			}
		})
	}
}

func TestAutoFireCadence(t *testing.T) {
	g := newPlaying(t)

	for i := 1; i <= 15; i++ {
		res := g.Step(input())
		for _, ev := range res.Events {
			if ev.Kind == core.EventFire {
				t.Fatalf("fired on frame %d, want first volley on frame 16", i)
			}
		}
	}

	res := g.Step(input())
	fired := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventFire {
			fired = true
		}
	}
	if !fired {
		t.Fatal("no volley on frame 16")
	}

	bullets := g.Bullets()
	if len(bullets) != 1 {
		t.Fatalf("len(bullets) = %d, want 1", len(bullets))
	}
	// Spawned at the player's top edge, then advanced once in the same frame.
	if bullets[0].Y != 522 || bullets[0].X != 237 {
		t.Errorf("bullet at (%v, %v), want (237, 522)", bullets[0].X, bullets[0].Y)
	}
	if bullets[0].Damage != 12 {
		t.Errorf("bullet damage = %d, want 12", bullets[0].Damage)
	}
	if g.Player().BulletTimer != 0 {
		t.Errorf("BulletTimer = %d, want 0 after firing", g.Player().BulletTimer)
	}
}

func TestVolleyFan(t *testing.T) {
	cfg := config.DefaultHitPlaneConfig()
	p := newPlayer(cfg)
	p.BulletCount = 3
	p.Level = 2

	bullets := volley(p, cfg.Weapon)
	wantX := []float64{227, 237, 247}
	if len(bullets) != len(wantX) {
		t.Fatalf("len = %d, want %d", len(bullets), len(wantX))
	}
	for i, b := range bullets {
		if b.X != wantX[i] {
			t.Errorf("bullet %d X = %v, want %v", i, b.X, wantX[i])
		}
		if b.Damage != 14 {
			t.Errorf("bullet %d damage = %d, want 14", i, b.Damage)
		}
	}
}

func TestBulletAdvanceAndRemoval(t *testing.T) {
	g := newPlaying(t)
	g.bullets = []Bullet{
		{Entity: Entity{RectF: core.NewRectF(100, 100, 6, 15)}, Speed: 8},
		{Entity: Entity{RectF: core.NewRectF(200, -10, 6, 15)}, Speed: 8},
	}

	g.advanceBullets()

	if len(g.bullets) != 1 {
		t.Fatalf("len(bullets) = %d, want 1", len(g.bullets))
	}
	if g.bullets[0].Y != 92 {
		t.Errorf("Y = %v, want 92", g.bullets[0].Y)
	}
}

func TestEnemyStats(t *testing.T) {
	cfg := config.DefaultHitPlaneConfig().Enemies
	tests := []struct {
		level  int
		hp     int
		speed  float64
		damage int
		size   float64
		color  core.Color
	}{
		{1, 20, 2.2, 15, 44, core.ColorRed},
		{2, 40, 2.4, 20, 48, core.ColorOrange},
		{3, 60, 2.6, 25, 52, core.ColorPurple},
	}

	for _, tt := range tests {
		e := newEnemy(cfg, tt.level, 0, -40)
		if e.HP != tt.hp || e.MaxHP != tt.hp {
			t.Errorf("L%d hp = %d/%d, want %d", tt.level, e.HP, e.MaxHP, tt.hp)
		}
		if !approx(e.Speed, tt.speed) {
			t.Errorf("L%d speed = %v, want %v", tt.level, e.Speed, tt.speed)
		}
		if e.Damage != tt.damage {
			t.Errorf("L%d damage = %d, want %d", tt.level, e.Damage, tt.damage)
		}
		if !approx(e.W, tt.size) || !approx(e.H, tt.size) {
			t.Errorf("L%d size = %vx%v, want %v", tt.level, e.W, e.H, tt.size)
		}
		if e.Color != tt.color {
			t.Errorf("L%d color = %v, want %v", tt.level, e.Color, tt.color)
		}
	}
}

func TestFirstFrameSpawnsEnemy(t *testing.T) {
	g := newPlaying(t)
	g.Step(input())

	enemies := g.Enemies()
	if len(enemies) != 1 {
		t.Fatalf("len(enemies) = %d, want 1", len(enemies))
	}
	e := enemies[0]
	if e.Level != 1 {
		t.Errorf("Level = %d, want 1 while the player is level 1", e.Level)
	}
	if e.X < 0 || e.X >= 440 {
		t.Errorf("X = %v, want in [0, 440)", e.X)
	}
	if !approx(e.Y, -40+2.2) {
		t.Errorf("Y = %v, want %v", e.Y, -40+2.2)
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score int
		ramp  bool
		want  int
	}{
		{0, true, 60},
		{499, true, 60},
		{5000, true, 50},
		{30000, true, 20},
		{30000, false, 60},
	}

	for _, tt := range tests {
		g := newPlaying(t)
		g.cfg.Spawn.Ramp = tt.ramp
		g.score = tt.score
		if got := g.SpawnInterval(); got != tt.want {
			t.Errorf("score %d ramp %v: SpawnInterval() = %d, want %d", tt.score, tt.ramp, got, tt.want)
		}
	}
}

func TestSingleBulletHit(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 1, 100, 100)}
	g.bullets = []Bullet{
		{Entity: Entity{RectF: core.NewRectF(110, 120, 6, 15)}, Speed: 8, Damage: 12},
	}

	g.resolveBulletHits()

	if len(g.bullets) != 0 {
		t.Errorf("len(bullets) = %d, want 0", len(g.bullets))
	}
	if len(g.enemies) != 1 || g.enemies[0].HP != 8 {
		t.Fatalf("enemies = %+v, want one enemy with 8 hp", g.enemies)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
}

func TestKillAwardsScoreAndExp(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 1, 100, 100)}
	g.bullets = []Bullet{
		{Entity: Entity{RectF: core.NewRectF(110, 120, 6, 15)}, Damage: 12},
		{Entity: Entity{RectF: core.NewRectF(120, 120, 6, 15)}, Damage: 12},
	}

	g.resolveBulletHits()

	if len(g.enemies) != 0 {
		t.Errorf("len(enemies) = %d, want 0", len(g.enemies))
	}
	if len(g.bullets) != 0 {
		t.Errorf("len(bullets) = %d, want 0", len(g.bullets))
	}
	if g.score != 10 || g.player.Exp != 10 {
		t.Errorf("score/exp = %d/%d, want 10/10", g.score, g.player.Exp)
	}
}

func TestBulletHitsOnlyLivingEnemies(t *testing.T) {
	g := newPlaying(t)
	a := newEnemy(g.cfg.Enemies, 1, 100, 100)
	b := newEnemy(g.cfg.Enemies, 1, 110, 100)
	a.HP, b.HP = 10, 10
	g.enemies = []Enemy{a, b}

	// All three bullets overlap both enemies.
	g.bullets = []Bullet{
		{Entity: Entity{RectF: core.NewRectF(120, 110, 6, 15)}, Damage: 12},
		{Entity: Entity{RectF: core.NewRectF(122, 110, 6, 15)}, Damage: 12},
		{Entity: Entity{RectF: core.NewRectF(124, 110, 6, 15)}, Damage: 12},
	}

	g.resolveBulletHits()

	if len(g.enemies) != 0 {
		t.Errorf("len(enemies) = %d, want 0", len(g.enemies))
	}
	if len(g.bullets) != 1 || g.bullets[0].X != 124 {
		t.Errorf("bullets = %+v, want only the third bullet left", g.bullets)
	}
	if g.score != 20 {
		t.Errorf("score = %d, want 20", g.score)
	}
}

func TestLevelUp(t *testing.T) {
	lv := config.DefaultHitPlaneConfig().Leveling

	t.Run("leftover exp", func(t *testing.T) {
		p := newPlayer(config.DefaultHitPlaneConfig())
		p.Exp = 95
		if !p.gainExp(10, lv, 5) {
			t.Fatal("gainExp() = false, want level-up")
		}
		if p.Level != 2 || p.Exp != 5 || p.ExpToNextLevel != 150 {
			t.Errorf("level/exp/next = %d/%d/%d, want 2/5/150", p.Level, p.Exp, p.ExpToNextLevel)
		}
		// Level 2 grants bonus max hp after the refill.
		if p.MaxHP != 170 || p.HP != 120 {
			t.Errorf("hp = %d/%d, want 120/170", p.HP, p.MaxHP)
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		p := newPlayer(config.DefaultHitPlaneConfig())
		if p.gainExp(99, lv, 5) {
			t.Error("gainExp() = true, want no level-up")
		}
		if p.Level != 1 || p.Exp != 99 {
			t.Errorf("level/exp = %d/%d, want 1/99", p.Level, p.Exp)
		}
	})

	t.Run("upgrade cycle", func(t *testing.T) {
		p := newPlayer(config.DefaultHitPlaneConfig())
		p.Level = 2
		p.gainExp(p.ExpToNextLevel, lv, 5)
		if p.Level != 3 || p.BulletCount != 2 {
			t.Errorf("level 3: bulletCount = %d, want 2", p.BulletCount)
		}
		p.gainExp(p.ExpToNextLevel, lv, 5)
		if p.Level != 4 || p.BulletSpeed != 9 {
			t.Errorf("level 4: bulletSpeed = %v, want 9", p.BulletSpeed)
		}
	})

	t.Run("bullet cap", func(t *testing.T) {
		p := newPlayer(config.DefaultHitPlaneConfig())
		p.Level = 5
		p.BulletCount = 5
		p.gainExp(p.ExpToNextLevel, lv, 5)
		if p.BulletCount != 5 {
			t.Errorf("bulletCount = %d, want capped at 5", p.BulletCount)
		}
	})

	t.Run("single step", func(t *testing.T) {
		p := newPlayer(config.DefaultHitPlaneConfig())
		p.gainExp(1000, lv, 5)
		if p.Level != 2 || p.Exp != 900 {
			t.Errorf("level/exp = %d/%d, want 2/900", p.Level, p.Exp)
		}
	})
}

func TestEnemyHitsPlayer(t *testing.T) {
	g := newPlaying(t)
	p := g.Player()
	g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 1, p.X, p.Y-10)}

	res := g.Step(input())

	if g.Player().HP != 85 {
		t.Errorf("HP = %d, want 85", g.Player().HP)
	}
	for _, e := range g.Enemies() {
		if e.Intersects(g.Player().RectF) {
			t.Error("ramming enemy was not removed")
		}
	}
	if res.State.GameOver {
		t.Error("GameOver = true with hp left")
	}
}

func TestEnemyLeavesPlayfield(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		kept int
	}{
		{"above bottom edge", 599, 1},
		{"on bottom edge", 600, 1},
		{"past bottom edge", 601, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newPlaying(t)
			g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 1, 0, tt.y)}

			g.resolvePlayerHits()

			if len(g.enemies) != tt.kept {
				t.Errorf("len(enemies) = %d, want %d", len(g.enemies), tt.kept)
			}
			if g.player.HP != 100 {
				t.Errorf("HP = %d, want 100", g.player.HP)
			}
		})
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newPlaying(t)
	g.player.HP = 10
	g.score = 120
	p := g.Player()
	g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 1, p.X, p.Y)}

	res := g.Step(input())
	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, want GAME_OVER", g.Phase())
	}

	// Ignored until restart.
	frozen := g.Snapshot()
	g.Step(input(core.ActionLeft))
	if after := g.Snapshot(); after.Hash() != frozen.Hash() {
		t.Error("state changed after game over")
	}

	res = g.Step(input(core.ActionRestart))
	if g.Phase() != PhasePlaying || res.State.GameOver {
		t.Fatalf("Phase = %v after restart, want PLAYING", g.Phase())
	}
	p = g.Player()
	if g.score != 0 || p.HP != 100 || p.Level != 1 || p.X != 215 {
		t.Errorf("restart kept state: score %d player %+v", g.score, p)
	}
	if len(g.Enemies()) != 0 || len(g.Bullets()) != 0 || g.frame != 0 {
		t.Error("restart kept entities or frame counter")
	}
}

func TestEntityViewsSurviveRestart(t *testing.T) {
	g := newPlaying(t)
	g.enemies = []Enemy{newEnemy(g.cfg.Enemies, 2, 40, 100)}
	g.bullets = []Bullet{{Entity: Entity{RectF: core.NewRectF(50, 300, 6, 15)}, Speed: 8}}
	enemies, bullets := g.Enemies(), g.Bullets()

	g.player.HP = 0
	g.phase = PhaseGameOver
	g.Step(input(core.ActionRestart))
	for i := 0; i < 120; i++ {
		g.Step(input())
	}

	if len(enemies) != 1 || enemies[0].Level != 2 || enemies[0].X != 40 {
		t.Errorf("held enemies changed: %+v", enemies)
	}
	if len(bullets) != 1 || bullets[0].X != 50 || bullets[0].Y != 300 {
		t.Errorf("held bullets changed: %+v", bullets)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newPlaying(t)
	for i := 0; i < 5; i++ {
		g.Step(input())
	}

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused || g.Phase() != PhasePaused {
		t.Fatalf("Phase = %v, want PAUSE", g.Phase())
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionRight))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("simulation advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase = %v, want PLAYING", g.Phase())
	}

	g.Step(input(core.ActionPause))
	g.Step(input(core.ActionRestart))
	if g.Phase() != PhasePlaying || g.frame != 0 {
		t.Errorf("restart from pause: phase %v frame %d", g.Phase(), g.frame)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 < 20:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultHitPlaneConfig())
		g.Reset(testRuntime)
		for _, in := range inputs {
			if res := g.Step(in); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Frame != s2.Frame {
		t.Errorf("Determinism failed: score %d/%d frame %d/%d", s1.Score, s2.Score, s1.Frame, s2.Frame)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultHitPlaneConfig())
	g.Reset(testRuntime)

	screen := core.NewScreen(48, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "HIT PLANE") {
		t.Error("start screen title missing")
	}

	g.Step(input(core.ActionConfirm))
	for i := 0; i < 20; i++ {
		g.Step(input())
	}
	before := g.Snapshot()
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD score missing")
	}
	if !strings.ContainsRune(out, PlayerGlyph) {
		t.Error("player glyph missing")
	}
	if after := g.Snapshot(); after.Hash() != before.Hash() {
		t.Error("Render changed game state")
	}
}

package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

type fakeGame struct {
	resets int
	seeds  []int64
	steps  int
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{}
}

func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Surface() (float64, float64) { return 100, 50 }
func (g *fakeGame) State() core.GameState       { return g.state }
func (g *fakeGame) Draw(core.Canvas)            {}
func (g *fakeGame) Render(*core.Screen)         {}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewResetsGame(t *testing.T) {
	g := &fakeGame{}
	s := New(g, Deps{}, core.RuntimeConfig{Seed: 7})

	if g.resets != 1 || g.seeds[0] != 7 {
		t.Fatalf("resets=%d seeds=%v, want one reset with seed 7", g.resets, g.seeds)
	}
	if s.Config().TickRate != core.DefaultConfig().TickRate {
		t.Errorf("TickRate = %d, want default", s.Config().TickRate)
	}
}

func TestNewPicksSeed(t *testing.T) {
	g := &fakeGame{}
	New(g, Deps{}, core.RuntimeConfig{})
	if g.seeds[0] == 0 {
		t.Error("zero seed passed to the game")
	}
}

func TestTickSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	s := New(g, Deps{Store: store}, core.RuntimeConfig{Seed: 1})

	g.state = core.GameState{Score: 120, Level: 3, GameOver: true}
	s.Tick(frame())
	s.Tick(frame())

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Level != 3 {
		t.Errorf("saved %+v, want score 120 level 3", scores[0])
	}
}

func TestTickSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	s := New(g, Deps{Store: store}, core.RuntimeConfig{Seed: 1})

	g.state = core.GameState{GameOver: true}
	s.Tick(frame())

	high, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, want 0", high)
	}
}

func TestTickRestartReseeds(t *testing.T) {
	g := &fakeGame{}
	s := New(g, Deps{}, core.RuntimeConfig{Seed: 1})
	s.now = func() time.Time { return time.Unix(0, 99) }

	// Restart is passed through while the game is running.
	s.Tick(frame(core.ActionRestart))
	if g.resets != 1 || g.steps != 1 {
		t.Fatalf("resets=%d steps=%d, want 1 and 1", g.resets, g.steps)
	}

	g.state.GameOver = true
	s.Tick(frame())
	s.Tick(frame(core.ActionRestart))

	if g.resets != 2 {
		t.Fatalf("resets = %d, want 2", g.resets)
	}
	if g.seeds[1] != 99 {
		t.Errorf("restart seed = %d, want 99", g.seeds[1])
	}
	if s.State().GameOver {
		t.Error("state still over after restart")
	}
}

func TestTickTogglesTheme(t *testing.T) {
	prev := theme.DetectDark
	theme.DetectDark = func() bool { return true }
	t.Cleanup(func() { theme.DetectDark = prev })

	store := openStore(t)
	settings, err := theme.Load(store)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s := New(&fakeGame{}, Deps{Store: store, Theme: settings}, core.RuntimeConfig{Seed: 1})

	s.Tick(frame(core.ActionTheme))
	if got := s.Palette().Mode; got != theme.Light {
		t.Fatalf("palette mode = %v, want light", got)
	}
	saved, ok, err := store.Setting(theme.SettingKey)
	if err != nil || !ok || saved != string(theme.Light) {
		t.Errorf("Setting() = %q, %v, %v; want light saved", saved, ok, err)
	}
}

package scenes

import (
	"path/filepath"
	"testing"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
	"github.com/gonewx/archery/pkg/render"
)

func newTestScene(t *testing.T, opts PlaySceneOptions) *PlayScene {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Pickup.SpawnRatePerSecond = 0
	g, err := game.NewGame(game.Options{
		Tuning:     tuning,
		Difficulty: config.DifficultyNormal,
		Width:      960,
		Height:     640,
		Seed:       1,
		Clock:      game.NewManualClock(),
		HighScores: &game.MemoryHighScoreStore{},
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return NewPlayScene(g, opts)
}

// buttonCenter 返回指定 HUD 按钮的中心点
func buttonCenter(t *testing.T, s *PlayScene, id render.ButtonID) (int, int) {
	t.Helper()
	snap := s.game.Snapshot()
	for _, b := range render.HUDButtons(&snap) {
		if b.ID == id {
			return int(b.X + b.W/2), int(b.Y + b.H/2)
		}
	}
	t.Fatalf("button %s not found", id)
	return 0, 0
}

// tap 模拟一次完整的按下 / 松开手势
func tap(s *PlayScene, x, y int) {
	s.handlePointer(PointerInfo{Phase: PointerPressed, X: x, Y: y})
	s.handlePointer(PointerInfo{Phase: PointerReleased, X: x, Y: y})
}

func TestPlaySceneStartButton(t *testing.T) {
	s := newTestScene(t, PlaySceneOptions{})

	x, y := buttonCenter(t, s, render.ButtonStart)
	tap(s, x, y)

	r := s.game.Round()
	if r.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want Running", r.Phase())
	}
	// 按钮手势不应消耗箭
	if r.Arrows() != 14 {
		t.Errorf("arrows = %d, want 14", r.Arrows())
	}
}

func TestPlaySceneFieldGestureFires(t *testing.T) {
	s := newTestScene(t, PlaySceneOptions{})
	s.game.Start()

	s.handlePointer(PointerInfo{Phase: PointerPressed, X: 400, Y: 300})
	if !s.game.Snapshot().Charging {
		t.Fatal("expected charging after press in the play field")
	}
	s.handlePointer(PointerInfo{Phase: PointerHeld, X: 420, Y: 280, Moved: true})
	s.handlePointer(PointerInfo{Phase: PointerReleased, X: 420, Y: 280})

	snap := s.game.Snapshot()
	if snap.Charging {
		t.Error("expected charge to end on release")
	}
	if snap.ArrowsLeft != 13 {
		t.Errorf("arrows = %d, want 13", snap.ArrowsLeft)
	}
	if len(snap.Arrows) != 1 {
		t.Errorf("arrow entities = %d, want 1", len(snap.Arrows))
	}
}

func TestPlaySceneButtonGestureDoesNotFire(t *testing.T) {
	s := newTestScene(t, PlaySceneOptions{})
	s.game.Start()

	x, y := buttonCenter(t, s, render.ButtonPause)
	s.handlePointer(PointerInfo{Phase: PointerPressed, X: x, Y: y})
	// 拖出按钮到场地中再松开
	s.handlePointer(PointerInfo{Phase: PointerHeld, X: 300, Y: 300, Moved: true})
	s.handlePointer(PointerInfo{Phase: PointerReleased, X: 300, Y: 300})

	if s.game.Round().Phase() != game.PhasePaused {
		t.Errorf("phase = %v, want Paused", s.game.Round().Phase())
	}
	if s.game.Round().Arrows() != 14 {
		t.Errorf("arrows = %d, want 14", s.game.Round().Arrows())
	}
}

func TestPlaySceneDifficultyButton(t *testing.T) {
	tests := []struct {
		name        string
		running     bool
		wantCurrent config.Difficulty
		wantPending bool
	}{
		{"空闲时立即生效", false, config.DifficultyHard, false},
		{"回合中推迟", true, config.DifficultyNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, PlaySceneOptions{})
			if tt.running {
				s.game.Start()
			}

			x, y := buttonCenter(t, s, render.ButtonDifficulty)
			tap(s, x, y)

			r := s.game.Round()
			if r.Difficulty() != tt.wantCurrent {
				t.Errorf("difficulty = %v, want %v", r.Difficulty(), tt.wantCurrent)
			}
			pending, ok := r.PendingDifficulty()
			if ok != tt.wantPending {
				t.Fatalf("pending = %v, want %v", ok, tt.wantPending)
			}
			if ok && pending != config.DifficultyHard {
				t.Errorf("pending difficulty = %v, want Hard", pending)
			}
		})
	}
}

func TestPlaySceneSelectDifficultyRemembersSetting(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	s := newTestScene(t, PlaySceneOptions{Settings: settings})

	s.selectDifficulty(config.DifficultyEasy)

	if got := settings.GetSettings().Difficulty; got != config.DifficultyEasy {
		t.Errorf("remembered difficulty = %v, want Easy", got)
	}
}

func TestPlaySceneSaveOnExitWritesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	s := newTestScene(t, PlaySceneOptions{RecordPath: path, Seed: 1})

	x, y := buttonCenter(t, s, render.ButtonStart)
	tap(s, x, y)
	s.game.Step(1.0 / 60)
	s.handlePointer(PointerInfo{Phase: PointerPressed, X: 500, Y: 300})
	s.game.Step(1.0 / 60)
	s.handlePointer(PointerInfo{Phase: PointerReleased, X: 500, Y: 300})

	if !s.SaveOnExit() {
		t.Fatal("SaveOnExit returned false")
	}

	script, err := game.LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}
	if len(script.Frames) != 2 {
		t.Errorf("frames = %d, want 2", len(script.Frames))
	}
	var types []game.ActionType
	for _, a := range script.Actions {
		types = append(types, a.Type)
	}
	want := []game.ActionType{game.ActionStart, game.ActionPointerDown, game.ActionPointerUp}
	if len(types) != len(want) {
		t.Fatalf("actions = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("action %d = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestPlaySceneResize(t *testing.T) {
	s := newTestScene(t, PlaySceneOptions{})
	s.Resize(480, 320)

	if got := s.game.Layout().Width; got != 480 {
		t.Errorf("layout width = %.0f, want 480", got)
	}
	if got := s.snapshot.Layout.Height; got != 320 {
		t.Errorf("snapshot height = %.0f, want 320", got)
	}
}

func TestPlaySceneQuit(t *testing.T) {
	s := newTestScene(t, PlaySceneOptions{})
	var scene Scene = s
	q, ok := scene.(Quitter)
	if !ok {
		t.Fatal("PlayScene should implement Quitter")
	}
	if q.QuitRequested() {
		t.Fatal("quit requested before any input")
	}

	s.game.Start()
	s.requestQuit()
	if !q.QuitRequested() {
		t.Error("quit not requested after Q")
	}
	if s.game.Round().Phase() != game.PhaseRunning {
		t.Errorf("phase = %v, quitting should not touch the round", s.game.Round().Phase())
	}
}

package game

import (
	"errors"
	"testing"

	"github.com/gonewx/archery/pkg/config"
)

func newTestRound(store HighScoreStore) *Round {
	return NewRound(config.DefaultDifficulties(), store, config.DifficultyNormal)
}

func TestRoundStartAppliesPreset(t *testing.T) {
	tests := []struct {
		name       string
		difficulty config.Difficulty
		arrows     int
		time       int
	}{
		{"简单", config.DifficultyEasy, 20, 80},
		{"普通", config.DifficultyNormal, 14, 60},
		{"困难", config.DifficultyHard, 10, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(nil)
			r.SelectDifficulty(tt.difficulty)
			r.AddScore(30)
			r.Start()

			if r.Phase() != PhaseRunning {
				t.Errorf("phase = %s, want Running", r.Phase())
			}
			if r.Score() != 0 {
				t.Errorf("score = %d, want 0", r.Score())
			}
			if r.Arrows() != tt.arrows {
				t.Errorf("arrows = %d, want %d", r.Arrows(), tt.arrows)
			}
			if r.DisplayTime() != tt.time {
				t.Errorf("time = %d, want %d", r.DisplayTime(), tt.time)
			}
		})
	}
}

func TestRoundTogglePause(t *testing.T) {
	r := newTestRound(nil)

	if r.TogglePause() {
		t.Error("pause should be ignored while idle")
	}

	r.Start()
	if !r.TogglePause() || r.Phase() != PhasePaused {
		t.Fatalf("phase = %s, want Paused", r.Phase())
	}

	before := r.TimeLeft()
	r.Tick(1)
	if r.TimeLeft() != before {
		t.Error("time must not decrease while paused")
	}

	if !r.TogglePause() || r.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, want Running", r.Phase())
	}
}

func TestRoundDifficultyDeferral(t *testing.T) {
	r := newTestRound(nil)

	// 未开始时立即生效
	if !r.SelectDifficulty(config.DifficultyEasy) {
		t.Error("difficulty should apply immediately while idle")
	}
	if r.Arrows() != 20 || r.Difficulty() != config.DifficultyEasy {
		t.Errorf("arrows=%d difficulty=%s, want 20 Easy", r.Arrows(), r.Difficulty())
	}

	r.Start()
	r.ConsumeArrow()

	// 进行中推迟
	if r.SelectDifficulty(config.DifficultyHard) {
		t.Error("difficulty should be deferred while running")
	}
	if r.Arrows() != 19 || r.Difficulty() != config.DifficultyEasy {
		t.Errorf("running round changed: arrows=%d difficulty=%s", r.Arrows(), r.Difficulty())
	}
	if d, ok := r.PendingDifficulty(); !ok || d != config.DifficultyHard {
		t.Errorf("pending = %s, %v; want Hard, true", d, ok)
	}

	r.Restart()
	if r.Difficulty() != config.DifficultyHard || r.Arrows() != 10 {
		t.Errorf("after restart: difficulty=%s arrows=%d, want Hard 10", r.Difficulty(), r.Arrows())
	}
	if _, ok := r.PendingDifficulty(); ok {
		t.Error("pending difficulty should be cleared")
	}
}

func TestRoundTimeMonotonic(t *testing.T) {
	r := newTestRound(nil)
	r.Start()

	prev := r.TimeLeft()
	for i := 0; i < 4000 && r.Phase() == PhaseRunning; i++ {
		r.Tick(0.05)
		if r.TimeLeft() > prev {
			t.Fatalf("time increased from %v to %v", prev, r.TimeLeft())
		}
		prev = r.TimeLeft()
	}

	if r.Phase() != PhaseEnded {
		t.Fatalf("phase = %s, want Ended", r.Phase())
	}
	if r.TimeLeft() != 0 || r.DisplayTime() != 0 {
		t.Errorf("time after end = %v (%d), want 0", r.TimeLeft(), r.DisplayTime())
	}
}

func TestRoundDisplayTime(t *testing.T) {
	r := newTestRound(nil)
	r.Start()

	r.Tick(0.3)
	if r.DisplayTime() != 60 {
		t.Errorf("59.7s should display as 60, got %d", r.DisplayTime())
	}
	r.Tick(1.0)
	if r.DisplayTime() != 59 {
		t.Errorf("58.7s should display as 59, got %d", r.DisplayTime())
	}
}

func TestRoundHighScore(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		score     int
		wantHigh  int
		newRecord bool
		saves     int
	}{
		{"刷新纪录", 100, 150, 150, true, 1},
		{"未超过纪录", 100, 50, 100, false, 0},
		{"持平不算", 100, 100, 100, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MemoryHighScoreStore{Score: tt.stored}
			r := newTestRound(store)
			r.Start()
			r.AddScore(tt.score)

			result, ended := r.Tick(61)
			if !ended {
				t.Fatal("round should end")
			}
			if result.HighScore != tt.wantHigh || result.NewRecord != tt.newRecord || result.Score != tt.score {
				t.Errorf("result = %+v", result)
			}
			if store.Score != tt.wantHigh || store.Saves != tt.saves {
				t.Errorf("store = %+v, want Score=%d Saves=%d", store, tt.wantHigh, tt.saves)
			}

			// 结束后再 Tick 不会重复结算
			if _, again := r.Tick(1); again {
				t.Error("ended round must not end again")
			}
		})
	}
}

func TestRoundHighScoreSaveFailure(t *testing.T) {
	store := &MemoryHighScoreStore{SaveErr: errors.New("read-only")}
	r := newTestRound(store)
	r.Start()
	r.AddScore(70)

	result, _ := r.Tick(100)
	if !result.NewRecord || r.HighScore() != 70 {
		t.Errorf("in-memory high score should still update, got %d", r.HighScore())
	}
}

func TestRoundConsumeArrowFloor(t *testing.T) {
	r := newTestRound(nil)
	r.Start()

	for i := 0; i < 20; i++ {
		r.ConsumeArrow()
	}
	if r.Arrows() != 0 {
		t.Errorf("arrows = %d, want 0", r.Arrows())
	}
}

package game

import (
	"testing"

	"github.com/gonewx/archery/pkg/config"
)

func newHUDSnapshot(phase Phase) *Snapshot {
	return &Snapshot{
		Phase:      phase,
		Difficulty: config.DifficultyNormal,
		Score:      120,
		HighScore:  300,
		ArrowsLeft: 9,
		Time:       42,
	}
}

func equalLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSnapshotHUDLines(t *testing.T) {
	s := newHUDSnapshot(PhaseRunning)
	equalLines(t, s.HUDLines(), []string{"Score: 120", "High: 300", "Arrows: 9", "Time: 42s", "Difficulty: Normal"})

	s.HasPending = true
	s.PendingDifficulty = config.DifficultyEasy
	if got := s.HUDLines()[4]; got != "Difficulty: Normal -> Easy" {
		t.Errorf("pending line = %q", got)
	}
}

func TestSnapshotOverlayLines(t *testing.T) {
	tests := []struct {
		name   string
		phase  Phase
		result *RoundResult
		want   []string
	}{
		{"进行中无提示", PhaseRunning, nil, nil},
		{"暂停", PhasePaused, nil, []string{"Paused"}},
		{"结束", PhaseEnded, &RoundResult{Score: 150, HighScore: 150, NewRecord: true},
			[]string{"Time's up!", "Score: 150", "High: 150", "New record!"}},
		{"结束未破纪录", PhaseEnded, &RoundResult{Score: 40, HighScore: 150},
			[]string{"Time's up!", "Score: 40", "High: 150"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHUDSnapshot(tt.phase)
			s.Result = tt.result
			equalLines(t, s.OverlayLines(false), tt.want)
		})
	}

	if got := newHUDSnapshot(PhaseIdle).OverlayLines(true)[1]; got != "Press Start, then Tap and hold to draw the bow" {
		t.Errorf("touch hint = %q", got)
	}
}

func TestSnapshotCollectsEntities(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Start()
	g.PointerDown(400, 300)
	g.PointerUp(400, 300)

	s := g.Snapshot()
	if s.Phase != PhaseRunning {
		t.Fatalf("phase = %v, want Running", s.Phase)
	}
	if len(s.Arrows) != 1 || s.Arrows[0].Stuck {
		t.Errorf("arrows = %+v, want one flying arrow", s.Arrows)
	}
	if s.Target.Radius != 57 || len(s.Target.Rings) != 4 {
		t.Errorf("target = %+v, want radius 57 with 4 rings", s.Target)
	}
	if s.StuckArrows() != 0 {
		t.Errorf("StuckArrows = %d, want 0", s.StuckArrows())
	}
	if s.Layout.Width != 960 {
		t.Errorf("layout width = %.0f, want 960", s.Layout.Width)
	}
}

package sound

import (
	"testing"

	"github.com/gonewx/archery/pkg/game"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   game.Event
		want Cue
		ok   bool
	}{
		{"开局", game.EventRoundStarted{}, CueStart, true},
		{"放箭", game.EventArrowFired{}, CueRelease, true},
		{"命中", game.EventTargetHit{Points: 30}, CueHit, true},
		{"靶心", game.EventTargetHit{Points: 100, Bullseye: true}, CueBullseye, true},
		{"补给", game.EventPickupCollected{Arrows: 2}, CuePickup, true},
		{"结束", game.EventRoundEnded{}, CueRoundOver, true},
		{"新纪录", game.EventRoundEnded{NewRecord: true}, CueNewRecord, true},
		{"暂停无音效", game.EventPauseToggled{Paused: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("CueFor(%T) = %v, %v; want %v, %v", tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRenderPCMLength(t *testing.T) {
	// 110ms @ 44100Hz = 4851 帧，每帧 2 声道 × 2 字节
	pcm := RenderPCM(CueHit, 1)
	if len(pcm) != 4851*4 {
		t.Errorf("len = %d, want %d", len(pcm), 4851*4)
	}
}

func TestRenderPCMSilent(t *testing.T) {
	pcm := RenderPCM(CueBullseye, 0)
	if len(pcm) == 0 {
		t.Fatal("silent cue should still have a duration")
	}
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("byte %d = %d, want silence", i, b)
		}
	}
}

func TestBank(t *testing.T) {
	bank := NewBank(0.8)
	for _, cue := range AllCues {
		if len(bank.PCM(cue)) == 0 {
			t.Errorf("cue %s rendered empty", cue)
		}
		if len(bank.PCM(cue))%4 != 0 {
			t.Errorf("cue %s is not whole stereo frames", cue)
		}
	}
}

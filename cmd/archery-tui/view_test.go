package main

import (
	"math"
	"strings"
	"testing"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
)

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(96, 33, 960, 640)

	tests := []struct {
		name     string
		col, row int
	}{
		{"左上角", 0, hudRows},
		{"中间", 48, 16},
		{"右下角", 95, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.toWorld(tt.col, tt.row)
			col, row := v.toCell(x, y)
			if col != tt.col || row != tt.row {
				t.Errorf("toCell(toWorld(%d, %d)) = (%d, %d)", tt.col, tt.row, col, row)
			}
			if !v.inside(col, row) {
				t.Errorf("cell (%d, %d) should be inside", col, row)
			}
		})
	}
}

func TestViewportInside(t *testing.T) {
	v := newViewport(80, 25, 960, 640)
	if v.inside(0, 0) {
		t.Error("status row should not be part of the play area")
	}
	if v.inside(80, 5) || v.inside(-1, 5) || v.inside(5, 25) {
		t.Error("out-of-range cells reported inside")
	}
	if !newViewport(80, 25, 960, 640).valid() || newViewport(80, 1, 960, 640).valid() {
		t.Error("valid() mismatch")
	}
}

func TestArrowGlyph(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  rune
	}{
		{"水平向右", 0, '-'},
		{"水平向左", math.Pi, '-'},
		{"向右下", math.Pi / 4, '\\'},
		{"向右上", -math.Pi / 4, '/'},
		{"竖直向下", math.Pi / 2, '|'},
		{"竖直向上", -math.Pi / 2, '|'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arrowGlyph(tt.angle); got != tt.want {
				t.Errorf("arrowGlyph(%.2f) = %q, want %q", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRingIndex(t *testing.T) {
	rings := []float64{57, 41, 27, 15}
	tests := []struct {
		d    float64
		want int
	}{
		{0, 3},
		{15, 3},
		{20, 2},
		{41, 1},
		{57, 0},
		{58, -1},
	}
	for _, tt := range tests {
		if got := ringIndex(rings, tt.d); got != tt.want {
			t.Errorf("ringIndex(%.0f) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	s := &game.Snapshot{Phase: game.PhaseRunning, Difficulty: config.DifficultyHard, Score: 60, ArrowsLeft: 3, Time: 7}
	line := statusLine(s)
	for _, want := range []string{"Score: 60", "Arrows: 3", "Time: 7s", "Difficulty: Hard", "[Running]"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
}

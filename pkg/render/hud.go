package render

import (
	"fmt"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
)

// ButtonID HUD 按钮标识
type ButtonID int

const (
	ButtonStart ButtonID = iota
	ButtonPause
	ButtonRestart
	ButtonDifficulty
)

// String 返回按钮名称（用于日志）
func (b ButtonID) String() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonPause:
		return "Pause"
	case ButtonRestart:
		return "Restart"
	case ButtonDifficulty:
		return "Difficulty"
	default:
		return fmt.Sprintf("ButtonID(%d)", int(b))
	}
}

// HUD 面板布局常量（逻辑像素）
const (
	hudPadding      = 16.0
	hudLineHeight   = 20.0
	hudButtonHeight = 32.0
	hudButtonGap    = 10.0
	hudStatLines    = 5
)

// Button HUD 按钮
type Button struct {
	ID      ButtonID
	Label   string
	X, Y    float64
	W, H    float64
	Enabled bool
}

// Contains 判断点是否落在按钮内
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// HUDPanel 返回 HUD 面板的左上角和宽度（位于右侧排除区内）
func HUDPanel(l *config.Layout) (x, y, w float64) {
	return l.HUDLeft + hudPadding, hudPadding, l.Width - l.HUDLeft - 2*hudPadding
}

// HUDButtons 按当前状态计算 HUD 按钮
//
// 按钮全部位于 HUD 排除区内，按下它们不会触发蓄力。
func HUDButtons(s *game.Snapshot) []Button {
	px, py, pw := HUDPanel(&s.Layout)
	y := py + hudStatLines*hudLineHeight + hudPadding

	pauseLabel := "Pause"
	if s.Phase == game.PhasePaused {
		pauseLabel = "Resume"
	}
	next := s.Difficulty.Next()
	if s.HasPending {
		next = s.PendingDifficulty.Next()
	}

	specs := []struct {
		id      ButtonID
		label   string
		enabled bool
	}{
		{ButtonStart, "Start", s.Phase == game.PhaseIdle || s.Phase == game.PhaseEnded},
		{ButtonPause, pauseLabel, s.Phase == game.PhaseRunning || s.Phase == game.PhasePaused},
		{ButtonRestart, "Restart", true},
		{ButtonDifficulty, fmt.Sprintf("Level: %s", next), true},
	}

	buttons := make([]Button, 0, len(specs))
	for _, spec := range specs {
		buttons = append(buttons, Button{
			ID:      spec.id,
			Label:   spec.label,
			X:       px,
			Y:       y,
			W:       pw,
			H:       hudButtonHeight,
			Enabled: spec.enabled,
		})
		y += hudButtonHeight + hudButtonGap
	}
	return buttons
}

// HitButton 返回 (x, y) 处的可用按钮
func HitButton(buttons []Button, x, y float64) (ButtonID, bool) {
	for _, b := range buttons {
		if b.Enabled && b.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}

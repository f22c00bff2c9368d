// Package scenes 提供 ebiten 场景：输入映射、音效播放和渲染调度
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic.
	// deltaTime is the nominal frame time in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在游戏窗口关闭时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}

// Resizable 是一个可选接口，视口尺寸变化时被调用
type Resizable interface {
	Resize(width, height int)
}

// Quitter 是一个可选接口，场景请求退出时由 App 结束主循环
type Quitter interface {
	QuitRequested() bool
}

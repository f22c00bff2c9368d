package game

import "github.com/gonewx/archery/pkg/config"

// Event 游戏向外部（渲染、音效、终端前端）广播的事件
// 观察者在 Step 或输入处理过程中被同步调用，不应阻塞
type Event interface {
	isEvent()
}

// EventRoundStarted 回合开始（Start 或 Restart）
type EventRoundStarted struct {
	Difficulty config.Difficulty
	Arrows     int
	TimeLimit  float64
}

// EventRoundEnded 时间耗尽，回合结束
type EventRoundEnded struct {
	Score     int
	HighScore int
	NewRecord bool
}

// EventPauseToggled 暂停状态切换
type EventPauseToggled struct {
	Paused bool
}

// EventArrowFired 射出一支箭
type EventArrowFired struct {
	Speed      float64
	Angle      float64
	ArrowsLeft int
}

// EventTargetHit 箭命中靶
type EventTargetHit struct {
	Points   int
	Bullseye bool
	X, Y     float64
}

// EventPickupCollected 拾取补给
type EventPickupCollected struct {
	Arrows int
	X, Y   float64
}

func (EventRoundStarted) isEvent()    {}
func (EventRoundEnded) isEvent()      {}
func (EventPauseToggled) isEvent()    {}
func (EventArrowFired) isEvent()      {}
func (EventTargetHit) isEvent()       {}
func (EventPickupCollected) isEvent() {}

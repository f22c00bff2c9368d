package game

import "time"

// Clock 提供单调递增的时间（秒）
// Game.Advance 用它计算两帧之间的步长，测试和回放注入 ManualClock
type Clock interface {
	Now() float64
}

// RealClock 基于系统单调时钟
type RealClock struct {
	start time.Time
}

// NewRealClock 创建以当前时刻为零点的时钟
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Now 返回自创建以来经过的秒数
func (c *RealClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock 手动推进的时钟
type ManualClock struct {
	now float64
}

// NewManualClock 创建从 0 开始的手动时钟
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now 返回当前时间
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance 前进 dt 秒
func (c *ManualClock) Advance(dt float64) {
	c.now += dt
}

// Set 直接设置当前时间
func (c *ManualClock) Set(now float64) {
	c.now = now
}

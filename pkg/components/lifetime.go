package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如粒子、飘字)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// Remaining 返回剩余生命（秒），不小于 0
func (l *LifetimeComponent) Remaining() float64 {
	r := l.MaxLifetime - l.CurrentLifetime
	if r < 0 {
		return 0
	}
	return r
}

// Fraction 返回剩余生命占比 [0, 1]，用于淡出
func (l *LifetimeComponent) Fraction() float64 {
	if l.MaxLifetime <= 0 {
		return 0
	}
	return l.Remaining() / l.MaxLifetime
}

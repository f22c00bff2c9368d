package components

// PopupComponent 飘字（得分评价、补给提示）
// 生命周期由 LifetimeComponent 管理
type PopupComponent struct {
	Text string
}

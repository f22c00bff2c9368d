package components

// TargetComponent 移动靶
//
// Rings 与 Points 一一对应，从外环到内环排列：
// 环半径递减，分值递增。修改半径必须通过 SetRadius 重新推导环半径。
type TargetComponent struct {
	Radius float64   // 靶的外半径
	Rings  []float64 // 环半径（外 → 内）
	Points []int     // 每个环的分值（低 → 高）
	Wobble float64   // 命中抖动幅度，每帧衰减
}

// SetRadius 设置靶半径并按比例重新推导各环半径
// 环半径取整（与分值判定的像素精度一致），最外环始终等于 radius 本身
//
// 参数:
//   - radius: 新的外半径
//   - fractions: 各环相对外半径的比例（外 → 内），第一个通常为 1.0
func (t *TargetComponent) SetRadius(radius float64, fractions []float64) {
	t.Radius = radius
	t.Rings = make([]float64, len(fractions))
	for i, f := range fractions {
		if i == 0 {
			t.Rings[i] = radius
			continue
		}
		t.Rings[i] = float64(int(radius * f))
	}
}

// PointsFor 根据到靶心的距离计算得分
// 从最内环向外查找第一个半径 >= dist 的环；恰好落在环边界上算内环
//
// 返回:
//   - int: 得分，超出最外环返回 0
func (t *TargetComponent) PointsFor(dist float64) int {
	for i := len(t.Rings) - 1; i >= 0; i-- {
		if dist <= t.Rings[i] {
			if i < len(t.Points) {
				return t.Points[i]
			}
			return 0
		}
	}
	return 0
}

// MaxPoints 返回最高分值（靶心）
func (t *TargetComponent) MaxPoints() int {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1]
}

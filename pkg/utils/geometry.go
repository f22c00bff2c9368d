package utils

import "math"

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance 两点间距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AimAngle 计算从 (fromX, fromY) 指向 (toX, toY) 的角度，并限制在 [-limit, limit]
// 屏幕坐标系Y轴向下，因此负角度表示向上瞄准
//
// 参数:
//   - fromX, fromY: 起点（弓手位置）
//   - toX, toY: 指针位置
//   - limit: 对称限制角（弧度）
//
// 返回:
//   - float64: 限制后的角度（弧度）
func AimAngle(fromX, fromY, toX, toY, limit float64) float64 {
	return Clamp(math.Atan2(toY-fromY, toX-fromX), -limit, limit)
}

// PointAlong 返回从 (x, y) 沿 angle 方向前进 dist 后的坐标
func PointAlong(x, y, angle, dist float64) (float64, float64) {
	return x + math.Cos(angle)*dist, y + math.Sin(angle)*dist
}

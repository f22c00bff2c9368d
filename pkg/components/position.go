package components

// PositionComponent 实体在屏幕坐标系中的位置（逻辑像素）
// 箭矢的位置是箭杆中点；靶、拾取物、粒子、飘字的位置是其中心
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体速度（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}

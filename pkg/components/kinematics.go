package components

// KinematicsComponent 标记实体参与重力 + 线性阻力积分
//
// 每步积分顺序：
//
//	vy += gravity * dt
//	vx -= vx * DragX * dt
//	vy -= vy * DragY * dt
//	x, y += vx*dt, vy*dt
//
// 箭矢两个轴的阻力相同；粒子水平阻力更大，使爆散效果更快"停住"。
type KinematicsComponent struct {
	DragX float64 // 水平阻力系数（1/秒）
	DragY float64 // 垂直阻力系数（1/秒）
}

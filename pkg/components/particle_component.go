package components

import "image/color"

// ParticleComponent 装饰性粒子
// 命中和拾取时成簇生成，随生命衰减淡出并变大。
// 位置、速度、阻力分别由 Position/Velocity/Kinematics 组件管理，
// 生命周期由 LifetimeComponent 管理。
type ParticleComponent struct {
	Color color.RGBA
}

package systems

import (
	"math"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
)

// KinematicsSystem 对飞行中的箭矢和粒子做重力 + 线性阻力积分
//
// 处理拥有 Position + Velocity + Kinematics 组件的实体。
// 插靶的箭矢跳过积分，由 AnchorSystem 同步位置。
type KinematicsSystem struct {
	em      *ecs.EntityManager
	gravity float64
}

// NewKinematicsSystem 创建运动学系统
//
// 参数:
//   - em: 实体管理器
//   - gravity: 已按视口缩放的重力加速度（像素/秒²）
func NewKinematicsSystem(em *ecs.EntityManager, gravity float64) *KinematicsSystem {
	return &KinematicsSystem{
		em:      em,
		gravity: gravity,
	}
}

// SetGravity 视口变化后更新重力
func (s *KinematicsSystem) SetGravity(gravity float64) {
	s.gravity = gravity
}

// Gravity 返回当前重力
func (s *KinematicsSystem) Gravity() float64 {
	return s.gravity
}

// Update 积分一步
func (s *KinematicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.KinematicsComponent,
	](s.em)

	for _, id := range entities {
		arrow, isArrow := ecs.GetComponent[*components.ArrowComponent](s.em, id)
		if isArrow && arrow.Stuck {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		kin, _ := ecs.GetComponent[*components.KinematicsComponent](s.em, id)

		Integrate(pos, vel, kin, s.gravity, deltaTime)

		if isArrow {
			arrow.Angle = math.Atan2(vel.VY, vel.VX)
		}
	}
}

// Integrate 显式欧拉积分一步
//
// 顺序固定：先加重力，再按各轴阻力衰减速度，最后用新速度推进位置。
// 改变顺序会改变弹道，回放结果也随之改变。
func Integrate(pos *components.PositionComponent, vel *components.VelocityComponent,
	kin *components.KinematicsComponent, gravity, dt float64) {
	vel.VY += gravity * dt
	vel.VX -= vel.VX * kin.DragX * dt
	vel.VY -= vel.VY * kin.DragY * dt
	pos.X += vel.VX * dt
	pos.Y += vel.VY * dt
}

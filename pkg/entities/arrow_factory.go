package entities

import (
	"fmt"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
)

// NewArrow 创建飞行中的箭矢实体
// 箭矢受重力与线性阻力影响，朝向由 KinematicsSystem 每帧按速度方向更新
//
// 参数:
//   - em: 实体管理器
//   - x, y: 箭杆中点的屏幕坐标
//   - vx, vy: 初速度（像素/秒）
//   - angle: 初始朝向（弧度）
//   - drag: 线性阻力系数
//
// 返回:
//   - ecs.EntityID: 创建的箭矢实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewArrow(em *ecs.EntityManager, x, y, vx, vy, angle, drag float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(entityID, &components.KinematicsComponent{DragX: drag, DragY: drag})
	em.AddComponent(entityID, &components.ArrowComponent{
		Angle:   angle,
		StuckTo: ecs.InvalidEntity,
	})

	return entityID, nil
}

package entities

import (
	"fmt"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
)

// NewTarget 创建移动靶实体
// 靶只做水平匀速运动（不受重力），环半径由 radius 与调参中的比例推导
//
// 参数:
//   - em: 实体管理器
//   - x, y: 靶心屏幕坐标
//   - radius: 外半径
//   - vx: 水平速度（负值向左）
//   - tuning: 调参配置（环比例与分值）
//
// 返回:
//   - ecs.EntityID: 创建的靶实体ID
//   - error: 如果创建失败返回错误信息
func NewTarget(em *ecs.EntityManager, x, y, radius, vx float64, tuning *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tuning == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	target := &components.TargetComponent{
		Points: append([]int(nil), tuning.Target.RingPoints...),
	}
	target.SetRadius(radius, tuning.Target.RingFractions)

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: vx})
	em.AddComponent(entityID, target)

	return entityID, nil
}

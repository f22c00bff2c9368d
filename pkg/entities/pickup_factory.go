package entities

import (
	"fmt"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
)

// NewPickup 创建箭矢补给实体
//
// 参数:
//   - em: 实体管理器
//   - x, y: 中心屏幕坐标
//   - vx: 水平漂移速度
//   - bob: 初始浮动相位
//   - arrows: 拾取后增加的箭数
//
// 返回:
//   - ecs.EntityID: 创建的补给实体ID
//   - error: 如果创建失败返回错误信息
func NewPickup(em *ecs.EntityManager, x, y, vx, bob float64, arrows int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.VelocityComponent{VX: vx})
	em.AddComponent(entityID, &components.PickupComponent{Bob: bob, Arrows: arrows})

	return entityID, nil
}

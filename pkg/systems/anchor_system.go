package systems

import (
	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/utils"
)

// AnchorSystem 让插靶的箭矢跟随靶移动
//
// 箭尖 = 锚点位置 + 局部偏移，箭杆中点由箭尖沿朝向反推半个箭长。
// 锚点实体已不存在时箭矢保持原位。
type AnchorSystem struct {
	em     *ecs.EntityManager
	layout *config.Layout
}

// NewAnchorSystem 创建锚定系统
func NewAnchorSystem(em *ecs.EntityManager, layout *config.Layout) *AnchorSystem {
	return &AnchorSystem{em: em, layout: layout}
}

// SetLayout 视口变化后更新布局
func (s *AnchorSystem) SetLayout(layout *config.Layout) {
	s.layout = layout
}

// Update 同步所有插靶箭矢的位置
func (s *AnchorSystem) Update(deltaTime float64) {
	arrows := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ArrowComponent](s.em)

	for _, id := range arrows {
		arrow, _ := ecs.GetComponent[*components.ArrowComponent](s.em, id)
		if !arrow.Stuck || arrow.StuckTo == ecs.InvalidEntity {
			continue
		}

		anchor, ok := ecs.GetComponent[*components.PositionComponent](s.em, arrow.StuckTo)
		if !ok {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		tipX := anchor.X + arrow.LocalX
		tipY := anchor.Y + arrow.LocalY
		pos.X, pos.Y = utils.PointAlong(tipX, tipY, arrow.Angle, -s.layout.ArrowLength/2)
	}
}

package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
)

// TargetSystem 移动靶巡逻
//
// 靶以恒定水平速度移动（不受重力），离开左边缘后从右侧重新进入，
// 并随机选择新的高度。命中抖动每步按固定倍率衰减。
type TargetSystem struct {
	em     *ecs.EntityManager
	rng    *rand.Rand
	layout *config.Layout
	tuning *config.TargetTuning
}

// NewTargetSystem 创建靶系统
func NewTargetSystem(em *ecs.EntityManager, rng *rand.Rand, layout *config.Layout, tuning *config.TargetTuning) *TargetSystem {
	return &TargetSystem{
		em:     em,
		rng:    rng,
		layout: layout,
		tuning: tuning,
	}
}

// SetLayout 视口变化后更新布局
func (s *TargetSystem) SetLayout(layout *config.Layout) {
	s.layout = layout
}

// Update 推进所有靶
func (s *TargetSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.TargetComponent,
	](s.em)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		target, _ := ecs.GetComponent[*components.TargetComponent](s.em, id)

		pos.X += vel.VX * deltaTime
		target.Wobble *= s.tuning.WobbleDecay

		if pos.X < -target.Radius-s.tuning.WrapMargin {
			pos.X = s.layout.Width + target.Radius + s.tuning.WrapMargin
			pos.Y = s.RandomHeight()
		}
	}
}

// RandomHeight 在可飞行高度带内随机取一个Y坐标
// 范围 [SpawnTop, SpawnTop + max(1, 地面 - SpawnBand))，补给生成也使用同一高度带
func (s *TargetSystem) RandomHeight() float64 {
	return randomHeight(s.rng, s.layout, s.tuning)
}

// Wobble 触发命中抖动
func (s *TargetSystem) Wobble(target *components.TargetComponent) {
	target.Wobble = s.tuning.WobbleMin + s.rng.Float64()*s.tuning.WobbleRange
}

func randomHeight(rng *rand.Rand, layout *config.Layout, t *config.TargetTuning) float64 {
	return t.SpawnTop + rng.Float64()*math.Max(1, layout.GroundY-t.SpawnBand)
}

package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/entities"
)

// PickupSystem 箭矢补给的生成与漂移
//
// 生成按"每秒期望数量"建模：每步生成概率 = 1 - exp(-rate*dt)，
// 因此生成频率与帧率无关。MaxActive > 0 时限制同时存在的数量。
type PickupSystem struct {
	em     *ecs.EntityManager
	rng    *rand.Rand
	layout *config.Layout
	tuning *config.TuningConfig
}

// NewPickupSystem 创建补给系统
func NewPickupSystem(em *ecs.EntityManager, rng *rand.Rand, layout *config.Layout, tuning *config.TuningConfig) *PickupSystem {
	return &PickupSystem{
		em:     em,
		rng:    rng,
		layout: layout,
		tuning: tuning,
	}
}

// SetLayout 视口变化后更新布局
func (s *PickupSystem) SetLayout(layout *config.Layout) {
	s.layout = layout
}

// Update 尝试生成新补给，然后推进并清理已有补给
func (s *PickupSystem) Update(deltaTime float64) {
	pickups := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PickupComponent](s.em)

	if s.shouldSpawn(len(pickups), deltaTime) {
		s.Spawn()
		pickups = ecs.GetEntitiesWith2[*components.PositionComponent, *components.PickupComponent](s.em)
	}

	for _, id := range pickups {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.em, id)
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			pos.X += vel.VX * deltaTime
		}
		pickup.Bob += deltaTime

		if pos.X < s.tuning.Pickup.DespawnX {
			s.em.DestroyEntity(id)
		}
	}
}

// SpawnProbability 返回步长 dt 内生成一个补给的概率
func SpawnProbability(ratePerSecond, dt float64) float64 {
	if ratePerSecond <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-ratePerSecond*dt)
}

func (s *PickupSystem) shouldSpawn(active int, deltaTime float64) bool {
	p := s.tuning.Pickup
	// 每步固定消耗一次随机数，随机序列与当前补给数量无关
	roll := s.rng.Float64()
	if p.MaxActive > 0 && active >= p.MaxActive {
		return false
	}
	return roll < SpawnProbability(p.SpawnRatePerSecond, deltaTime)
}

// Spawn 在右边缘外生成一个补给
//
// 返回:
//   - ecs.EntityID: 新补给实体ID，失败返回 0
func (s *PickupSystem) Spawn() ecs.EntityID {
	p := s.tuning.Pickup
	x := s.layout.Width + p.SpawnMargin
	y := randomHeight(s.rng, s.layout, &s.tuning.Target)
	bob := s.rng.Float64() * p.BobRange

	id, err := entities.NewPickup(s.em, x, y, p.DriftSpeed, bob, p.Arrows)
	if err != nil {
		log.Printf("[PickupSystem] failed to spawn pickup: %v", err)
		return 0
	}
	return id
}

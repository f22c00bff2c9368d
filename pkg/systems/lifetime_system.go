package systems

import (
	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
)

// LifetimeSystem 管理粒子、飘字等限时实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 累加存在时间，到期的实体标记删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}

// PopupAlpha 飘字透明度：最后一秒内线性淡出
func PopupAlpha(l *components.LifetimeComponent) float64 {
	a := l.Remaining() / 1.0
	if a > 1 {
		return 1
	}
	return a
}

// ParticleAlpha 粒子透明度：剩余生命占比
func ParticleAlpha(l *components.LifetimeComponent) float64 {
	return l.Fraction()
}

// ParticleSize 粒子半径随淡出从 3 增大到 9
func ParticleSize(l *components.LifetimeComponent) float64 {
	return float64(int(3 + 6*(1-ParticleAlpha(l))))
}

package entities

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
)

// 粒子颜色
var (
	ColorBullseyeBurst = color.RGBA{R: 0xff, G: 0xd5, B: 0x4d, A: 0xff} // 靶心：金色
	ColorHitBurst      = color.RGBA{R: 0xff, G: 0x9e, B: 0x80, A: 0xff} // 其他环：橙粉色
	ColorPickupBurst   = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff} // 补给：青色
)

// SpawnParticleBurst 在指定位置生成一簇向四周飞散的粒子
// 垂直速度按 ParticleVerticalSquash 压扁，使爆散呈椭圆
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源（由 Game 注入，保证回放可复现）
//   - x, y: 爆散中心
//   - c: 粒子颜色
//   - count: 粒子数量
//   - tuning: 调参配置
//
// 返回:
//   - []ecs.EntityID: 生成的粒子实体
//   - error: 参数无效时返回错误
func SpawnParticleBurst(em *ecs.EntityManager, rng *rand.Rand, x, y float64, c color.RGBA, count int, tuning *config.TuningConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	fx := tuning.Effects
	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := fx.ParticleSpeedMin + rng.Float64()*fx.ParticleSpeedRange
		life := fx.ParticleLifeMin + rng.Float64()*fx.ParticleLifeRange

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
		em.AddComponent(id, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed * fx.ParticleVerticalSquash,
		})
		em.AddComponent(id, &components.KinematicsComponent{
			DragX: tuning.Physics.ParticleDragX,
			DragY: tuning.Physics.ParticleDragY,
		})
		em.AddComponent(id, &components.ParticleComponent{Color: c})
		em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: life})
		ids = append(ids, id)
	}

	return ids, nil
}

// NewPopup 创建飘字实体
//
// 参数:
//   - em: 实体管理器
//   - x, y: 文字锚点
//   - text: 显示文本
//   - life: 显示时长（秒）
//
// 返回:
//   - ecs.EntityID: 飘字实体ID
//   - error: 如果创建失败返回错误信息
func NewPopup(em *ecs.EntityManager, x, y float64, text string, life float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.PopupComponent{Text: text})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: life})

	return id, nil
}

// Commentary 根据得分返回评价文本
func Commentary(points int) string {
	switch {
	case points >= 100:
		return "Excellent!"
	case points >= 60:
		return "Very Good!"
	case points >= 30:
		return "Good!"
	default:
		return "Nice!"
	}
}

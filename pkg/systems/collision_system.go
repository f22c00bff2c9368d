package systems

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/entities"
	"github.com/gonewx/archery/pkg/utils"
)

// CollisionKind 碰撞类型
type CollisionKind int

const (
	// CollisionPickup 箭尖拾取了补给
	CollisionPickup CollisionKind = iota
	// CollisionTarget 箭尖命中了靶
	CollisionTarget
)

// CollisionEvent 一次碰撞结果
// 视觉效果（粒子、飘字、抖动、插靶）由 CollisionSystem 自行完成，
// 计分和箭数变化由调用方根据事件应用到回合状态。
type CollisionEvent struct {
	Kind  CollisionKind
	Arrow ecs.EntityID
	Other ecs.EntityID // 补给或靶的实体ID

	// X, Y 命中点（箭尖）或补给中心
	X, Y float64

	Points   int  // CollisionTarget: 得分
	Bullseye bool // CollisionTarget: 是否命中靶心
	Arrows   int  // CollisionPickup: 增加的箭数
}

// CollisionSystem 箭尖与补给、靶的碰撞与计分
//
// 只检查飞行中的箭矢。对每支箭：
//  1. 箭尖距补给中心小于拾取半径 → 拾取（同一补给只能被拾取一次）
//  2. 箭尖在靶外半径内 → 按环计分并插靶
//  3. 否则箭矢远离屏幕超过边距 → 删除
type CollisionSystem struct {
	em      *ecs.EntityManager
	rng     *rand.Rand
	layout  *config.Layout
	tuning  *config.TuningConfig
	targets *TargetSystem
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - rng: 随机数源（粒子方向、靶抖动）
//   - layout: 当前布局（箭长、拾取半径、屏幕尺寸）
//   - tuning: 调参配置
//   - targets: 靶系统，用于触发命中抖动
func NewCollisionSystem(em *ecs.EntityManager, rng *rand.Rand, layout *config.Layout,
	tuning *config.TuningConfig, targets *TargetSystem) *CollisionSystem {
	return &CollisionSystem{
		em:      em,
		rng:     rng,
		layout:  layout,
		tuning:  tuning,
		targets: targets,
	}
}

// SetLayout 视口变化后更新布局
func (s *CollisionSystem) SetLayout(layout *config.Layout) {
	s.layout = layout
}

// ArrowTip 返回箭尖坐标（箭杆中点沿朝向前进半个箭长）
func ArrowTip(pos *components.PositionComponent, angle, arrowLength float64) (float64, float64) {
	return utils.PointAlong(pos.X, pos.Y, angle, arrowLength/2)
}

// Resolve 检测本步所有碰撞
//
// 返回:
//   - []CollisionEvent: 按发生顺序排列的碰撞事件
func (s *CollisionSystem) Resolve() []CollisionEvent {
	var events []CollisionEvent

	arrows := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ArrowComponent](s.em)
	for _, arrowID := range arrows {
		arrow, _ := ecs.GetComponent[*components.ArrowComponent](s.em, arrowID)
		if arrow.Stuck {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, arrowID)
		tipX, tipY := ArrowTip(pos, arrow.Angle, s.layout.ArrowLength)

		events = append(events, s.collectPickups(arrowID, tipX, tipY)...)

		if ev, hit := s.hitTarget(arrowID, arrow, pos, tipX, tipY); hit {
			events = append(events, ev)
			continue
		}

		if s.isFarOffscreen(pos) {
			s.em.DestroyEntity(arrowID)
		}
	}

	return events
}

func (s *CollisionSystem) collectPickups(arrowID ecs.EntityID, tipX, tipY float64) []CollisionEvent {
	var events []CollisionEvent

	pickups := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PickupComponent](s.em)
	for _, id := range pickups {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.em, id)
		if pickup.Collected {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if utils.Distance(tipX, tipY, pos.X, pos.Y) >= s.layout.PickupRadius {
			continue
		}

		pickup.Collected = true
		s.em.DestroyEntity(id)

		fx := s.tuning.Effects
		s.burst(pos.X, pos.Y, entities.ColorPickupBurst, fx.PickupParticles)
		s.popup(pos.X, pos.Y, fmt.Sprintf("+%d Arrows", pickup.Arrows), fx.PickupLife)

		events = append(events, CollisionEvent{
			Kind:   CollisionPickup,
			Arrow:  arrowID,
			Other:  id,
			X:      pos.X,
			Y:      pos.Y,
			Arrows: pickup.Arrows,
		})
	}

	return events
}

func (s *CollisionSystem) hitTarget(arrowID ecs.EntityID, arrow *components.ArrowComponent,
	pos *components.PositionComponent, tipX, tipY float64) (CollisionEvent, bool) {

	targets := ecs.GetEntitiesWith2[*components.PositionComponent, *components.TargetComponent](s.em)
	for _, id := range targets {
		tpos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		target, _ := ecs.GetComponent[*components.TargetComponent](s.em, id)

		dist := utils.Distance(tipX, tipY, tpos.X, tpos.Y)
		if dist > target.Radius {
			continue
		}

		points := target.PointsFor(dist)
		bullseye := points >= target.MaxPoints()

		fx := s.tuning.Effects
		burstColor := entities.ColorHitBurst
		if bullseye {
			burstColor = entities.ColorBullseyeBurst
		}
		s.burst(tipX, tipY, burstColor, fx.HitParticles)
		s.popup(tipX, tipY, entities.Commentary(points), fx.CommentaryLife)
		if s.targets != nil {
			s.targets.Wobble(target)
		}
		s.stick(arrowID, arrow, pos, id, tpos, tipX, tipY)
		if bullseye {
			s.popup(tipX, tipY-fx.BullseyeOffset, "BULLSEYE!", fx.BullseyeLife)
		}

		return CollisionEvent{
			Kind:     CollisionTarget,
			Arrow:    arrowID,
			Other:    id,
			X:        tipX,
			Y:        tipY,
			Points:   points,
			Bullseye: bullseye,
		}, true
	}

	return CollisionEvent{}, false
}

// stick 把箭固定在靶上：记录箭尖相对靶心的偏移，速度清零
func (s *CollisionSystem) stick(arrowID ecs.EntityID, arrow *components.ArrowComponent,
	pos *components.PositionComponent, targetID ecs.EntityID, tpos *components.PositionComponent,
	tipX, tipY float64) {
	arrow.Stuck = true
	arrow.StuckTo = targetID
	arrow.LocalX = tipX - tpos.X
	arrow.LocalY = tipY - tpos.Y

	pos.X, pos.Y = utils.PointAlong(tipX, tipY, arrow.Angle, -s.layout.ArrowLength/2)

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, arrowID); ok {
		vel.VX, vel.VY = 0, 0
	}
}

func (s *CollisionSystem) isFarOffscreen(pos *components.PositionComponent) bool {
	m := s.tuning.Layout.OffscreenMargin
	return pos.X < -m || pos.X > s.layout.Width+m || pos.Y < -m || pos.Y > s.layout.Height+m
}

func (s *CollisionSystem) burst(x, y float64, c color.RGBA, count int) {
	if _, err := entities.SpawnParticleBurst(s.em, s.rng, x, y, c, count, s.tuning); err != nil {
		log.Printf("[CollisionSystem] failed to spawn particles: %v", err)
	}
}

func (s *CollisionSystem) popup(x, y float64, text string, life float64) {
	if _, err := entities.NewPopup(s.em, x, y, text, life); err != nil {
		log.Printf("[CollisionSystem] failed to create popup: %v", err)
	}
}

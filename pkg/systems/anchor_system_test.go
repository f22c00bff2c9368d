package systems

import (
	"testing"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/entities"
)

func TestAnchorFollowsTarget(t *testing.T) {
	em, layout, tuning, rng := newTestWorld()
	targets := NewTargetSystem(em, rng, layout, &tuning.Target)
	collisions := NewCollisionSystem(em, rng, layout, tuning, targets)
	anchors := NewAnchorSystem(em, layout)

	targetID, _ := entities.NewTarget(em, 500, 300, 57, -180, tuning)
	arrowID, _ := entities.NewArrow(em, 478, 310, 800, 0, 0, 0.03)
	collisions.Resolve()

	targets.Update(0.1) // 靶左移 18
	anchors.Update(0.1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, arrowID)
	if !almostEqual(pos.X, 460) || !almostEqual(pos.Y, 310) {
		t.Errorf("arrow pos = (%v, %v), want (460, 310)", pos.X, pos.Y)
	}

	tpos, _ := ecs.GetComponent[*components.PositionComponent](em, targetID)
	arrow, _ := ecs.GetComponent[*components.ArrowComponent](em, arrowID)
	tipX, tipY := ArrowTip(pos, arrow.Angle, layout.ArrowLength)
	if !almostEqual(tipX-tpos.X, arrow.LocalX) || !almostEqual(tipY-tpos.Y, arrow.LocalY) {
		t.Error("tip should stay at the recorded local offset")
	}
}

func TestAnchorLost(t *testing.T) {
	em, layout, _, _ := newTestWorld()
	anchors := NewAnchorSystem(em, layout)

	anchor := em.CreateEntity()
	em.AddComponent(anchor, &components.PositionComponent{X: 100, Y: 100})

	arrowID, _ := entities.NewArrow(em, 50, 60, 0, 0, 0, 0.03)
	arrow, _ := ecs.GetComponent[*components.ArrowComponent](em, arrowID)
	arrow.Stuck = true
	arrow.StuckTo = anchor

	em.DestroyEntity(anchor)
	em.RemoveMarkedEntities()

	anchors.Update(0.016)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, arrowID)
	if pos.X != 50 || pos.Y != 60 {
		t.Errorf("arrow with lost anchor moved to (%v, %v)", pos.X, pos.Y)
	}
}

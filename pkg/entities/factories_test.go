package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
)

func TestNewArrow(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewArrow(em, 10, 20, 300, -100, -0.3, 0.03)
	if err != nil {
		t.Fatalf("NewArrow failed: %v", err)
	}

	arrow, ok := ecs.GetComponent[*components.ArrowComponent](em, id)
	if !ok {
		t.Fatal("arrow should have ArrowComponent")
	}
	if arrow.Stuck || arrow.StuckTo != ecs.InvalidEntity {
		t.Error("new arrow must be in flight")
	}
	if arrow.Angle != -0.3 {
		t.Errorf("expected angle -0.3, got %v", arrow.Angle)
	}

	kin, ok := ecs.GetComponent[*components.KinematicsComponent](em, id)
	if !ok || kin.DragX != 0.03 || kin.DragY != 0.03 {
		t.Errorf("unexpected kinematics: %+v", kin)
	}

	if _, err := NewArrow(nil, 0, 0, 0, 0, 0, 0); err == nil {
		t.Error("expected error for nil entity manager")
	}
}

func TestNewTargetDerivesRings(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewTarget(em, 800, 300, 57, -180, config.DefaultTuning())
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}

	target, ok := ecs.GetComponent[*components.TargetComponent](em, id)
	if !ok {
		t.Fatal("target should have TargetComponent")
	}

	want := []float64{57, 41, 27, 15} // 57, floor(41.04), floor(27.36), floor(15.96)
	if len(target.Rings) != len(want) {
		t.Fatalf("expected %d rings, got %d", len(want), len(target.Rings))
	}
	for i := range want {
		if target.Rings[i] != want[i] {
			t.Errorf("ring %d = %v, want %v", i, target.Rings[i], want[i])
		}
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != -180 || vel.VY != 0 {
		t.Errorf("unexpected target velocity: %+v", vel)
	}

	// 靶不参与重力积分
	if ecs.HasComponent[*components.KinematicsComponent](em, id) {
		t.Error("target must not have KinematicsComponent")
	}
}

func TestSpawnParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewSource(1))

	ids, err := SpawnParticleBurst(em, rng, 100, 100, ColorHitBurst, 18, tuning)
	if err != nil {
		t.Fatalf("SpawnParticleBurst failed: %v", err)
	}
	if len(ids) != 18 {
		t.Fatalf("expected 18 particles, got %d", len(ids))
	}

	for _, id := range ids {
		life, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok {
			t.Fatal("particle should have LifetimeComponent")
		}
		if life.MaxLifetime < 0.6 || life.MaxLifetime > 1.4 {
			t.Errorf("particle lifetime %v outside [0.6, 1.4]", life.MaxLifetime)
		}

		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		// 垂直速度被压扁到 0.6 倍
		if vel.VY > 280*0.6+1e-9 || vel.VY < -280*0.6-1e-9 {
			t.Errorf("particle vertical speed %v exceeds squashed bound", vel.VY)
		}

		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if p.Color != ColorHitBurst {
			t.Errorf("unexpected particle color %v", p.Color)
		}
	}

	if _, err := SpawnParticleBurst(em, nil, 0, 0, ColorHitBurst, 1, tuning); err == nil {
		t.Error("expected error for nil rng")
	}
}

func TestNewPopupAndPickup(t *testing.T) {
	em := ecs.NewEntityManager()

	popupID, err := NewPopup(em, 5, 6, "BULLSEYE!", 1.4)
	if err != nil {
		t.Fatalf("NewPopup failed: %v", err)
	}
	popup, _ := ecs.GetComponent[*components.PopupComponent](em, popupID)
	life, _ := ecs.GetComponent[*components.LifetimeComponent](em, popupID)
	if popup.Text != "BULLSEYE!" || life.MaxLifetime != 1.4 {
		t.Errorf("unexpected popup: %+v %+v", popup, life)
	}

	pickupID, err := NewPickup(em, 1000, 200, -100, 0.5, 2)
	if err != nil {
		t.Fatalf("NewPickup failed: %v", err)
	}
	pickup, _ := ecs.GetComponent[*components.PickupComponent](em, pickupID)
	if pickup.Arrows != 2 || pickup.Collected {
		t.Errorf("unexpected pickup: %+v", pickup)
	}
}

func TestCommentary(t *testing.T) {
	tests := []struct {
		points int
		want   string
	}{
		{10, "Nice!"},
		{30, "Good!"},
		{60, "Very Good!"},
		{100, "Excellent!"},
	}

	for _, tt := range tests {
		if got := Commentary(tt.points); got != tt.want {
			t.Errorf("Commentary(%d) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

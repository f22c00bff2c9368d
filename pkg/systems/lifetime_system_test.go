package systems

import (
	"testing"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/entities"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id, _ := entities.NewPopup(em, 0, 0, "Nice!", 1.1)

	system.Update(0.5)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !almostEqual(lifetime.CurrentLifetime, 0.5) {
		t.Errorf("Expected CurrentLifetime=0.5, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id, _ := entities.NewPopup(em, 0, 0, "+2 Arrows", 0.9)

	for i := 0; i < 20; i++ {
		system.Update(0.05)
	}
	em.RemoveMarkedEntities()

	if em.EntityExists(id) {
		t.Error("Expired entity should be removed")
	}
}

func TestAlphaCurves(t *testing.T) {
	tests := []struct {
		name         string
		max, current float64
		popup        float64
		particle     float64
		size         float64
	}{
		{"刚生成", 1.4, 0, 1, 1, 3},
		{"过半", 1.0, 0.5, 0.5, 0.5, 6},
		{"最后时刻", 2.0, 2.0, 0, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &components.LifetimeComponent{MaxLifetime: tt.max, CurrentLifetime: tt.current}
			if got := PopupAlpha(l); !almostEqual(got, tt.popup) {
				t.Errorf("PopupAlpha = %v, want %v", got, tt.popup)
			}
			if got := ParticleAlpha(l); !almostEqual(got, tt.particle) {
				t.Errorf("ParticleAlpha = %v, want %v", got, tt.particle)
			}
			if got := ParticleSize(l); got != tt.size {
				t.Errorf("ParticleSize = %v, want %v", got, tt.size)
			}
		})
	}
}

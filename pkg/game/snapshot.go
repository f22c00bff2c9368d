package game

import (
	"fmt"
	"image/color"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/systems"
)

// Snapshot 某一时刻的只读游戏状态，供渲染器和终端前端使用
type Snapshot struct {
	Layout config.Layout

	Phase             Phase
	Difficulty        config.Difficulty
	PendingDifficulty config.Difficulty
	HasPending        bool

	Score      int
	HighScore  int
	ArrowsLeft int
	Time       int     // HUD 显示的剩余秒数
	TimeLeft   float64 // 精确剩余时间

	Aim            float64
	Charging       bool
	ChargeFraction float64

	Target    TargetView
	Arrows    []ArrowView
	Pickups   []PickupView
	Particles []ParticleView
	Popups    []PopupView

	// Result 最近一次回合结算（Ended 阶段有效）
	Result *RoundResult
}

// TargetView 靶
type TargetView struct {
	X, Y   float64
	Radius float64
	Rings  []float64
	Wobble float64
}

// ArrowView 箭矢（位置为箭杆中点）
type ArrowView struct {
	X, Y  float64
	Angle float64
	Stuck bool
}

// PickupView 补给
type PickupView struct {
	X, Y float64
	Bob  float64
}

// ParticleView 粒子
type ParticleView struct {
	X, Y  float64
	Color color.RGBA
	Alpha float64
	Size  float64
}

// PopupView 飘字
type PopupView struct {
	X, Y  float64
	Text  string
	Alpha float64
}

// Snapshot 采集当前状态
func (g *Game) Snapshot() Snapshot {
	pending, hasPending := g.round.PendingDifficulty()
	s := Snapshot{
		Layout:            *g.layout,
		Phase:             g.round.Phase(),
		Difficulty:        g.round.Difficulty(),
		PendingDifficulty: pending,
		HasPending:        hasPending,
		Score:             g.round.Score(),
		HighScore:         g.round.HighScore(),
		ArrowsLeft:        g.round.Arrows(),
		Time:              g.round.DisplayTime(),
		TimeLeft:          g.round.TimeLeft(),
		Aim:               g.charge.Aim(),
		Charging:          g.charge.Charging(),
		ChargeFraction:    g.charge.ChargeFraction(g.simTime),
		Result:            g.lastResult,
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](g.em, g.targetID); ok {
		target, _ := ecs.GetComponent[*components.TargetComponent](g.em, g.targetID)
		s.Target = TargetView{
			X:      pos.X,
			Y:      pos.Y,
			Radius: target.Radius,
			Rings:  append([]float64(nil), target.Rings...),
			Wobble: target.Wobble,
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ArrowComponent](g.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](g.em, id)
		arrow, _ := ecs.GetComponent[*components.ArrowComponent](g.em, id)
		s.Arrows = append(s.Arrows, ArrowView{X: pos.X, Y: pos.Y, Angle: arrow.Angle, Stuck: arrow.Stuck})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.PickupComponent](g.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](g.em, id)
		pickup, _ := ecs.GetComponent[*components.PickupComponent](g.em, id)
		s.Pickups = append(s.Pickups, PickupView{X: pos.X, Y: pos.Y, Bob: pickup.Bob})
	}

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.ParticleComponent, *components.LifetimeComponent](g.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](g.em, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](g.em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](g.em, id)
		s.Particles = append(s.Particles, ParticleView{
			X:     pos.X,
			Y:     pos.Y,
			Color: particle.Color,
			Alpha: systems.ParticleAlpha(life),
			Size:  systems.ParticleSize(life),
		})
	}

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.PopupComponent, *components.LifetimeComponent](g.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](g.em, id)
		popup, _ := ecs.GetComponent[*components.PopupComponent](g.em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](g.em, id)
		s.Popups = append(s.Popups, PopupView{X: pos.X, Y: pos.Y, Text: popup.Text, Alpha: systems.PopupAlpha(life)})
	}

	return s
}

// StuckArrows 统计插在靶上的箭
func (s *Snapshot) StuckArrows() int {
	n := 0
	for _, a := range s.Arrows {
		if a.Stuck {
			n++
		}
	}
	return n
}

// HUDLines 返回 HUD 状态文字：得分、最高分、剩余箭数、剩余时间、难度
func (s *Snapshot) HUDLines() []string {
	diff := s.Difficulty.String()
	if s.HasPending {
		diff = fmt.Sprintf("%s -> %s", s.Difficulty, s.PendingDifficulty)
	}
	return []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("High: %d", s.HighScore),
		fmt.Sprintf("Arrows: %d", s.ArrowsLeft),
		fmt.Sprintf("Time: %ds", s.Time),
		fmt.Sprintf("Difficulty: %s", diff),
	}
}

// OverlayLines 返回待开始 / 暂停 / 结束时的中央提示文字，进行中返回 nil
//
// 参数:
//   - touch: 为 true 时提示使用触摸措辞
func (s *Snapshot) OverlayLines(touch bool) []string {
	action := "Click"
	if touch {
		action = "Tap"
	}
	switch s.Phase {
	case PhaseIdle:
		return []string{
			"Archery Challenge",
			fmt.Sprintf("Press Start, then %s and hold to draw the bow", action),
		}
	case PhasePaused:
		return []string{"Paused"}
	case PhaseEnded:
		if s.Result == nil {
			return []string{"Time's up!"}
		}
		lines := []string{
			"Time's up!",
			fmt.Sprintf("Score: %d", s.Result.Score),
			fmt.Sprintf("High: %d", s.Result.HighScore),
		}
		if s.Result.NewRecord {
			lines = append(lines, "New record!")
		}
		return lines
	default:
		return nil
	}
}

package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/archery/pkg/components"
	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/ecs"
	"github.com/gonewx/archery/pkg/entities"
	"github.com/gonewx/archery/pkg/systems"
	"github.com/gonewx/archery/pkg/utils"
)

// Options Game 的构造参数
type Options struct {
	Tuning       *config.TuningConfig     // nil 时使用 config.DefaultTuning()
	Difficulties *config.DifficultyConfig // nil 时使用 config.DefaultDifficulties()
	Difficulty   config.Difficulty        // 初始难度
	Width        float64                  // 视口宽度（逻辑像素）
	Height       float64                  // 视口高度（逻辑像素）
	Seed         int64                    // 随机种子，相同种子 + 相同输入得到相同结果
	Clock        Clock                    // nil 时使用 RealClock
	HighScores   HighScoreStore           // nil 时使用内存存储
}

// Game 射箭游戏的完整模拟状态
//
// Game 拥有实体管理器、各个系统、回合状态机和蓄力控制器，
// 外部只通过输入方法和 Step/Advance 驱动它，通过 Snapshot 和事件读取结果。
// Game 不是并发安全的，所有调用应来自同一个 goroutine（游戏循环）。
type Game struct {
	em           *ecs.EntityManager
	tuning       *config.TuningConfig
	difficulties *config.DifficultyConfig
	layout       *config.Layout
	rng          *rand.Rand
	clock        Clock

	round  *Round
	charge *ChargeController

	kinematicsSystem *systems.KinematicsSystem
	targetSystem     *systems.TargetSystem
	pickupSystem     *systems.PickupSystem
	collisionSystem  *systems.CollisionSystem
	anchorSystem     *systems.AnchorSystem
	lifetimeSystem   *systems.LifetimeSystem

	targetID ecs.EntityID

	// simTime 累计模拟时间，蓄力计时和输入录制都基于它
	simTime   float64
	lastClock float64
	started   bool

	lastResult *RoundResult

	observers []func(Event)
	recorder  *Recorder
}

// NewGame 创建游戏
//
// 参数:
//   - opts: 构造参数
//
// 返回:
//   - *Game: 处于 PhaseIdle 的游戏
//   - error: 视口尺寸无效或配置无效时返回错误
func NewGame(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport size %.0fx%.0f", opts.Width, opts.Height)
	}
	if opts.Tuning == nil {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Difficulties == nil {
		opts.Difficulties = config.DefaultDifficulties()
	}
	if err := opts.Difficulties.Validate(); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}

	g := &Game{
		em:           ecs.NewEntityManager(),
		tuning:       opts.Tuning,
		difficulties: opts.Difficulties,
		layout:       config.ComputeLayout(opts.Width, opts.Height, opts.Tuning),
		rng:          rand.New(rand.NewSource(opts.Seed)),
		clock:        opts.Clock,
	}

	g.round = NewRound(g.difficulties, opts.HighScores, opts.Difficulty)
	g.charge = NewChargeController(&g.tuning.Charge, g.layout.ArcherX, g.layout.ArcherY)

	g.kinematicsSystem = systems.NewKinematicsSystem(g.em, g.layout.Gravity)
	g.targetSystem = systems.NewTargetSystem(g.em, g.rng, g.layout, &g.tuning.Target)
	g.pickupSystem = systems.NewPickupSystem(g.em, g.rng, g.layout, g.tuning)
	g.collisionSystem = systems.NewCollisionSystem(g.em, g.rng, g.layout, g.tuning, g.targetSystem)
	g.anchorSystem = systems.NewAnchorSystem(g.em, g.layout)
	g.lifetimeSystem = systems.NewLifetimeSystem(g.em)

	if err := g.createTarget(); err != nil {
		return nil, err
	}

	log.Printf("[Game] Created: %.0fx%.0f seed=%d difficulty=%s high=%d",
		opts.Width, opts.Height, opts.Seed, g.round.Difficulty(), g.round.HighScore())
	return g, nil
}

// createTarget 在初始位置创建靶，半径和速度取自当前难度
func (g *Game) createTarget() error {
	l := g.layout
	t := g.tuning.Target
	preset := g.round.Preset()

	x := l.Width - math.Floor(l.Width*t.StartXFraction)
	y := l.GroundY - math.Floor(l.Height*t.StartYFraction)
	id, err := entities.NewTarget(g.em, x, y, l.TargetRadius(preset.RadiusFraction), preset.TargetSpeed, g.tuning)
	if err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}
	g.targetID = id
	return nil
}

// applyTargetPreset 按当前难度更新靶半径（重新推导各环）和速度，位置不变
func (g *Game) applyTargetPreset() {
	preset := g.round.Preset()
	if target, ok := ecs.GetComponent[*components.TargetComponent](g.em, g.targetID); ok {
		target.SetRadius(g.layout.TargetRadius(preset.RadiusFraction), g.tuning.Target.RingFractions)
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](g.em, g.targetID); ok {
		vel.VX = preset.TargetSpeed
	}
}

// Subscribe 注册事件观察者
func (g *Game) Subscribe(fn func(Event)) {
	g.observers = append(g.observers, fn)
}

func (g *Game) emit(ev Event) {
	for _, fn := range g.observers {
		fn(ev)
	}
}

// Advance 读取时钟，按经过的时间推进一步
// 第一次调用只记录时间。步长被限制在 [0, MaxStep]。
func (g *Game) Advance() {
	now := g.clock.Now()
	if !g.started {
		g.started = true
		g.lastClock = now
		return
	}
	dt := now - g.lastClock
	g.lastClock = now
	g.Step(dt)
}

// Step 以给定步长推进模拟
//
// 顺序：回合计时 → 靶 → 补给 → 运动学 → 碰撞计分 → 插靶同步 → 生命周期 → 清理。
// 非 Running 阶段只累计模拟时间。回合在本步结束时跳过其余更新。
func (g *Game) Step(dt float64) {
	dt = utils.Clamp(dt, 0, g.tuning.Physics.MaxStep)
	if g.recorder != nil {
		g.recorder.recordStep(dt)
	}
	g.simTime += dt

	if g.round.Phase() != PhaseRunning {
		return
	}

	if result, ended := g.round.Tick(dt); ended {
		g.charge.Cancel()
		g.lastResult = &result
		g.emit(EventRoundEnded{Score: result.Score, HighScore: result.HighScore, NewRecord: result.NewRecord})
		return
	}

	g.targetSystem.Update(dt)
	g.pickupSystem.Update(dt)
	g.kinematicsSystem.Update(dt)
	g.applyCollisions(g.collisionSystem.Resolve())
	g.anchorSystem.Update(dt)
	g.lifetimeSystem.Update(dt)
	g.em.RemoveMarkedEntities()
}

func (g *Game) applyCollisions(events []systems.CollisionEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case systems.CollisionPickup:
			g.round.AddArrows(ev.Arrows)
			g.emit(EventPickupCollected{Arrows: ev.Arrows, X: ev.X, Y: ev.Y})
		case systems.CollisionTarget:
			g.round.AddScore(ev.Points)
			g.emit(EventTargetHit{Points: ev.Points, Bullseye: ev.Bullseye, X: ev.X, Y: ev.Y})
		}
	}
}

// Resize 视口尺寸变化，重新计算布局
// 靶半径保持不变，直到下一次难度生效
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.layout.Width && height == g.layout.Height {
		return
	}
	g.record(Action{Type: ActionResize, X: width, Y: height})

	g.layout = config.ComputeLayout(width, height, g.tuning)
	g.kinematicsSystem.SetGravity(g.layout.Gravity)
	g.targetSystem.SetLayout(g.layout)
	g.pickupSystem.SetLayout(g.layout)
	g.collisionSystem.SetLayout(g.layout)
	g.anchorSystem.SetLayout(g.layout)
	g.charge.SetOrigin(g.layout.ArcherX, g.layout.ArcherY)
}

// ========== 控制操作 ==========

// Start 开始新回合：清除所有箭矢、粒子、飘字和补给，按难度重置靶
func (g *Game) Start() {
	g.record(Action{Type: ActionStart})
	g.startRound()
}

// Restart 重新开始，等同于 Start
func (g *Game) Restart() {
	g.record(Action{Type: ActionRestart})
	g.startRound()
}

func (g *Game) startRound() {
	g.round.Start()
	g.clearTransient()
	g.applyTargetPreset()
	g.charge.Cancel()
	g.lastResult = nil

	preset := g.round.Preset()
	g.emit(EventRoundStarted{
		Difficulty: g.round.Difficulty(),
		Arrows:     preset.Arrows,
		TimeLimit:  preset.TimeLimit,
	})
}

// clearTransient 删除除靶以外的所有实体
func (g *Game) clearTransient() {
	for _, id := range g.em.GetEntitiesWith() {
		if id != g.targetID {
			g.em.DestroyEntity(id)
		}
	}
	g.em.RemoveMarkedEntities()
}

// TogglePause 切换暂停；暂停时放弃正在进行的蓄力
func (g *Game) TogglePause() {
	g.record(Action{Type: ActionPause})
	if !g.round.TogglePause() {
		return
	}
	paused := g.round.Phase() == PhasePaused
	if paused {
		g.charge.Cancel()
	}
	g.emit(EventPauseToggled{Paused: paused})
}

// SelectDifficulty 选择难度；回合进行中时推迟到下一次开始
func (g *Game) SelectDifficulty(d config.Difficulty) {
	g.record(Action{Type: ActionDifficulty, Difficulty: d.String()})
	if g.round.SelectDifficulty(d) {
		g.applyTargetPreset()
	}
}

// ========== 指针输入 ==========

// PointerDown 指针按下
// 仅在 Running 且不在 HUD 区域时响应；有箭时开始蓄力
func (g *Game) PointerDown(x, y float64) {
	g.record(Action{Type: ActionPointerDown, X: x, Y: y})
	if g.round.Phase() != PhaseRunning || g.layout.InHUDZone(x) {
		return
	}
	if g.round.Arrows() <= 0 {
		g.charge.PointerMove(x, y)
		return
	}
	g.charge.PointerDown(x, y, g.simTime)
}

// PointerMove 指针移动，更新瞄准
func (g *Game) PointerMove(x, y float64) {
	g.record(Action{Type: ActionPointerMove, X: x, Y: y})
	g.charge.PointerMove(x, y)
}

// PointerUp 指针松开，蓄力中则发射
func (g *Game) PointerUp(x, y float64) {
	g.record(Action{Type: ActionPointerUp, X: x, Y: y})
	if g.round.Phase() != PhaseRunning {
		return
	}
	if shot, ok := g.charge.PointerUp(x, y, g.simTime); ok {
		g.fire(shot)
	}
}

// QuickFire 沿当前瞄准方向以最小速度立即发射
func (g *Game) QuickFire() {
	g.record(Action{Type: ActionQuickFire})
	if g.round.Phase() != PhaseRunning || g.round.Arrows() <= 0 {
		return
	}
	if shot, ok := g.charge.QuickFire(); ok {
		g.fire(shot)
	}
}

// fire 在弓手前方生成箭矢并消耗一支箭
func (g *Game) fire(shot Shot) {
	l := g.layout
	dist := l.ArrowLength/2 + g.tuning.Charge.SpawnClearance
	x, y := utils.PointAlong(l.ArcherX, l.ArcherY, shot.Angle, dist)
	vx := math.Cos(shot.Angle) * shot.Speed
	vy := math.Sin(shot.Angle) * shot.Speed

	if _, err := entities.NewArrow(g.em, x, y, vx, vy, shot.Angle, g.tuning.Physics.Drag); err != nil {
		log.Printf("[Game] failed to create arrow: %v", err)
		return
	}
	g.round.ConsumeArrow()
	g.emit(EventArrowFired{Speed: shot.Speed, Angle: shot.Angle, ArrowsLeft: g.round.Arrows()})
}

func (g *Game) record(a Action) {
	if g.recorder != nil {
		g.recorder.recordAction(g.simTime, a)
	}
}

// ========== 查询 ==========

// Round 返回回合状态机
func (g *Game) Round() *Round { return g.round }

// Layout 返回当前布局
func (g *Game) Layout() *config.Layout { return g.layout }

// Tuning 返回调参配置
func (g *Game) Tuning() *config.TuningConfig { return g.tuning }

// EntityManager 返回实体管理器
func (g *Game) EntityManager() *ecs.EntityManager { return g.em }

// TargetID 返回靶实体ID
func (g *Game) TargetID() ecs.EntityID { return g.targetID }

// SimTime 返回累计模拟时间
func (g *Game) SimTime() float64 { return g.simTime }

// LastResult 返回最近一次回合结算，新回合开始后为 nil
func (g *Game) LastResult() *RoundResult { return g.lastResult }

package game

import (
	"log"
	"math"

	"github.com/gonewx/archery/pkg/config"
)

// Phase 回合阶段
type Phase int

const (
	// PhaseIdle 尚未开始（启动后的菜单状态）
	PhaseIdle Phase = iota
	// PhaseRunning 进行中，计时递减
	PhaseRunning
	// PhasePaused 暂停，模拟冻结
	PhasePaused
	// PhaseEnded 时间耗尽，等待重新开始
	PhaseEnded
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// RoundResult 回合结束时的结算
type RoundResult struct {
	Score     int
	HighScore int
	NewRecord bool
}

// Round 回合状态机
//
// 状态转换：
//
//	Idle ──Start──▶ Running ◀──TogglePause──▶ Paused
//	                   │
//	              时间耗尽
//	                   ▼
//	                 Ended ──Start/Restart──▶ Running
//
// Restart 在任何阶段都等同于 Start。
// 回合进行中（Running/Paused）切换难度会被推迟到下一次 Start。
type Round struct {
	difficulties *config.DifficultyConfig
	store        HighScoreStore

	phase      Phase
	difficulty config.Difficulty
	pending    config.Difficulty
	hasPending bool

	score     int
	highScore int
	arrows    int
	timeLeft  float64
}

// NewRound 创建回合状态机并读取最高分
//
// 参数:
//   - difficulties: 难度配置
//   - store: 最高分存储，nil 时使用内存存储
//   - difficulty: 初始难度
func NewRound(difficulties *config.DifficultyConfig, store HighScoreStore, difficulty config.Difficulty) *Round {
	if store == nil {
		store = &MemoryHighScoreStore{}
	}

	r := &Round{
		difficulties: difficulties,
		store:        store,
		phase:        PhaseIdle,
	}

	high, err := store.Load()
	if err != nil {
		log.Printf("[HighScore] Warning: failed to load high score: %v (using 0)", err)
		high = 0
	}
	r.highScore = max(high, 0)

	r.applyDifficulty(difficulty)
	return r
}

// applyDifficulty 切换难度并按预设重置箭数和时间
func (r *Round) applyDifficulty(d config.Difficulty) {
	r.difficulty = d
	p := r.difficulties.Preset(d)
	r.arrows = p.Arrows
	r.timeLeft = p.TimeLimit
}

// Start 开始新回合
// 先应用被推迟的难度，然后清零得分并按预设重置箭数和时间
func (r *Round) Start() {
	d := r.difficulty
	if r.hasPending {
		d = r.pending
		r.hasPending = false
	}
	r.applyDifficulty(d)
	r.score = 0
	r.phase = PhaseRunning
	log.Printf("[Game] Round started: difficulty=%s arrows=%d time=%.0fs", d, r.arrows, r.timeLeft)
}

// Restart 重新开始（任何阶段）
func (r *Round) Restart() {
	r.Start()
}

// TogglePause 在 Running 和 Paused 之间切换
//
// 返回:
//   - bool: 是否发生了切换（Idle/Ended 下为 false）
func (r *Round) TogglePause() bool {
	switch r.phase {
	case PhaseRunning:
		r.phase = PhasePaused
	case PhasePaused:
		r.phase = PhaseRunning
	default:
		return false
	}
	log.Printf("[Game] Pause toggled: %s", r.phase)
	return true
}

// SelectDifficulty 选择难度
//
// 回合未进行时立即生效（箭数和时间随之更新）；
// 进行中（含暂停）时推迟到下一次 Start。
//
// 返回:
//   - bool: 是否立即生效
func (r *Round) SelectDifficulty(d config.Difficulty) bool {
	if r.InProgress() {
		r.pending = d
		r.hasPending = d != r.difficulty
		return false
	}
	r.hasPending = false
	r.applyDifficulty(d)
	return true
}

// Tick 推进回合计时
//
// 仅在 Running 时递减剩余时间。剩余时间 <= 0 时进入 Ended，
// 若得分超过最高分则更新并持久化（写入失败只记录日志）。
//
// 返回:
//   - RoundResult: 结算结果（仅 ended 为 true 时有效）
//   - bool: 本次调用是否结束了回合
func (r *Round) Tick(dt float64) (RoundResult, bool) {
	if r.phase != PhaseRunning {
		return RoundResult{}, false
	}

	r.timeLeft -= dt
	if r.timeLeft > 0 {
		return RoundResult{}, false
	}

	r.timeLeft = 0
	r.phase = PhaseEnded

	result := RoundResult{Score: r.score, HighScore: r.highScore}
	if r.score > r.highScore {
		r.highScore = r.score
		result.HighScore = r.score
		result.NewRecord = true
		if err := r.store.Save(r.highScore); err != nil {
			log.Printf("[HighScore] Warning: failed to save high score: %v", err)
		} else {
			log.Printf("[HighScore] New high score: %d", r.highScore)
		}
	}

	log.Printf("[Game] Round ended: score=%d high=%d", result.Score, result.HighScore)
	return result, true
}

// AddScore 加分
func (r *Round) AddScore(points int) {
	r.score += points
}

// AddArrows 增加箭数
func (r *Round) AddArrows(n int) {
	r.arrows += n
}

// ConsumeArrow 消耗一支箭，箭数不低于 0
func (r *Round) ConsumeArrow() {
	if r.arrows > 0 {
		r.arrows--
	}
}

// DisplayTime 返回 HUD 显示的剩余秒数（向上取整，不小于 0）
func (r *Round) DisplayTime() int {
	return int(math.Max(0, math.Ceil(r.timeLeft)))
}

// InProgress 回合是否在进行中（含暂停）
func (r *Round) InProgress() bool {
	return r.phase == PhaseRunning || r.phase == PhasePaused
}

// Phase 返回当前阶段
func (r *Round) Phase() Phase { return r.phase }

// Score 返回当前得分
func (r *Round) Score() int { return r.score }

// HighScore 返回最高分
func (r *Round) HighScore() int { return r.highScore }

// Arrows 返回剩余箭数
func (r *Round) Arrows() int { return r.arrows }

// TimeLeft 返回剩余时间（秒）
func (r *Round) TimeLeft() float64 { return r.timeLeft }

// Difficulty 返回当前生效的难度
func (r *Round) Difficulty() config.Difficulty { return r.difficulty }

// PendingDifficulty 返回被推迟的难度
func (r *Round) PendingDifficulty() (config.Difficulty, bool) {
	return r.pending, r.hasPending
}

// Preset 返回当前难度的预设
func (r *Round) Preset() config.DifficultyPreset {
	return r.difficulties.Preset(r.difficulty)
}

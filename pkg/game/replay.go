package game

import (
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/archery/pkg/config"
	"gopkg.in/yaml.v3"
)

// ActionType 输入动作类型
type ActionType string

const (
	ActionStart       ActionType = "start"
	ActionRestart     ActionType = "restart"
	ActionPause       ActionType = "pause"
	ActionDifficulty  ActionType = "difficulty"
	ActionPointerDown ActionType = "down"
	ActionPointerMove ActionType = "move"
	ActionPointerUp   ActionType = "up"
	ActionQuickFire   ActionType = "quickfire"
	ActionResize      ActionType = "resize"
)

// Action 一个带时间戳的输入动作
// At 为模拟时间（秒）；Resize 的宽高放在 X、Y 中
type Action struct {
	At         float64    `yaml:"at"`
	Type       ActionType `yaml:"type"`
	X          float64    `yaml:"x,omitempty"`
	Y          float64    `yaml:"y,omitempty"`
	Difficulty string     `yaml:"difficulty,omitempty"`
}

// Script 可回放的输入脚本
//
// 示例:
//
//	seed: 7
//	difficulty: Normal
//	width: 960
//	height: 640
//	step: 0.016666
//	duration: 5
//	actions:
//	  - {at: 0, type: start}
//	  - {at: 0.5, type: down, x: 700, y: 300}
//	  - {at: 0.5, type: up, x: 700, y: 300}
//
// Frames 非空时按记录的每帧步长回放（实时录制），否则以固定 Step 推进到 Duration。
type Script struct {
	Seed       int64             `yaml:"seed"`
	Difficulty config.Difficulty `yaml:"difficulty"`
	Width      float64           `yaml:"width"`
	Height     float64           `yaml:"height"`
	Step       float64           `yaml:"step"`
	Duration   float64           `yaml:"duration"`
	Actions    []Action          `yaml:"actions"`
	Frames     []float64         `yaml:"frames,omitempty"`
}

// ParseScript 解析 YAML 脚本
func ParseScript(data []byte) (*Script, error) {
	s := Script{
		Difficulty: config.DifficultyNormal,
		Width:      960,
		Height:     640,
		Step:       1.0 / 60,
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// LoadScript 从文件加载脚本
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// Save 以 YAML 写入文件
func (s *Script) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal script: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

// Validate 检查脚本参数
func (s *Script) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %.0fx%.0f", s.Width, s.Height)
	}
	if len(s.Frames) == 0 && s.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", s.Step)
	}
	for i, a := range s.Actions {
		switch a.Type {
		case ActionStart, ActionRestart, ActionPause, ActionPointerDown,
			ActionPointerMove, ActionPointerUp, ActionQuickFire, ActionResize:
		case ActionDifficulty:
			if _, err := config.ParseDifficulty(a.Difficulty); err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
		default:
			return fmt.Errorf("action %d: unknown type %q", i, a.Type)
		}
		if i > 0 && a.At < s.Actions[i-1].At {
			return fmt.Errorf("action %d: actions must be sorted by time", i)
		}
	}
	return nil
}

// Apply 把动作作用到游戏上
func (a Action) Apply(g *Game) {
	switch a.Type {
	case ActionStart:
		g.Start()
	case ActionRestart:
		g.Restart()
	case ActionPause:
		g.TogglePause()
	case ActionDifficulty:
		if d, err := config.ParseDifficulty(a.Difficulty); err == nil {
			g.SelectDifficulty(d)
		}
	case ActionPointerDown:
		g.PointerDown(a.X, a.Y)
	case ActionPointerMove:
		g.PointerMove(a.X, a.Y)
	case ActionPointerUp:
		g.PointerUp(a.X, a.Y)
	case ActionQuickFire:
		g.QuickFire()
	case ActionResize:
		g.Resize(a.X, a.Y)
	}
}

// RunScript 无界面回放脚本
//
// 参数:
//   - s: 输入脚本
//   - tuning, difficulties: 配置，nil 时使用默认值
//   - store: 最高分存储，nil 时使用内存存储
//
// 返回:
//   - *Game: 回放结束时的游戏（可继续查询或订阅）
//   - error: 脚本无效时返回错误
func RunScript(s *Script, tuning *config.TuningConfig, difficulties *config.DifficultyConfig,
	store HighScoreStore, observers ...func(Event)) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	clock := NewManualClock()
	g, err := NewGame(Options{
		Tuning:       tuning,
		Difficulties: difficulties,
		Difficulty:   s.Difficulty,
		Width:        s.Width,
		Height:       s.Height,
		Seed:         s.Seed,
		Clock:        clock,
		HighScores:   store,
	})
	if err != nil {
		return nil, err
	}
	for _, fn := range observers {
		g.Subscribe(fn)
	}

	actions := append([]Action(nil), s.Actions...)
	sort.SliceStable(actions, func(i, j int) bool { return actions[i].At < actions[j].At })

	next := 0
	applyDue := func() {
		for next < len(actions) && actions[next].At <= g.SimTime()+1e-9 {
			actions[next].Apply(g)
			next++
		}
	}

	step := func(dt float64) {
		applyDue()
		clock.Advance(dt)
		g.Step(dt)
	}

	if len(s.Frames) > 0 {
		for _, dt := range s.Frames {
			step(dt)
		}
	} else {
		for g.SimTime() < s.Duration-1e-9 {
			step(s.Step)
		}
	}
	applyDue()

	return g, nil
}

// Recorder 记录实时游戏的输入和每帧步长，生成可精确回放的脚本
type Recorder struct {
	script Script
}

// NewRecorder 创建录制器并挂到游戏上
//
// 参数:
//   - g: 要录制的游戏（应刚创建，尚未推进）
//   - seed: 创建游戏时使用的随机种子
func NewRecorder(g *Game, seed int64) *Recorder {
	r := &Recorder{
		script: Script{
			Seed:       seed,
			Difficulty: g.round.Difficulty(),
			Width:      g.layout.Width,
			Height:     g.layout.Height,
			Step:       1.0 / 60,
		},
	}
	g.recorder = r
	return r
}

func (r *Recorder) recordAction(at float64, a Action) {
	a.At = at
	r.script.Actions = append(r.script.Actions, a)
}

func (r *Recorder) recordStep(dt float64) {
	r.script.Frames = append(r.script.Frames, dt)
	r.script.Duration += dt
}

// Script 返回录制结果的副本
func (r *Recorder) Script() *Script {
	s := r.script
	s.Actions = append([]Action(nil), r.script.Actions...)
	s.Frames = append([]float64(nil), r.script.Frames...)
	return &s
}

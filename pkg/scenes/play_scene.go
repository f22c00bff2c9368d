package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
	"github.com/gonewx/archery/pkg/render"
	"github.com/gonewx/archery/pkg/utils"
)

// PlayScene 射箭游戏的唯一场景
//
// 职责：
//   - 把鼠标 / 触摸 / 键盘输入映射为 Game 的输入方法
//   - HUD 按钮（排除区内）直接调用对应操作，不进入蓄力
//   - 每帧推进模拟并绘制快照
//
// 键位：P 暂停，R 重新开始，Enter 开始，Space 快速射击，1/2/3 选择难度，M 开关音效，Q 退出。
type PlayScene struct {
	game     *game.Game
	renderer *render.Renderer
	pointer  *PointerTracker
	audio    *AudioManager
	settings *game.SettingsManager

	recorder   *game.Recorder
	recordPath string

	// buttonPress 当前手势从 HUD 按钮开始，松开时不射击
	buttonPress bool

	quit bool

	// snapshot 本帧的快照，Update 中采集，Draw 中复用
	snapshot game.Snapshot
}

// PlaySceneOptions PlayScene 的构造参数
type PlaySceneOptions struct {
	Audio    *AudioManager         // 可为 nil（静音）
	Settings *game.SettingsManager // 可为 nil（不记住难度）

	// RecordPath 非空时录制输入，退出时写入该路径
	RecordPath string
	Seed       int64
}

// NewPlayScene 创建游戏场景
//
// 参数：
//   - g: 游戏实例（处于 Idle 阶段）
//   - opts: 可选参数
func NewPlayScene(g *game.Game, opts PlaySceneOptions) *PlayScene {
	s := &PlayScene{
		game:       g,
		renderer:   render.NewRenderer(),
		pointer:    NewPointerTracker(),
		audio:      opts.Audio,
		settings:   opts.Settings,
		recordPath: opts.RecordPath,
	}
	s.renderer.Touch = utils.IsMobile()

	if opts.Audio != nil {
		g.Subscribe(opts.Audio.OnEvent)
	}
	if opts.RecordPath != "" {
		s.recorder = game.NewRecorder(g, opts.Seed)
		log.Printf("[PlayScene] Recording input to %s", opts.RecordPath)
	}

	s.snapshot = g.Snapshot()
	return s
}

// Update 处理输入并推进模拟
// 实际步长取自游戏时钟（Game.Advance），deltaTime 只用于接口兼容
func (s *PlayScene) Update(deltaTime float64) {
	s.handleKeys()
	s.handlePointer(s.pointer.Update())

	s.game.Advance()
	s.snapshot = s.game.Snapshot()
}

// Draw 绘制当前快照
func (s *PlayScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, &s.snapshot)
}

// Resize 视口尺寸变化
func (s *PlayScene) Resize(width, height int) {
	l := s.game.Layout()
	if float64(width) == l.Width && float64(height) == l.Height {
		return
	}
	s.game.Resize(float64(width), float64(height))
	s.snapshot = s.game.Snapshot()
}

func (s *PlayScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.game.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.startIfIdle()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.game.QuickFire()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.toggleSound()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.requestQuit()
	}

	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if inpututil.IsKeyJustPressed(key) {
			s.selectDifficulty(config.AllDifficulties[i])
		}
	}
}

// handlePointer 把一帧的指针手势映射到游戏输入
func (s *PlayScene) handlePointer(info PointerInfo) {
	x, y := float64(info.X), float64(info.Y)

	switch info.Phase {
	case PointerPressed:
		snap := s.game.Snapshot()
		if id, ok := render.HitButton(render.HUDButtons(&snap), x, y); ok {
			s.buttonPress = true
			s.pressButton(id)
			return
		}
		s.buttonPress = false
		s.game.PointerDown(x, y)

	case PointerHeld, PointerIdle:
		if info.Moved && !s.buttonPress {
			s.game.PointerMove(x, y)
		}

	case PointerReleased:
		if s.buttonPress {
			s.buttonPress = false
			return
		}
		s.game.PointerUp(x, y)
	}
}

// pressButton 执行 HUD 按钮动作
func (s *PlayScene) pressButton(id render.ButtonID) {
	log.Printf("[PlayScene] Button: %s", id)
	switch id {
	case render.ButtonStart:
		s.startIfIdle()
	case render.ButtonPause:
		s.game.TogglePause()
	case render.ButtonRestart:
		s.game.Restart()
	case render.ButtonDifficulty:
		r := s.game.Round()
		next := r.Difficulty().Next()
		if pending, ok := r.PendingDifficulty(); ok {
			next = pending.Next()
		}
		s.selectDifficulty(next)
	}
}

// startIfIdle 只在回合未进行时开始，避免误触重开
func (s *PlayScene) startIfIdle() {
	if !s.game.Round().InProgress() {
		s.game.Start()
	}
}

// selectDifficulty 切换难度并记住选择
func (s *PlayScene) selectDifficulty(d config.Difficulty) {
	s.game.SelectDifficulty(d)
	if s.settings == nil {
		return
	}
	s.settings.SetDifficulty(d)
	if err := s.settings.Save(); err != nil {
		log.Printf("[PlayScene] Warning: failed to save settings: %v", err)
	}
}

func (s *PlayScene) toggleSound() {
	if s.settings == nil {
		return
	}
	enabled := !s.settings.GetSettings().SoundEnabled
	s.settings.SetSoundEnabled(enabled)
	if err := s.settings.Save(); err != nil {
		log.Printf("[PlayScene] Warning: failed to save settings: %v", err)
	}
	log.Printf("[PlayScene] Sound enabled: %v", enabled)
}

// requestQuit 标记退出，App 在本帧结束后保存并终止
func (s *PlayScene) requestQuit() {
	s.quit = true
	log.Printf("[PlayScene] Quit requested")
}

// QuitRequested 实现 Quitter 接口
func (s *PlayScene) QuitRequested() bool {
	return s.quit
}

// SaveOnExit 保存设置和录制的输入
func (s *PlayScene) SaveOnExit() bool {
	ok := true
	if s.settings != nil {
		if err := s.settings.Save(); err != nil {
			log.Printf("[PlayScene] Warning: failed to save settings: %v", err)
			ok = false
		}
	}
	if s.recorder != nil {
		if err := s.recorder.Script().Save(s.recordPath); err != nil {
			log.Printf("[PlayScene] Warning: failed to save recording: %v", err)
			ok = false
		} else {
			log.Printf("[PlayScene] Recording saved to %s", s.recordPath)
		}
	}
	return ok
}

// Game 返回场景驱动的游戏实例
func (s *PlayScene) Game() *game.Game {
	return s.game
}

var (
	_ Scene     = (*PlayScene)(nil)
	_ Saveable  = (*PlayScene)(nil)
	_ Resizable = (*PlayScene)(nil)
)

// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
	"github.com/gonewx/archery/pkg/scenes"
	"github.com/gonewx/archery/pkg/sound"
	"github.com/gonewx/archery/pkg/utils"
)

// 默认窗口尺寸（逻辑像素）
const (
	WindowWidth  = config.ViewportWidth
	WindowHeight = config.ViewportHeight
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 初始难度名称，为空则使用上次保存的选择
	Difficulty string
	// TuningPath / DifficultyPath 配置文件路径，为空则使用内置配置
	TuningPath     string
	DifficultyPath string
	// RecordPath 非空时录制本次输入，退出时写入该文件
	RecordPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene   scenes.Scene
	verbose bool

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, difficulties, err := LoadConfigs(cfg.TuningPath, cfg.DifficultyPath)
	if err != nil {
		return nil, err
	}

	if dir, err := utils.EnsureStorageDir(config.AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	} else if dir != "" {
		log.Printf("[App] Storage dir: %s", dir)
	}

	// gdata 不可用时降级为内存模式：最高分和设置不持久化
	gdataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, running without persistence: %v", err)
		gdataManager = nil
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	difficulty := settingsManager.GetSettings().Difficulty
	if cfg.Difficulty != "" {
		d, err := config.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("invalid difficulty: %w", err)
		}
		difficulty = d
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.NewGame(game.Options{
		Tuning:       tuning,
		Difficulties: difficulties,
		Difficulty:   difficulty,
		Width:        WindowWidth,
		Height:       WindowHeight,
		Seed:         seed,
		HighScores:   game.NewGdataHighScoreStore(gdataManager),
	})
	if err != nil {
		return nil, fmt.Errorf("游戏创建失败: %w", err)
	}

	// 初始化音频上下文，采样率与合成音效一致
	audioContext := audio.NewContext(int(sound.SampleRate))
	audioManager := scenes.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	scene := scenes.NewPlayScene(g, scenes.PlaySceneOptions{
		Audio:      audioManager,
		Settings:   settingsManager,
		RecordPath: cfg.RecordPath,
		Seed:       seed,
	})

	log.Printf("[App] Starting: difficulty=%s seed=%d", difficulty, seed)

	return &App{
		scene:   scene,
		verbose: cfg.Verbose,
		width:   WindowWidth,
		height:  WindowHeight,
	}, nil
}

// LoadConfigs 加载调参和难度配置
// 路径为空时读取内置的 data/tuning.yaml 和 data/difficulty.yaml，
// 否则从磁盘读取指定文件
func LoadConfigs(tuningPath, difficultyPath string) (*config.TuningConfig, *config.DifficultyConfig, error) {
	var tuning *config.TuningConfig
	var err error
	if tuningPath == "" {
		tuningPath = "data/tuning.yaml"
		tuning, err = config.LoadTuningConfig(tuningPath)
	} else {
		tuning, err = config.LoadTuningConfigFile(tuningPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("调参配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载调参配置: %s", tuningPath)

	var difficulties *config.DifficultyConfig
	if difficultyPath == "" {
		difficultyPath = "data/difficulty.yaml"
		difficulties, err = config.LoadDifficultyConfig(difficultyPath)
	} else {
		difficulties, err = config.LoadDifficultyConfigFile(difficultyPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("难度配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载难度配置: %s", difficultyPath)

	return tuning, difficulties, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)

	if q, ok := a.scene.(scenes.Quitter); ok && q.QuitRequested() {
		a.SaveOnExit()
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 逻辑尺寸跟随窗口变化，布局、重力和箭长随之重新计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		if r, ok := a.scene.(scenes.Resizable); ok {
			r.Resize(outsideWidth, outsideHeight)
		}
		log.Printf("[App] Viewport resized to %dx%d", outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// SaveOnExit 保存当前场景的状态（设置、录制）
func (a *App) SaveOnExit() {
	if s, ok := a.scene.(scenes.Saveable); ok {
		s.SaveOnExit()
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

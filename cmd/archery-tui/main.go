// archery-tui 在终端里玩射箭挑战
//
// 鼠标左键按住蓄力、拖动瞄准、松开射击；Space 快速射击。
// S/Enter 开始，P 暂停，R 重新开始，1/2/3 选择难度，M 开关音效，Q/Esc 退出。
//
// 用法:
//
//	go run ./cmd/archery-tui -difficulty Hard -record session.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
)

func main() {
	difficulty := flag.String("difficulty", "", "初始难度: Easy, Normal, Hard（默认使用上次的选择）")
	tuningPath := flag.String("tuning", "", "调参配置文件路径（默认使用内置配置）")
	difficultyPath := flag.String("difficulty-config", "", "难度配置文件路径（默认使用内置配置）")
	recordPath := flag.String("record", "", "录制输入并在退出时写入该文件")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	logPath := flag.String("log", "", "日志文件路径（终端界面占用标准输出，默认不输出日志）")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if err := run(options{
		difficulty:     *difficulty,
		tuningPath:     *tuningPath,
		difficultyPath: *difficultyPath,
		recordPath:     *recordPath,
		seed:           *seed,
		logPath:        *logPath,
		mute:           *mute,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "archery-tui: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	difficulty     string
	tuningPath     string
	difficultyPath string
	recordPath     string
	seed           int64
	logPath        string
	mute           bool
}

func run(opts options) error {
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	// 终端版不嵌入配置：内置默认值与 data/*.yaml 一致，-tuning 等参数从磁盘读取
	tuning, difficulties := config.DefaultTuning(), config.DefaultDifficulties()
	if opts.tuningPath != "" || opts.difficultyPath != "" {
		var err error
		tuning, difficulties, err = loadOverrides(opts.tuningPath, opts.difficultyPath)
		if err != nil {
			return err
		}
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Printf("[TUI] Warning: gdata unavailable, running without persistence: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	d := settings.GetSettings().Difficulty
	if opts.difficulty != "" {
		if d, err = config.ParseDifficulty(opts.difficulty); err != nil {
			return fmt.Errorf("invalid difficulty: %w", err)
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.NewGame(game.Options{
		Tuning:       tuning,
		Difficulties: difficulties,
		Difficulty:   d,
		Width:        config.ViewportWidth,
		Height:       config.ViewportHeight,
		Seed:         seed,
		HighScores:   game.NewGdataHighScoreStore(gdataManager),
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	var recorder *game.Recorder
	if opts.recordPath != "" {
		recorder = game.NewRecorder(g, seed)
	}

	sound := newSpeakerSound(settings, opts.mute)
	defer sound.Close()
	g.Subscribe(sound.OnEvent)
	g.Subscribe(logEvent)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	newTUI(screen, g, settings).run()
	screen.Fini()

	if recorder != nil {
		if err := recorder.Script().Save(opts.recordPath); err != nil {
			return err
		}
		fmt.Printf("recording saved to %s\n", opts.recordPath)
	}
	if err := settings.Save(); err != nil {
		log.Printf("[TUI] Warning: failed to save settings: %v", err)
	}
	return nil
}

// loadOverrides 从磁盘读取配置；未指定的一方使用内置默认值
func loadOverrides(tuningPath, difficultyPath string) (*config.TuningConfig, *config.DifficultyConfig, error) {
	tuning := config.DefaultTuning()
	difficulties := config.DefaultDifficulties()
	var err error
	if tuningPath != "" {
		if tuning, err = config.LoadTuningConfigFile(tuningPath); err != nil {
			return nil, nil, err
		}
	}
	if difficultyPath != "" {
		if difficulties, err = config.LoadDifficultyConfigFile(difficultyPath); err != nil {
			return nil, nil, err
		}
	}
	return tuning, difficulties, nil
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/archery/pkg/app"
	"github.com/gonewx/archery/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	difficulty := flag.String("difficulty", "", "初始难度: Easy, Normal, Hard（默认使用上次的选择）")
	tuningPath := flag.String("tuning", "", "调参配置文件路径（默认使用内置配置）")
	difficultyPath := flag.String("difficulty-config", "", "难度配置文件路径（默认使用内置配置）")
	recordPath := flag.String("record", "", "录制输入并在退出时写入该文件，可用 archery-replay 回放")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Difficulty:     *difficulty,
		TuningPath:     *tuningPath,
		DifficultyPath: *difficultyPath,
		RecordPath:     *recordPath,
		Seed:           *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Archery Challenge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

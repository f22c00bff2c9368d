// archery-replay 无界面回放输入脚本并输出结算
//
// 脚本可以手写，也可以由 archery / archery-tui 的 -record 参数录制。
// 相同脚本在相同配置下总是得到相同结果，可用于回归验证调参修改。
//
// 用法:
//
//	go run ./cmd/archery-replay -script session.yaml
//	go run ./cmd/archery-replay -script session.yaml -tuning data/tuning.yaml -expect 120
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
)

func main() {
	scriptPath := flag.String("script", "", "输入脚本路径（必填）")
	tuningPath := flag.String("tuning", "", "调参配置文件路径（默认使用内置配置）")
	difficultyPath := flag.String("difficulty-config", "", "难度配置文件路径（默认使用内置配置）")
	expect := flag.Int("expect", -1, "期望得分，不一致时以非零状态退出")
	verbose := flag.Bool("verbose", false, "输出每个游戏事件")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: archery-replay -script <file.yaml> [-tuning file] [-difficulty-config file] [-expect score] [-verbose]")
		os.Exit(2)
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	s, err := game.LoadScript(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tuning, difficulties, err := loadConfigs(*tuningPath, *difficultyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var observers []func(game.Event)
	if *verbose {
		observers = append(observers, func(ev game.Event) {
			fmt.Println(describeEvent(ev))
		})
	}

	g, err := game.RunScript(s, tuning, difficulties, &game.MemoryHighScoreStore{}, observers...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := g.Snapshot()
	fmt.Print(report(s, g.SimTime(), &snap, g.LastResult()))

	if *expect >= 0 && snap.Score != *expect {
		fmt.Fprintf(os.Stderr, "score mismatch: got %d, want %d\n", snap.Score, *expect)
		os.Exit(1)
	}
}

// loadConfigs 未指定的配置使用内置默认值
func loadConfigs(tuningPath, difficultyPath string) (*config.TuningConfig, *config.DifficultyConfig, error) {
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

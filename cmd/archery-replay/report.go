package main

import (
	"fmt"
	"strings"

	"github.com/gonewx/archery/pkg/game"
)

// report 格式化回放结果
func report(s *game.Script, simTime float64, snap *game.Snapshot, result *game.RoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seed:        %d\n", s.Seed)
	fmt.Fprintf(&b, "Simulated:   %.2fs (%d actions)\n", simTime, len(s.Actions))
	fmt.Fprintf(&b, "Phase:       %s\n", snap.Phase)
	fmt.Fprintf(&b, "Difficulty:  %s\n", snap.Difficulty)
	fmt.Fprintf(&b, "Score:       %d\n", snap.Score)
	fmt.Fprintf(&b, "High score:  %d\n", snap.HighScore)
	fmt.Fprintf(&b, "Arrows left: %d\n", snap.ArrowsLeft)
	fmt.Fprintf(&b, "Stuck:       %d\n", snap.StuckArrows())
	if result != nil {
		record := ""
		if result.NewRecord {
			record = " (new record)"
		}
		fmt.Fprintf(&b, "Last result: %d%s\n", result.Score, record)
	}
	return b.String()
}

// describeEvent 事件的单行描述
func describeEvent(ev game.Event) string {
	switch e := ev.(type) {
	case game.EventRoundStarted:
		return fmt.Sprintf("round started: %s, %d arrows, %.0fs", e.Difficulty, e.Arrows, e.TimeLimit)
	case game.EventRoundEnded:
		return fmt.Sprintf("round ended: score %d, high %d, new record %v", e.Score, e.HighScore, e.NewRecord)
	case game.EventPauseToggled:
		return fmt.Sprintf("paused: %v", e.Paused)
	case game.EventArrowFired:
		return fmt.Sprintf("arrow fired: speed %.0f, angle %.2f", e.Speed, e.Angle)
	case game.EventTargetHit:
		return fmt.Sprintf("target hit: %d points, bullseye %v", e.Points, e.Bullseye)
	case game.EventPickupCollected:
		return fmt.Sprintf("pickup collected: +%d arrows", e.Arrows)
	}
	return fmt.Sprintf("%T", ev)
}

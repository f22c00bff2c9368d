package main

import (
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/archery/pkg/game"
	"github.com/gonewx/archery/pkg/sound"
)

// speakerSound 通过 beep speaker 播放合成音效
// 扬声器初始化失败时静默运行
type speakerSound struct {
	initialized bool
	settings    *game.SettingsManager
}

func newSpeakerSound(settings *game.SettingsManager, mute bool) *speakerSound {
	s := &speakerSound{settings: settings}
	if mute {
		return s
	}
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		// 没有音频设备也可以玩
		log.Printf("[TUI] Audio initialization failed: %v", err)
		return s
	}
	s.initialized = true
	return s
}

// OnEvent 作为 Game.Subscribe 的观察者播放对应音效
func (s *speakerSound) OnEvent(ev game.Event) {
	if !s.initialized {
		return
	}
	cue, ok := sound.CueFor(ev)
	if !ok {
		return
	}
	volume := s.settings.EffectiveVolume()
	if volume <= 0 {
		return
	}
	speaker.Play(sound.Streamer(cue, volume))
}

// Close 停止播放
func (s *speakerSound) Close() {
	if s.initialized {
		speaker.Clear()
	}
}

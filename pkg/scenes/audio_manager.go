package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/gonewx/archery/pkg/game"
	"github.com/gonewx/archery/pkg/sound"
)

// AudioManager 音效管理器
// 职责：
//   - 把合成的音效预渲染为 PCM，并为每个音效缓存一个播放器
//   - 播放时应用 SettingsManager 中的开关和音量
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager // 可为 nil，此时使用默认音量
	bank            *sound.Bank
	soundPlayers    map[sound.Cue]*audio.Player
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率必须是 sound.SampleRate
//   - sm: SettingsManager 实例（可为 nil）
//
// 返回：
//   - *AudioManager: 音效管理器实例
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		bank:            sound.NewBank(1),
		soundPlayers:    make(map[sound.Cue]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(cue sound.Cue) bool {
	if am == nil || am.context == nil {
		return false
	}
	volume := am.getSoundVolume()
	if volume <= 0 {
		return false
	}

	player := am.getSoundPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", cue, err)
	}
	player.Play()
	return true
}

// OnEvent 把游戏事件转换为音效，用作 Game.Subscribe 的观察者
func (am *AudioManager) OnEvent(ev game.Event) {
	if cue, ok := sound.CueFor(ev); ok {
		am.PlaySound(cue)
	}
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(cue sound.Cue) *audio.Player {
	if player, exists := am.soundPlayers[cue]; exists {
		return player
	}

	pcm := am.bank.PCM(cue)
	if len(pcm) == 0 {
		log.Printf("[AudioManager] Warning: Sound not found: %s", cue)
		return nil
	}

	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[cue] = player
	return player
}

// getSoundVolume 获取生效音量（关闭音效时为 0）
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.EffectiveVolume()
	}
	return game.DefaultSettings().SoundVolume
}

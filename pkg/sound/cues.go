package sound

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/gonewx/archery/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate 所有音效的采样率
const SampleRate = beep.SampleRate(44100)

// Cue 音效种类
type Cue int

const (
	CueStart Cue = iota
	CueRelease
	CueHit
	CueBullseye
	CuePickup
	CueRoundOver
	CueNewRecord
)

// AllCues 全部音效
var AllCues = []Cue{CueStart, CueRelease, CueHit, CueBullseye, CuePickup, CueRoundOver, CueNewRecord}

// String 返回音效名称
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueRelease:
		return "release"
	case CueHit:
		return "hit"
	case CueBullseye:
		return "bullseye"
	case CuePickup:
		return "pickup"
	case CueRoundOver:
		return "round-over"
	case CueNewRecord:
		return "new-record"
	default:
		return "unknown"
	}
}

// CueFor 返回游戏事件对应的音效
func CueFor(ev game.Event) (Cue, bool) {
	switch e := ev.(type) {
	case game.EventRoundStarted:
		return CueStart, true
	case game.EventArrowFired:
		return CueRelease, true
	case game.EventTargetHit:
		if e.Bullseye {
			return CueBullseye, true
		}
		return CueHit, true
	case game.EventPickupCollected:
		return CuePickup, true
	case game.EventRoundEnded:
		if e.NewRecord {
			return CueNewRecord, true
		}
		return CueRoundOver, true
	default:
		return 0, false
	}
}

// Streamer 合成一个音效
//
// 参数:
//   - cue: 音效种类
//   - volume: 线性音量 0.0 ~ 1.0
func Streamer(cue Cue, volume float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	var s beep.Streamer
	switch cue {
	case CueStart:
		s = beep.Seq(
			NewEnvelope(NewOscillator(523.25, ms(90), WaveSquare, SampleRate), ms(90), ms(5), ms(40), SampleRate),
			NewEnvelope(NewOscillator(783.99, ms(140), WaveSquare, SampleRate), ms(140), ms(5), ms(80), SampleRate),
		)
		s = withVolume(s, 0.35)
	case CueRelease:
		// 弓弦：下滑的锯齿波 + 一点噪声
		twang := NewEnvelope(NewSweep(420, -1400, ms(120), WaveSaw, SampleRate), ms(120), ms(2), ms(100), SampleRate)
		swish := NewEnvelope(NewOscillator(0, ms(80), WaveNoise, SampleRate), ms(80), ms(10), ms(60), SampleRate)
		s = beep.Mix(withVolume(twang, 0.5), withVolume(swish, 0.2))
	case CueHit:
		thud := NewEnvelope(NewSweep(180, -500, ms(110), WaveSine, SampleRate), ms(110), ms(2), ms(90), SampleRate)
		s = withVolume(thud, 0.9)
	case CueBullseye:
		s = beep.Mix(
			withVolume(NewEnvelope(NewOscillator(880, ms(400), WaveSine, SampleRate), ms(400), ms(5), ms(350), SampleRate), 0.6),
			withVolume(NewEnvelope(NewOscillator(1760, ms(400), WaveSine, SampleRate), ms(400), ms(5), ms(200), SampleRate), 0.25),
		)
	case CuePickup:
		s = beep.Seq(
			NewEnvelope(NewOscillator(987.77, ms(70), WaveSine, SampleRate), ms(70), ms(3), ms(30), SampleRate),
			NewEnvelope(NewOscillator(1318.51, ms(160), WaveSine, SampleRate), ms(160), ms(3), ms(120), SampleRate),
		)
		s = withVolume(s, 0.5)
	case CueRoundOver:
		s = withVolume(NewEnvelope(NewSweep(440, -300, ms(500), WaveSquare, SampleRate), ms(500), ms(10), ms(300), SampleRate), 0.3)
	case CueNewRecord:
		s = beep.Seq(
			NewEnvelope(NewOscillator(659.25, ms(120), WaveSine, SampleRate), ms(120), ms(5), ms(60), SampleRate),
			NewEnvelope(NewOscillator(783.99, ms(120), WaveSine, SampleRate), ms(120), ms(5), ms(60), SampleRate),
			sineTone(1046.5, ms(300)),
		)
		s = withVolume(s, 0.5)
	default:
		s = beep.Silence(0)
	}

	return withVolume(s, volume)
}

// sineTone 使用 beep 自带的正弦发生器生成一段纯音
func sineTone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		log.Printf("[Sound] sine tone %.1fHz: %v", freq, err)
		return beep.Silence(SampleRate.N(d))
	}
	return NewEnvelope(beep.Take(SampleRate.N(d), sine), d, 5*time.Millisecond, d/2, SampleRate)
}

// RenderPCM 把音效渲染为 16 位小端立体声 PCM
// 输出格式与 ebiten audio 播放器一致
func RenderPCM(cue Cue, volume float64) []byte {
	s := Streamer(cue, volume)

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				sample := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = binary.LittleEndian.AppendUint16(out, uint16(sample))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Bank 预渲染的 PCM 音效
type Bank struct {
	pcm map[Cue][]byte
}

// NewBank 以指定音量预渲染全部音效
func NewBank(volume float64) *Bank {
	b := &Bank{pcm: make(map[Cue][]byte, len(AllCues))}
	for _, cue := range AllCues {
		b.pcm[cue] = RenderPCM(cue, volume)
	}
	return b
}

// PCM 返回音效的 PCM 数据
func (b *Bank) PCM(cue Cue) []byte {
	return b.pcm[cue]
}

package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/system"
)

// SampleRate matches the ebiten audio context created by the game.
const SampleRate = beep.SampleRate(44100)

const (
	toneStartGain = 0.1
	toneEndGain   = 0.01
)

// Tone is a placeholder square-wave beep.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

var heroTones = map[system.Sound]Tone{
	system.SoundAttack:  {440, 100 * time.Millisecond},
	system.SoundHurt:    {220, 200 * time.Millisecond},
	system.SoundJump:    {660, 80 * time.Millisecond},
	system.SoundSpecial: {150, 500 * time.Millisecond},
	system.SoundDeath:   {110, 600 * time.Millisecond},
}

// ToneFor returns the placeholder for a cue. Bosses share one table shifted
// by a per-kind base pitch.
func ToneFor(ev system.Event) (Tone, bool) {
	if !ev.FromBoss() {
		t, ok := heroTones[ev.Sound]
		return t, ok
	}
	base := bossBase(ev.Boss)
	switch ev.Sound {
	case system.SoundAttack:
		return Tone{base + 100, 150 * time.Millisecond}, true
	case system.SoundHurt:
		return Tone{base - 50, 200 * time.Millisecond}, true
	case system.SoundJump:
		return Tone{base + 200, 100 * time.Millisecond}, true
	case system.SoundSpecial:
		return Tone{base - 80, 400 * time.Millisecond}, true
	case system.SoundDeath:
		return Tone{base - 100, 800 * time.Millisecond}, true
	case system.SoundIntro:
		return Tone{base, 300 * time.Millisecond}, true
	}
	return Tone{}, false
}

func bossBase(kind component.BossKind) float64 {
	switch kind {
	case component.BossConfusedKnight:
		return 200
	case component.BossFalseAlly:
		return 180
	case component.BossSwampQueen:
		return 160
	}
	return 140
}

// squareWave streams a square wave with an exponential fade.
func squareWave(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	pos := 0
	phase := 0.0
	step := t.Frequency / float64(rate)
	decay := math.Log(toneEndGain / toneStartGain)

	osc := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := -1.0
			if phase < 0.5 {
				v = 1.0
			}
			gain := toneStartGain
			if total > 0 {
				gain *= math.Exp(decay * float64(pos) / float64(total))
			}
			samples[i][0] = v * gain
			samples[i][1] = v * gain

			phase += step
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, osc)
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players take.
func Synthesize(t Tone, rate beep.SampleRate) []byte {
	if t.Duration <= 0 || t.Frequency <= 0 {
		return nil
	}
	s := squareWave(t, rate)
	out := make([]byte, 0, rate.N(t.Duration)*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toPCM(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toPCM(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toPCM(v float64) int16 {
	v = max(-1, min(v, 1))
	return int16(v * math.MaxInt16)
}

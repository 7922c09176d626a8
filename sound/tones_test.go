package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneForCoversEveryCue(t *testing.T) {
	heroCues := []system.Sound{system.SoundAttack, system.SoundHurt, system.SoundJump, system.SoundSpecial, system.SoundDeath}
	for _, s := range heroCues {
		tone, ok := ToneFor(system.HeroEvent(s))
		assert.True(t, ok, s)
		assert.Positive(t, tone.Frequency, s)
	}

	for _, kind := range component.BossKinds {
		for _, s := range append(heroCues, system.SoundIntro) {
			tone, ok := ToneFor(system.BossEvent(kind, s))
			assert.True(t, ok, "%s %s", kind, s)
			assert.Positive(t, tone.Frequency, "%s %s", kind, s)
		}
	}

	_, ok := ToneFor(system.HeroEvent(system.SoundIntro))
	assert.False(t, ok)
}

func TestBossPitchOrder(t *testing.T) {
	knight, _ := ToneFor(system.BossEvent(component.BossConfusedKnight, system.SoundIntro))
	final, _ := ToneFor(system.BossEvent(component.BossFinal, system.SoundIntro))
	assert.Equal(t, 200.0, knight.Frequency)
	assert.Equal(t, 140.0, final.Frequency)
}

func TestSynthesizeLengthAndFade(t *testing.T) {
	tone := Tone{Frequency: 440, Duration: 100 * time.Millisecond}
	pcm := Synthesize(tone, SampleRate)

	frames := SampleRate.N(tone.Duration)
	require.Len(t, pcm, frames*4)

	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(pcm[i*4:]))
	}
	first, last := sample(0), sample(frames-1)
	assert.Greater(t, abs(first), abs(last))
	assert.Equal(t, sample(0), int16(binary.LittleEndian.Uint16(pcm[2:])), "left and right match")
}

func TestSynthesizeRejectsEmptyTone(t *testing.T) {
	assert.Nil(t, Synthesize(Tone{}, SampleRate))
	assert.Nil(t, Synthesize(Tone{Frequency: 100}, SampleRate))
}

func TestNilBankIsSilent(t *testing.T) {
	var b *Bank
	assert.NotPanics(t, func() { b.Play([]system.Event{system.HeroEvent(system.SoundJump)}) })

	muted := NewBank(nil, nil, 1, false, nil)
	assert.NotPanics(t, func() { muted.Play([]system.Event{system.HeroEvent(system.SoundJump)}) })
}

func abs(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}

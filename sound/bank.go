package sound

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/terra/assets"
	"github.com/milk9111/terra/system"
)

// Bank plays sound cues. Custom WAV files from the asset library win over the
// synthesized tones. Failures are logged and otherwise ignored.
type Bank struct {
	ctx    *audio.Context
	lib    *assets.Library
	log    *slog.Logger
	volume float64
	muted  bool

	pcm     map[string][]byte
	players []*audio.Player
}

func NewBank(ctx *audio.Context, lib *assets.Library, volume float64, muted bool, log *slog.Logger) *Bank {
	if log == nil {
		log = slog.Default()
	}
	return &Bank{
		ctx:    ctx,
		lib:    lib,
		log:    log,
		volume: volume,
		muted:  muted || ctx == nil,
		pcm:    map[string][]byte{},
	}
}

func (b *Bank) SetMuted(muted bool) {
	b.muted = muted || b.ctx == nil
}

// Play starts every cue in events.
func (b *Bank) Play(events []system.Event) {
	if b == nil || b.muted {
		return
	}
	b.reap()
	for _, ev := range events {
		data, err := b.load(ev)
		if err != nil {
			b.log.Debug("sound skipped", "sound", ev.Sound, "boss", ev.Boss, "err", err)
			continue
		}
		p := b.ctx.NewPlayerFromBytes(data)
		p.SetVolume(b.volume)
		p.Play()
		b.players = append(b.players, p)
	}
}

func (b *Bank) load(ev system.Event) ([]byte, error) {
	key := assets.SoundKey(ev.Boss, string(ev.Sound))
	if data, ok := b.pcm[key]; ok {
		return data, nil
	}

	var data []byte
	if raw, ok := b.lib.Sound(key); ok {
		stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("sound: decode %s: %w", key, err)
		}
		if data, err = io.ReadAll(stream); err != nil {
			return nil, fmt.Errorf("sound: read %s: %w", key, err)
		}
	} else {
		tone, ok := ToneFor(ev)
		if !ok {
			return nil, fmt.Errorf("sound: no tone for %s", key)
		}
		data = Synthesize(tone, SampleRate)
	}

	b.pcm[key] = data
	return data, nil
}

// reap drops players that finished.
func (b *Bank) reap() {
	live := b.players[:0]
	for _, p := range b.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	b.players = live
}

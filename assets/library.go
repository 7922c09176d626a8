package assets

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/terra/component"
)

// Loader reads raw asset bytes by key.
type Loader func(key string) ([]byte, error)

// Library resolves semantic keys to images and sound files. Lookups that fail
// are remembered, so a missing asset is logged once and never retried.
type Library struct {
	images  map[string]*ebiten.Image
	missing map[string]bool
	load    func(key string) (*ebiten.Image, error)
	read    Loader
	log     *slog.Logger
}

func NewLibrary(log *slog.Logger) *Library {
	if log == nil {
		log = slog.Default()
	}
	return &Library{
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
		load:    LoadImage,
		read:    LoadFile,
		log:     log,
	}
}

// Image returns the image for key, or false when the caller should draw a
// placeholder instead.
func (l *Library) Image(key string) (*ebiten.Image, bool) {
	if l == nil || key == "" {
		return nil, false
	}
	if img, ok := l.images[key]; ok {
		return img, true
	}
	if l.missing[key] {
		return nil, false
	}
	img, err := l.load(key)
	if err != nil {
		l.miss(key, err)
		return nil, false
	}
	l.images[key] = img
	return img, true
}

// Sound returns the raw bytes of a sound file, or false when the caller
// should synthesize a placeholder tone.
func (l *Library) Sound(key string) ([]byte, bool) {
	if l == nil || key == "" || l.missing[key] {
		return nil, false
	}
	b, err := l.read(key)
	if err != nil {
		l.miss(key, err)
		return nil, false
	}
	return b, true
}

func (l *Library) miss(key string, err error) {
	l.missing[key] = true
	l.log.Debug("asset missing, using placeholder", "key", key, "err", err)
}

func HeroKey(s component.State) string {
	return fmt.Sprintf("hero/%s.png", s)
}

func BossKey(kind component.BossKind, s component.State) string {
	return fmt.Sprintf("bosses/%s/%s.png", kind, s)
}

func MonsterKey(kind component.MonsterKind) string {
	return fmt.Sprintf("monsters/%s.png", kind)
}

func BackgroundKey(levelID string) string {
	return fmt.Sprintf("backgrounds/%s.png", levelID)
}

func EffectKey(kind component.EffectKind) string {
	return fmt.Sprintf("effects/%s.png", kind)
}

// SoundKey names a sound file. An empty boss selects the hero's sounds.
func SoundKey(boss component.BossKind, name string) string {
	if boss == "" {
		return fmt.Sprintf("sounds/hero/%s.wav", name)
	}
	return fmt.Sprintf("sounds/bosses/%s/%s.wav", boss, name)
}

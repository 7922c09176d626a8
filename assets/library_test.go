package assets

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
)

func TestLibraryRemembersMisses(t *testing.T) {
	lib := NewLibrary(nil)
	calls := 0
	lib.load = func(string) (*ebiten.Image, error) {
		calls++
		return nil, errors.New("absent")
	}

	for range 3 {
		img, ok := lib.Image(HeroKey(component.StateIdle))
		assert.Nil(t, img)
		assert.False(t, ok)
	}
	assert.Equal(t, 1, calls)
}

func TestLibrarySoundFallback(t *testing.T) {
	lib := NewLibrary(nil)
	lib.read = func(key string) ([]byte, error) {
		if key == SoundKey("", "jump") {
			return []byte("RIFF"), nil
		}
		return nil, errors.New("absent")
	}

	b, ok := lib.Sound(SoundKey("", "jump"))
	assert.True(t, ok)
	assert.Equal(t, []byte("RIFF"), b)

	_, ok = lib.Sound(SoundKey(component.BossRiddler, "intro"))
	assert.False(t, ok)
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	_, ok := lib.Image("x")
	assert.False(t, ok)
	_, ok = lib.Sound("x")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "hero/attack.png", HeroKey(component.StateAttack))
	assert.Equal(t, "bosses/garima/hurt.png", BossKey(component.BossFalseAlly, component.StateHurt))
	assert.Equal(t, "monsters/bat.png", MonsterKey(component.MonsterBat))
	assert.Equal(t, "backgrounds/forest.png", BackgroundKey("forest"))
	assert.Equal(t, "effects/glitch.png", EffectKey(component.EffectGlitch))
	assert.Equal(t, "sounds/bosses/ravin/intro.wav", SoundKey(component.BossRiddler, "intro"))
	assert.Equal(t, "x.png", cleanAssetPath("assets/x.png"))
}

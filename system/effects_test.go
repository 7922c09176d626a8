package system

import (
	"testing"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectsGrowAndExpire(t *testing.T) {
	ctx := testContext(t)
	s := playing(levelIndex(t, ctx.Content, "forest"))
	s.Monsters = []component.Monster{slimeAt(700, 20)}
	s.Effects = []component.Effect{
		{ID: "a", Kind: component.EffectHit, MaxRadius: 20, Duration: 150},
		{ID: "b", Kind: component.EffectExplosion, MaxRadius: 100, Duration: 500},
	}

	next, _ := Step(s, tickMs, ctx)
	require.Len(t, next.Effects, 2)
	assert.InDelta(t, tickMs/150*20, next.Effects[0].Radius, 1e-9)

	next, _ = run(next, ctx, 10)
	require.Len(t, next.Effects, 1)
	assert.Equal(t, "b", next.Effects[0].ID)
}

func TestShakeDecays(t *testing.T) {
	ctx := testContext(t)
	s := playing(levelIndex(t, ctx.Content, "forest"))
	s.Monsters = []component.Monster{slimeAt(700, 20)}
	s.ScreenShake = 1

	next, _ := Step(s, tickMs, ctx)
	assert.InDelta(t, 1-tickMs*common.ShakeDecayRate, next.ScreenShake, 1e-9)
	next, _ = Step(next, tickMs, ctx)
	assert.Zero(t, next.ScreenShake)
}

func TestInPlayDialogueClearsAfterDisplayTime(t *testing.T) {
	ctx := testContext(t)
	s := playing(levelIndex(t, ctx.Content, "harsh"))
	s.Dialogue = &component.Dialogue{Text: "hello"}
	s.DialogueTimer = common.DialogueDisplayTime - tickMs/2

	next, _ := Step(s, tickMs, ctx)
	assert.Nil(t, next.Dialogue)
	assert.Zero(t, next.DialogueTimer)
	assert.Equal(t, tickMs, next.ElapsedTime)
}

func TestFrameAddEffect(t *testing.T) {
	s := playing(0)
	f := newFrame(&s, tickMs, nil)
	f.AddEffect(component.EffectGlitch, 1, 2, 3, 4, 5)
	f.AddEffect(component.EffectGlitch, 1, 2, 3, 4, 5)

	require.Len(t, f.Next.Effects, 2)
	e := f.Next.Effects[0]
	assert.Equal(t, "glitch-1", e.ID)
	assert.Equal(t, "glitch-2", f.Next.Effects[1].ID)
	assert.Equal(t, "#00ff00", e.Color)
	assert.Equal(t, 5, e.Damage)
	assert.Empty(t, s.Effects)
}

package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
	"github.com/stretchr/testify/require"
)

// tickMs is a var so loop counts like int(common.HurtDuration/tickMs) truncate at run time.
var tickMs = 16.0

type stubPicker struct {
	picks int
	q     *component.Question
}

func (p *stubPicker) Pick() *component.Question {
	p.picks++
	if p.q == nil {
		return nil
	}
	q := *p.q
	return &q
}

func testContent(t *testing.T) *prefabs.Content {
	t.Helper()
	c, err := prefabs.LoadContent()
	require.NoError(t, err)
	return c
}

func testContext(t *testing.T, keys ...component.Key) *Context {
	t.Helper()
	c := testContent(t)
	rules, err := NewClearRules(c, nil)
	require.NoError(t, err)
	return &Context{
		Keys:    component.NewKeySet(keys...),
		Rand:    rand.New(rand.NewSource(1)),
		Content: c,
		Rules:   rules,
	}
}

// levelIndex finds a level by id in the embedded content.
func levelIndex(t *testing.T, c *prefabs.Content, id string) int {
	t.Helper()
	for i, l := range c.Levels {
		if l.ID == id {
			return i
		}
	}
	t.Fatalf("no level %q", id)
	return -1
}

// playing returns an empty playing state on the given level.
func playing(level int) component.GameState {
	s := component.NewGameState()
	s.Phase = component.PhasePlaying
	s.CurrentLevel = level
	return s
}

func bossState(t *testing.T, ctx *Context, kind component.BossKind) component.GameState {
	t.Helper()
	s := playing(levelIndex(t, ctx.Content, string(kind)))
	s.Boss = NewBoss(ctx.Content.Bosses[kind])
	s.CanAttackBoss = kind != component.BossFalseAlly
	return s
}

func slimeAt(x float64, hp int) component.Monster {
	return component.Monster{
		Entity: component.Entity{
			X: x, Y: common.GroundY - 24, Width: 32, Height: 24,
			HP: hp, MaxHP: hp, State: component.StateIdle, Facing: component.FacingLeft,
		},
		ID:             "slime",
		Kind:           component.MonsterSlime,
		AttackCooldown: 1000,
		Damage:         5,
		Speed:          1,
	}
}

// run steps s until the phase leaves playing or n ticks pass.
func run(s component.GameState, ctx *Context, n int) (component.GameState, []Event) {
	var all []Event
	for range n {
		if s.Phase != component.PhasePlaying {
			break
		}
		var events []Event
		s, events = Step(s, tickMs, ctx)
		all = append(all, events...)
	}
	return s, all
}

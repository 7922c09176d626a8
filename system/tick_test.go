package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepOutsidePlayingIsNoop(t *testing.T) {
	ctx := testContext(t, component.KeyAttack)
	for _, phase := range []component.Phase{
		component.PhaseTitle, component.PhasePrologue, component.PhaseDialogue, component.PhaseMCQ,
		component.PhasePaused, component.PhaseLevelComplete, component.PhaseGameOver, component.PhaseVictory,
	} {
		s := component.NewGameState()
		s.Phase = phase
		next, events := Step(s, tickMs, ctx)
		assert.Equal(t, s, next, phase)
		assert.Empty(t, events)
	}
	assert.True(t, ctx.Keys.Has(component.KeyAttack), "keys are untouched outside play")
}

func TestStepZeroDeltaIsNoop(t *testing.T) {
	ctx := testContext(t)
	s := bossState(t, ctx, component.BossFinal)
	s.Monsters = []component.Monster{slimeAt(300, 20)}

	next, events := Step(s, 0, ctx)
	assert.Equal(t, s, next)
	assert.Empty(t, events)

	next, _ = Step(s, -5, ctx)
	assert.Equal(t, s, next)
}

func TestStepLeavesPrevUntouched(t *testing.T) {
	ctx := testContext(t, component.KeyAttack, component.KeyRight)
	s := bossState(t, ctx, component.BossConfusedKnight)
	s.Monsters = []component.Monster{slimeAt(140, 20)}
	s.Dialogue = &component.Dialogue{Text: "hello"}
	snapshot := s.Clone()

	next, _ := Step(s, tickMs, ctx)
	assert.Equal(t, snapshot, s)
	assert.NotEqual(t, s.Monsters[0].HP, next.Monsters[0].HP, "attack landed on the copy")

	next.Boss.HP = 1
	next.Monsters[0].X = 999
	assert.Equal(t, snapshot, s, "next shares nothing with prev")
}

func TestStepIsDeterministic(t *testing.T) {
	ctx := testContext(t)
	s := bossState(t, ctx, component.BossSwampQueen)
	s.Monsters = []component.Monster{slimeAt(300, 20), slimeAt(500, 20)}

	runWith := func(seed int64) component.GameState {
		c := *ctx
		c.Rand = rand.New(rand.NewSource(seed))
		c.Keys = component.NewKeySet(component.KeyRight)
		out, _ := run(s, &c, 300)
		return out
	}
	assert.Equal(t, runWith(7), runWith(7))
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	ctx := testContext(t, component.KeyLeft)
	s := bossState(t, ctx, component.BossFinal)
	s.Monsters = SpawnMonsters(ctx.Content, "forest", ctx.Rand)

	for range 2000 {
		if s.Phase != component.PhasePlaying {
			break
		}
		if s.ElapsedTime > 0 && int(s.ElapsedTime)%500 < int(tickMs) {
			ctx.Keys.Add(component.KeyAttack)
		}
		s, _ = Step(s, tickMs, ctx)

		p := s.Player
		assert.GreaterOrEqual(t, p.HP, 0)
		assert.LessOrEqual(t, p.HP, p.MaxHP)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, common.GameWidth-p.Width)
		assert.GreaterOrEqual(t, p.SpecialCooldown, 0.0)
		assert.GreaterOrEqual(t, s.ScreenShake, 0.0)
		if p.HP == 0 {
			assert.Equal(t, component.StateDeath, p.State)
		}
		for _, m := range s.Monsters {
			assert.GreaterOrEqual(t, m.HP, 0)
			assert.LessOrEqual(t, m.Y, float64(common.GroundY)-m.Height+0.0001)
		}
		if s.Boss != nil {
			assert.GreaterOrEqual(t, s.Boss.HP, 0)
		}
	}
}

func TestEffectIDsAreUnique(t *testing.T) {
	ctx := testContext(t)
	s := bossState(t, ctx, component.BossFinal)
	s.Player.HasSpecialAttack = true

	seen := map[string]bool{}
	for range 400 {
		ctx.Keys.Add(component.KeySpecial)
		ctx.Keys.Add(component.KeyAttack)
		s, _ = Step(s, tickMs, ctx)
		for _, e := range s.Effects {
			seen[e.ID] = true
		}
		ids := map[string]bool{}
		for _, e := range s.Effects {
			require.False(t, ids[e.ID], "duplicate effect id %s", e.ID)
			ids[e.ID] = true
		}
		if s.Phase != component.PhasePlaying {
			break
		}
	}
	assert.NotEmpty(t, seen)
}

func TestSchedulerStopsOnHalt(t *testing.T) {
	var order []string
	rec := func(name string, halt bool) System {
		return systemFunc(func(f *Frame) {
			order = append(order, name)
			if halt {
				f.Halt()
			}
		})
	}
	s := NewScheduler(rec("a", false), rec("b", true), rec("c", false))

	s.Update(&Frame{})
	assert.Equal(t, []string{"a", "b"}, order)
}

type systemFunc func(f *Frame)

func (fn systemFunc) Update(f *Frame) { fn(f) }

package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonster(x float64, hp int) *Monster {
	return &Monster{
		Entity: Entity{X: x, Y: 300, Width: 30, Height: 30, HP: hp, MaxHP: hp, State: StateIdle, Facing: FacingLeft},
		Kind:   MonsterSlime,
	}
}

func testBoss(hp int) *Boss {
	return &Boss{
		Entity: Entity{X: 200, Y: 306, Width: 64, Height: 64, HP: hp, MaxHP: hp, State: StateIdle, Facing: FacingLeft},
		Kind:   BossFinal,
	}
}

func TestMeleeReach(t *testing.T) {
	box := cp.BB{L: 100, B: 10, R: 132, T: 58}
	assert.Equal(t, cp.BB{L: 132, B: 10, R: 192, T: 58}, MeleeReach(box, FacingRight, 60))
	assert.Equal(t, cp.BB{L: 40, B: 10, R: 100, T: 58}, MeleeReach(box, FacingLeft, 60))
}

func TestOverlapsIsStrict(t *testing.T) {
	a := cp.BB{L: 0, B: 0, R: 10, T: 10}
	assert.True(t, Overlaps(a, cp.BB{L: 5, B: 5, R: 15, T: 15}))
	assert.False(t, Overlaps(a, cp.BB{L: 10, B: 0, R: 20, T: 10}), "touching edges")
	assert.False(t, Overlaps(a, cp.BB{L: 30, B: 30, R: 40, T: 40}))
}

func TestAreaHit(t *testing.T) {
	assert.True(t, AreaHit(100, 250, 349))
	assert.False(t, AreaHit(100, 250, 350))
	assert.True(t, AreaHit(100, 250, -149))
}

func TestMeleeHurtsAndGrantsIFrames(t *testing.T) {
	attacker := &Entity{X: 100, Y: 300, Width: 32, Height: 48, Facing: FacingRight}
	m := testMonster(150, 30)

	out := CombatResolver{CanAttackBoss: true}.Melee(attacker, 60, m, Hit{Amount: 10, IFrames: true})
	assert.Equal(t, OutcomeHurt, out)
	assert.Equal(t, 20, m.HP)
	assert.Equal(t, StateHurt, m.State)
	assert.True(t, m.Invincible)

	// invincible targets are immune
	out = CombatResolver{CanAttackBoss: true}.Melee(attacker, 60, m, Hit{Amount: 10})
	assert.Equal(t, OutcomeBlocked, out)
	assert.Equal(t, 20, m.HP)
}

func TestMeleeWrongSideMisses(t *testing.T) {
	attacker := &Entity{X: 100, Y: 300, Width: 32, Height: 48, Facing: FacingLeft}
	m := testMonster(150, 30)
	out := CombatResolver{}.Melee(attacker, 60, m, Hit{Amount: 10})
	assert.Equal(t, OutcomeBlocked, out)
	assert.Equal(t, 30, m.HP)
}

func TestLethalHitFloorsAtZero(t *testing.T) {
	m := testMonster(0, 8)
	out := CombatResolver{}.ApplyDamage(m, Hit{Amount: 40})
	assert.Equal(t, OutcomeKilled, out)
	assert.Zero(t, m.HP)
	assert.Equal(t, StateDeath, m.State)
	assert.True(t, m.Defeated)

	// already dead stays untouched
	assert.Equal(t, OutcomeBlocked, CombatResolver{}.ApplyDamage(m, Hit{Amount: 5}))
	assert.Zero(t, m.HP)
}

func TestBossGate(t *testing.T) {
	b := testBoss(150)
	assert.Equal(t, OutcomeBlocked, CombatResolver{CanAttackBoss: false}.ApplyDamage(b, Hit{Amount: 10}))
	assert.Equal(t, 150, b.HP)
	assert.Equal(t, OutcomeBlocked, CombatResolver{CanAttackBoss: false}.Burst(b.CenterX(), 250, b, Hit{Amount: 40}))

	assert.Equal(t, OutcomeHurt, CombatResolver{CanAttackBoss: true}.ApplyDamage(b, Hit{Amount: 10}))
	assert.Equal(t, 140, b.HP)
}

func TestNewCombatResolver(t *testing.T) {
	assert.True(t, NewCombatResolver(nil).CanAttackBoss)
	s := NewGameState()
	s.CanAttackBoss = false
	assert.False(t, NewCombatResolver(&s).CanAttackBoss)
}

func TestApplyPenaltyIgnoresInvincibility(t *testing.T) {
	p := NewPlayer()
	p.StartInvincibility()
	out := ApplyPenalty(&p, 20)
	require.Equal(t, OutcomeHurt, out)
	assert.Equal(t, 80, p.HP)

	p.HP = 10
	assert.Equal(t, OutcomeKilled, ApplyPenalty(&p, 20))
	assert.Zero(t, p.HP)
	assert.Equal(t, OutcomeBlocked, ApplyPenalty(&p, 20))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "blocked", OutcomeBlocked.String())
	assert.Equal(t, "killed", OutcomeKilled.String())
	assert.True(t, OutcomeHurt.Landed())
	assert.False(t, OutcomeBlocked.Landed())
}

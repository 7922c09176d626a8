package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CombatResolver applies damage between combatants. CanAttackBoss mirrors the
// game state flag of the same name; while false every call against a boss is
// a no-op.
type CombatResolver struct {
	CanAttackBoss bool
}

// NewCombatResolver creates a resolver for the given snapshot.
func NewCombatResolver(s *GameState) CombatResolver {
	if s == nil {
		return CombatResolver{CanAttackBoss: true}
	}
	return CombatResolver{CanAttackBoss: s.CanAttackBoss}
}

// MeleeReach returns the strip of width reach placed flush against the
// attacker's leading edge.
func MeleeReach(box cp.BB, facing Facing, reach float64) cp.BB {
	if facing == FacingRight {
		return cp.BB{L: box.R, B: box.B, R: box.R + reach, T: box.T}
	}
	return cp.BB{L: box.L - reach, B: box.B, R: box.L, T: box.T}
}

// Overlaps is a strict AABB test: boxes that only touch do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// MeleeHit reports whether the attacker's reach strip overlaps target.
func MeleeHit(attacker cp.BB, facing Facing, reach float64, target cp.BB) bool {
	return Overlaps(MeleeReach(attacker, facing, reach), target)
}

// AreaHit reports whether a target centred at targetCenterX is inside a burst.
func AreaHit(centerX, radius, targetCenterX float64) bool {
	return math.Abs(targetCenterX-centerX) < radius
}

// Targetable reports whether the resolver may touch target at all.
func (r CombatResolver) Targetable(target Damageable) bool {
	if target == nil || target.Body() == nil {
		return false
	}
	if _, isBoss := target.(*Boss); isBoss && !r.CanAttackBoss {
		return false
	}
	body := target.Body()
	return !body.Invincible && !body.Dead() && !target.IsDefeated()
}

// Melee resolves a directional melee swing from attacker against target.
func (r CombatResolver) Melee(attacker *Entity, reach float64, target Damageable, hit Hit) Outcome {
	if attacker == nil || !r.Targetable(target) {
		return OutcomeBlocked
	}
	if !MeleeHit(attacker.Box(), attacker.Facing, reach, target.Body().Box()) {
		return OutcomeBlocked
	}
	return r.ApplyDamage(target, hit)
}

// Burst resolves an area burst centred at centerX against target.
func (r CombatResolver) Burst(centerX, radius float64, target Damageable, hit Hit) Outcome {
	if !r.Targetable(target) {
		return OutcomeBlocked
	}
	if !AreaHit(centerX, radius, target.Body().CenterX()) {
		return OutcomeBlocked
	}
	return r.ApplyDamage(target, hit)
}

// ApplyDamage subtracts hit.Amount from the target. A lethal hit floors HP at
// zero and moves the target to death; otherwise it is hurt.
func (r CombatResolver) ApplyDamage(target Damageable, hit Hit) Outcome {
	if !r.Targetable(target) {
		return OutcomeBlocked
	}
	return inflict(target, hit)
}

// ApplyPenalty drains HP regardless of invincibility. Dead targets are left alone.
func ApplyPenalty(target Damageable, amount int) Outcome {
	if target == nil || target.Body() == nil || target.Body().Dead() || target.IsDefeated() {
		return OutcomeBlocked
	}
	return inflict(target, Hit{Amount: amount})
}

// Kill forces a target into death without any guard, for HP that reached zero
// through a path other than the resolver.
func Kill(target Damageable) {
	body := target.Body()
	body.HP = 0
	body.Enter(StateDeath)
	target.MarkDefeated()
}

func inflict(target Damageable, hit Hit) Outcome {
	body := target.Body()
	body.HP -= hit.Amount
	if body.HP <= 0 {
		Kill(target)
		return OutcomeKilled
	}
	body.clampHP()
	body.Enter(StateHurt)
	if hit.IFrames {
		body.StartInvincibility()
	}
	return OutcomeHurt
}

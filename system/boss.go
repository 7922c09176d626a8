package system

import (
	"math"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// BossSystem drives the level boss: archetype script, attack window, motion,
// HP-threshold dialogue and the defeat sequence.
type BossSystem struct{}

func NewBossSystem() *BossSystem { return &BossSystem{} }

func (s *BossSystem) Update(f *Frame) {
	if f == nil || f.Next.Boss == nil {
		return
	}
	b := f.Next.Boss

	if b.HP <= 0 && b.State != component.StateDeath {
		component.Kill(b)
	}
	if b.Defeated && (f.Prev.Boss == nil || !f.Prev.Boss.Defeated) {
		s.defeat(f, b)
	}

	if b.Defeated {
		b.StateTimer += f.DT
		b.Animate()
		if b.State == component.StateDeath && b.StateTimer > common.DeathDuration {
			f.Next.Phase = component.PhaseLevelComplete
			f.Next.Score += common.BossDefeatBonus
			f.Halt()
		}
		return
	}

	runScript(f, b)
	s.attackWindow(f, b)
	s.integrate(f, b)

	b.StateTimer += f.DT
	switch {
	case b.State == component.StateAttack && b.StateTimer > common.AttackDuration:
		b.Enter(component.StateIdle)
	case b.State == component.StateHurt && b.StateTimer > common.HurtDuration:
		b.Enter(component.StateIdle)
		b.Invincible = false
		b.InvincibleTimer = 0
	}
	b.TickInvincibility(f.DT, common.BossInvincibleTime)

	s.thresholdLines(f, b)
	s.specialUnlock(f, b)

	b.Animate()
}

// chase is the default boss AI: close in, then swing when the cooldown allows.
func chase(f *Frame, b *component.Boss) {
	if !b.State.Mobile() {
		return
	}
	b.AttackCooldown -= f.DT

	dx := f.Next.Player.X - b.X
	if math.Abs(dx) > common.BossAttackRange {
		b.VX = common.Sign(dx) * common.BossSpeed
		b.Facing = b.Facing.Toward(dx)
		b.SetState(component.StateWalk)
		return
	}

	b.VX = 0
	b.SetState(component.StateIdle)
	if b.AttackCooldown <= 0 {
		b.Enter(component.StateAttack)
		b.AttackCooldown = common.BossCooldownBase + f.Ctx.float()*common.BossCooldownSpread
		f.Emit(BossEvent(b.Kind, SoundAttack))
	}
}

func (s *BossSystem) attackWindow(f *Frame, b *component.Boss) {
	if b.State != component.StateAttack || !b.AllyPhase.Hostile() {
		return
	}
	if b.StateTimer <= common.BossHitWindowStart || b.StateTimer >= common.BossHitWindowEnd {
		return
	}
	hit := component.Hit{Amount: common.BossAttackDamage, IFrames: true}
	if f.Resolver().Melee(&b.Entity, common.BossAttackRange, &f.Next.Player, hit).Landed() {
		f.Next.Shake(common.ShakeBossHit)
		f.Emit(HeroEvent(SoundHurt))
	}
}

func (s *BossSystem) integrate(f *Frame, b *component.Boss) {
	scale := f.Scale()
	b.X += b.VX * scale
	b.Y += b.VY * scale
	b.ClampX()
}

// thresholdLines fires each HP-threshold line once when health drops to it.
func (s *BossSystem) thresholdLines(f *Frame, b *component.Boss) {
	pct := b.HPPercent()
	for i := range b.Triggers {
		t := &b.Triggers[i]
		if t.Condition != component.TriggerHPThreshold || t.Triggered || t.HPThreshold <= 0 {
			continue
		}
		if isClosenessLine(b, t) || pct > t.HPThreshold {
			continue
		}
		t.Triggered = true
		f.Say(component.SpeakerBoss, t.Text, component.StyleGlitch)
	}
}

// specialUnlock grants the special attack the first time the false ally
// drops to the unlock threshold.
func (s *BossSystem) specialUnlock(f *Frame, b *component.Boss) {
	if b.Kind != component.BossFalseAlly || f.Next.Player.HasSpecialAttack {
		return
	}
	if b.HPPercent() > common.SpecialUnlockPercent {
		return
	}
	t, ok := b.FindTrigger(component.TriggerSpecialUnlock)
	if !ok || t.Triggered {
		return
	}
	t.Triggered = true
	f.Next.Player.HasSpecialAttack = true
	f.Next.Player.SpecialCooldown = 0
	f.Say(component.SpeakerSystem, t.Text, component.StyleBig)
	f.Next.Shake(common.ShakeUnlock)
	f.Ctx.logger().Info("special attack unlocked", "boss", b.Kind)
}

func (s *BossSystem) defeat(f *Frame, b *component.Boss) {
	if t, ok := b.FindTrigger(component.TriggerDefeat); ok {
		t.Triggered = true
		f.Say(component.SpeakerBoss, t.Text, component.StyleBig)
	}
	c := b.Center()
	f.AddEffect(component.EffectExplosion, c.X, c.Y, common.ExplosionRadius, common.ExplosionDuration, 0)
	f.Emit(BossEvent(b.Kind, SoundDeath))
	f.Ctx.logger().Info("boss defeated", "boss", b.Kind, "level", f.Next.CurrentLevel)
}

func isClosenessLine(b *component.Boss, t *component.DialogueTrigger) bool {
	return b.Kind == component.BossFalseAlly && t.HPThreshold == common.AllyClosenessPercent
}

package system

import (
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// PlayerSystem turns held keys into movement and commands, integrates the
// player and ends the run once the death animation has played out.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Update(f *Frame) {
	if f == nil {
		return
	}

	// Commands are gated on the player as it stood before this tick's input.
	before := f.Prev.Player
	p := &f.Next.Player

	if p.State != component.StateDeath {
		s.handleInput(f, p)
		s.dispatchCommands(f, &before)
		s.integrate(f, p)
	}

	p.StateTimer += f.DT
	s.autoRevert(p)
	p.TickInvincibility(f.DT, common.InvincibilityTime)
	p.TickCooldown(f.DT)
	p.Animate()

	if p.HP <= 0 && p.State != component.StateDeath {
		component.Kill(p)
		f.Emit(HeroEvent(SoundDeath))
	}
	if p.State == component.StateDeath && p.StateTimer > common.DeathDuration {
		f.Next.Phase = component.PhaseGameOver
		f.Halt()
	}
}

func (s *PlayerSystem) handleInput(f *Frame, p *component.Player) {
	if !p.State.Mobile() && p.State != component.StateJump {
		return
	}
	keys := f.Ctx.keys()

	left, right := keys.Has(component.KeyLeft), keys.Has(component.KeyRight)
	switch {
	case left && !right:
		p.VX = -common.PlayerSpeed
		p.Facing = component.FacingLeft
	case right && !left:
		p.VX = common.PlayerSpeed
		p.Facing = component.FacingRight
	default:
		p.VX = 0
	}
	if p.State != component.StateJump {
		if p.VX != 0 {
			p.SetState(component.StateWalk)
		} else {
			p.SetState(component.StateIdle)
		}
	}

	if (keys.Has(component.KeyUp) || keys.Has(component.KeySpace)) && p.Grounded() {
		p.VY = common.PlayerJumpForce
		p.SetState(component.StateJump)
		f.Emit(HeroEvent(SoundJump))
	}
}

// dispatchCommands reads the attack and special keys while the player is
// idle, walking or jumping. In any other state the presses stay held and
// fire once the player recovers. A jumping player uses up an attack press
// without swinging.
func (s *PlayerSystem) dispatchCommands(f *Frame, before *component.Player) {
	if !before.State.Mobile() && before.State != component.StateJump {
		return
	}
	keys := f.Ctx.keys()
	attack := keys.Consume(component.KeyAttack)
	special := keys.Consume(component.KeySpecial)

	if attack && before.State.Mobile() {
		s.attack(f, before)
	}
	if special && before.CanSpecial() {
		s.special(f, before)
	}
}

func (s *PlayerSystem) attack(f *Frame, before *component.Player) {
	p := &f.Next.Player
	p.Enter(component.StateAttack)
	p.VX = 0
	f.Emit(HeroEvent(SoundAttack))

	resolver := f.Resolver()
	hit := component.Hit{Amount: common.PlayerAttackDamage, IFrames: true}

	for i := range f.Next.Monsters {
		m := &f.Next.Monsters[i]
		if resolver.Melee(&before.Entity, common.PlayerAttackRange, m, hit).Landed() {
			c := m.Center()
			f.AddEffect(component.EffectHit, c.X, c.Y, common.MonsterHitRadius, common.MonsterHitDuration, 0)
		}
	}

	if b := f.Next.Boss; b != nil {
		if resolver.Melee(&before.Entity, common.PlayerAttackRange, b, hit).Landed() {
			c := b.Center()
			f.AddEffect(component.EffectHit, c.X, c.Y, common.BossHitRadius, common.BossHitDuration, 0)
			f.Emit(BossEvent(b.Kind, SoundHurt))
		}
	}
}

func (s *PlayerSystem) special(f *Frame, before *component.Player) {
	p := &f.Next.Player
	p.Enter(component.StateSpecial)
	p.VX = 0
	p.SpecialCooldown = common.SpecialCooldown
	f.Emit(HeroEvent(SoundSpecial))

	centerX := before.CenterX()
	f.AddEffect(component.EffectSpecial, centerX, common.GroundY, common.SpecialAttackRadius, common.SpecialDuration, common.SpecialAttackDamage)

	resolver := f.Resolver()
	hit := component.Hit{Amount: common.SpecialAttackDamage}
	for i := range f.Next.Monsters {
		resolver.Burst(centerX, common.SpecialAttackRadius, &f.Next.Monsters[i], hit)
	}
	if b := f.Next.Boss; b != nil {
		if resolver.Burst(centerX, common.SpecialAttackRadius, b, hit).Landed() {
			f.Emit(BossEvent(b.Kind, SoundHurt))
		}
	}

	f.Next.Shake(common.ShakeSpecial)
}

func (s *PlayerSystem) integrate(f *Frame, p *component.Player) {
	scale := f.Scale()
	p.VY += common.Gravity * scale
	p.X += p.VX * scale
	p.Y += p.VY * scale

	if p.LandOnGround() && p.State == component.StateJump {
		p.SetState(component.StateIdle)
	}
	p.ClampX()
}

func (s *PlayerSystem) autoRevert(p *component.Player) {
	switch {
	case p.State == component.StateAttack && p.StateTimer > common.AttackDuration,
		p.State == component.StateHurt && p.StateTimer > common.HurtDuration,
		p.State == component.StateSpecial && p.StateTimer > common.SpecialDuration:
		p.Enter(component.StateIdle)
	}
}

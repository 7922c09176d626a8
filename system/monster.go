package system

import (
	"fmt"
	"math"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// MonsterSystem runs the shared chase-and-bite AI for every monster and
// drops monsters whose death animation has finished.
type MonsterSystem struct{}

func NewMonsterSystem() *MonsterSystem { return &MonsterSystem{} }

func (s *MonsterSystem) Update(f *Frame) {
	if f == nil || len(f.Next.Monsters) == 0 {
		return
	}

	alive := f.Next.Monsters[:0]
	for _, m := range f.Next.Monsters {
		if m.Defeated {
			m.StateTimer += f.DT
			m.Animate()
			if m.State == component.StateDeath && m.StateTimer > common.DeathDuration {
				continue
			}
			alive = append(alive, m)
			continue
		}

		if m.State.Mobile() {
			s.think(f, &m)
		}
		s.integrate(f, &m)

		m.StateTimer += f.DT
		if m.State == component.StateHurt && m.StateTimer > common.MonsterHurtDuration {
			m.Enter(component.StateIdle)
			m.Invincible = false
			m.InvincibleTimer = 0
		}
		m.TickInvincibility(f.DT, common.MonsterInvincibleTime)
		m.Animate()

		if m.HP <= 0 && m.State != component.StateDeath {
			component.Kill(&m)
		}
		alive = append(alive, m)
	}
	f.Next.Monsters = alive
}

func (s *MonsterSystem) think(f *Frame, m *component.Monster) {
	player := &f.Next.Player
	dx := player.X - m.X

	if math.Abs(dx) > common.MonsterProximity {
		m.VX = common.Sign(dx) * m.Speed
		m.Facing = m.Facing.Toward(dx)
		m.SetState(component.StateWalk)
	} else {
		m.VX = 0
		m.SetState(component.StateIdle)
		m.AttackCooldown -= f.DT
		if m.AttackCooldown <= 0 && !player.Invincible && !player.Dead() {
			if math.Abs(dx) < common.MonsterReachX && math.Abs(player.Y-m.Y) < common.MonsterReachY {
				hit := component.Hit{Amount: m.Damage, IFrames: true}
				if f.Resolver().ApplyDamage(player, hit).Landed() {
					f.Next.Shake(common.ShakeMonsterHit)
					f.Emit(HeroEvent(SoundHurt))
				}
			}
			m.AttackCooldown = common.MonsterCooldownBase + f.Ctx.float()*common.MonsterCooldownSpread
		}
	}

	if m.Kind.Movement() == component.MovementFlying {
		m.Y = BatHoverY(f.Next.ElapsedTime)
	}
}

func (s *MonsterSystem) integrate(f *Frame, m *component.Monster) {
	scale := f.Scale()
	m.X += m.VX * scale

	switch movement := m.Kind.Movement(); movement {
	case component.MovementGround:
		m.Y += m.VY * scale
		m.VY += common.MonsterGravity * scale
		m.LandOnGround()
	case component.MovementFlying, component.MovementHover:
	default:
		panic(fmt.Sprintf("system: unhandled movement %d", movement))
	}

	m.ClampX()
}

// BatHoverY is the flying monsters' bob height at level time t.
func BatHoverY(t float64) float64 {
	return common.GroundY - common.BatHoverOffset + math.Sin(t/common.BatHoverPeriod)*common.BatHoverAmplitude
}

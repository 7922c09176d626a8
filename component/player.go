package component

import "github.com/milk9111/terra/common"

type Player struct {
	Entity `yaml:",inline"`

	HasSpecialAttack bool    `yaml:"has_special_attack"`
	SpecialCooldown  float64 `yaml:"special_cooldown"`
}

// NewPlayer creates a player standing on the ground at the spawn point.
func NewPlayer() Player {
	return Player{
		Entity: Entity{
			X:      common.PlayerSpawnX,
			Y:      common.GroundY - common.PlayerHeight,
			Width:  common.PlayerWidth,
			Height: common.PlayerHeight,
			HP:     common.PlayerHP,
			MaxHP:  common.PlayerHP,
			State:  StateIdle,
			Facing: FacingRight,
		},
	}
}

// CanSpecial reports whether the special attack may fire right now.
func (p *Player) CanSpecial() bool {
	return p.HasSpecialAttack && p.SpecialCooldown <= 0 && p.State.Mobile()
}

// TickCooldown counts the special cooldown down, never below zero.
func (p *Player) TickCooldown(dt float64) {
	if p.SpecialCooldown <= 0 {
		p.SpecialCooldown = 0
		return
	}
	p.SpecialCooldown = max(0, p.SpecialCooldown-dt)
}

func (p *Player) Body() *Entity    { return &p.Entity }
func (p *Player) IsDefeated() bool { return p.Dead() }
func (p *Player) MarkDefeated()    {}

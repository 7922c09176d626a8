package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/terra/common"
)

// Entity is the attribute set shared by the player, monsters and bosses.
// Velocities are in pixels per reference frame; timers are in milliseconds.
type Entity struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	HP    int `yaml:"hp"`
	MaxHP int `yaml:"max_hp"`

	State          State   `yaml:"state"`
	Facing         Facing  `yaml:"facing"`
	AnimationFrame int     `yaml:"animation_frame"`
	StateTimer     float64 `yaml:"state_timer"`

	Invincible      bool    `yaml:"invincible"`
	InvincibleTimer float64 `yaml:"invincible_timer"`
}

// SetState moves the entity into s, resetting the state timer when the state
// actually changes.
func (e *Entity) SetState(s State) {
	if e.State == s {
		return
	}
	e.Enter(s)
}

// Enter moves the entity into s and always restarts the state timer.
func (e *Entity) Enter(s State) {
	e.State = s
	e.StateTimer = 0
}

// Box returns the bounding box. Screen Y grows downward, so B is the top edge
// and T the bottom edge.
func (e *Entity) Box() cp.BB {
	return cp.BB{L: e.X, B: e.Y, R: e.X + e.Width, T: e.Y + e.Height}
}

func (e *Entity) Center() cp.Vector {
	return cp.Vector{X: e.X + e.Width/2, Y: e.Y + e.Height/2}
}

func (e *Entity) CenterX() float64 {
	return e.X + e.Width/2
}

// Grounded reports whether the entity stands on (or below) the ground line.
func (e *Entity) Grounded() bool {
	return e.Y >= common.GroundY-e.Height
}

// HPPercent returns current health as a percentage of the maximum.
func (e *Entity) HPPercent() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP) * 100
}

func (e *Entity) Dead() bool {
	return e.State == StateDeath
}

// ClampX keeps the entity inside the playfield.
func (e *Entity) ClampX() {
	e.X = common.Clamp(e.X, 0, common.GameWidth-e.Width)
}

// LandOnGround snaps the entity to the ground line when it fell through it.
// It reports whether a landing happened.
func (e *Entity) LandOnGround() bool {
	if !e.Grounded() {
		return false
	}
	e.Y = common.GroundY - e.Height
	e.VY = 0
	return true
}

// TickInvincibility advances the invincibility window and clears it after limit.
func (e *Entity) TickInvincibility(dt, limit float64) {
	if !e.Invincible {
		return
	}
	e.InvincibleTimer += dt
	if e.InvincibleTimer > limit {
		e.Invincible = false
		e.InvincibleTimer = 0
	}
}

// StartInvincibility opens a fresh immunity window.
func (e *Entity) StartInvincibility() {
	e.Invincible = true
	e.InvincibleTimer = 0
}

// clampHP keeps HP inside [0, MaxHP].
func (e *Entity) clampHP() {
	e.HP = max(0, min(e.HP, e.MaxHP))
}

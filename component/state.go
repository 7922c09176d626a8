package component

// State is the discrete behaviour state shared by every entity.
type State string

const (
	StateIdle    State = "idle"
	StateWalk    State = "walk"
	StateJump    State = "jump"
	StateAttack  State = "attack"
	StateHurt    State = "hurt"
	StateSpecial State = "special"
	StateDeath   State = "death"
)

// Mobile reports whether the state accepts movement and new commands.
func (s State) Mobile() bool {
	return s == StateIdle || s == StateWalk
}

type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Toward returns the facing that points along dx. Zero keeps f.
func (f Facing) Toward(dx float64) Facing {
	switch {
	case dx > 0:
		return FacingRight
	case dx < 0:
		return FacingLeft
	}
	return f
}

// Flip returns the opposite facing.
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

package component

// Hit describes one application of damage.
type Hit struct {
	Amount int
	// IFrames grants a fresh invincibility window when the target survives.
	IFrames bool
}

// Outcome is what a resolver call did to its target.
type Outcome int

const (
	// OutcomeBlocked means the target was immune, already down, or not targetable.
	OutcomeBlocked Outcome = iota
	OutcomeHurt
	OutcomeKilled
)

// Landed reports whether the hit changed the target's health.
func (o Outcome) Landed() bool {
	return o != OutcomeBlocked
}

func (o Outcome) String() string {
	switch o {
	case OutcomeHurt:
		return "hurt"
	case OutcomeKilled:
		return "killed"
	}
	return "blocked"
}

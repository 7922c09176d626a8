package component

import (
	"math"

	"github.com/milk9111/terra/common"
)

// AnimationFrame derives the cosmetic frame index for a state timer.
func AnimationFrame(stateTimer float64) int {
	if stateTimer <= 0 {
		return 0
	}
	return int(math.Floor(stateTimer/common.FrameDuration)) % common.FrameCount
}

// Animate refreshes the entity's derived animation frame.
func (e *Entity) Animate() {
	e.AnimationFrame = AnimationFrame(e.StateTimer)
}

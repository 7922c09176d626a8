package system

import "github.com/milk9111/terra/component"

var defaultScheduler = NewScheduler(
	NewPlayerSystem(),
	NewMonsterSystem(),
	NewBossSystem(),
	NewEffectSystem(),
	NewShakeSystem(),
	NewClockSystem(),
	NewLevelSystem(),
)

// Step advances one playing tick. prev is never modified; the returned state
// shares no slices or pointers with it. Outside the playing phase, or for a
// non-positive dt, prev is returned unchanged and no events are raised.
//
// Step consumes the attack and special keys from ctx.Keys.
func Step(prev component.GameState, dt float64, ctx *Context) (component.GameState, []Event) {
	if prev.Phase != component.PhasePlaying || dt <= 0 {
		return prev, nil
	}
	f := newFrame(&prev, dt, ctx)
	defaultScheduler.Update(f)
	return f.Next, f.Events()
}

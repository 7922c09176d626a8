package system

import (
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

// Frame is the working area of one tick. Prev is the published snapshot and
// is only read; Next starts as its deep copy and is what systems write.
type Frame struct {
	Prev  *component.GameState
	Next  component.GameState
	DT    float64
	Level prefabs.LevelSpec
	Ctx   *Context

	events []Event
	halted bool
}

func newFrame(prev *component.GameState, dt float64, ctx *Context) *Frame {
	f := &Frame{
		Prev: prev,
		Next: prev.Clone(),
		DT:   dt,
		Ctx:  ctx,
	}
	f.Level, _ = ctx.level(prev.CurrentLevel)
	return f
}

// Scale is the tick length in reference frames.
func (f *Frame) Scale() float64 {
	return common.FrameScale(f.DT)
}

// Emit queues a sound cue.
func (f *Frame) Emit(e Event) {
	f.events = append(f.events, e)
}

// Events returns the cues raised so far.
func (f *Frame) Events() []Event {
	return f.events
}

// Halt ends the tick after the current system.
func (f *Frame) Halt() {
	f.halted = true
}

func (f *Frame) Halted() bool {
	return f.halted
}

// Resolver returns a combat resolver that honours the current boss gate.
func (f *Frame) Resolver() component.CombatResolver {
	return component.NewCombatResolver(&f.Next)
}

// AddEffect appends an effect with a run-unique ID.
func (f *Frame) AddEffect(kind component.EffectKind, x, y, maxRadius, duration float64, damage int) {
	id := f.Next.NextSerial()
	f.Next.Effects = append(f.Next.Effects, component.Effect{
		ID:        effectID(kind, id),
		Kind:      kind,
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Color:     component.EffectColors[kind],
		Duration:  duration,
		Damage:    damage,
	})
}

// Say shows a line of dialogue during play.
func (f *Frame) Say(speaker component.Speaker, text string, style component.DialogueStyle) {
	f.Next.ShowDialogue(component.Dialogue{Speaker: speaker, Text: text, Style: style})
}

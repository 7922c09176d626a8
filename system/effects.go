package system

import (
	"fmt"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// EffectSystem grows effects and drops the ones whose time is up.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Update(f *Frame) {
	if f == nil {
		return
	}
	live := f.Next.Effects[:0]
	for _, e := range f.Next.Effects {
		if e.Advance(f.DT) {
			live = append(live, e)
		}
	}
	f.Next.Effects = live
}

// ShakeSystem decays the screen shake toward zero.
type ShakeSystem struct{}

func NewShakeSystem() *ShakeSystem { return &ShakeSystem{} }

func (s *ShakeSystem) Update(f *Frame) {
	if f == nil || f.Next.ScreenShake <= 0 {
		return
	}
	f.Next.ScreenShake = max(0, f.Next.ScreenShake-f.DT*common.ShakeDecayRate)
}

// ClockSystem advances level time and retires in-game dialogue lines.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem { return &ClockSystem{} }

func (s *ClockSystem) Update(f *Frame) {
	if f == nil {
		return
	}
	f.Next.ElapsedTime += f.DT

	if f.Next.Dialogue == nil {
		f.Next.DialogueTimer = 0
		return
	}
	f.Next.DialogueTimer += f.DT
	if f.Next.DialogueTimer > common.DialogueDisplayTime {
		f.Next.Dialogue = nil
		f.Next.DialogueTimer = 0
	}
}

func effectID(kind component.EffectKind, serial uint64) string {
	return fmt.Sprintf("%s-%d", kind, serial)
}

package system

import (
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// LevelSystem runs boss-less levels: ambient narration and the clear check.
type LevelSystem struct{}

func NewLevelSystem() *LevelSystem { return &LevelSystem{} }

func (s *LevelSystem) Update(f *Frame) {
	if f == nil || f.Level.HasBoss || f.Next.Boss != nil {
		return
	}

	if texts := f.Level.AmbientTexts; len(texts) > 0 {
		f.Next.AmbientTimer += f.DT
		if f.Next.AmbientTimer > common.AmbientInterval && f.Next.Dialogue == nil {
			f.Say(component.SpeakerNarrator, texts[f.Ctx.intn(len(texts))], component.StyleNormal)
			f.Next.AmbientTimer = 0
		}
	}

	if f.Ctx.rules().Complete(f.Level, f.Next.Monsters, f.Next.ElapsedTime) {
		f.Next.Phase = component.PhaseLevelComplete
		f.Next.Score += common.LevelCompleteBonus
		f.Halt()
	}
}

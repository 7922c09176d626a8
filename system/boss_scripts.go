package system

import (
	"fmt"
	"math"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

// runScript dispatches to the boss's archetype. Kinds are validated when
// content is decoded, so the default branch is unreachable. Archetype extras
// see whether the boss was free to act before chase, so a swing started this
// tick does not hide them.
func runScript(f *Frame, b *component.Boss) {
	mobile := b.State.Mobile()
	switch b.Kind {
	case component.BossConfusedKnight:
		chase(f, b)
		confusedKnight(f, b, mobile)
	case component.BossFalseAlly:
		falseAlly(f, b)
	case component.BossSwampQueen:
		chase(f, b)
		swampQueen(f, b, mobile)
	case component.BossRiddler:
		chase(f, b)
		riddler(f, b, mobile)
	case component.BossFinal:
		chase(f, b)
	default:
		panic(fmt.Sprintf("system: unknown boss kind %q", string(b.Kind)))
	}
}

// confusedKnight occasionally turns around mid-stride and mutters.
func confusedKnight(f *Frame, b *component.Boss, mobile bool) {
	if !mobile || f.Ctx.float() >= common.KnightReversalChance {
		return
	}
	b.VX = -b.VX
	b.Facing = b.Facing.Flip()

	lines := randomLines(b, true)
	if len(lines) == 0 || f.Ctx.float() >= common.KnightLineChance {
		return
	}
	t := lines[f.Ctx.intn(len(lines))]
	t.Triggered = true
	f.Say(component.SpeakerBoss, t.Text, component.StyleGlitch)
}

// falseAlly walks up friendly until the betrayal, then fights like any boss.
// The betrayal tick itself does nothing else, so the shortened cooldown
// starts counting on the next tick.
func falseAlly(f *Frame, b *component.Boss) {
	if b.AllyPhase.Hostile() {
		chase(f, b)
		return
	}
	if f.Next.ElapsedTime >= common.AllyFriendlyTime {
		betray(f, b)
		return
	}

	dx := f.Next.Player.X - b.X
	b.Facing = b.Facing.Toward(dx)
	if math.Abs(dx) > common.AllyClosenessRange {
		b.AllyPhase = component.AllyFriendly
		b.VX = common.Sign(dx) * common.AllyApproachSpeed
		b.SetState(component.StateWalk)
		return
	}
	b.AllyPhase = component.AllyApproach
	b.VX = 0
	b.SetState(component.StateIdle)
	for i := range b.Triggers {
		t := &b.Triggers[i]
		if t.Condition == component.TriggerHPThreshold && isClosenessLine(b, t) && !t.Triggered {
			t.Triggered = true
			f.Say(component.SpeakerBoss, t.Text, component.StyleNormal)
			break
		}
	}
}

func betray(f *Frame, b *component.Boss) {
	b.AllyPhase = component.AllyCombat
	b.AttackCooldown = common.AllyBetrayalCooldown
	f.Next.CanAttackBoss = true
	if t, ok := b.FindTrigger(component.TriggerBetrayal); ok {
		t.Triggered = true
		f.Say(component.SpeakerBoss, t.Text, component.StyleGlitch)
	}
	f.Next.Shake(common.ShakeBetrayal)
}

// swampQueen talks over the fight.
func swampQueen(f *Frame, b *component.Boss, mobile bool) {
	if !mobile || f.Ctx.float() >= common.QueenLineChance {
		return
	}
	lines := randomLines(b, false)
	if len(lines) == 0 {
		return
	}
	t := lines[f.Ctx.intn(len(lines))]
	f.Say(component.SpeakerBoss, t.Text, component.StyleNormal)
}

// riddler stops the fight for a question at each unconsumed HP threshold.
// At most one question is asked per tick.
func riddler(f *Frame, b *component.Boss, mobile bool) {
	if !mobile {
		return
	}
	pct := b.HPPercent()
	thresholds := f.Next.QuestionThresholds
	for i, t := range thresholds {
		if t <= component.ConsumedThreshold || pct > t {
			continue
		}
		thresholds[i] = component.ConsumedThreshold
		b.AttackCooldown = common.RiddlerQuestionCooldown
		if f.Ctx != nil && f.Ctx.Questions != nil {
			if q := f.Ctx.Questions.Pick(); q != nil {
				f.Next.Question = q
				f.Next.Phase = component.PhaseMCQ
			}
		}
		return
	}
}

func randomLines(b *component.Boss, untriggeredOnly bool) []*component.DialogueTrigger {
	var lines []*component.DialogueTrigger
	for i := range b.Triggers {
		t := &b.Triggers[i]
		if t.Condition != component.TriggerRandom {
			continue
		}
		if untriggeredOnly && t.Triggered {
			continue
		}
		lines = append(lines, t)
	}
	return lines
}

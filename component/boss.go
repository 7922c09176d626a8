package component

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// BossKind names one of the scripted boss archetypes.
type BossKind string

const (
	// BossConfusedKnight wanders and mutters glitched lines.
	BossConfusedKnight BossKind = "harsh"
	// BossFalseAlly opens friendly, then turns on the player.
	BossFalseAlly BossKind = "garima"
	// BossSwampQueen spams dialogue while fighting normally.
	BossSwampQueen BossKind = "parnika"
	// BossRiddler interrupts the fight with questions at HP thresholds.
	BossRiddler BossKind = "ravin"
	// BossFinal uses the default boss AI.
	BossFinal BossKind = "final"
)

var BossKinds = []BossKind{BossConfusedKnight, BossFalseAlly, BossSwampQueen, BossRiddler, BossFinal}

func (k BossKind) Valid() bool {
	for _, known := range BossKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k *BossKind) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	kind := BossKind(raw)
	if !kind.Valid() {
		return fmt.Errorf("line %d: unknown boss kind %q", node.Line, raw)
	}
	*k = kind
	return nil
}

// AllyPhase is the false ally's scripted opening. Friendly walks toward the
// player, Approach stands beside them; both are non-hostile. The betrayal is
// the instant the boss moves to Combat.
type AllyPhase string

const (
	AllyNone     AllyPhase = ""
	AllyFriendly AllyPhase = "friendly"
	AllyApproach AllyPhase = "approach"
	AllyCombat   AllyPhase = "combat"
)

// Hostile reports whether the boss may attack in this phase.
func (p AllyPhase) Hostile() bool {
	return p == AllyNone || p == AllyCombat
}

type TriggerCondition string

const (
	TriggerIntro         TriggerCondition = "intro"
	TriggerMid           TriggerCondition = "mid"
	TriggerHPThreshold   TriggerCondition = "hp_threshold"
	TriggerDefeat        TriggerCondition = "defeat"
	TriggerSpecialUnlock TriggerCondition = "special_unlock"
	TriggerRandom        TriggerCondition = "random"
	TriggerBetrayal      TriggerCondition = "betrayal"
)

var triggerConditions = []TriggerCondition{
	TriggerIntro, TriggerMid, TriggerHPThreshold, TriggerDefeat,
	TriggerSpecialUnlock, TriggerRandom, TriggerBetrayal,
}

func (c *TriggerCondition) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	for _, known := range triggerConditions {
		if TriggerCondition(raw) == known {
			*c = known
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown trigger condition %q", node.Line, raw)
}

// DialogueTrigger is a one-shot narrative rule carried by a boss.
type DialogueTrigger struct {
	Condition   TriggerCondition `yaml:"condition"`
	HPThreshold float64          `yaml:"hp_threshold,omitempty"`
	Text        string           `yaml:"text"`
	Triggered   bool             `yaml:"triggered"`
}

type Boss struct {
	Entity `yaml:",inline"`

	Kind           BossKind          `yaml:"kind"`
	Name           string            `yaml:"name"`
	AttackCooldown float64           `yaml:"attack_cooldown"`
	Triggers       []DialogueTrigger `yaml:"triggers"`
	Defeated       bool              `yaml:"defeated"`
	AllyPhase      AllyPhase         `yaml:"ally_phase,omitempty"`
}

func (b *Boss) Body() *Entity    { return &b.Entity }
func (b *Boss) IsDefeated() bool { return b.Defeated || b.Dead() }
func (b *Boss) MarkDefeated()    { b.Defeated = true }

// FindTrigger returns the first trigger with the given condition.
func (b *Boss) FindTrigger(c TriggerCondition) (*DialogueTrigger, bool) {
	for i := range b.Triggers {
		if b.Triggers[i].Condition == c {
			return &b.Triggers[i], true
		}
	}
	return nil, false
}

// Clone copies the boss including its trigger list.
func (b *Boss) Clone() *Boss {
	if b == nil {
		return nil
	}
	out := *b
	out.Triggers = slices.Clone(b.Triggers)
	return &out
}

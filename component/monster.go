package component

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MonsterKind is the closed set of spawnable monsters.
type MonsterKind string

const (
	MonsterSlime  MonsterKind = "slime"
	MonsterBat    MonsterKind = "bat"
	MonsterGhost  MonsterKind = "ghost"
	MonsterShadow MonsterKind = "shadow"
)

var MonsterKinds = []MonsterKind{MonsterSlime, MonsterBat, MonsterGhost, MonsterShadow}

// Movement describes how a monster kind integrates vertical motion.
type Movement int

const (
	// MovementGround falls under gravity and lands on the ground line.
	MovementGround Movement = iota
	// MovementFlying ignores gravity and bobs on a sine wave.
	MovementFlying
	// MovementHover ignores gravity and keeps its spawn height.
	MovementHover
)

func (k MonsterKind) Movement() Movement {
	switch k {
	case MonsterBat:
		return MovementFlying
	case MonsterGhost:
		return MovementHover
	case MonsterSlime, MonsterShadow:
		return MovementGround
	}
	panic(fmt.Sprintf("component: unknown monster kind %q", string(k)))
}

func (k MonsterKind) Valid() bool {
	for _, known := range MonsterKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k *MonsterKind) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	kind := MonsterKind(raw)
	if !kind.Valid() {
		return fmt.Errorf("line %d: unknown monster kind %q", node.Line, raw)
	}
	*k = kind
	return nil
}

type Monster struct {
	Entity `yaml:",inline"`

	ID             string      `yaml:"id"`
	Kind           MonsterKind `yaml:"kind"`
	AttackCooldown float64     `yaml:"attack_cooldown"`
	Defeated       bool        `yaml:"defeated"`
	Damage         int         `yaml:"damage"`
	Speed          float64     `yaml:"speed"`
}

func (m *Monster) Body() *Entity    { return &m.Entity }
func (m *Monster) IsDefeated() bool { return m.Defeated || m.Dead() }
func (m *Monster) MarkDefeated()    { m.Defeated = true }

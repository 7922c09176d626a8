package system

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

// NewBoss builds a fresh boss from its definition, standing on the ground at
// the far side of the arena.
func NewBoss(spec prefabs.BossSpec) *component.Boss {
	size := spec.Size
	if size <= 0 {
		size = common.BossSize
	}
	b := &component.Boss{
		Entity: component.Entity{
			X:      common.BossSpawnX,
			Y:      common.GroundY - size,
			Width:  size,
			Height: size,
			HP:     spec.HP,
			MaxHP:  spec.HP,
			State:  component.StateIdle,
			Facing: component.FacingLeft,
		},
		Kind:           spec.Kind,
		Name:           spec.Name,
		AttackCooldown: common.BossInitialCooldown,
		Triggers:       append([]component.DialogueTrigger(nil), spec.Triggers...),
	}
	for i := range b.Triggers {
		b.Triggers[i].Triggered = false
	}
	if spec.Kind == component.BossFalseAlly {
		b.AllyPhase = component.AllyFriendly
	}
	return b
}

// NewMonster builds one monster of the given kind at x.
func NewMonster(spec prefabs.MonsterSpec, x float64, rng *rand.Rand) component.Monster {
	m := component.Monster{
		Entity: component.Entity{
			X:      x,
			Width:  spec.Width,
			Height: spec.Height,
			HP:     spec.HP,
			MaxHP:  spec.HP,
			State:  component.StateIdle,
			Facing: component.FacingLeft,
		},
		ID:             uuid.NewString(),
		Kind:           spec.Kind,
		AttackCooldown: common.MonsterInitialCooldown + randFloat(rng)*common.MonsterCooldownSpread,
		Damage:         spec.Damage,
		Speed:          spec.Speed,
	}
	switch m.Kind.Movement() {
	case component.MovementFlying:
		m.Y = common.GroundY - common.BatSpawnOffset
	case component.MovementGround, component.MovementHover:
		m.Y = common.GroundY - spec.Height
	}
	return m
}

// SpawnMonsters creates the monster set listed for a level.
func SpawnMonsters(c *prefabs.Content, levelID string, rng *rand.Rand) []component.Monster {
	monsters := []component.Monster{}
	if c == nil {
		return monsters
	}
	for _, spawn := range c.Spawns[levelID] {
		spec, ok := c.Monsters[spawn.Kind]
		if !ok {
			continue
		}
		for range spawn.Count {
			x := common.MonsterSpawnMinX + randFloat(rng)*common.MonsterSpawnSpread
			monsters = append(monsters, NewMonster(spec, x, rng))
		}
	}
	return monsters
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnMonstersFollowsManifest(t *testing.T) {
	c := testContent(t)
	rng := rand.New(rand.NewSource(3))

	monsters := SpawnMonsters(c, "forest", rng)
	want := 0
	for _, s := range c.Spawns["forest"] {
		want += s.Count
	}
	require.Len(t, monsters, want)

	ids := map[string]bool{}
	for _, m := range monsters {
		assert.False(t, ids[m.ID])
		ids[m.ID] = true
		assert.GreaterOrEqual(t, m.X, common.MonsterSpawnMinX)
		assert.Less(t, m.X, common.MonsterSpawnMinX+common.MonsterSpawnSpread)
		assert.Equal(t, m.MaxHP, m.HP)
		if m.Kind == component.MonsterBat {
			assert.Equal(t, common.GroundY-common.BatSpawnOffset, m.Y)
		} else {
			assert.Equal(t, common.GroundY-m.Height, m.Y)
		}
	}

	assert.Empty(t, SpawnMonsters(c, "prologue", rng))
	assert.Empty(t, SpawnMonsters(nil, "forest", rng))
}

func TestNewBossResetsTriggers(t *testing.T) {
	c := testContent(t)
	spec := c.Bosses[component.BossFalseAlly]
	spec.Triggers[0].Triggered = true

	b := NewBoss(spec)
	assert.False(t, b.Triggers[0].Triggered)
	assert.Equal(t, component.AllyFriendly, b.AllyPhase)
	assert.Equal(t, common.BossSpawnX, b.X)
	assert.Equal(t, common.GroundY-b.Height, b.Y)
	assert.Equal(t, spec.HP, b.HP)

	b.Triggers[1].Triggered = true
	assert.False(t, c.Bosses[component.BossFalseAlly].Triggers[1].Triggered, "spec is not shared")

	final := NewBoss(c.Bosses[component.BossFinal])
	assert.Equal(t, component.AllyNone, final.AllyPhase)
}

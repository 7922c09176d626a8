package input

import (
	"image"
	"testing"

	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
)

func TestKeysAtRegions(t *testing.T) {
	for _, r := range TouchRegions {
		center := image.Pt((r.Rect.Min.X+r.Rect.Max.X)/2, (r.Rect.Min.Y+r.Rect.Max.Y)/2)
		down := KeysAt([]image.Point{center})
		assert.Equal(t, map[component.Key]bool{r.Key: true}, down, r.Label)
	}

	assert.Empty(t, KeysAt([]image.Point{image.Pt(400, 100)}))
	assert.Empty(t, KeysAt(nil))
}

func TestTouchRegionsDoNotOverlap(t *testing.T) {
	for i, a := range TouchRegions {
		for _, b := range TouchRegions[i+1:] {
			assert.False(t, a.Rect.Overlaps(b.Rect), "%s overlaps %s", a.Label, b.Label)
		}
	}
}

func TestApplyEdges(t *testing.T) {
	keys := component.NewKeySet()

	Apply(nil, map[component.Key]bool{component.KeyAttack: true, component.KeyRight: true}, keys)
	assert.True(t, keys.Has(component.KeyAttack))
	assert.True(t, keys.Has(component.KeyRight))

	// The simulation consumes the attack; holding it must not bring it back.
	keys.Consume(component.KeyAttack)
	held := map[component.Key]bool{component.KeyAttack: true, component.KeyRight: true}
	Apply(held, held, keys)
	assert.False(t, keys.Has(component.KeyAttack))

	Apply(held, map[component.Key]bool{component.KeyAttack: true}, keys)
	assert.False(t, keys.Has(component.KeyRight))

	Apply(map[component.Key]bool{}, map[component.Key]bool{component.KeyAttack: true}, keys)
	assert.True(t, keys.Has(component.KeyAttack))
}

package input

import (
	"image"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
)

const touchButton = 64

// TouchRegion is an on-screen button in logical screen coordinates.
type TouchRegion struct {
	Key   component.Key
	Label string
	Rect  image.Rectangle
}

// TouchRegions lays out the on-screen controls: movement bottom left,
// actions bottom right.
var TouchRegions = []TouchRegion{
	{Key: component.KeyLeft, Label: "<", Rect: button(16, 0)},
	{Key: component.KeyRight, Label: ">", Rect: button(16+touchButton+12, 0)},
	{Key: component.KeySpecial, Label: "X", Rect: button(common.GameWidth-3*(touchButton+12), 0)},
	{Key: component.KeyAttack, Label: "Z", Rect: button(common.GameWidth-2*(touchButton+12), 0)},
	{Key: component.KeyUp, Label: "^", Rect: button(common.GameWidth-(touchButton+12), 0)},
}

func button(x, row int) image.Rectangle {
	y := common.GameHeight - 16 - touchButton - row*(touchButton+12)
	return image.Rect(x, y, x+touchButton, y+touchButton)
}

// KeysAt returns the keys whose regions contain any of the points.
func KeysAt(points []image.Point) map[component.Key]bool {
	down := map[component.Key]bool{}
	for _, pt := range points {
		for _, r := range TouchRegions {
			if pt.In(r.Rect) {
				down[r.Key] = true
			}
		}
	}
	return down
}

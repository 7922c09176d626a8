package input

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/terra/component"
)

const stickDeadzone = 0.2

var keyboard = map[component.Key][]ebiten.Key{
	component.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	component.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	component.KeyUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	component.KeySpace:   {ebiten.KeySpace},
	component.KeyAttack:  {ebiten.KeyZ},
	component.KeySpecial: {ebiten.KeyX},
}

var gamepadButtons = map[component.Key]ebiten.StandardGamepadButton{
	component.KeyLeft:    ebiten.StandardGamepadButtonLeftLeft,
	component.KeyRight:   ebiten.StandardGamepadButtonLeftRight,
	component.KeyUp:      ebiten.StandardGamepadButtonRightBottom,
	component.KeyAttack:  ebiten.StandardGamepadButtonRightLeft,
	component.KeySpecial: ebiten.StandardGamepadButtonRightTop,
}

// Device merges keyboard, gamepad and touch into logical key edges.
type Device struct {
	held     map[component.Key]bool
	touches  []ebiten.TouchID
	gamepads []ebiten.GamepadID
	// TouchSeen turns true once any touch arrives, so the renderer can show
	// the on-screen controls.
	TouchSeen bool
}

func NewDevice() *Device {
	return &Device{held: map[component.Key]bool{}}
}

// Poll samples every device and writes press and release edges into keys.
// Must be called from ebiten's Update.
func (d *Device) Poll(keys *component.KeySet) {
	down := d.sample()
	Apply(d.held, down, keys)
	d.held = down
}

// Apply adds keys that went down and removes keys that came up. A key that
// stays down is left alone, so a consumed command is not re-added until it
// is pressed again.
func Apply(was, now map[component.Key]bool, keys *component.KeySet) {
	for _, k := range component.Keys {
		switch {
		case now[k] && !was[k]:
			keys.Add(k)
		case !now[k] && was[k]:
			keys.Remove(k)
		}
	}
}

// JustPressed reports a fresh keyboard press, for menu shortcuts.
func JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (d *Device) sample() map[component.Key]bool {
	down := map[component.Key]bool{}
	for k, bound := range keyboard {
		for _, key := range bound {
			if ebiten.IsKeyPressed(key) {
				down[k] = true
			}
		}
	}

	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	if len(d.gamepads) > 0 {
		id := d.gamepads[0]
		for k, b := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				down[k] = true
			}
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			if x < 0 {
				down[component.KeyLeft] = true
			} else {
				down[component.KeyRight] = true
			}
		}
	}

	d.touches = ebiten.AppendTouchIDs(d.touches[:0])
	if len(d.touches) > 0 {
		d.TouchSeen = true
		points := make([]image.Point, 0, len(d.touches))
		for _, id := range d.touches {
			x, y := ebiten.TouchPosition(id)
			points = append(points, image.Pt(x, y))
		}
		for k := range KeysAt(points) {
			down[k] = true
		}
	}
	return down
}

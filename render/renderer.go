package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/terra/assets"
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/input"
	"github.com/milk9111/terra/prefabs"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws a snapshot. It only reads the state it is given.
type Renderer struct {
	lib     *assets.Library
	content *prefabs.Content
	face    text.Face

	monsterColors map[component.MonsterKind]color.NRGBA

	// ShowTouch draws the on-screen controls.
	ShowTouch bool
}

func New(lib *assets.Library, content *prefabs.Content) *Renderer {
	r := &Renderer{
		lib:  lib,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
	r.SetContent(content)
	return r
}

// SetContent swaps the tables used for level colours and names.
func (r *Renderer) SetContent(c *prefabs.Content) {
	r.content = c
	r.monsterColors = map[component.MonsterKind]color.NRGBA{}
	if c == nil {
		return
	}
	for kind, spec := range c.Monsters {
		r.monsterColors[kind] = hex(spec.Color)
	}
}

func (r *Renderer) Face() text.Face {
	return r.face
}

func (r *Renderer) Draw(screen *ebiten.Image, s component.GameState) {
	level, _ := r.content.Level(s.CurrentLevel)
	ox, oy := ShakeOffset(s.ScreenShake, s.ElapsedTime)

	r.drawBackground(screen, level, ox, oy)
	if !inLevel(s.Phase) {
		return
	}

	for _, e := range s.Effects {
		r.drawEffect(screen, e, ox, oy)
	}
	r.drawEntity(screen, &s.Player.Entity, assets.HeroKey(s.Player.State), HeroColor(s.Player.State), ox, oy)
	if s.Player.Invincible && int(s.Player.InvincibleTimer/100)%2 == 1 {
		vector.StrokeRect(screen, float32(s.Player.X+ox), float32(s.Player.Y+oy), float32(s.Player.Width), float32(s.Player.Height), 1, textColor, false)
	}
	for i := range s.Monsters {
		m := &s.Monsters[i]
		r.drawEntity(screen, &m.Entity, assets.MonsterKey(m.Kind), r.monsterColor(m.Kind), ox, oy)
	}
	if b := s.Boss; b != nil {
		r.drawEntity(screen, &b.Entity, assets.BossKey(b.Kind, b.State), BossColor(b.Kind, b.State), ox, oy)
	}

	r.drawHUD(screen, s, level)
	if s.Phase == component.PhasePlaying && s.Dialogue != nil {
		r.drawSpeech(screen, *s.Dialogue)
	}
	if r.ShowTouch {
		r.drawTouch(screen)
	}
}

func inLevel(p component.Phase) bool {
	switch p {
	case component.PhasePlaying, component.PhaseDialogue, component.PhaseMCQ,
		component.PhasePaused, component.PhaseLevelComplete, component.PhaseGameOver:
		return true
	}
	return false
}

// ShakeOffset jitters the world by up to magnitude pixels. It depends only on
// the snapshot so a redraw of the same state lands in the same place.
func ShakeOffset(magnitude, t float64) (float64, float64) {
	if magnitude <= 0 {
		return 0, 0
	}
	return math.Sin(t*0.9) * magnitude, math.Cos(t*1.3) * magnitude
}

func (r *Renderer) drawBackground(screen *ebiten.Image, level prefabs.LevelSpec, ox, oy float64) {
	bg, ground := levelColors(level)
	screen.Fill(bg)
	if img, ok := r.lib.Image(assets.BackgroundKey(level.ID)); ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(common.GameWidth/float64(b.Dx()), common.GameHeight/float64(b.Dy()))
		screen.DrawImage(img, op)
	}
	vector.FillRect(screen, float32(ox), float32(common.GroundY+oy), common.GameWidth, common.GroundHeight, ground, false)
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *component.Entity, key string, tint color.NRGBA, ox, oy float64) {
	x, y := e.X+ox, e.Y+oy
	if img, ok := r.lib.Image(key); ok {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		sx, sy := e.Width/float64(b.Dx()), e.Height/float64(b.Dy())
		if e.Facing == component.FacingLeft {
			op.GeoM.Scale(-sx, sy)
			op.GeoM.Translate(x+e.Width, y)
		} else {
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(x, y)
		}
		screen.DrawImage(img, op)
		return
	}

	w, h := float32(e.Width), float32(e.Height)
	vector.FillRect(screen, float32(x), float32(y), w, h, tint, false)
	vector.FillRect(screen, float32(x)+2, float32(y)+2, w-4, 4, highlight, false)
	vector.FillRect(screen, float32(x)+2, float32(y)+h-6, w-4, 4, underside, false)
	// facing marker
	eyeX := float32(x) + w - 8
	if e.Facing == component.FacingLeft {
		eyeX = float32(x) + 4
	}
	vector.FillRect(screen, eyeX, float32(y)+8, 4, 4, textColor, false)
}

func (r *Renderer) drawEffect(screen *ebiten.Image, e component.Effect, ox, oy float64) {
	if e.Radius <= 0 {
		return
	}
	c := hex(e.Color)
	if e.Duration > 0 {
		c.A = uint8(255 * max(0, 1-e.Elapsed/e.Duration))
	}
	if img, ok := r.lib.Image(assets.EffectKey(e.Kind)); ok {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		scale := 2 * e.Radius / float64(b.Dx())
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(e.X+ox-e.Radius, e.Y+oy-e.Radius)
		op.ColorScale.ScaleAlpha(float32(c.A) / 255)
		screen.DrawImage(img, op)
		return
	}
	vector.StrokeCircle(screen, float32(e.X+ox), float32(e.Y+oy), float32(e.Radius), 3, c, true)
}

func (r *Renderer) monsterColor(kind component.MonsterKind) color.NRGBA {
	if c, ok := r.monsterColors[kind]; ok {
		return c
	}
	return color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
}

func (r *Renderer) drawTouch(screen *ebiten.Image) {
	for _, region := range input.TouchRegions {
		b := region.Rect
		vector.FillRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), shadowColor, false)
		vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, textColor, false)
		r.text(screen, region.Label, float64(b.Min.X+b.Dx()/2-3), float64(b.Min.Y+b.Dy()/2-6), textColor)
	}
}

func (r *Renderer) text(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+1, y+1)
	op.ColorScale.ScaleWithColor(shadowColor)
	text.Draw(screen, s, r.face, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, r.face, op)
}

func (r *Renderer) textWidth(s string) float64 {
	w, _ := text.Measure(s, r.face, 0)
	return w
}

func percentLabel(hp, maxHP int) string {
	return fmt.Sprintf("%d/%d", hp, maxHP)
}

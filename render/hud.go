package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

const (
	hudMargin  = 12.0
	barWidth   = 200.0
	barHeight  = 12.0
	speechCols = 80
)

func (r *Renderer) drawHUD(screen *ebiten.Image, s component.GameState, level prefabs.LevelSpec) {
	p := &s.Player
	r.bar(screen, hudMargin, hudMargin, barWidth, p.HPPercent(), HPColor(p.HPPercent()))
	r.text(screen, "HP "+percentLabel(p.HP, p.MaxHP), hudMargin, hudMargin+barHeight+2, textColor)

	if p.HasSpecialAttack {
		ready := 1 - p.SpecialCooldown/common.SpecialCooldown
		r.bar(screen, hudMargin, hudMargin+barHeight+20, barWidth/2, ready*100, specialReady)
		label := "X READY"
		if p.SpecialCooldown > 0 {
			label = fmt.Sprintf("X %.1fs", p.SpecialCooldown/1000)
		}
		r.text(screen, label, hudMargin+barWidth/2+8, hudMargin+barHeight+16, textColor)
	}

	score := fmt.Sprintf("SCORE %d", s.Score)
	r.text(screen, score, common.GameWidth-hudMargin-r.textWidth(score), hudMargin, textColor)

	name := level.Name
	r.text(screen, name, (common.GameWidth-r.textWidth(name))/2, hudMargin, textColor)

	if b := s.Boss; b != nil && !b.Defeated {
		x := (common.GameWidth - barWidth*1.5) / 2
		y := hudMargin + 20
		c := bossBarColor
		if !s.CanAttackBoss {
			c = BossColor(b.Kind, component.StateIdle)
		}
		r.bar(screen, x, y, barWidth*1.5, b.HPPercent(), c)
		r.text(screen, b.Name, x, y+barHeight+2, textColor)
	}
}

func (r *Renderer) bar(screen *ebiten.Image, x, y, w, pct float64, fill color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), barHeight, barBackground, false)
	if filled := BarFill(w, pct); filled > 0 {
		vector.FillRect(screen, float32(x), float32(y), float32(filled), barHeight, fill, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), barHeight, 1, textColor, false)
}

// BarFill is the filled width of a bar w wide at pct percent.
func BarFill(w, pct float64) float64 {
	return common.Lerp(0, w, max(0, min(pct, 100))/100)
}

// drawSpeech shows an in-play line along the bottom of the screen.
func (r *Renderer) drawSpeech(screen *ebiten.Image, d component.Dialogue) {
	lines := common.WrapText(d.Text, speechCols)
	h := float64(len(lines))*16 + 12
	y := common.GameHeight - h - 8
	vector.FillRect(screen, 40, float32(y), common.GameWidth-80, float32(h), barBackground, false)

	c := textColor
	switch d.Style {
	case component.StyleGlitch:
		c = hex("#00ff00")
	case component.StyleFlash, component.StyleBig:
		c = hex("#ffdd44")
	}
	prefix := speakerPrefix(d.Speaker)
	for i, line := range lines {
		if i == 0 {
			line = prefix + line
		}
		r.text(screen, strings.TrimSpace(line), 52, y+6+float64(i)*16, c)
	}
}

func speakerPrefix(s component.Speaker) string {
	switch s {
	case component.SpeakerBoss:
		return "> "
	case component.SpeakerSystem:
		return "* "
	}
	return ""
}

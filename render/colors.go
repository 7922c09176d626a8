package render

import (
	"image/color"

	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

var (
	heroColor        = hex("#4a90d9")
	heroAttackColor  = hex("#6ab0ff")
	heroHurtColor    = hex("#ff6b6b")
	heroSpecialColor = hex("#8b6914")

	textColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shadowColor   = color.NRGBA{A: 0x80}
	barBackground = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xcc}
	hpHigh        = hex("#44cc44")
	hpLow         = hex("#cc4444")
	bossBarColor  = hex("#aa2222")
	specialReady  = hex("#c09030")
	highlight     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4c}
	underside     = color.NRGBA{A: 0x33}
)

type bossPalette struct {
	main, attack, hurt color.NRGBA
}

var bossColors = map[component.BossKind]bossPalette{
	component.BossConfusedKnight: {hex("#8844aa"), hex("#aa66cc"), hex("#ff6666")},
	component.BossFalseAlly:      {hex("#44aa88"), hex("#66ccaa"), hex("#ff6666")},
	component.BossSwampQueen:     {hex("#668844"), hex("#88aa66"), hex("#ff6666")},
	component.BossRiddler:        {hex("#aa8844"), hex("#ccaa66"), hex("#ff6666")},
	component.BossFinal:          {hex("#aa2222"), hex("#cc4444"), hex("#ff8888")},
}

func hex(s string) color.NRGBA {
	c, err := prefabs.ParseHexColor(s)
	if err != nil {
		return color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// HeroColor is the placeholder tint for the player in a state.
func HeroColor(s component.State) color.NRGBA {
	switch s {
	case component.StateAttack:
		return heroAttackColor
	case component.StateHurt, component.StateDeath:
		return heroHurtColor
	case component.StateSpecial:
		return heroSpecialColor
	}
	return heroColor
}

// BossColor is the placeholder tint for a boss in a state.
func BossColor(kind component.BossKind, s component.State) color.NRGBA {
	p, ok := bossColors[kind]
	if !ok {
		p = bossColors[component.BossFinal]
	}
	switch s {
	case component.StateAttack, component.StateSpecial:
		return p.attack
	case component.StateHurt, component.StateDeath:
		return p.hurt
	}
	return p.main
}

// HPColor fades from green to red as health drops.
func HPColor(pct float64) color.NRGBA {
	t := max(0, min(pct, 100)) / 100
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + t*(float64(b)-float64(a)))
	}
	return color.NRGBA{R: lerp(hpLow.R, hpHigh.R), G: lerp(hpLow.G, hpHigh.G), B: lerp(hpLow.B, hpHigh.B), A: 0xff}
}

func levelColors(l prefabs.LevelSpec) (bg, ground color.Color) {
	bg, ground = color.Color(hex("#101018")), color.Color(hex("#303040"))
	if l.BackgroundColor.Color != nil {
		bg = l.BackgroundColor.Color
	}
	if l.GroundColor.Color != nil {
		ground = l.GroundColor.Color
	}
	return bg, ground
}

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

// Actions are the commands an overlay can send back to the game.
type Actions struct {
	Start            func()
	CompletePrologue func()
	Dismiss          func()
	Answer           func(i int)
	Next             func()
	Restart          func()
	Resume           func()
}

// Overlay shows the menu for whatever phase the game is in. The widget tree is
// rebuilt only when the visible content changes.
type Overlay struct {
	actions Actions
	theme   *theme
	content *prefabs.Content

	ui  *ebitenui.UI
	key string
}

func NewOverlay(content *prefabs.Content, actions Actions) *Overlay {
	return &Overlay{
		actions: actions,
		theme:   newTheme(),
		content: content,
	}
}

// SetContent swaps the tables the title and prologue screens read from.
func (o *Overlay) SetContent(c *prefabs.Content) {
	o.content = c
	o.key = ""
}

// Sync rebuilds the overlay when s needs a different screen than the one shown.
func (o *Overlay) Sync(s component.GameState) {
	key := ScreenKey(s)
	if key == o.key {
		return
	}
	o.key = key
	o.ui = o.build(s)
}

// Active reports whether a screen is currently shown.
func (o *Overlay) Active() bool {
	return o.ui != nil
}

func (o *Overlay) Update() {
	if o.ui != nil {
		o.ui.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.ui != nil {
		o.ui.Draw(screen)
	}
}

// ScreenKey identifies the screen s needs. Playing has no screen.
func ScreenKey(s component.GameState) string {
	switch s.Phase {
	case component.PhasePlaying:
		return ""
	case component.PhaseDialogue:
		if s.Dialogue == nil {
			return ""
		}
		return fmt.Sprintf("dialogue:%d:%s", len(s.DialogueQueue), s.Dialogue.Text)
	case component.PhaseMCQ:
		if s.Question == nil {
			return ""
		}
		return "mcq:" + s.Question.Prompt
	case component.PhaseLevelComplete, component.PhaseGameOver, component.PhaseVictory:
		return fmt.Sprintf("%s:%d:%d", s.Phase, s.CurrentLevel, s.Score)
	}
	return string(s.Phase)
}

func (o *Overlay) build(s component.GameState) *ebitenui.UI {
	t := o.theme
	root, panel := t.newPanel()

	switch s.Phase {
	case component.PhaseTitle:
		t.addText(panel, "TERRA", gold)
		t.addText(panel, "Arrows move, Space jumps, Z attacks.", white)
		t.addButton(panel, "Start", o.actions.Start)
	case component.PhasePrologue:
		if level, ok := o.content.Level(0); ok {
			t.addText(panel, level.Name, gold)
			for _, line := range level.IntroTexts {
				t.addText(panel, line, white)
			}
		}
		t.addButton(panel, "Begin", o.actions.CompletePrologue)
	case component.PhaseDialogue:
		if s.Dialogue == nil {
			return nil
		}
		t.addText(panel, speakerLabel(s.Dialogue.Speaker), gold)
		t.addText(panel, s.Dialogue.Text, styleColor(s.Dialogue.Style))
		label := "Continue"
		if len(s.DialogueQueue) == 0 {
			label = "Fight"
		}
		t.addButton(panel, label, o.actions.Dismiss)
	case component.PhaseMCQ:
		if s.Question == nil {
			return nil
		}
		t.addText(panel, s.Question.Prompt, gold)
		for i, opt := range s.Question.Options {
			i := i
			t.addButton(panel, fmt.Sprintf("%c) %s", 'A'+i, opt), func() {
				if o.actions.Answer != nil {
					o.actions.Answer(i)
				}
			})
		}
	case component.PhaseLevelComplete:
		name := ""
		if level, ok := o.content.Level(s.CurrentLevel); ok {
			name = level.Name
		}
		t.addText(panel, strings.TrimSpace(name+" cleared"), gold)
		t.addText(panel, fmt.Sprintf("Score: %d", s.Score), white)
		t.addButton(panel, "Next", o.actions.Next)
	case component.PhaseGameOver:
		t.addText(panel, "GAME OVER", danger)
		t.addText(panel, fmt.Sprintf("Score: %d", s.Score), white)
		t.addButton(panel, "Try again", o.actions.Restart)
	case component.PhaseVictory:
		t.addText(panel, "VICTORY", gold)
		t.addText(panel, fmt.Sprintf("Final score: %d", s.Score), white)
		t.addButton(panel, "Play again", o.actions.Restart)
	case component.PhasePaused:
		t.addText(panel, "Paused", white)
		t.addButton(panel, "Resume", o.actions.Resume)
	default:
		return nil
	}

	return &ebitenui.UI{Container: root}
}

func speakerLabel(s component.Speaker) string {
	switch s {
	case component.SpeakerBoss:
		return "Boss"
	case component.SpeakerSystem:
		return "System"
	}
	return "Narrator"
}

func styleColor(s component.DialogueStyle) color.Color {
	switch s {
	case component.StyleGlitch:
		return glitch
	case component.StyleBig, component.StyleFlash:
		return gold
	}
	return white
}

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
	"github.com/milk9111/terra/system"
)

const (
	correctAnswerText = "Correct! Boss stunned!"
	wrongAnswerText   = "Wrong answer! You take damage!"
)

type Option func(*Engine)

// WithRand fixes the random source, for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSpecialUnlocked grants the special attack at the start of every level.
func WithSpecialUnlocked(unlocked bool) Option {
	return func(e *Engine) {
		e.specialUnlocked = unlocked
	}
}

// Engine is the outer phase machine. It owns the held keys, the question
// pool, the random source and the current snapshot, and is driven from a
// single goroutine.
type Engine struct {
	state   component.GameState
	content *prefabs.Content
	keys    *component.KeySet
	rng     *rand.Rand
	pool    *QuestionPool
	rules   *system.ClearRules
	log     *slog.Logger
	ctx     *system.Context

	specialUnlocked bool
	pending         []system.Event
}

func New(content *prefabs.Content, opts ...Option) (*Engine, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e := &Engine{
		state:   component.NewGameState(),
		content: content,
		keys:    component.NewKeySet(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	rules, err := system.NewClearRules(content, e.log)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.rules = rules
	e.pool = NewQuestionPool(content.Questions, e.rng)
	e.rebuildContext()
	return e, nil
}

func (e *Engine) rebuildContext() {
	e.ctx = &system.Context{
		Keys:      e.keys,
		Rand:      e.rng,
		Questions: e.pool,
		Content:   e.content,
		Rules:     e.rules,
		Log:       e.log,
	}
}

// State returns the current snapshot. It is never written after being
// returned.
func (e *Engine) State() component.GameState {
	return e.state
}

// Keys is the held-key set the input layer writes into.
func (e *Engine) Keys() *component.KeySet {
	return e.keys
}

func (e *Engine) Content() *prefabs.Content {
	return e.content
}

// Tick advances the simulation by dt milliseconds and returns the sound cues
// raised since the previous call.
func (e *Engine) Tick(dt float64) []system.Event {
	next, events := system.Step(e.state, dt, e.ctx)
	if next.Phase == component.PhaseMCQ && e.state.Phase != component.PhaseMCQ {
		e.log.Debug("question asked", "level", next.CurrentLevel, "remaining", e.pool.Remaining())
	}
	e.publish(next)

	if len(e.pending) == 0 {
		return events
	}
	out := append(e.pending, events...)
	e.pending = nil
	return out
}

// StartGame leaves the title screen for the prologue.
func (e *Engine) StartGame() {
	if e.state.Phase != component.PhaseTitle {
		return
	}
	s := component.NewGameState()
	s.Phase = component.PhasePrologue
	s.CurrentLevel = 0
	e.pool.Reset()
	e.keys.Clear()
	e.publish(s)
}

// CompletePrologue starts the first real level.
func (e *Engine) CompletePrologue() {
	if e.state.Phase != component.PhasePrologue {
		return
	}
	if err := e.StartLevel(1); err != nil {
		e.log.Error("start first level", "err", err)
	}
}

// StartLevel builds level i from scratch, keeping the score and an unlocked
// special attack. Intro lines, if any, are queued and shown before play.
func (e *Engine) StartLevel(i int) error {
	level, ok := e.content.Level(i)
	if !ok {
		return fmt.Errorf("engine: level %d out of range [0,%d)", i, e.content.LevelCount())
	}

	prev := e.state
	s := component.NewGameState()
	s.Phase = component.PhasePlaying
	s.CurrentLevel = i
	s.Score = prev.Score
	s.Serial = prev.Serial
	if prev.Player.HasSpecialAttack || e.specialUnlocked {
		s.Player.HasSpecialAttack = true
	}
	s.CanAttackBoss = level.Boss != component.BossFalseAlly
	s.Monsters = system.SpawnMonsters(e.content, level.ID, e.rng)

	for _, text := range level.IntroTexts {
		s.DialogueQueue = append(s.DialogueQueue, component.Dialogue{
			Speaker: component.SpeakerNarrator,
			Text:    text,
			Style:   component.StyleNormal,
		})
	}

	if level.HasBoss {
		s.Boss = system.NewBoss(e.content.Bosses[level.Boss])
		if t, ok := s.Boss.FindTrigger(component.TriggerIntro); ok {
			t.Triggered = true
			s.DialogueQueue = append(s.DialogueQueue, component.Dialogue{
				Speaker: component.SpeakerBoss,
				Text:    t.Text,
				Style:   component.StyleNormal,
			})
			e.pending = append(e.pending, system.BossEvent(s.Boss.Kind, system.SoundIntro))
		}
	}

	if len(s.DialogueQueue) > 0 {
		s.Phase = component.PhaseDialogue
		s.ShowDialogue(s.DialogueQueue[0])
		s.DialogueQueue = s.DialogueQueue[1:]
	}

	e.keys.Clear()
	e.publish(s)
	e.log.Info("level started", "level", i, "id", level.ID, "boss", level.Boss, "monsters", len(s.Monsters))
	return nil
}

// DismissDialogue advances the intro queue, returning to play once it is
// empty. During play it just clears the line on screen.
func (e *Engine) DismissDialogue() {
	switch e.state.Phase {
	case component.PhaseDialogue:
		s := e.state.Clone()
		if len(s.DialogueQueue) > 0 {
			s.ShowDialogue(s.DialogueQueue[0])
			s.DialogueQueue = s.DialogueQueue[1:]
		} else {
			s.Dialogue = nil
			s.DialogueTimer = 0
			s.Phase = component.PhasePlaying
		}
		e.publish(s)
	case component.PhasePlaying:
		if e.state.Dialogue == nil {
			return
		}
		s := e.state.Clone()
		s.Dialogue = nil
		s.DialogueTimer = 0
		e.publish(s)
	}
}

// AnswerQuestion resolves the active question. A correct answer stuns the
// boss; anything else costs the player health.
func (e *Engine) AnswerQuestion(i int) {
	if e.state.Phase != component.PhaseMCQ || e.state.Question == nil {
		return
	}
	s := e.state.Clone()
	correct := s.Question.IsCorrect(i)
	s.Question = nil
	s.Phase = component.PhasePlaying

	if correct {
		if s.Boss != nil && !s.Boss.Defeated {
			s.Boss.Enter(component.StateHurt)
			s.Boss.Invincible = false
			s.Boss.InvincibleTimer = 0
		}
		s.ShowDialogue(component.Dialogue{Speaker: component.SpeakerSystem, Text: correctAnswerText, Style: component.StyleFlash})
	} else {
		switch component.ApplyPenalty(&s.Player, common.WrongAnswerPenalty) {
		case component.OutcomeKilled:
			e.pending = append(e.pending, system.HeroEvent(system.SoundDeath))
		case component.OutcomeHurt:
			e.pending = append(e.pending, system.HeroEvent(system.SoundHurt))
		}
		s.Shake(common.ShakeWrongAnswer)
		s.ShowDialogue(component.Dialogue{Speaker: component.SpeakerSystem, Text: wrongAnswerText, Style: component.StyleFlash})
	}

	e.log.Debug("question answered", "index", i, "correct", correct)
	e.publish(s)
}

// NextLevel moves on from a cleared level, or to victory after the last one.
func (e *Engine) NextLevel() error {
	if e.state.Phase != component.PhaseLevelComplete {
		return nil
	}
	next := e.state.CurrentLevel + 1
	if next >= e.content.LevelCount() {
		s := e.state.Clone()
		s.Phase = component.PhaseVictory
		e.publish(s)
		return nil
	}
	return e.StartLevel(next)
}

// Restart discards all progress, including the special attack.
func (e *Engine) Restart() {
	e.pool.Reset()
	e.keys.Clear()
	e.pending = nil
	e.publish(component.NewGameState())
}

// TogglePause suspends or resumes play.
func (e *Engine) TogglePause() {
	var phase component.Phase
	switch e.state.Phase {
	case component.PhasePlaying:
		phase = component.PhasePaused
	case component.PhasePaused:
		phase = component.PhasePlaying
	default:
		return
	}
	s := e.state.Clone()
	s.Phase = phase
	e.keys.Clear()
	e.publish(s)
}

// ReloadContent swaps in new tables. The running level keeps its entities;
// the change applies from the next level start. On error nothing changes.
func (e *Engine) ReloadContent(c *prefabs.Content) error {
	if c == nil {
		return errors.New("engine: nil content")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.LevelCount() <= e.state.CurrentLevel {
		return fmt.Errorf("engine: reload drops current level %d", e.state.CurrentLevel)
	}
	rules, err := system.NewClearRules(c, e.log)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	e.content = c
	e.rules = rules
	e.pool = NewQuestionPool(c.Questions, e.rng)
	e.rebuildContext()
	e.log.Info("content reloaded", "levels", c.LevelCount(), "questions", len(c.Questions))
	return nil
}

func (e *Engine) publish(next component.GameState) {
	if next.Phase != e.state.Phase {
		e.log.Info("phase change", "from", e.state.Phase, "to", next.Phase, "level", next.CurrentLevel)
	}
	e.state = next
}

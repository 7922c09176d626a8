package component

import "slices"

// Phase is the outer game-flow state.
type Phase string

const (
	PhaseTitle         Phase = "title"
	PhasePrologue      Phase = "prologue"
	PhasePlaying       Phase = "playing"
	PhaseDialogue      Phase = "dialogue"
	PhaseMCQ           Phase = "mcq"
	PhasePaused        Phase = "paused"
	PhaseLevelComplete Phase = "level_complete"
	PhaseGameOver      Phase = "game_over"
	PhaseVictory       Phase = "victory"
)

// DefaultQuestionThresholds are the riddler's HP percentages, highest first.
var DefaultQuestionThresholds = []float64{75, 50, 25, 0}

// ConsumedThreshold marks a question threshold that already fired.
const ConsumedThreshold = -1

// GameState is one immutable snapshot of the whole game. Once published it is
// never written again; the next tick builds a new value from a Clone.
type GameState struct {
	Phase        Phase `yaml:"phase"`
	CurrentLevel int   `yaml:"current_level"`

	Player   Player    `yaml:"player"`
	Boss     *Boss     `yaml:"boss,omitempty"`
	Monsters []Monster `yaml:"monsters"`
	Effects  []Effect  `yaml:"effects"`

	Dialogue      *Dialogue  `yaml:"dialogue,omitempty"`
	DialogueQueue []Dialogue `yaml:"dialogue_queue,omitempty"`
	DialogueTimer float64    `yaml:"dialogue_timer"`
	Question      *Question  `yaml:"question,omitempty"`

	ScreenShake   float64 `yaml:"screen_shake"`
	Score         int     `yaml:"score"`
	ElapsedTime   float64 `yaml:"elapsed_time"`
	AmbientTimer  float64 `yaml:"ambient_timer"`
	CanAttackBoss bool    `yaml:"can_attack_boss"`

	QuestionThresholds []float64 `yaml:"question_thresholds"`

	// Serial numbers effects so their IDs stay unique within a run.
	Serial uint64 `yaml:"serial"`
}

// NewGameState returns the title-screen state.
func NewGameState() GameState {
	return GameState{
		Phase:              PhaseTitle,
		Player:             NewPlayer(),
		Monsters:           []Monster{},
		Effects:            []Effect{},
		CanAttackBoss:      true,
		QuestionThresholds: append([]float64(nil), DefaultQuestionThresholds...),
	}
}

// Clone deep-copies everything the simulation may write.
func (s GameState) Clone() GameState {
	out := s
	out.Boss = s.Boss.Clone()
	out.Monsters = slices.Clone(s.Monsters)
	out.Effects = slices.Clone(s.Effects)
	out.DialogueQueue = slices.Clone(s.DialogueQueue)
	out.QuestionThresholds = slices.Clone(s.QuestionThresholds)
	if s.Dialogue != nil {
		d := *s.Dialogue
		out.Dialogue = &d
	}
	if s.Question != nil {
		q := *s.Question
		out.Question = &q
	}
	return out
}

// ShowDialogue replaces the active line and restarts its display timer.
func (s *GameState) ShowDialogue(d Dialogue) {
	s.Dialogue = &d
	s.DialogueTimer = 0
}

// Shake sets the screen-shake magnitude.
func (s *GameState) Shake(magnitude float64) {
	s.ScreenShake = magnitude
}

// NextSerial hands out a fresh effect number.
func (s *GameState) NextSerial() uint64 {
	s.Serial++
	return s.Serial
}

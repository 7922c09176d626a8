package component

type Speaker string

const (
	SpeakerNarrator Speaker = "narrator"
	SpeakerBoss     Speaker = "boss"
	SpeakerSystem   Speaker = "system"
)

type DialogueStyle string

const (
	StyleNormal DialogueStyle = "normal"
	StyleGlitch DialogueStyle = "glitch"
	StyleBig    DialogueStyle = "big"
	StyleFlash  DialogueStyle = "flash"
)

// Dialogue is one line shown to the player.
type Dialogue struct {
	Speaker Speaker       `yaml:"speaker"`
	Text    string        `yaml:"text"`
	Style   DialogueStyle `yaml:"style"`
}

// Question is a multiple-choice quiz entry.
type Question struct {
	Prompt  string   `yaml:"question"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// IsCorrect reports whether option index i answers the question.
func (q *Question) IsCorrect(i int) bool {
	return q != nil && i == q.Correct
}

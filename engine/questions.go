package engine

import (
	"math/rand"

	"github.com/milk9111/terra/component"
)

// QuestionPool draws quiz questions without repeats until the bank runs dry,
// then starts over.
type QuestionPool struct {
	questions []component.Question
	used      map[int]bool
	rng       *rand.Rand
}

func NewQuestionPool(questions []component.Question, rng *rand.Rand) *QuestionPool {
	return &QuestionPool{
		questions: append([]component.Question(nil), questions...),
		used:      map[int]bool{},
		rng:       rng,
	}
}

// Pick returns a copy of a question not drawn since the last reset.
func (p *QuestionPool) Pick() *component.Question {
	if p == nil || len(p.questions) == 0 {
		return nil
	}
	available := p.available()
	if len(available) == 0 {
		p.Reset()
		available = p.available()
	}
	idx := available[p.rng.Intn(len(available))]
	p.used[idx] = true

	q := p.questions[idx]
	q.Options = append([]string(nil), q.Options...)
	return &q
}

// Reset forgets which questions were drawn.
func (p *QuestionPool) Reset() {
	clear(p.used)
}

// Remaining is the number of questions left before the pool recycles.
func (p *QuestionPool) Remaining() int {
	return len(p.questions) - len(p.used)
}

func (p *QuestionPool) available() []int {
	out := make([]int, 0, len(p.questions))
	for i := range p.questions {
		if !p.used[i] {
			out = append(out, i)
		}
	}
	return out
}

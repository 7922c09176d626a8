package engine

import (
	"math/rand"
	"testing"

	"github.com/milk9111/terra/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(n int) []component.Question {
	out := make([]component.Question, n)
	for i := range out {
		out[i] = component.Question{Prompt: string(rune('a' + i)), Options: []string{"x", "y"}, Correct: i % 2}
	}
	return out
}

func TestPoolDoesNotRepeatUntilExhausted(t *testing.T) {
	p := NewQuestionPool(testQuestions(5), rand.New(rand.NewSource(9)))

	seen := map[string]bool{}
	for range 5 {
		q := p.Pick()
		require.NotNil(t, q)
		assert.False(t, seen[q.Prompt], "repeat of %s", q.Prompt)
		seen[q.Prompt] = true
	}
	assert.Zero(t, p.Remaining())

	require.NotNil(t, p.Pick(), "pool recycles")
	assert.Equal(t, 4, p.Remaining())
}

func TestPoolReturnsCopies(t *testing.T) {
	qs := testQuestions(1)
	p := NewQuestionPool(qs, rand.New(rand.NewSource(1)))
	q := p.Pick()
	q.Options[0] = "changed"
	q.Prompt = "changed"

	again := p.Pick()
	assert.Equal(t, "x", again.Options[0])
	assert.Equal(t, "a", again.Prompt)
	assert.Equal(t, "x", qs[0].Options[0])
}

func TestEmptyPool(t *testing.T) {
	assert.Nil(t, NewQuestionPool(nil, rand.New(rand.NewSource(1))).Pick())
	var p *QuestionPool
	assert.Nil(t, p.Pick())
}

func TestPoolReset(t *testing.T) {
	p := NewQuestionPool(testQuestions(3), rand.New(rand.NewSource(2)))
	p.Pick()
	p.Pick()
	assert.Equal(t, 1, p.Remaining())
	p.Reset()
	assert.Equal(t, 3, p.Remaining())
}

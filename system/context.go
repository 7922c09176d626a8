package system

import (
	"log/slog"
	"math/rand"

	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

// QuestionPicker hands out quiz questions, avoiding recent repeats.
type QuestionPicker interface {
	Pick() *component.Question
}

// Context is everything a tick needs besides the previous snapshot. It is
// owned by the phase controller and handed to Step on every call.
type Context struct {
	Keys      *component.KeySet
	Rand      *rand.Rand
	Questions QuestionPicker
	Content   *prefabs.Content
	Rules     *ClearRules
	Log       *slog.Logger
}

func (c *Context) float() float64 {
	if c == nil || c.Rand == nil {
		return rand.Float64()
	}
	return c.Rand.Float64()
}

func (c *Context) intn(n int) int {
	if n <= 0 {
		return 0
	}
	if c == nil || c.Rand == nil {
		return rand.Intn(n)
	}
	return c.Rand.Intn(n)
}

func (c *Context) logger() *slog.Logger {
	if c == nil || c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

func (c *Context) level(i int) (prefabs.LevelSpec, bool) {
	if c == nil {
		return prefabs.LevelSpec{}, false
	}
	return c.Content.Level(i)
}

func (c *Context) keys() *component.KeySet {
	if c == nil || c.Keys == nil {
		return component.NewKeySet()
	}
	return c.Keys
}

func (c *Context) rules() *ClearRules {
	if c == nil {
		return nil
	}
	return c.Rules
}

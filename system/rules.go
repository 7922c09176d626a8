package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/prefabs"
)

// Defaults for boss-less levels that leave their clear limits unset.
const (
	DefaultMinDwell  = 3000.0
	DefaultTimeLimit = 15000.0
)

// ClearRules holds the compiled level-clear scripts, keyed by script name.
// A compiled script keeps its globals between runs, so ClearRules must only
// be used from the tick goroutine.
type ClearRules struct {
	compiled map[string]*tengo.Compiled
	log      *slog.Logger
}

// NewClearRules compiles every script referenced by the content.
func NewClearRules(c *prefabs.Content, log *slog.Logger) (*ClearRules, error) {
	if log == nil {
		log = slog.Default()
	}
	r := &ClearRules{compiled: map[string]*tengo.Compiled{}, log: log}
	if c == nil {
		return r, nil
	}
	for name, src := range c.Scripts {
		compiled, err := compileClearScript(src)
		if err != nil {
			return nil, fmt.Errorf("system: compile clear script %s: %w", name, err)
		}
		r.compiled[name] = compiled
	}
	return r, nil
}

func compileClearScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("all_defeated", false)
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("min_dwell", DefaultMinDwell)
	_ = script.Add("time_limit", DefaultTimeLimit)
	_ = script.Add("monsters_left", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	// Globals only exist after a run, so evaluate once with the defaults.
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("complete") {
		return nil, fmt.Errorf("script does not define complete")
	}
	return compiled, nil
}

// Complete reports whether a boss-less level is finished. A missing or
// failing script falls back to the built-in rule.
func (r *ClearRules) Complete(level prefabs.LevelSpec, monsters []component.Monster, elapsed float64) bool {
	left := liveMonsters(monsters)
	minDwell, timeLimit := clearLimits(level)

	if r == nil {
		return defaultClear(left == 0, elapsed, minDwell, timeLimit)
	}
	compiled, ok := r.compiled[level.ClearScriptName()]
	if !ok {
		return defaultClear(left == 0, elapsed, minDwell, timeLimit)
	}

	done, err := runClearScript(compiled, left, elapsed, minDwell, timeLimit)
	if err != nil {
		r.log.Warn("clear script failed, using built-in rule", "level", level.ID, "err", err)
		return defaultClear(left == 0, elapsed, minDwell, timeLimit)
	}
	return done
}

func runClearScript(c *tengo.Compiled, left int, elapsed, minDwell, timeLimit float64) (bool, error) {
	vars := map[string]any{
		"all_defeated":  left == 0,
		"elapsed":       elapsed,
		"min_dwell":     minDwell,
		"time_limit":    timeLimit,
		"monsters_left": left,
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return false, err
		}
	}
	if err := c.Run(); err != nil {
		return false, err
	}
	return c.Get("complete").Bool(), nil
}

func defaultClear(allDefeated bool, elapsed, minDwell, timeLimit float64) bool {
	return (allDefeated && elapsed > minDwell) || elapsed > timeLimit
}

func clearLimits(level prefabs.LevelSpec) (minDwell, timeLimit float64) {
	minDwell, timeLimit = level.MinDwell, level.TimeLimit
	if minDwell <= 0 {
		minDwell = DefaultMinDwell
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	return minDwell, timeLimit
}

func liveMonsters(monsters []component.Monster) int {
	n := 0
	for i := range monsters {
		if !monsters[i].Defeated {
			n++
		}
	}
	return n
}

package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/terra/component"
)

// DefaultClearScript is used by levels that do not name their own.
const DefaultClearScript = "level_clear"

// Content is every static table the game reads, decoded and validated.
type Content struct {
	Levels    []LevelSpec
	Monsters  map[component.MonsterKind]MonsterSpec
	Spawns    map[string][]SpawnSpec
	Bosses    map[component.BossKind]BossSpec
	Questions []component.Question
	Scripts   map[string][]byte
}

// LoadContent reads all tables (disk overrides first, then embedded copies).
func LoadContent() (*Content, error) {
	levels, err := LoadLevelsSpec()
	if err != nil {
		return nil, err
	}
	monsters, err := LoadMonstersSpec()
	if err != nil {
		return nil, err
	}
	bosses, err := LoadBossesSpec()
	if err != nil {
		return nil, err
	}
	questions, err := LoadQuestionsSpec()
	if err != nil {
		return nil, err
	}

	c := &Content{
		Levels:    levels.Levels,
		Monsters:  make(map[component.MonsterKind]MonsterSpec, len(monsters.Kinds)),
		Spawns:    make(map[string][]SpawnSpec, len(monsters.Manifests)),
		Bosses:    make(map[component.BossKind]BossSpec, len(bosses.Bosses)),
		Questions: questions.Questions,
		Scripts:   map[string][]byte{},
	}
	for _, m := range monsters.Kinds {
		c.Monsters[m.Kind] = m
	}
	for _, m := range monsters.Manifests {
		c.Spawns[m.Level] = append(c.Spawns[m.Level], m.Spawns...)
	}
	for _, b := range bosses.Bosses {
		c.Bosses[b.Kind] = b
	}

	for _, lvl := range c.Levels {
		name := lvl.ClearScriptName()
		if _, ok := c.Scripts[name]; ok {
			continue
		}
		src, err := LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
		}
		c.Scripts[name] = src
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoadContent is LoadContent for the embedded tables, which are known good.
func MustLoadContent() *Content {
	c, err := LoadContent()
	if err != nil {
		panic(err)
	}
	return c
}

// ClearScriptName returns the level's clear script, defaulting when unset.
func (l LevelSpec) ClearScriptName() string {
	if l.ClearScript == "" {
		return DefaultClearScript
	}
	return l.ClearScript
}

// Validate checks cross-table references so the simulation never meets an
// unknown kind or an out-of-range index.
func (c *Content) Validate() error {
	if c == nil {
		return errors.New("prefabs: nil content")
	}
	var errs []error
	if len(c.Levels) < 2 {
		errs = append(errs, fmt.Errorf("need a prologue and at least one level, got %d levels", len(c.Levels)))
	}
	if len(c.Levels) > 0 && c.Levels[0].HasBoss {
		errs = append(errs, errors.New("level 0 is the prologue and cannot have a boss"))
	}

	ids := make(map[string]bool, len(c.Levels))
	for i, lvl := range c.Levels {
		if lvl.ID == "" {
			errs = append(errs, fmt.Errorf("level %d: missing id", i))
		}
		if ids[lvl.ID] {
			errs = append(errs, fmt.Errorf("level %d: duplicate id %q", i, lvl.ID))
		}
		ids[lvl.ID] = true
		if lvl.HasBoss {
			if _, ok := c.Bosses[lvl.Boss]; !ok {
				errs = append(errs, fmt.Errorf("level %q: boss %q has no definition", lvl.ID, lvl.Boss))
			}
		} else if lvl.Boss != "" {
			errs = append(errs, fmt.Errorf("level %q: boss %q set but has_boss is false", lvl.ID, lvl.Boss))
		}
	}

	for _, kind := range component.MonsterKinds {
		if _, ok := c.Monsters[kind]; !ok {
			errs = append(errs, fmt.Errorf("monster kind %q has no stats", kind))
		}
	}
	for level, spawns := range c.Spawns {
		if !ids[level] {
			errs = append(errs, fmt.Errorf("spawn manifest for unknown level %q", level))
		}
		for _, s := range spawns {
			if s.Count < 0 {
				errs = append(errs, fmt.Errorf("level %q: negative %s count", level, s.Kind))
			}
		}
	}

	for kind, b := range c.Bosses {
		if b.HP <= 0 || b.Size <= 0 {
			errs = append(errs, fmt.Errorf("boss %q: hp and size must be positive", kind))
		}
	}

	if len(c.Questions) == 0 {
		errs = append(errs, errors.New("question bank is empty"))
	}
	for i, q := range c.Questions {
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Errorf("question %d: needs at least two options", i))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			errs = append(errs, fmt.Errorf("question %d: correct index %d out of range", i, q.Correct))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("prefabs: invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns level i.
func (c *Content) Level(i int) (LevelSpec, bool) {
	if c == nil || i < 0 || i >= len(c.Levels) {
		return LevelSpec{}, false
	}
	return c.Levels[i], true
}

// LevelCount is the number of entries in the level list, prologue included.
func (c *Content) LevelCount() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

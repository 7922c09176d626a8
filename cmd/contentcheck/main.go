package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/milk9111/terra/common"
	"github.com/milk9111/terra/component"
	"github.com/milk9111/terra/engine"
	"github.com/milk9111/terra/prefabs"
	"github.com/milk9111/terra/system"
	"gopkg.in/yaml.v3"
)

// summary is printed after a headless run.
type summary struct {
	Level     string          `yaml:"level"`
	Ticks     int             `yaml:"ticks"`
	Phase     component.Phase `yaml:"phase"`
	PlayerHP  int             `yaml:"player_hp"`
	BossHP    int             `yaml:"boss_hp,omitempty"`
	Monsters  int             `yaml:"monsters"`
	Score     int             `yaml:"score"`
	Dialogues int             `yaml:"dialogues"`
	Questions int             `yaml:"questions"`
	Sounds    map[string]int  `yaml:"sounds"`
}

func main() {
	dir := flag.String("dir", "prefabs", "content directory checked before the embedded copies")
	level := flag.Int("level", 0, "level to simulate, 0 skips the simulation")
	ticks := flag.Int("ticks", 3600, "ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed for the simulation")
	verbose := flag.Bool("v", false, "log engine transitions")
	flag.Parse()

	prefabs.SetDiskRoot(*dir)

	content, err := prefabs.LoadContent()
	if err != nil {
		log.Fatalf("load content: %v", err)
	}
	fmt.Printf("content ok: %d levels, %d monster kinds, %d bosses, %d questions\n",
		content.LevelCount(), len(content.Monsters), len(content.Bosses), len(content.Questions))

	if *level == 0 {
		return
	}

	out, err := simulate(content, *level, *ticks, *seed, *verbose)
	if err != nil {
		log.Fatalf("simulate level %d: %v", *level, err)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		log.Fatalf("marshal summary: %v", err)
	}
	os.Stdout.Write(data)
}

// simulate plays one level with a bot that walks right and keeps attacking.
// Dialogue is dismissed and every question is answered with the first option.
func simulate(content *prefabs.Content, level, ticks int, seed int64, verbose bool) (summary, error) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	e, err := engine.New(content, engine.WithLogger(logger), engine.WithRand(rand.New(rand.NewSource(seed))))
	if err != nil {
		return summary{}, err
	}
	if err := e.StartLevel(level); err != nil {
		return summary{}, err
	}

	spec, _ := content.Level(level)
	out := summary{Level: spec.ID, Sounds: map[string]int{}}

	for i := 0; out.Ticks < ticks && i < 4*ticks; i++ {
		s := e.State()
		switch s.Phase {
		case component.PhaseDialogue:
			out.Dialogues++
			e.DismissDialogue()
			continue
		case component.PhaseMCQ:
			out.Questions++
			e.AnswerQuestion(0)
			continue
		case component.PhasePlaying:
		default:
			return finish(out, e.State()), nil
		}

		keys := e.Keys()
		keys.Add(component.KeyRight)
		keys.Add(component.KeyAttack)
		if s.Player.CanSpecial() {
			keys.Add(component.KeySpecial)
		}

		for _, ev := range e.Tick(common.FrameMillis) {
			out.Sounds[soundName(ev)]++
		}
		out.Ticks++
	}

	return finish(out, e.State()), nil
}

func finish(out summary, s component.GameState) summary {
	out.Phase = s.Phase
	out.PlayerHP = s.Player.HP
	out.Monsters = len(s.Monsters)
	out.Score = s.Score
	if s.Boss != nil {
		out.BossHP = s.Boss.HP
	}
	return out
}

func soundName(ev system.Event) string {
	if ev.FromBoss() {
		return fmt.Sprintf("%s/%s", ev.Boss, ev.Sound)
	}
	return string(ev.Sound)
}

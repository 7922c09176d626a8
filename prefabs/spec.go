package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/terra/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LevelSpec is one entry of the ordered level list.
type LevelSpec struct {
	ID              string             `yaml:"id"`
	Name            string             `yaml:"name"`
	BackgroundColor YAMLColor          `yaml:"background_color"`
	GroundColor     YAMLColor          `yaml:"ground_color"`
	HasBoss         bool               `yaml:"has_boss"`
	Boss            component.BossKind `yaml:"boss,omitempty"`
	IntroTexts      []string           `yaml:"intro_texts"`
	AmbientTexts    []string           `yaml:"ambient_texts"`
	ClearScript     string             `yaml:"clear_script"`
	MinDwell        float64            `yaml:"min_dwell_ms"`
	TimeLimit       float64            `yaml:"time_limit_ms"`
}

type LevelsSpec struct {
	Levels []LevelSpec `yaml:"levels"`
}

func LoadLevelsSpec() (*LevelsSpec, error) {
	spec, err := LoadSpec[LevelsSpec]("levels.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MonsterSpec holds the stats of one monster kind.
type MonsterSpec struct {
	Kind   component.MonsterKind `yaml:"kind"`
	Width  float64               `yaml:"width"`
	Height float64               `yaml:"height"`
	HP     int                   `yaml:"hp"`
	Speed  float64               `yaml:"speed"`
	Damage int                   `yaml:"damage"`
	Color  string                `yaml:"color"`
}

type SpawnSpec struct {
	Kind  component.MonsterKind `yaml:"kind"`
	Count int                   `yaml:"count"`
}

type SpawnManifest struct {
	Level  string      `yaml:"level"`
	Spawns []SpawnSpec `yaml:"spawns"`
}

type MonstersSpec struct {
	Kinds     []MonsterSpec   `yaml:"kinds"`
	Manifests []SpawnManifest `yaml:"manifests"`
}

func LoadMonstersSpec() (*MonstersSpec, error) {
	spec, err := LoadSpec[MonstersSpec]("monsters.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BossSpec is the static definition of one boss archetype.
type BossSpec struct {
	Kind     component.BossKind          `yaml:"kind"`
	Name     string                      `yaml:"name"`
	Size     float64                     `yaml:"size"`
	HP       int                         `yaml:"hp"`
	Color    string                      `yaml:"color"`
	Triggers []component.DialogueTrigger `yaml:"triggers"`
}

type BossesSpec struct {
	Bosses []BossSpec `yaml:"bosses"`
}

func LoadBossesSpec() (*BossesSpec, error) {
	spec, err := LoadSpec[BossesSpec]("bosses.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type QuestionsSpec struct {
	Questions []component.Question `yaml:"questions"`
}

func LoadQuestionsSpec() (*QuestionsSpec, error) {
	spec, err := LoadSpec[QuestionsSpec]("questions.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8), nil
}

package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

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

// GameSpec holds the session-wide settings from game.yaml.
type GameSpec struct {
	Name           string      `yaml:"name"`
	Screen         ScreenSpec  `yaml:"screen"`
	StartScene     string      `yaml:"start_scene"`
	FinalScene     string      `yaml:"final_scene"`
	Intro          bool        `yaml:"intro"`
	IntroMusic     AudioSpec   `yaml:"intro_music"`
	EndMusic       AudioSpec   `yaml:"end_music"`
	Sounds         SoundsSpec  `yaml:"sounds"`
	Triggers       TriggerSpec `yaml:"triggers"`
	WelcomeMessage string      `yaml:"welcome_message"`
	EndMessage     string      `yaml:"end_message"`
	// LegacyAnchorAlias reproduces scene files written for the old trigger
	// constructor, which stored the y anchor in the x slot.
	LegacyAnchorAlias bool `yaml:"legacy_anchor_alias"`
}

type ScreenSpec struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	HUDHeight    int `yaml:"hud_height"`
	EdgeOffset   int `yaml:"edge_offset"`
	TPS          int `yaml:"tps"`
	LogicDivider int `yaml:"logic_divider"`
}

type SoundsSpec struct {
	Footstep string `yaml:"footstep"`
	Trapdoor string `yaml:"trapdoor"`
}

type TriggerSpec struct {
	PrerequisiteNPC      string `yaml:"prerequisite_npc"`
	PrerequisiteMessage  string `yaml:"prerequisite_message"`
	TradeInMessage       string `yaml:"trade_in_message"`
	InventoryFullMessage string `yaml:"inventory_full_message"`
	MissingKeyMessage    string `yaml:"missing_key_message"`
	WrongKeyMessage      string `yaml:"wrong_key_message"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name   string     `yaml:"name"`
	Size   int        `yaml:"size"`
	Speed  int        `yaml:"speed"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type SpriteSpec struct {
	Image  string     `yaml:"image"`
	Frames int        `yaml:"frames"`
	Color  *YAMLColor `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

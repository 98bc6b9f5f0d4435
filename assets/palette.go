package assets

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/zuul/prefabs"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Swatch is how a sprite is drawn when no image for it is embedded.
type Swatch struct {
	Color Color  `yaml:"color"`
	Glyph string `yaml:"glyph"`
	Image string `yaml:"image"`
	Audio string `yaml:"audio"`
}

// Color accepts an SVG color name ("steelblue") or a hex value ("#4682b4").
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}
	var hex prefabs.YAMLColor
	if err := hex.UnmarshalYAML(value); err != nil {
		return err
	}
	c.Color = hex.Color
	return nil
}

// Palette maps sprite and sound names to swatches.
type Palette map[string]Swatch

var fallback = Swatch{Color: Color{colornames.Magenta}, Glyph: "?"}

// LoadPalette reads palette.yaml.
func LoadPalette() (Palette, error) {
	data, err := LoadFile("palette.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: load palette.yaml: %w", err)
	}
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("assets: unmarshal palette.yaml: %w", err)
	}
	return p, nil
}

// Lookup finds the swatch for name, dropping trailing "_part" segments until
// something matches, so "player_up" falls back to "player".
func (p Palette) Lookup(name string) Swatch {
	for n := name; n != ""; {
		if s, ok := p[n]; ok {
			if s.Color.Color == nil {
				s.Color = fallback.Color
			}
			return s
		}
		i := strings.LastIndex(n, "_")
		if i < 0 {
			break
		}
		n = n[:i]
	}
	return fallback
}

package levels

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/milk9111/zuul/common"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

//go:embed scene.schema.json
var sceneSchemaJSON []byte

// ErrInvalidScene wraps every schema or decoding failure of a scene file.
var ErrInvalidScene = errors.New("levels: invalid scene")

// Scene is the on-disk description of one room.
type Scene struct {
	Name       string   `yaml:"name"`
	Background string   `yaml:"background"`
	Music      Music    `yaml:"music"`
	Spawn      Point    `yaml:"spawn"`
	Entities   []Entity `yaml:"entities"`
	Items      []Item   `yaml:"items"`
	Maze       *Maze    `yaml:"maze,omitempty"`
}

type Music struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
}

type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Entity struct {
	Name       string     `yaml:"name"`
	Sprite     string     `yaml:"sprite"`
	X          int        `yaml:"x"`
	Y          int        `yaml:"y"`
	W          int        `yaml:"w"`
	H          int        `yaml:"h"`
	Collidable bool       `yaml:"collidable"`
	Animation  *Animation `yaml:"animation,omitempty"`
	Trigger    *Trigger   `yaml:"trigger,omitempty"`
}

type Animation struct {
	Frames        int  `yaml:"frames"`
	TicksPerFrame int  `yaml:"ticks_per_frame"`
	Loop          bool `yaml:"loop"`
	Autoplay      bool `yaml:"autoplay"`
}

type Trigger struct {
	Kind      string    `yaml:"kind"`
	Direction Direction `yaml:"direction"`
	Anchor    Point     `yaml:"anchor"`
	Value     string    `yaml:"value"`
	Margin    int       `yaml:"margin"`
}

// Direction accepts either degrees (0, 90, 180, 270) or a name such as
// "right" or "any". A missing direction means any.
type Direction struct {
	common.Direction
	set bool
}

func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	dir, err := common.ParseDirection(strings.ToLower(strings.TrimSpace(value.Value)))
	if err != nil {
		return fmt.Errorf("direction %q: %w", value.Value, err)
	}
	d.Direction = dir
	d.set = true
	return nil
}

// Resolve returns the parsed direction, or common.Any when none was given.
func (d Direction) Resolve() common.Direction {
	if !d.set {
		return common.Any
	}
	return d.Direction
}

type Item struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Icon    string `yaml:"icon"`
	Sprite  string `yaml:"sprite"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	W       int    `yaml:"w"`
	H       int    `yaml:"h"`
	Message string `yaml:"message"`
	Margin  int    `yaml:"margin"`
}

// Maze describes a procedurally decorated room: one wall per cell of a fixed
// coordinate table, each drawn with a sprite picked from Variants.
type Maze struct {
	CellSize int      `yaml:"cell_size"`
	Cells    []Point  `yaml:"cells"`
	Variants []string `yaml:"variants"`
}

// Load reads a scene file, preferring a copy on disk under levels/ so edits
// are picked up without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

// DiskPath is where the editable copy of a scene file lives.
func DiskPath(name string) string {
	return filepath.Join("levels", filepath.FromSlash(cleanLevelPath(name)))
}

// LoadScene loads, validates and decodes the named scene.
func LoadScene(name string) (*Scene, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse validates data against the scene schema and decodes it.
func Parse(data []byte, source string) (*Scene, error) {
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidScene, source, err)
	}
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidScene, source, err)
	}
	return &sc, nil
}

// Names lists the embedded scene files without extension, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsSceneFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads every embedded scene.
func LoadAll() ([]*Scene, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	out := make([]*Scene, 0, len(names))
	for _, name := range names {
		sc, err := LoadScene(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// IsSceneFile reports whether path looks like a scene file.
func IsSceneFile(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

func cleanLevelPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if idx := strings.LastIndex(s, "levels/"); idx >= 0 {
		s = s[idx+len("levels/"):]
	}
	if !IsSceneFile(s) {
		s += ".yaml"
	}
	return s
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func sceneSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("scene.schema.json", bytes.NewReader(sceneSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("levels: add schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("scene.schema.json")
	})
	return schema, schemaErr
}

// validate checks a YAML document against the scene schema. The document is
// round-tripped through JSON so the validator sees JSON types.
func validate(data []byte) error {
	s, err := sceneSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return s.Validate(v)
}

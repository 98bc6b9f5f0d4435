package levels

import (
	"errors"
	"testing"

	"github.com/milk9111/zuul/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogIsValid(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"basement", "headquarters", "ice", "launch_pad", "maze_1", "maze_2", "outside_headquarters",
	}, names)

	scenes, err := LoadAll()
	require.NoError(t, err)
	require.Len(t, scenes, len(names))
	for i, sc := range scenes {
		assert.Equal(t, names[i], sc.Name, "scene name matches its file")
	}
}

func TestLoadSceneDecodesTriggers(t *testing.T) {
	sc, err := LoadScene("outside_headquarters")
	require.NoError(t, err)
	assert.Equal(t, Point{X: 440, Y: 380}, sc.Spawn)
	assert.Equal(t, "game_song", sc.Music.Track)

	var door *Entity
	for i := range sc.Entities {
		if sc.Entities[i].Name == "headquarters_entrance" {
			door = &sc.Entities[i]
		}
	}
	require.NotNil(t, door)
	require.NotNil(t, door.Trigger)
	assert.Equal(t, "LOCKEDSCENESWITCH", door.Trigger.Kind)
	assert.Equal(t, common.Up, door.Trigger.Direction.Resolve())
	assert.Equal(t, Point{X: 700, Y: 400}, door.Trigger.Anchor)
	assert.Equal(t, 10, door.Trigger.Margin)

	require.Len(t, sc.Items, 1)
	assert.Equal(t, "galley_supply", sc.Items[0].Key)
}

func TestMazeScenesCarryCells(t *testing.T) {
	sc, err := LoadScene("levels/maze_1.yaml")
	require.NoError(t, err)
	require.NotNil(t, sc.Maze)
	assert.Equal(t, 64, sc.Maze.CellSize)
	assert.NotEmpty(t, sc.Maze.Cells)
	assert.NotEmpty(t, sc.Maze.Variants)
}

func TestDirectionForms(t *testing.T) {
	cases := []struct {
		name string
		dir  string
		want common.Direction
	}{
		{"degrees", "direction: 90", common.Right},
		{"word", "direction: left", common.Left},
		{"upper case word", "direction: DOWN", common.Down},
		{"wildcard", "direction: any", common.Any},
		{"missing", "", common.Any},
		{"odd degrees are kept", "direction: 45", common.Direction(45)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := "name: room\nspawn: {x: 100, y: 100}\nentities:\n  - name: door\n    x: 0\n    y: 0\n    w: 10\n    h: 10\n    trigger:\n      kind: SCENESWITCH\n      value: hall\n"
			if c.dir != "" {
				doc += "      " + c.dir + "\n"
			}
			sc, err := Parse([]byte(doc), "room")
			require.NoError(t, err)
			assert.Equal(t, c.want, sc.Entities[0].Trigger.Direction.Resolve())
		})
	}
}

func TestParseRejectsInvalidScenes(t *testing.T) {
	cases := map[string]string{
		"missing spawn":      "name: room\n",
		"unknown field":      "name: room\nspawn: {x: 1, y: 1}\nfloor: lava\n",
		"bad name":           "name: Room One\nspawn: {x: 1, y: 1}\n",
		"unknown kind":       "name: room\nspawn: {x: 1, y: 1}\nentities:\n  - name: a\n    trigger: {kind: ITEM}\n",
		"bad item kind":      "name: room\nspawn: {x: 1, y: 1}\nitems:\n  - {key: a, kind: WEAPON, x: 1, y: 1}\n",
		"unparsable heading": "name: room\nspawn: {x: 1, y: 1}\nentities:\n  - {name: a, x: 0, y: 0, w: 1, h: 1, trigger: {kind: MESSAGE, direction: sideways}}\n",
		"not yaml":           "name: [room\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidScene), "got %v", err)
		})
	}
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "ice.yaml", cleanLevelPath("ice"))
	assert.Equal(t, "ice.yaml", cleanLevelPath("levels/ice.yaml"))
	assert.Equal(t, "ice.yml", cleanLevelPath("/tmp/game/levels/ice.yml"))
	assert.True(t, IsSceneFile("a/b.YAML"))
	assert.False(t, IsSceneFile("scene.schema.json"))
}

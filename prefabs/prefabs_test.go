package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadGameSpec(t *testing.T) {
	gs, err := LoadGameSpec()
	require.NoError(t, err)

	assert.Equal(t, 960, gs.Screen.Width)
	assert.Equal(t, 480, gs.Screen.Height)
	assert.Equal(t, 10, gs.Screen.EdgeOffset)
	assert.Equal(t, "ice", gs.StartScene)
	assert.Equal(t, "launch_pad", gs.FinalScene)
	assert.True(t, gs.Intro)
	assert.Equal(t, "intro", gs.IntroMusic.Name)
	assert.Equal(t, "trapdoor_sound", gs.Sounds.Trapdoor)
	assert.Equal(t, "npc_commander", gs.Triggers.PrerequisiteNPC)
	assert.Contains(t, gs.Triggers.WrongKeyMessage, "%s")
	assert.False(t, gs.LegacyAnchorAlias)
}

func TestLoadPlayerSpec(t *testing.T) {
	ps, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 64, ps.Size)
	assert.Equal(t, 5, ps.Speed)
	require.NotNil(t, ps.Sprite.Color)
	assert.Equal(t, color.NRGBA{R: 0x3c, G: 0x78, B: 0xd8, A: 0xff}, ps.Sprite.Color.Color)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[GameSpec]("missing.yaml")
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff000080"`, want: color.NRGBA{R: 0xff, A: 0x80}},
		{in: `"00ff00"`, want: color.NRGBA{G: 0xff, A: 0xff}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gggggg"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}
}

func TestPrefabPaths(t *testing.T) {
	assert.Equal(t, "game.yaml", cleanPrefabPath("prefabs/game.yaml"))
	assert.Equal(t, filepath.Join("prefabs", "game.yaml"), diskPrefabPath("game.yaml"))
	assert.Equal(t, "maze_1", BaseName("/srv/levels/maze_1.yaml"))
	assert.True(t, IsSpecFile("x.yml"))
	assert.False(t, IsSpecFile("x.yaml~"))
}

func TestWatcherReportsEditedYAML(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "ice.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: ice\n"), 0o644))

	var seen []string
	require.Eventually(t, func() bool {
		seen = append(seen, w.Poll()...)
		return len(seen) > 0
	}, 2*time.Second, 20*time.Millisecond)

	for _, name := range seen {
		assert.Equal(t, target, name)
	}
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

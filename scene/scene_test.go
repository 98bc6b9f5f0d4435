package scene

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/hooks"
	"github.com/milk9111/zuul/levels"
	"github.com/milk9111/zuul/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpts = BuildOptions{
	Playfield:   common.NewRect(0, 0, 960, 480),
	PlayerSize:  64,
	PlayerSpeed: 5,
}

func roomSpec() *levels.Scene {
	return &levels.Scene{
		Name:       "room",
		Background: "background_snow",
		Music:      levels.Music{Track: "game_song", Volume: 0.1},
		Spawn:      levels.Point{X: 100, Y: 200},
		Entities: []levels.Entity{
			{Name: "bush", Sprite: "bush", X: 300, Y: 300, W: 80, H: 60, Collidable: true},
			{
				Name: "door", Sprite: "door", X: 500, Y: 100, W: 96, H: 24,
				Trigger: &levels.Trigger{
					Kind:   "LOCKEDSCENESWITCH",
					Anchor: levels.Point{X: 700, Y: 400},
					Value:  "hall",
					Margin: 10,
				},
			},
			{
				Name: "hatch", Sprite: "hatch", X: 40, Y: 40, W: 90, H: 90,
				Animation: &levels.Animation{Frames: 6, TicksPerFrame: 3},
			},
		},
		Items: []levels.Item{
			{Key: "hall_key", Name: "key", Kind: "KEY", Sprite: "key", X: 700, Y: 80, Message: "A key!"},
		},
	}
}

func TestBuild(t *testing.T) {
	sc, err := Build(roomSpec(), testOpts)
	require.NoError(t, err)

	assert.Equal(t, "room", sc.Name)
	assert.False(t, sc.Active())
	assert.Equal(t, Music{Track: "game_song", Volume: 0.1}, sc.Music)
	assert.Equal(t, 100, sc.Player.X)
	assert.Equal(t, 200, sc.Player.Y)
	assert.Equal(t, common.Up, sc.Player.Facing)
	assert.Equal(t, []string{"bush", "door", "hatch"}, sc.Entities.Names())

	bush, _ := sc.Entities.Get("bush")
	assert.NotNil(t, bush.Collision)
	assert.Nil(t, bush.Trigger)

	door, ok := sc.FindTrigger("door")
	require.True(t, ok)
	assert.Equal(t, component.TriggerLockedSceneSwitch, door.Kind)
	assert.Equal(t, common.Any, door.Direction, "a missing direction means any")
	assert.Equal(t, 700, door.AnchorX)
	assert.Equal(t, 400, door.AnchorY)
	assert.Equal(t, common.NewRect(490, 90, 116, 44), door.Box)

	_, ok = sc.Animation("hatch")
	assert.True(t, ok)
	_, ok = sc.Animation("bush")
	assert.False(t, ok)

	key, ok := sc.Items.Get("hall_key")
	require.True(t, ok)
	assert.Equal(t, common.NewRect(700, 80, 32, 32), key.Bounds)
	assert.Equal(t, component.ItemKey, key.Kind)
	tr, ok := sc.FindTrigger("hall_key")
	require.True(t, ok)
	assert.Equal(t, component.TriggerItem, tr.Kind)
	assert.Equal(t, "A key!", tr.Value)
}

func TestBuildLegacyAnchorAlias(t *testing.T) {
	opts := testOpts
	opts.LegacyAnchorAlias = true

	sc, err := Build(roomSpec(), opts)
	require.NoError(t, err)
	door, _ := sc.FindTrigger("door")
	assert.Equal(t, 400, door.AnchorX)
	assert.Zero(t, door.AnchorY)
}

func TestBuildRejectsBadSpawn(t *testing.T) {
	for _, spawn := range []levels.Point{{X: 0, Y: 100}, {X: 896, Y: 100}, {X: 100, Y: 416}, {X: -5, Y: -5}} {
		spec := roomSpec()
		spec.Spawn = spawn
		_, err := Build(spec, testOpts)
		assert.True(t, errors.Is(err, ErrNoPlayerSpawn), "spawn %+v", spawn)
	}
}

func TestBuildRejectsUnknownKinds(t *testing.T) {
	spec := roomSpec()
	spec.Entities[1].Trigger.Kind = "TELEPORT"
	_, err := Build(spec, testOpts)
	assert.ErrorContains(t, err, "entity door")

	spec = roomSpec()
	spec.Items[0].Kind = "WEAPON"
	_, err = Build(spec, testOpts)
	assert.ErrorContains(t, err, "item hall_key")
}

func mazeSpec() *levels.Scene {
	return &levels.Scene{
		Name:  "maze",
		Spawn: levels.Point{X: 440, Y: 400},
		Maze: &levels.Maze{
			Cells:    []levels.Point{{X: 0, Y: 120}, {X: 64, Y: 120}, {X: 128, Y: 120}, {X: 192, Y: 120}, {X: 256, Y: 120}, {X: 320, Y: 120}},
			Variants: []string{"ice_block_1", "ice_block_2", "ice_block_3", "ice_rock"},
		},
		Entities: []levels.Entity{{Name: "trigger_up", X: 0, Y: 0, W: 960, H: 14}},
	}
}

func wallSprites(sc *Scene) []string {
	var out []string
	sc.Entities.Each(func(e *obj.Entity) bool {
		if e.Collision != nil {
			out = append(out, e.Sprite)
		}
		return true
	})
	return out
}

func TestMazeIsDeterministicPerSeed(t *testing.T) {
	build := func(seed int64) *Scene {
		opts := testOpts
		opts.Rand = rand.New(rand.NewSource(seed))
		sc, err := Build(mazeSpec(), opts)
		require.NoError(t, err)
		return sc
	}

	a, b := build(42), build(42)
	assert.Equal(t, wallSprites(a), wallSprites(b))
	assert.Len(t, wallSprites(a), 6)

	names := a.Entities.Names()
	assert.Equal(t, MazeWallName(0), names[0])
	assert.Equal(t, "maze_wall_005", names[5])
	assert.Equal(t, "trigger_up", names[6])

	wall, _ := a.Entities.Get("maze_wall_001")
	assert.Equal(t, common.NewRect(64, 120, 64, 64), wall.Bounds)
}

func TestMazeWithoutRandUsesFirstVariant(t *testing.T) {
	sc, err := Build(mazeSpec(), testOpts)
	require.NoError(t, err)
	for _, s := range wallSprites(sc) {
		assert.Equal(t, "ice_block_1", s)
	}
}

func TestEnterPlaysMusicOncePerVisit(t *testing.T) {
	sc, err := Build(roomSpec(), testOpts)
	require.NoError(t, err)
	rec := &hooks.Recorder{}

	assert.False(t, sc.Enter(rec), "inactive scenes stay silent")
	assert.Empty(t, rec.Calls)

	sc.Activate()
	assert.True(t, sc.Enter(rec))
	assert.False(t, sc.Enter(rec))
	assert.Equal(t, []string{"stop", "loop:game_song"}, rec.Calls)
	assert.True(t, sc.Rendered())

	sc.Deactivate()
	assert.False(t, sc.Rendered())
	sc.Activate()
	assert.True(t, sc.Enter(rec))
	assert.Equal(t, 2, rec.Count("loop:game_song"))
}

func TestRequestLifecycle(t *testing.T) {
	sc := New("room", obj.NewPlayer(100, 100, 64, 5, testOpts.Playfield))

	_, ok := sc.NextScene()
	assert.False(t, ok)
	assert.False(t, sc.PreserveCoordinates())

	sc.RequestScene("hall", true, 10, 20)
	next, ok := sc.NextScene()
	assert.True(t, ok)
	assert.Equal(t, "hall", next)
	assert.True(t, sc.PreserveCoordinates())

	sc.ResetNextScene()
	_, ok = sc.Request()
	assert.False(t, ok)
}

func TestDropPlacesItemAhead(t *testing.T) {
	cases := []struct {
		facing common.Direction
		x, y   int
	}{
		{common.Up, 400, 125},
		{common.Right, 475, 200},
		{common.Down, 400, 275},
		{common.Left, 357, 200},
	}

	for _, c := range cases {
		t.Run(c.facing.String(), func(t *testing.T) {
			sc := New("room", obj.NewPlayer(400, 200, 64, 5, testOpts.Playfield))
			sc.Player.Facing = c.facing
			it := component.NewItem("k", "key", component.ItemKey, "", "key", common.NewRect(0, 0, 32, 32), "A key!", 0)
			it.Trigger.Latch()

			sc.Drop(it)

			got, ok := sc.Items.Get("k")
			require.True(t, ok)
			assert.Equal(t, c.x, got.Bounds.X)
			assert.Equal(t, c.y, got.Bounds.Y)
			assert.Equal(t, got.Bounds, got.Trigger.Box)
			assert.False(t, got.Trigger.Latched())
		})
	}
}

func TestRenderOrder(t *testing.T) {
	sc, err := Build(roomSpec(), testOpts)
	require.NoError(t, err)
	rec := &hooks.Recorder{}

	sc.Render(rec)

	assert.Equal(t, []string{
		"static:background_snow@0,0",
		"static:bush@300,300",
		"static:door@500,100",
		"frame:hatch#0@40,40",
		"static:key@700,80",
		"frame:player_up#0@100,200",
	}, rec.Calls)
}

func TestAnimateAdvancesEntities(t *testing.T) {
	spec := roomSpec()
	spec.Entities[2].Animation.Autoplay = true
	spec.Entities[2].Animation.Loop = true
	sc, err := Build(spec, testOpts)
	require.NoError(t, err)

	anim, _ := sc.Animation("hatch")
	for i := 0; i < 3; i++ {
		sc.Animate()
	}
	assert.Equal(t, 1, anim.Frame())
}

func TestInheritCarriesPlayState(t *testing.T) {
	old, err := Build(roomSpec(), testOpts)
	require.NoError(t, err)
	door, _ := old.FindTrigger("door")
	door.Latch()
	old.SetCooldown(door)
	hatch, _ := old.Animation("hatch")
	hatch.PlayOnce()
	for i := 0; i < 3; i++ {
		old.Animate()
	}
	_, ok := old.Items.Take("hall_key")
	require.True(t, ok)

	fresh, err := Build(roomSpec(), testOpts)
	require.NoError(t, err)
	fresh.Inherit(old, nil)

	freshDoor, _ := fresh.FindTrigger("door")
	assert.True(t, freshDoor.Latched())
	assert.Same(t, freshDoor, fresh.Cooldown())
	freshHatch, _ := fresh.Animation("hatch")
	assert.Equal(t, 1, freshHatch.Frame())
	assert.True(t, freshHatch.Playing())
	assert.False(t, fresh.Items.Has("hall_key"), "a taken item stays taken")
}

func TestInheritNewItems(t *testing.T) {
	bare := roomSpec()
	bare.Items = nil

	tests := []struct {
		name string
		held func(string) bool
		want bool
	}{
		{name: "not carried", held: nil, want: true},
		{name: "carried", held: func(key string) bool { return key == "hall_key" }, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old, err := Build(bare, testOpts)
			require.NoError(t, err)
			fresh, err := Build(roomSpec(), testOpts)
			require.NoError(t, err)

			fresh.Inherit(old, tt.held)
			assert.Equal(t, tt.want, fresh.Items.Has("hall_key"))
		})
	}
}

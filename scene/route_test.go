package scene

import (
	"testing"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteAroundWall(t *testing.T) {
	spec := &levels.Scene{
		Name:  "hall",
		Spawn: levels.Point{X: 40, Y: 40},
		Entities: []levels.Entity{
			{Name: "wall", Sprite: "wall", X: 300, Y: 0, W: 40, H: 380, Collidable: true},
			{Name: "trigger_right", X: 946, Y: 0, W: 14, H: 480, Trigger: &levels.Trigger{Kind: "BORDER_SCENESWITCH", Value: "next"}},
		},
	}
	sc, err := Build(spec, testOpts)
	require.NoError(t, err)
	exit, _ := sc.FindTrigger("trigger_right")

	walk := sc.Route(40, 40, exit.Box)
	require.NotEmpty(t, walk)
	last := walk[len(walk)-1]
	assert.True(t, exit.Box.Intersects(last))

	wall, _ := sc.Entities.Get("wall")
	passedBelow := false
	for _, r := range walk {
		assert.False(t, wall.Collision.IsColliding(r))
		if r.X > 300 && r.X < 340 {
			passedBelow = passedBelow || r.Y >= 380
		}
	}
	assert.True(t, passedBelow, "the walk goes round the bottom of the wall")
	assert.Empty(t, sc.UnreachableSwitches(40, 40))
}

func TestUnreachableSwitches(t *testing.T) {
	spec := &levels.Scene{
		Name:  "cell",
		Spawn: levels.Point{X: 40, Y: 40},
		Entities: []levels.Entity{
			{Name: "bars", X: 300, Y: 0, W: 40, H: 480, Collidable: true},
			{Name: "note", X: 100, Y: 300, W: 20, H: 20, Trigger: &levels.Trigger{Kind: "MESSAGE", Value: "hi"}},
			{Name: "trigger_right", X: 946, Y: 0, W: 14, H: 480, Trigger: &levels.Trigger{Kind: "BORDER_SCENESWITCH", Value: "out"}},
			{Name: "trigger_left", X: 0, Y: 0, W: 14, H: 480, Trigger: &levels.Trigger{Kind: "BORDER_SCENESWITCH", Value: "in"}},
		},
	}
	sc, err := Build(spec, testOpts)
	require.NoError(t, err)

	assert.Equal(t, []string{"trigger_right"}, sc.UnreachableSwitches(40, 40))
	assert.Nil(t, sc.Route(40, 40, common.NewRect(600, 200, 10, 10)))
}

package obj

import (
	"testing"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var playfield = common.NewRect(0, 0, 960, 480)

func TestPlayerMoveLeftStopsAtEdge(t *testing.T) {
	p := NewPlayer(100, 200, DefaultPlayerSize, DefaultPlayerSpeed, playfield)

	for i := 0; i < 19; i++ {
		require.True(t, p.MoveLeft(), "step %d", i)
	}
	assert.Equal(t, 100-19*DefaultPlayerSpeed, p.X)
	assert.False(t, p.CanMoveLeft(0))

	assert.False(t, p.MoveLeft())
	assert.Equal(t, 5, p.X)
	assert.Equal(t, common.Left, p.Facing)
}

func TestPlayerMovesSetFacing(t *testing.T) {
	cases := []struct {
		name   string
		move   func(p *Player) bool
		facing common.Direction
		dx, dy int
	}{
		{"up", (*Player).MoveUp, common.Up, 0, -5},
		{"right", (*Player).MoveRight, common.Right, 5, 0},
		{"down", (*Player).MoveDown, common.Down, 0, 5},
		{"left", (*Player).MoveLeft, common.Left, -5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(400, 200, 64, 5, playfield)
			require.True(t, c.move(p))
			assert.Equal(t, c.facing, p.Facing)
			assert.Equal(t, 400+c.dx, p.X)
			assert.Equal(t, 200+c.dy, p.Y)
		})
	}
}

func TestBlockedMoveKeepsFacing(t *testing.T) {
	p := NewPlayer(400, 411, 64, 5, playfield)
	assert.False(t, p.CanMoveDown(480))
	assert.False(t, p.MoveDown())
	assert.Equal(t, common.Up, p.Facing)
	assert.Equal(t, 411, p.Y)
}

func TestPushOutMovesAgainstFacing(t *testing.T) {
	p := NewPlayer(100, 100, 64, 5, playfield)
	p.Facing = common.Right
	p.PushOut(1)
	assert.Equal(t, 99, p.X)

	p.Facing = common.Up
	p.PushOut(1)
	assert.Equal(t, 101, p.Y)
}

func TestRegistryOrderAndQueries(t *testing.T) {
	reg := NewRegistry()
	wall := NewEntity("wall", "wall", common.NewRect(200, 100, 50, 50)).WithCollision()
	first := NewEntity("first", "", common.NewRect(90, 90, 40, 40)).
		WithTrigger(component.TriggerOpts{Kind: component.TriggerMessage, Value: "one"})
	second := NewEntity("second", "", common.NewRect(100, 100, 40, 40)).
		WithTrigger(component.TriggerOpts{Kind: component.TriggerMessage, Value: "two"})
	reg.Add(wall)
	reg.Add(first)
	reg.Add(second)

	assert.Equal(t, []string{"wall", "first", "second"}, reg.Names())
	assert.Equal(t, "first", first.Trigger.Owner)

	p := NewPlayer(100, 100, 64, 5, playfield)
	got := p.CurrentTrigger(reg)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Owner, "first overlapping trigger in insertion order wins")
	assert.False(t, p.IsCollidingWith(reg))

	p.SetPosition(150, 100)
	assert.True(t, p.IsCollidingWith(reg))

	reg.Add(NewEntity("first", "", common.NewRect(0, 0, 1, 1)))
	assert.Equal(t, []string{"wall", "first", "second"}, reg.Names(), "replacing keeps the slot")
	assert.Len(t, reg.Triggers(component.TriggerMessage), 1)

	require.True(t, reg.Remove("wall"))
	assert.Equal(t, []string{"first", "second"}, reg.Names())
}

func TestItemsTable(t *testing.T) {
	items := NewItems()
	a := component.NewItem("a", "A", component.ItemKey, "", "a", common.NewRect(100, 100, 32, 32), "got a", 0)
	b := component.NewItem("b", "B", component.ItemSupply, "", "b", common.NewRect(500, 100, 32, 32), "got b", 0)
	items.Put(a)
	items.Put(b)

	p := NewPlayer(90, 90, 64, 5, playfield)
	tb := p.CurrentItemTrigger(items)
	require.NotNil(t, tb)
	assert.Equal(t, "a", tb.Owner)

	it, ok := items.Take("a")
	require.True(t, ok)
	assert.Same(t, a, it)
	assert.Nil(t, p.CurrentItemTrigger(items))
	assert.Equal(t, 1, items.Len())

	items.Put(a)
	var keys []string
	items.Each(func(it *component.Item) bool {
		keys = append(keys, it.Key)
		return true
	})
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestEntityMoveTo(t *testing.T) {
	e := NewEntity("crate", "crate", common.NewRect(10, 10, 20, 20)).
		WithCollision().
		WithTrigger(component.TriggerOpts{Kind: component.TriggerMessage, Margin: 4})
	e.MoveTo(100, 50)
	assert.Equal(t, common.NewRect(100, 50, 20, 20), e.Bounds)
	assert.Equal(t, common.NewRect(100, 50, 20, 20), e.Collision.Box)
	assert.Equal(t, common.NewRect(96, 46, 28, 28), e.Trigger.Box)
	assert.False(t, e.Animated())
}

func TestPlayerSprite(t *testing.T) {
	p := NewPlayer(100, 100, 0, 0, playfield)
	assert.Equal(t, DefaultPlayerSize, p.Size)
	assert.Equal(t, DefaultPlayerSpeed, p.Speed)
	assert.Equal(t, "player_up", p.Sprite())
	p.Facing = common.Left
	assert.Equal(t, "player_left", p.Sprite())
}

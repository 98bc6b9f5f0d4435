package component

import "github.com/milk9111/zuul/common"

// CollisionBox blocks player movement while overlapping the player.
type CollisionBox struct {
	Box common.Rect
}

func NewCollisionBox(x, y, w, h int) *CollisionBox {
	return &CollisionBox{Box: common.NewRect(x, y, w, h)}
}

// IsColliding reports whether other overlaps the box.
func (c *CollisionBox) IsColliding(other common.Rect) bool {
	if c == nil {
		return false
	}
	return c.Box.Intersects(other)
}

// MoveTo repositions the box, keeping its size.
func (c *CollisionBox) MoveTo(x, y int) {
	if c == nil {
		return
	}
	c.Box = c.Box.MoveTo(x, y)
}

package scene

import (
	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/component"
	"github.com/milk9111/zuul/obj"
)

// routeStep is the grid resolution, in pixels, used to search for walks.
// Border triggers are 14 pixels deep, so the step has to be smaller.
const routeStep = 8

const maxRouteNodes = 20000

// Route searches for a walk of the scene's player from x, y to any spot
// overlapping target. It returns the player positions along the walk, or
// nil when the target cannot be reached.
func (s *Scene) Route(x, y int, target common.Rect) []common.Rect {
	p := s.Player
	pf := s.Playfield
	at := func(c component.Cell) common.Rect {
		return common.NewRect(c.X*routeStep, c.Y*routeStep, p.Size, p.Size)
	}

	grid := component.Grid{
		W: pf.Right()/routeStep + 1,
		H: pf.Bottom()/routeStep + 1,
		Blocked: func(c component.Cell) bool {
			r := at(c)
			if !fits(pf, r) {
				return true
			}
			blocked := false
			s.Entities.Each(func(e *obj.Entity) bool {
				if e.Collision.IsColliding(r) {
					blocked = true
					return false
				}
				return true
			})
			return blocked
		},
	}

	goal := func(c component.Cell) bool { return target.Intersects(at(c)) }
	estimate := func(c component.Cell) int {
		r := at(c)
		dx := max(target.X-r.Right(), r.X-target.Right(), 0)
		dy := max(target.Y-r.Bottom(), r.Y-target.Bottom(), 0)
		return (dx + dy) / routeStep
	}

	cells := grid.FindPath(component.Cell{X: x / routeStep, Y: y / routeStep}, goal, estimate, maxRouteNodes)
	if cells == nil {
		return nil
	}
	out := make([]common.Rect, len(cells))
	for i, c := range cells {
		out[i] = at(c)
	}
	return out
}

// UnreachableSwitches lists the owners of scene switches that a player
// starting at the spawn point can never walk onto.
func (s *Scene) UnreachableSwitches(spawnX, spawnY int) []string {
	var out []string
	s.Entities.Each(func(e *obj.Entity) bool {
		t := e.Trigger
		if t == nil || !t.Kind.SwitchesScene() {
			return true
		}
		if s.Route(spawnX, spawnY, t.Box) == nil {
			out = append(out, t.Owner)
		}
		return true
	})
	return out
}

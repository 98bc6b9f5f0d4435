package scene

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/zuul/common"
	"github.com/milk9111/zuul/levels"
	"github.com/milk9111/zuul/obj"
)

const defaultMazeCell = 64

// populateMaze adds one collidable wall per cell of the maze table. Each wall
// is drawn with a variant picked by rng, so the layout is fixed and only the
// look changes between seeds.
func populateMaze(sc *Scene, m *levels.Maze, rng *rand.Rand) {
	size := m.CellSize
	if size <= 0 {
		size = defaultMazeCell
	}
	for i, c := range m.Cells {
		wall := obj.NewEntity(MazeWallName(i), pickVariant(m.Variants, rng), common.NewRect(c.X, c.Y, size, size))
		sc.Entities.Add(wall.WithCollision())
	}
}

// MazeWallName is the registry name of the i-th maze wall.
func MazeWallName(i int) string {
	return fmt.Sprintf("maze_wall_%03d", i)
}

func pickVariant(variants []string, rng *rand.Rand) string {
	switch {
	case len(variants) == 0:
		return ""
	case len(variants) == 1 || rng == nil:
		return variants[0]
	}
	return variants[rng.Intn(len(variants))]
}

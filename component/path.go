package component

// Cell is a position on a walk grid.
type Cell struct {
	X int
	Y int
}

// Grid is a 4-connected walk grid of W by H cells. Blocked reports cells
// that cannot be entered; a nil Blocked blocks nothing.
type Grid struct {
	W, H    int
	Blocked func(Cell) bool
}

func (g Grid) contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.W && c.Y < g.H
}

func (g Grid) open(c Cell) bool {
	return g.contains(c) && (g.Blocked == nil || !g.Blocked(c))
}

// FindPath runs A* from start to the first cell accepted by goal. estimate
// must never overestimate the remaining steps. The search gives up after
// maxNodes expansions and returns nil; it also returns nil when start is
// blocked or no goal cell can be reached.
func (g Grid) FindPath(start Cell, goal func(Cell) bool, estimate func(Cell) int, maxNodes int) []Cell {
	if g.W <= 0 || g.H <= 0 || !g.open(start) {
		return nil
	}
	if goal(start) {
		return []Cell{start}
	}
	if estimate == nil {
		estimate = func(Cell) int { return 0 }
	}

	index := func(c Cell) int { return c.Y*g.W + c.X }

	open := []Cell{start}
	inOpen := map[int]bool{index(start): true}
	from := make(map[int]Cell, 128)
	cost := map[int]int{index(start): 0}
	score := map[int]int{index(start): estimate(start)}

	for expanded := 0; len(open) > 0 && expanded < maxNodes; expanded++ {
		best := 0
		for i, c := range open {
			if score[index(c)] < score[index(open[best])] {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, index(cur))

		if goal(cur) {
			return walkBack(from, start, cur, index)
		}

		for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := Cell{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.open(next) {
				continue
			}
			i := index(next)
			c := cost[index(cur)] + 1
			if prev, seen := cost[i]; seen && c >= prev {
				continue
			}
			from[i] = cur
			cost[i] = c
			score[i] = c + estimate(next)
			if !inOpen[i] {
				open = append(open, next)
				inOpen[i] = true
			}
		}
	}
	return nil
}

func walkBack(from map[int]Cell, start, end Cell, index func(Cell) int) []Cell {
	path := []Cell{end}
	for cur := end; cur != start; {
		prev, ok := from[index(cur)]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

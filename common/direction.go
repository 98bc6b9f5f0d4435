package common

import "strconv"

// Direction is a facing in degrees, clockwise from up. Only the four cardinal
// values and Any are meaningful; any other value is kept as-is and never
// matches a facing.
type Direction int

const (
	Up    Direction = 0
	Right Direction = 90
	Down  Direction = 180
	Left  Direction = 270

	// Any is the wildcard accepted by directional triggers.
	Any Direction = -1
)

// Cardinal reports whether d is one of Up, Right, Down or Left.
func (d Direction) Cardinal() bool {
	switch d {
	case Up, Right, Down, Left:
		return true
	}
	return false
}

// Valid reports whether d is cardinal or the wildcard.
func (d Direction) Valid() bool {
	return d == Any || d.Cardinal()
}

// Accepts reports whether a trigger requiring d fires for the given facing.
func (d Direction) Accepts(facing Direction) bool {
	if d == Any {
		return facing.Cardinal()
	}
	return d.Cardinal() && d == facing
}

// Opposite returns the reverse cardinal direction. Non-cardinal values are
// returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Delta returns the unit step for the direction in screen space (y grows
// downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Horizontal reports whether d travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Any:
		return "any"
	}
	return strconv.Itoa(int(d))
}

// ParseDirection accepts "up", "right", "down", "left", "any" or a number of
// degrees. Unknown numbers are returned verbatim.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "north":
		return Up, nil
	case "right", "east":
		return Right, nil
	case "down", "south":
		return Down, nil
	case "left", "west":
		return Left, nil
	case "any", "*":
		return Any, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return Direction(n), nil
}

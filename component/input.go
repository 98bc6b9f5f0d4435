package component

// Input is the sampled input for one logic tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Slot is the 1-based inventory slot key pressed this tick, 0 for none.
	Slot int
	// Drop drops the selected item in front of the player.
	Drop bool
	// Start leaves the intro.
	Start bool
}

// Moving reports whether any direction is held.
func (in Input) Moving() bool {
	return in.Up || in.Down || in.Left || in.Right
}

package common

// Playfield and HUD dimensions in pixels. The HUD strip sits below the
// playfield.
const (
	BaseWidth  = 960
	BaseHeight = 540
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

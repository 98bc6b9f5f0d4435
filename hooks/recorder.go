package hooks

import (
	"fmt"

	"github.com/milk9111/zuul/common"
)

// Recorder implements Renderer and Audio by recording each call as a short
// string such as "loop:game_song" or "static:bush@50,75".
type Recorder struct {
	Calls []string
}

func (r *Recorder) DrawStatic(sprite string, at common.Rect) {
	r.Calls = append(r.Calls, fmt.Sprintf("static:%s@%d,%d", sprite, at.X, at.Y))
}

func (r *Recorder) DrawAnimationFrame(sprite string, frame int, at common.Rect) {
	r.Calls = append(r.Calls, fmt.Sprintf("frame:%s#%d@%d,%d", sprite, frame, at.X, at.Y))
}

func (r *Recorder) PlayLoop(track string, _ float64) {
	r.Calls = append(r.Calls, "loop:"+track)
}

func (r *Recorder) PlayOnce(sound string) {
	r.Calls = append(r.Calls, "once:"+sound)
}

func (r *Recorder) StopAll() {
	r.Calls = append(r.Calls, "stop")
}

// Count returns how many recorded calls equal call.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Calls = nil
}

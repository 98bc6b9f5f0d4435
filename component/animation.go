package component

// Animation is a frame counter for a spritesheet drawn by the renderer. It
// knows nothing about images; the renderer maps (sprite, frame) to pixels.
type Animation struct {
	FrameCount int
	// TicksPerFrame is how many logic ticks each frame is held for.
	TicksPerFrame int
	Loop          bool

	current  int
	tick     int
	playing  bool
	once     bool
	finished bool
}

// NewAnimation creates an animation. Looping animations start playing when
// autoplay is set; one-shot animations are started with PlayOnce.
func NewAnimation(frameCount, ticksPerFrame int, loop, autoplay bool) *Animation {
	if frameCount <= 0 {
		frameCount = 1
	}
	if ticksPerFrame <= 0 {
		ticksPerFrame = 1
	}
	return &Animation{
		FrameCount:    frameCount,
		TicksPerFrame: ticksPerFrame,
		Loop:          loop,
		playing:       autoplay,
	}
}

// Update advances the animation by one logic tick.
func (a *Animation) Update() {
	if a == nil || !a.playing {
		return
	}
	if a.FrameCount <= 1 {
		if a.once {
			a.finish()
		}
		return
	}
	a.tick++
	if a.tick < a.TicksPerFrame {
		return
	}
	a.tick = 0
	a.current++
	if a.current < a.FrameCount {
		if a.once && a.current == a.FrameCount-1 {
			a.finish()
		}
		return
	}
	if a.Loop && !a.once {
		a.current = 0
		return
	}
	a.current = a.FrameCount - 1
	a.finish()
}

func (a *Animation) finish() {
	a.playing = false
	a.finished = true
	a.once = false
}

// Play starts or resumes the animation from its current frame.
func (a *Animation) Play() {
	if a == nil {
		return
	}
	a.playing = true
}

// PlayOnce plays from the first frame and stops on the last one.
func (a *Animation) PlayOnce() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
	a.once = true
	a.finished = false
	a.playing = true
}

// Stop freezes the animation on its current frame.
func (a *Animation) Stop() {
	if a == nil {
		return
	}
	a.playing = false
}

// Reset rewinds to the first frame and clears the finished flag.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
	a.once = false
	a.finished = false
	a.playing = a.Loop && a.playing
}

// CopyState takes over the playback position of from. The frame is clamped
// to a's frame count.
func (a *Animation) CopyState(from *Animation) {
	if a == nil || from == nil {
		return
	}
	a.current = min(from.current, a.FrameCount-1)
	a.tick = min(from.tick, a.TicksPerFrame-1)
	a.playing = from.playing
	a.once = from.once
	a.finished = from.finished
}

func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.current
}

func (a *Animation) Playing() bool {
	return a != nil && a.playing
}

// Finished reports whether a one-shot play has reached its last frame.
func (a *Animation) Finished() bool {
	return a != nil && a.finished
}

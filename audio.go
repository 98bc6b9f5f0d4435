package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/zuul/assets"
)

// speaker plays the embedded wav file a palette entry names. Names without
// a file are ignored.
type speaker struct {
	ctx     *audio.Context
	palette assets.Palette
	players map[string]*audio.Player
	log     *slog.Logger

	loop       string
	loopVolume float64
}

func newSpeaker(palette assets.Palette, log *slog.Logger) *speaker {
	return &speaker{
		ctx:     audio.NewContext(assets.SampleRate),
		palette: palette,
		players: make(map[string]*audio.Player),
		log:     log,
	}
}

func (s *speaker) player(name string) *audio.Player {
	if p, ok := s.players[name]; ok {
		return p
	}
	var p *audio.Player
	if file := s.palette.Lookup(name).Audio; file != "" && assets.Exists(file) {
		var err error
		p, err = assets.LoadAudioPlayer(s.ctx, file)
		if err != nil {
			s.log.Warn("audio unavailable", "name", name, "file", file, "error", err)
			p = nil
		}
	}
	s.players[name] = p
	return p
}

func (s *speaker) PlayLoop(track string, volume float64) {
	s.loop = ""
	p := s.player(track)
	if p == nil {
		return
	}
	s.loop = track
	s.loopVolume = volume
	p.SetVolume(volume)
	_ = p.Rewind()
	p.Play()
}

func (s *speaker) PlayOnce(sound string) {
	p := s.player(sound)
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (s *speaker) StopAll() {
	for _, p := range s.players {
		if p != nil {
			p.Pause()
		}
	}
	s.loop = ""
}

// Update restarts the looping track once it runs out.
func (s *speaker) Update() {
	if s.loop == "" {
		return
	}
	p := s.players[s.loop]
	if p == nil || p.IsPlaying() {
		return
	}
	_ = p.Rewind()
	p.SetVolume(s.loopVolume)
	p.Play()
}

package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeTone     = 880
	chimeDuration = 30 * time.Millisecond
)

// chime plays a short sine tick through the default audio device.
type chime struct {
	rate beep.SampleRate
}

func newChime() (*chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chime{rate: chimeRate}, nil
}

// play is a no-op on a nil chime.
func (c *chime) play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(c.rate, chimeTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(chimeDuration), sine))
}

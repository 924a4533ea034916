package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const toneRate = beep.SampleRate(44100)

// Tone plays a short sine through the speaker for each bounce cue.
type Tone struct {
	sine     beep.Streamer
	duration int
}

func NewTone(hz int) (*Tone, error) {
	if err := speaker.Init(toneRate, toneRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	sine, err := generators.SineTone(toneRate, float64(hz))
	if err != nil {
		speaker.Close()
		return nil, err
	}
	return &Tone{sine: sine, duration: toneRate.N(30 * time.Millisecond)}, nil
}

func (t *Tone) Play() {
	speaker.Play(beep.Take(t.duration, t.sine))
}

func (t *Tone) Close() {
	speaker.Close()
}

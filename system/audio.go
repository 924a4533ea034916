package system

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue is a short sound played on a bounce.
type Cue interface {
	Play()
}

// AudioSystem plays the bounce cue after steps that bounced a pair, at most
// once every Cooldown frames.
type AudioSystem struct {
	cue      Cue
	Cooldown int
	wait     int
}

func NewAudioSystem(cue Cue) *AudioSystem {
	if cue == nil {
		return nil
	}
	return &AudioSystem{cue: cue, Cooldown: 4}
}

func (a *AudioSystem) Update(w *World) {
	if a == nil || w == nil || w.Arena == nil || w.Paused {
		return
	}
	if a.wait > 0 {
		a.wait--
		return
	}
	if w.Arena.LastBounces() == 0 {
		return
	}
	a.cue.Play()
	a.wait = a.Cooldown
}

// ClickCue is an ebiten audio player holding a synthesized click.
type ClickCue struct {
	player *audio.Player
	volume float64
}

// NewClickCue synthesizes a click on ctx.
func NewClickCue(ctx *audio.Context, hz, volume float64) *ClickCue {
	return &ClickCue{
		player: ctx.NewPlayerFromBytes(clickPCM(ctx.SampleRate(), hz, 0.03)),
		volume: volume,
	}
}

func (c *ClickCue) Play() {
	if c == nil || c.player == nil {
		return
	}
	c.player.SetVolume(c.volume)
	if err := c.player.Rewind(); err != nil {
		return
	}
	c.player.Play()
}

// clickPCM renders a decaying sine as 16-bit little endian stereo.
func clickPCM(sampleRate int, hz, seconds float64) []byte {
	n := int(math.Round(float64(sampleRate) * seconds))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*hz*t) * env * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

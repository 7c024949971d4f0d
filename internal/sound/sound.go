// Package sound synthesizes the capture feedback sounds: a shutter click and
// a focus-lock beep. Streamers are generated on the fly, no sample assets.
package sound

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays UI feedback sounds. When disabled (or when the speaker fails
// to initialize) every call is a silent no-op.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker once. Initialization failure degrades to
// a silent player rather than an error.
func NewPlayer(enabled bool) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		log.Printf("speaker init failed, sounds disabled: %v", err)
		return &Player{}
	}
	return &Player{enabled: true}
}

// Shutter plays the two-part shutter click.
func (p *Player) Shutter() {
	p.play(beep.Seq(
		tone(1600, 18*time.Millisecond, 0.5),
		tone(900, 30*time.Millisecond, 0.35),
	))
}

// Focus plays the focus-lock beep.
func (p *Player) Focus() {
	p.play(tone(880, 60*time.Millisecond, 0.25))
}

func (p *Player) play(s beep.Streamer) {
	if !p.enabled {
		return
	}
	speaker.Play(s)
}

// tone returns a sine burst with a linear decay envelope.
func tone(freq float64, dur time.Duration, vol float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0
	step := freq / float64(sampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*step*float64(pos)) * vol * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

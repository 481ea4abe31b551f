package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// chime plays a short tone whenever the theme flips.
type chime struct {
	rate beep.SampleRate
}

func newChime() (*chime, error) {
	rate := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &chime{rate: rate}, nil
}

func (c *chime) play(t field.Theme) {
	freq := config.ChimeDarkHz
	if t == field.Light {
		freq = config.ChimeLightHz
	}
	speaker.Play(tone(c.rate, freq, config.ChimeDurationMs*time.Millisecond))
}

// tone is a sine at freq that fades out linearly over d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(rate)) * env * config.ChimeVolume
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}

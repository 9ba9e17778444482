// internal/sound/cues.go
package sound

import (
	"time"

	"github.com/gopxl/beep"

	"go-slingshot/internal/utils"
)

// Cue is a named sound effect.
type Cue int

const (
	CueLaunch Cue = iota
	CueHit
	CueDestroy
	CueSpecial
	CueLevelComplete
	cueCount
)

// Cues lists every cue.
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueHit:
		return "hit"
	case CueDestroy:
		return "destroy"
	case CueSpecial:
		return "special"
	case CueLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// Duration is how long a cue plays.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueLaunch:
		return 250 * time.Millisecond
	case CueHit:
		return 80 * time.Millisecond
	case CueDestroy:
		return 300 * time.Millisecond
	case CueSpecial:
		return 200 * time.Millisecond
	case CueLevelComplete:
		return 600 * time.Millisecond
	}
	return 0
}

// NewCueStreamer synthesizes cue at rate, scaled by volume.
func NewCueStreamer(c Cue, rate beep.SampleRate, volume float64, rng *utils.PRNGService) beep.Streamer {
	var s beep.Streamer
	d := c.Duration()
	switch c {
	case CueLaunch:
		s = beep.Mix(
			newVolume(tone(180, 620, d, WaveSaw, rate, rng), 0.5),
			newVolume(tone(0, 0, d, WaveNoise, rate, rng), 0.2),
		)
	case CueHit:
		s = tone(140, 90, d, WaveSquare, rate, rng)
	case CueDestroy:
		s = beep.Mix(
			newVolume(tone(0, 0, d, WaveNoise, rate, rng), 0.6),
			newVolume(tone(110, 40, d, WaveSine, rate, rng), 0.6),
		)
	case CueSpecial:
		s = tone(660, 1320, d, WaveSine, rate, rng)
	case CueLevelComplete:
		note := d / 3
		s = beep.Seq(
			tone(523.25, 523.25, note, WaveSquare, rate, rng),
			tone(659.25, 659.25, note, WaveSquare, rate, rng),
			tone(783.99, 783.99, note, WaveSquare, rate, rng),
		)
	default:
		return nil
	}
	return newVolume(beep.Take(rate.N(d), s), volume)
}

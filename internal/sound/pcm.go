// internal/sound/pcm.go
package sound

import (
	"github.com/gopxl/beep"
)

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer, rate beep.SampleRate) []byte {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

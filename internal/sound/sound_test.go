package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"go-slingshot/internal/event"
	"go-slingshot/internal/utils"
)

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	rng := utils.NewPRNGService(1)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, wave, rate, rng)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("Wave %d: expected 100 samples, got %d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Errorf("Wave %d sample %d out of range: %f", wave, i, samples[i][0])
			}
		}
	}
}

func TestOscillatorStopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSine, rate, nil)
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	if n != 50 {
		t.Errorf("Expected 50 samples, got %d", n)
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

func TestRenderCueLength(t *testing.T) {
	rng := utils.NewPRNGService(1)
	for _, c := range Cues() {
		data := Render(NewCueStreamer(c, SampleRate, 0.5, rng), SampleRate)
		want := SampleRate.N(c.Duration()) * 4
		if len(data) != want {
			t.Errorf("Cue %v: expected %d bytes, got %d", c, want, len(data))
		}
	}
}

func TestPlayerWithoutContextIsSilent(t *testing.T) {
	p := NewPlayer(nil, 0.5, 1, nil)
	for _, c := range Cues() {
		if len(p.PCM(c)) == 0 {
			t.Errorf("Cue %v was not rendered", c)
		}
	}
	p.OnEvent(event.Event{Type: event.BirdLaunched})
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Expected muted player")
	}
}

func TestCueForEvents(t *testing.T) {
	for _, typ := range []event.EventType{event.BirdLaunched, event.BlockHit, event.BlockDestroyed, event.SpecialUsed, event.LevelCompleted} {
		if _, ok := CueFor(typ); !ok {
			t.Errorf("Expected a cue for %s", typ)
		}
	}
	if _, ok := CueFor(event.BirdSpent); ok {
		t.Error("BirdSpent has no cue")
	}
}

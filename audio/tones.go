package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
)

// Note is one tone inside a cue, starting Offset after the cue begins
type Note struct {
	Freq     float64
	Offset   time.Duration
	Duration time.Duration
	Wave     WaveType
	Volume   float64
}

// Cue is a short sequence of overlapping notes
type Cue []Note

// Length is the time until the last note ends
func (c Cue) Length() time.Duration {
	var end time.Duration
	for _, n := range c {
		end = max(end, n.Offset+n.Duration)
	}
	return end
}

type oscillator struct {
	freq     float64
	phase    float64
	wave     WaveType
	rate     beep.SampleRate
	position int
	duration int
}

// NewOscillator streams a triangle or saw wave for duration. Sine notes go
// through generators.SineTone instead.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		wave:     wave,
		rate:     rate,
		duration: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay ramps up over attack then falls exponentially to 0.001 at the end,
// the same shape as a linear-then-exponential gain ramp
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func NewDecay(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		total:    max(1, rate.N(duration)),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if rem := d.total - d.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if d.position < d.attack {
			vol = float64(d.position) / float64(d.attack)
		} else {
			span := float64(d.total - d.attack)
			progress := float64(d.position-d.attack) / span
			vol = math.Pow(0.001, progress)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func renderNote(n Note, rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if n.Wave == WaveSine {
		sine, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			src = NewOscillator(n.Freq, n.Duration, WaveSine, rate)
		} else {
			src = beep.Take(rate.N(n.Duration), sine)
		}
	} else {
		src = NewOscillator(n.Freq, n.Duration, n.Wave, rate)
	}

	shaped := newVolume(NewDecay(src, n.Duration, 10*time.Millisecond, rate), n.Volume)
	if n.Offset <= 0 {
		return shaped
	}
	return beep.Seq(beep.Silence(rate.N(n.Offset)), shaped)
}

// Render mixes a cue into one finite stream
func Render(c Cue, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(c))
	for _, n := range c {
		parts = append(parts, renderNote(n, rate))
	}
	return beep.Mix(parts...)
}

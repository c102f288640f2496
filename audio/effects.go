package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone whose frequency may glide linearly
type oscillator struct {
	from, to float64
	phase    float64
	length   int
	pos      int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant frequency tone
func NewOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates a tone gliding from one frequency to another over d
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{from: from, to: to, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; effects.Volume works in log2 steps so 0 maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Build returns a fresh streamer for cue at the given master volume
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	d := c.Duration()

	var s beep.Streamer
	switch c {
	case CueFire:
		s = NewEnvelope(NewSweep(1200, 400, d, WaveSquare, rate), d, 2*time.Millisecond, 30*time.Millisecond, rate)
		volume *= 0.35
	case CueHit:
		tone := NewEnvelope(NewOscillator(140, d, WaveSaw, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate)
		crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 120*time.Millisecond, rate)
		s = beep.Mix(newVolume(tone, 0.6), newVolume(crack, 0.4))
	case CueFall:
		s = NewEnvelope(NewSweep(700, 90, d, WaveSine, rate), d, 10*time.Millisecond, 200*time.Millisecond, rate)
		volume *= 0.5
	case CueLand:
		thud := NewEnvelope(NewSweep(90, 40, d, WaveSine, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
		dust := NewEnvelope(NewOscillator(0, d/3, WaveNoise, rate), d/3, time.Millisecond, 80*time.Millisecond, rate)
		s = beep.Mix(newVolume(thud, 0.8), newVolume(dust, 0.2))
	default:
		return nil
	}
	return newVolume(s, volume)
}

package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency slides linearly from
// startFreq to endFreq over its duration.
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewSweep creates an oscillator that glides between two frequencies.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(int64(startFreq*1000) + int64(duration))),
	}
}

// NewOscillator creates a constant-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with the given attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream by a linear gain.
// math.Log2(0) is -Inf, so zero gain is mapped to a silent stream.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

// Effect durations.
const (
	laserDuration     = 150 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	damageDuration    = 350 * time.Millisecond
)

// NewEffect synthesizes the streamer for a cue at the given gain.
func NewEffect(s Sound, rate beep.SampleRate, gain float64) beep.Streamer {
	var src beep.Streamer
	switch s {
	case SoundLaser:
		osc := NewSweep(1400, 500, laserDuration, WaveSquare, rate)
		src = NewEnvelope(osc, laserDuration, 5*time.Millisecond, 90*time.Millisecond, rate)
	case SoundExplosion:
		osc := NewOscillator(0, explosionDuration, WaveNoise, rate)
		src = NewEnvelope(osc, explosionDuration, 10*time.Millisecond, 380*time.Millisecond, rate)
	case SoundDamage:
		osc := NewSweep(220, 60, damageDuration, WaveSaw, rate)
		src = NewEnvelope(osc, damageDuration, 5*time.Millisecond, 200*time.Millisecond, rate)
	default:
		return nil
	}
	return withVolume(src, gain)
}

// musicLoop is an endless arpeggio used as background music.
type musicLoop struct {
	rate     beep.SampleRate
	notes    []float64
	noteLen  int
	position int
	phase    float64
}

// NewMusic returns an infinite background tune.
func NewMusic(rate beep.SampleRate, gain float64) beep.Streamer {
	return withVolume(&musicLoop{
		rate:    rate,
		notes:   []float64{110, 164.81, 220, 261.63, 220, 164.81, 146.83, 196},
		noteLen: rate.N(250 * time.Millisecond),
	}, gain)
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (m.position / m.noteLen) % len(m.notes)
		inNote := float64(m.position%m.noteLen) / float64(m.noteLen)

		// Soft pluck: each note decays over its slot.
		val := 0.3 * math.Sin(2*math.Pi*m.phase) * (1 - inNote)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.notes[note] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }

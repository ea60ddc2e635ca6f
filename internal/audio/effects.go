package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator streams a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		shape:    shape,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a logarithmic volume stage.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect builders

// newShootSound is a short square-wave blip for gunfire
func newShootSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const dur = 70 * time.Millisecond
	osc := newOscillator(1240, dur, waveSquare, rate)
	shaped := newEnvelope(osc, dur, 2*time.Millisecond, 50*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}

// newExplosionSound is a noise burst with a long release
func newExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const dur = 350 * time.Millisecond
	noise := newOscillator(0, dur, waveNoise, rate)
	shaped := newEnvelope(noise, dur, 5*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, vol*0.6)
}

// newPlayerHitSound is a low descending saw buzz
func newPlayerHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const dur = 450 * time.Millisecond
	low := newOscillator(110, dur, waveSaw, rate)
	lowShaped := newEnvelope(low, dur, 5*time.Millisecond, 350*time.Millisecond, rate)
	sub := newOscillator(55, dur, waveSine, rate)
	subShaped := newEnvelope(sub, dur, 5*time.Millisecond, 350*time.Millisecond, rate)
	mixed := beep.Mix(
		newVolume(lowShaped, 0.7),
		newVolume(subShaped, 0.4),
	)
	return newVolume(mixed, vol)
}

// newUpgradeSound is a rising two-note chime for the double-gun pickup
func newUpgradeSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const note = 110 * time.Millisecond
	n1 := newOscillator(659.26, note, waveSquare, rate)
	n1Shaped := newEnvelope(n1, note, 3*time.Millisecond, 60*time.Millisecond, rate)
	n2 := newOscillator(987.77, note, waveSquare, rate)
	n2Shaped := newEnvelope(n2, note, 3*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.5)
}

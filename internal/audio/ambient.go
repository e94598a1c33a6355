// Package audio plays the synthesized ambient hum. No sound assets
// are shipped; the streamer generates its samples.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	humFrequency = 55.0
	humAmplitude = 0.18
	// lfoFrequency slowly modulates the hum so it does not read as a
	// test tone.
	lfoFrequency = 0.1
)

// Ambient owns the speaker and the looping background hum.
type Ambient struct {
	mu          sync.Mutex
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewAmbient creates an ambient player with the given linear volume
// in [0, 1].
func NewAmbient(linearVolume float64) *Ambient {
	ctrl := &beep.Ctrl{Streamer: newHumStreamer(), Paused: true}
	return &Ambient{
		ctrl:   ctrl,
		volume: volumeFor(ctrl, linearVolume),
	}
}

// Start initializes the speaker and begins streaming. The hum stays
// paused until SetPlaying(true).
func (ambient *Ambient) Start() error {
	ambient.mu.Lock()
	defer ambient.mu.Unlock()

	if ambient.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(ambient.volume)
	ambient.initialized = true
	return nil
}

// SetPlaying pauses or resumes the hum.
func (ambient *Ambient) SetPlaying(playing bool) {
	ambient.mu.Lock()
	defer ambient.mu.Unlock()

	if !ambient.initialized {
		return
	}
	speaker.Lock()
	ambient.ctrl.Paused = !playing
	speaker.Unlock()
}

// Close silences the player. The speaker itself has no close; pausing
// the streamer is the teardown beep supports.
func (ambient *Ambient) Close() {
	ambient.mu.Lock()
	defer ambient.mu.Unlock()

	if !ambient.initialized {
		return
	}
	speaker.Lock()
	ambient.ctrl.Paused = true
	speaker.Unlock()
	ambient.initialized = false
}

func volumeFor(streamer beep.Streamer, linearVolume float64) *effects.Volume {
	if linearVolume < 0 {
		linearVolume = 0
	}
	if linearVolume > 1 {
		linearVolume = 1
	}
	volume := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Silent:   linearVolume == 0,
	}
	if linearVolume > 0 {
		// Base**Volume is the gain multiplier, so log2 recovers the
		// requested linear volume.
		volume.Volume = math.Log2(linearVolume)
	}
	return volume
}

// humStreamer is an endless low sine with a slow amplitude wobble.
type humStreamer struct {
	phase    float64
	lfoPhase float64
}

func newHumStreamer() *humStreamer {
	return &humStreamer{}
}

func (hum *humStreamer) Stream(samples [][2]float64) (int, bool) {
	phaseInc := humFrequency / float64(sampleRate)
	lfoInc := lfoFrequency / float64(sampleRate)

	for i := range samples {
		wobble := 0.75 + 0.25*math.Sin(2*math.Pi*hum.lfoPhase)
		value := humAmplitude * wobble * math.Sin(2*math.Pi*hum.phase)
		samples[i][0] = value
		samples[i][1] = value

		hum.phase += phaseInc
		if hum.phase >= 1 {
			hum.phase -= 1
		}
		hum.lfoPhase += lfoInc
		if hum.lfoPhase >= 1 {
			hum.lfoPhase -= 1
		}
	}
	return len(samples), true
}

func (hum *humStreamer) Err() error { return nil }

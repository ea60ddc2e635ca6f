package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Manager owns the speaker and mixes one-shot synthesized effects into it.
// All Play methods are safe to call before Initialize or after a failed
// Initialize; they just do nothing, so the game runs fine without audio.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewManager creates a silent manager; call Initialize to open the speaker
func NewManager(sampleRate int, masterVolume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(sampleRate),
		volume: masterVolume,
	}
}

// Initialize opens the audio device and starts the mixer
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences the mixer and releases the device
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	speaker.Close()
	m.initialized = false
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayShoot plays the gunfire blip
func (m *Manager) PlayShoot() {
	m.play(newShootSound(m.rate, m.volume))
}

// PlayExplosion plays the destruction noise burst
func (m *Manager) PlayExplosion() {
	m.play(newExplosionSound(m.rate, m.volume))
}

// PlayPlayerHit plays the low buzz for a lost life
func (m *Manager) PlayPlayerHit() {
	m.play(newPlayerHitSound(m.rate, m.volume))
}

// PlayUpgrade plays the double-gun chime
func (m *Manager) PlayUpgrade() {
	m.play(newUpgradeSound(m.rate, m.volume))
}

// internal/audio/audio.go
package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager plays short synthesized cues. Audio is best-effort: if the
// speaker fails to initialize, every Play call is a no-op.
type Manager struct {
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a silent manager; call Initialize to enable output.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer.
func (m *Manager) Initialize() error {
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches everything.
func (m *Manager) Cleanup() {
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// tone mixes in a sine tone of the given frequency and duration.
func (m *Manager) tone(freq float64, d time.Duration) {
	if !m.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		slog.Debug("audio tone failed", "freq", freq, "error", err)
		return
	}
	speaker.Lock()
	m.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}

// PlayPlace is the cue for a tower being placed.
func (m *Manager) PlayPlace() {
	m.tone(440, 80*time.Millisecond)
}

// PlayCombine is the cue for two towers fusing into a hybrid.
func (m *Manager) PlayCombine() {
	m.tone(523, 90*time.Millisecond)
	m.tone(784, 140*time.Millisecond)
}

// PlayError is the cue for a rejected action.
func (m *Manager) PlayError() {
	m.tone(196, 120*time.Millisecond)
}

// Package audio plays the looping ambience and short sound effects.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// silentDB is the gain used for a zero volume.
const silentDB = -100

// Manager owns the speaker. The zero volume levels mute; a Manager that
// failed to Init ignores every call.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	ambience     beep.StreamSeekCloser
	ambienceCtrl *beep.Ctrl
	ambienceVol  *effects.Volume
	ambiencePath string

	masterVolume   float64
	ambienceVolume float64
	sfxVolume      float64

	// Effects are buffered once and replayed from memory.
	effects  map[string]*beep.Buffer
	sfxMixer *beep.Mixer
}

// New creates a manager with full master and effect volume and the
// ambience at 0.7.
func New() *Manager {
	return &Manager{
		masterVolume:   1,
		ambienceVolume: 0.7,
		sfxVolume:      1,
		effects:        make(map[string]*beep.Buffer),
		sfxMixer:       &beep.Mixer{},
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops all sound and releases the ambience stream.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopAmbience()
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume, clamped to [0, 1].
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.applyAmbienceVolume()
}

// SetAmbienceVolume sets the ambience volume, clamped to [0, 1].
func (m *Manager) SetAmbienceVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ambienceVolume = clamp(vol, 0, 1)
	m.applyAmbienceVolume()
}

// SetSFXVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolume = clamp(vol, 0, 1)
}

// Volumes returns the master, ambience and effect volumes.
func (m *Manager) Volumes() (master, ambience, sfx float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume, m.ambienceVolume, m.sfxVolume
}

func (m *Manager) applyAmbienceVolume() {
	if m.ambienceVol == nil {
		return
	}
	vol := m.masterVolume * m.ambienceVolume
	m.ambienceVol.Silent = vol <= 0
	m.ambienceVol.Volume = volumeToDB(vol)
}

// volumeToDB maps a linear volume in [0, 1] to the decibel gain that
// effects.Volume expects with Base 10 (0 dB is unchanged).
func volumeToDB(vol float64) float64 {
	if vol <= 0 {
		return silentDB
	}
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// decodeFile opens a WAV file for streaming.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, format, nil
}

// PlayAmbience loops the WAV file at path until StopAmbience.
func (m *Manager) PlayAmbience(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}
	m.stopAmbience()

	s, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	looped, err := beep.Loop2(s)
	if err != nil {
		s.Close()
		return fmt.Errorf("loop %s: %w", path, err)
	}

	m.ambience = s
	m.ambiencePath = path
	m.ambienceCtrl = &beep.Ctrl{Streamer: m.resample(format, looped)}
	m.ambienceVol = &effects.Volume{Streamer: m.ambienceCtrl, Base: 10}
	m.applyAmbienceVolume()

	speaker.Play(m.ambienceVol)
	return nil
}

// StopAmbience stops the ambience loop.
func (m *Manager) StopAmbience() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopAmbience()
}

func (m *Manager) stopAmbience() {
	if m.ambienceCtrl != nil {
		speaker.Lock()
		m.ambienceCtrl.Paused = true
		m.ambienceCtrl.Streamer = nil
		speaker.Unlock()
	}
	if m.ambience != nil {
		m.ambience.Close()
	}
	m.ambience = nil
	m.ambienceCtrl = nil
	m.ambienceVol = nil
	m.ambiencePath = ""
}

// AmbiencePath returns the file looping now, or "".
func (m *Manager) AmbiencePath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ambiencePath
}

// LoadEffect decodes the WAV file at path into memory under name.
func (m *Manager) LoadEffect(name, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}
	s, format, err := decodeFile(path)
	if err != nil {
		return err
	}
	defer s.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: m.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(m.resample(format, s))
	m.effects[name] = buf
	return nil
}

// PlayEffect starts a loaded effect. Unknown names are ignored so
// optional sounds can be left out.
func (m *Manager) PlayEffect(name string) {
	m.mu.RLock()
	buf, ok := m.effects[name]
	vol := m.masterVolume * m.sfxVolume
	initialized := m.initialized
	m.mu.RUnlock()

	if !initialized || !ok {
		return
	}
	effect := buf.Streamer(0, buf.Len())
	speaker.Lock()
	m.sfxMixer.Add(&effects.Volume{
		Streamer: effect,
		Base:     10,
		Volume:   volumeToDB(vol),
		Silent:   vol <= 0,
	})
	speaker.Unlock()
}

func (m *Manager) resample(format beep.Format, s beep.Streamer) beep.Streamer {
	if format.SampleRate == m.sampleRate {
		return s
	}
	return beep.Resample(4, format.SampleRate, m.sampleRate, s)
}

// Package audio plays short synthesized cues for game events through the beep speaker
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/parameter"
)

// SoundManager mixes cues into a single speaker stream
// Until Initialize succeeds every Play is a no-op, so the game runs without a sound device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	played      [cueCount]uint64
	log         zerolog.Logger
}

// NewSoundManager creates a silent manager at the given master volume (0..1)
func NewSoundManager(volume float64, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker and starts the mixer, repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", int(sm.rate)).Msg("speaker ready")
	return nil
}

// Cleanup drops pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play implements engine.SoundSink
func (sm *SoundManager) Play(n event.Notification) {
	if c, ok := CueFor(n.Type); ok {
		sm.PlayCue(c)
	}
}

// PlayCue mixes one cue into the output
func (sm *SoundManager) PlayCue(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c >= cueCount {
		return
	}
	s := Build(c, sm.rate, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[c]++
}

// Played returns how many times c was mixed in
func (sm *SoundManager) Played(c Cue) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if c >= cueCount {
		return 0
	}
	return sm.played[c]
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

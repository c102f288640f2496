package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipejesus/chill-out/event"
)

// drain streams s to the end and returns the sample count, failing on out of range samples
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			require.LessOrEqual(t, buf[j][0], 1.0)
			require.GreaterOrEqual(t, buf[j][0], -1.0)
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		in   event.EventType
		want Cue
		ok   bool
	}{
		{event.EventPlayerFire, CueFire, true},
		{event.EventEnemyHit, CueHit, true},
		{event.EventEnemyDown, CueFall, true},
		{event.EventEnemyGrounded, CueLand, true},
		{event.EventLevelCleared, 0, false},
		{event.EventType("door_open"), 0, false},
	}

	for _, tt := range tests {
		got, ok := CueFor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in.String())
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestBuildCuesEnd(t *testing.T) {
	rate := beep.SampleRate(44100)

	for c := CueFire; c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := Build(c, rate, 1.0)
			require.NotNil(t, s)
			total := drain(t, s)
			assert.InDelta(t, rate.N(c.Duration()), total, 1024)
		})
	}

	assert.Nil(t, Build(cueCount, rate, 1.0))
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	assert.Equal(t, rate.N(100*time.Millisecond), drain(t, osc))
	assert.NoError(t, osc.Err())
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	require.Equal(t, 100, n)

	assert.Zero(t, buf[0][0])
	assert.InDelta(t, 0.5, buf[5][0], 1e-9)
	assert.InDelta(t, 1.0, buf[50][0], 1e-9)
	assert.InDelta(t, 0.1, buf[99][0], 1e-9)
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := Build(CueFire, rate, 0)

	buf := make([][2]float64, 32)
	n, _ := s.Stream(buf)
	require.Positive(t, n)
	for i := 0; i < n; i++ {
		assert.Zero(t, buf[i][0])
	}
}

func TestSoundManagerGracefulWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(0.8, zerolog.Nop())

	assert.NotPanics(t, func() {
		sm.Play(event.Notification{Type: event.EventPlayerFire})
		sm.PlayCue(CueLand)
		sm.PlayCue(cueCount)
		sm.Cleanup()
	})
	assert.False(t, sm.Initialized())
	assert.Zero(t, sm.Played(CueFire))
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5, zerolog.Nop())

	// No audio device in most CI environments
	if err := sm.Initialize(); err != nil {
		t.Skipf("speaker unavailable: %v", err)
	}
	defer sm.Cleanup()

	require.NoError(t, sm.Initialize(), "second call is a no-op")
	sm.Play(event.Notification{Type: event.EventEnemyHit})
	sm.Play(event.Notification{Type: event.EventLevelCleared})
	assert.Equal(t, uint64(1), sm.Played(CueHit))
}

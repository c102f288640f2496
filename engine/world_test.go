package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/pipejesus/chill-out/enemy"
	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/input"
	"github.com/pipejesus/chill-out/status"
	"github.com/pipejesus/chill-out/vmath"
)

type fakeRenderer struct {
	frames []Snapshot
	err    error
}

func (r *fakeRenderer) Render(s Snapshot) error {
	r.frames = append(r.frames, s)
	return r.err
}

type fakeSound struct{ played []event.EventType }

func (s *fakeSound) Play(n event.Notification) { s.played = append(s.played, n.Type) }

type fakeRecorder struct {
	frames []int64
	types  []event.EventType
	err    error
}

func (r *fakeRecorder) Record(frame int64, n event.Notification) error {
	r.frames = append(r.frames, frame)
	r.types = append(r.types, n.Type)
	return r.err
}

type harness struct {
	w     *World
	src   *input.ScriptedSource
	clock *MockTimeProvider
	rend  *fakeRenderer
	sound *fakeSound
	rec   *fakeRecorder
	ts    float64
}

func newHarness(t *testing.T, enemies int) *harness {
	t.Helper()
	stats, err := status.New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	h := &harness{
		src:   input.NewScriptedSource(64),
		clock: NewMockTimeProvider(time.Unix(1000, 0)),
		rend:  &fakeRenderer{},
		sound: &fakeSound{},
		rec:   &fakeRecorder{},
	}

	opts := DefaultOptions(h.src)
	opts.Level.Enemies = enemies
	opts.Level.Maze.Seed = 3
	opts.Renderer = h.rend
	opts.Sound = h.sound
	opts.Recorder = h.rec
	opts.Stats = stats
	opts.Time = h.clock
	opts.Log = zerolog.Nop()

	h.w, err = NewWorld(opts)
	require.NoError(t, err)
	t.Cleanup(h.w.Close)
	return h
}

// fire queues a press and release of the fire button for the next tick
func (h *harness) fire() {
	h.ts++
	h.src.Press(input.ButtonFire, h.ts)
	h.src.Release(input.ButtonFire, h.ts)
}

func (h *harness) tick(t *testing.T) {
	t.Helper()
	require.NoError(t, h.w.Tick(context.Background()))
}

func TestNewWorldRequiresSource(t *testing.T) {
	_, err := NewWorld(Options{})
	assert.Error(t, err)
}

func TestInitialView(t *testing.T) {
	h := newHarness(t, 3)

	s := h.w.Snapshot()
	assert.Equal(t, int64(0), s.Frame)
	assert.True(t, vmath.V3FNear(vmath.V3F(0, 2, -30), s.Player, 1e-9))
	assert.Len(t, s.Enemies, 3)
	assert.Equal(t, 3, s.Remaining)
	assert.NotNil(t, s.Maze)

	// Looking toward the orbit center
	d := h.w.Aim().Direction
	assert.Greater(t, d.Z, 0.9)
	assert.Greater(t, d.Y, 0.0)
}

func TestTickRendersAndAdvances(t *testing.T) {
	h := newHarness(t, 3)

	h.clock.Advance(16 * time.Millisecond)
	h.tick(t)

	require.Len(t, h.rend.frames, 1)
	s := h.rend.frames[0]
	assert.Equal(t, int64(1), s.Frame)
	assert.InDelta(t, 0.016, s.DT, 1e-9)
	assert.InDelta(t, 0.016, s.Elapsed, 1e-9)
	assert.Equal(t, 1.0, h.w.Stats().Gauge(status.FrameNumber))
}

func TestFireFlowsToSinksInSameFrame(t *testing.T) {
	h := newHarness(t, 3)

	h.fire()
	h.tick(t)

	assert.Equal(t, []event.EventType{event.EventPlayerFire}, h.rec.types)
	assert.Equal(t, []int64{1}, h.rec.frames)
	assert.Equal(t, []event.EventType{event.EventPlayerFire}, h.sound.played)
	assert.Equal(t, int64(1), h.w.Stats().Count(status.PlayerFires))
	assert.Equal(t, "player_fire", h.rend.frames[0].LastEvent)
	assert.Equal(t, int64(1), h.rend.frames[0].Counters[status.PlayerFires])
}

func TestShootDownClearsLevel(t *testing.T) {
	h := newHarness(t, 1)

	// Time stands still, so the enemy holds its spawn point (4, 8, 0)
	h.w.Camera().LookAt(vmath.V3F(4, 8, 0))
	for i := 0; i < 3; i++ {
		h.fire()
		h.tick(t)
	}

	e := h.w.Level().Enemies()[0]
	require.Equal(t, enemy.StateFalling, e.State())
	assert.Equal(t, int64(2), h.w.Stats().Count(status.EnemyHits))
	assert.Equal(t, int64(1), h.w.Stats().Count(status.EnemyDown))

	for i := 0; i < 200 && !h.w.Snapshot().Cleared; i++ {
		h.tick(t)
	}

	s := h.w.Snapshot()
	require.True(t, s.Cleared)
	assert.Equal(t, 0, s.Remaining)
	assert.Equal(t, enemy.StateGrounded, s.Enemies[0].State)
	assert.Equal(t, int64(1), h.w.Stats().Count(status.EnemyGrounded))
	assert.Equal(t, event.EventLevelCleared, h.rec.types[len(h.rec.types)-1])
	assert.Contains(t, h.sound.played, event.EventEnemyGrounded)
}

func TestLookAndQuit(t *testing.T) {
	h := newHarness(t, 0)
	pitch := h.w.Camera().Pitch()

	h.src.Send(input.Event{Kind: input.KindLook, Pitch: 0.04})
	h.tick(t)
	assert.InDelta(t, pitch+0.04, h.w.Camera().Pitch(), 1e-9)
	assert.False(t, h.w.Quit())

	h.src.Send(input.Event{Kind: input.KindQuit})
	h.tick(t)
	assert.True(t, h.w.Quit())
}

func TestMovementFollowsHeldButton(t *testing.T) {
	h := newHarness(t, 0)
	h.w.Camera().LookAt(vmath.V3F(-100, 2, -30))
	start := h.w.Snapshot().Player

	// Facing -X along the open start row
	h.src.Press(input.ButtonUp, 1)
	h.tick(t)
	h.tick(t)

	s := h.w.Snapshot()
	assert.True(t, s.Moving)
	assert.InDelta(t, start.X-0.5, s.Player.X, 1e-6)
	assert.NotEqual(t, start.Y, s.Player.Y, "bob while walking")
}

func TestRecorderErrorsDoNotAbort(t *testing.T) {
	h := newHarness(t, 0)
	h.rec.err = errors.New("disk full")

	h.fire()
	assert.NoError(t, h.w.Tick(context.Background()))
}

func TestRenderErrorStopsRun(t *testing.T) {
	h := newHarness(t, 0)
	h.rend.err = errors.New("screen gone")

	err := h.w.Run(context.Background(), 1000)
	assert.ErrorIs(t, err, h.rend.err)
}

func TestRunStopsOnQuit(t *testing.T) {
	h := newHarness(t, 0)
	h.src.Send(input.Event{Kind: input.KindQuit})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.w.Run(ctx, 1000))
	assert.True(t, h.w.Quit())
	assert.NoError(t, ctx.Err())
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, h.w.Run(ctx, 60))
}

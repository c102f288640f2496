// Package engine runs the frame loop: it owns the queues, the actors and the
// collaborators, and advances them in a fixed order once per frame
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pipejesus/chill-out/camera"
	"github.com/pipejesus/chill-out/command"
	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/input"
	"github.com/pipejesus/chill-out/level"
	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/player"
	"github.com/pipejesus/chill-out/status"
	"github.com/pipejesus/chill-out/vmath"
)

// Options wires a World; only Source is required
type Options struct {
	Player player.Config
	Level  level.Config

	Source   input.Source
	Renderer Renderer
	Sound    SoundSink
	Recorder Recorder
	Stats    *status.Stats
	Time     TimeProvider

	Log zerolog.Logger
}

// DefaultOptions returns the default scene reading from src
func DefaultOptions(src input.Source) Options {
	return Options{
		Player: player.DefaultConfig(),
		Level:  level.DefaultConfig(),
		Source: src,
		Log:    zerolog.Nop(),
	}
}

// World owns one game instance
// Thread-Safety: Tick, Run and every accessor belong to the frame loop goroutine
type World struct {
	opts  Options
	log   zerolog.Logger
	clock *Clock
	stats *status.Stats

	in     *input.State
	cmds   *command.Queue
	events *event.EventQueue
	cam    *camera.Camera
	player *player.Controller
	level  *level.Level

	// Last seen drop totals, counters receive the difference
	seenInput, seenCmd, seenEvent uint64

	quit bool
	last Snapshot
}

// NewWorld builds the scene: camera at the player's eyes looking at the orbit center,
// player, level and maze collision
func NewWorld(opts Options) (*World, error) {
	if opts.Source == nil {
		return nil, errors.New("engine: nil input source")
	}
	if opts.Time == nil {
		opts.Time = NewMonotonicTimeProvider()
	}
	if opts.Stats == nil {
		s, err := status.New(nil)
		if err != nil {
			return nil, fmt.Errorf("engine: stats: %w", err)
		}
		opts.Stats = s
	}

	w := &World{
		opts:   opts,
		log:    opts.Log.With().Str("component", "world").Logger(),
		stats:  opts.Stats,
		in:     input.NewState(),
		cmds:   command.NewQueue(),
		events: event.NewEventQueue(),
	}

	w.cam = camera.New(opts.Player.Eyes)
	w.cam.LookAt(opts.Level.Enemy.Center)
	w.player = player.New(opts.Player, w.in, w.cmds, w.cam)

	lvl, err := level.New(opts.Level, w.player, w.events, opts.Log)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	w.level = lvl
	w.cam.SetCollider(lvl.Maze())

	w.clock = NewClock(opts.Time)
	w.last = w.snapshot(0, 0)
	return w, nil
}

// Tick runs one frame: input, player input, level, player, event drain, render
func (w *World) Tick(ctx context.Context) error {
	dt, elapsed := w.clock.Tick()

	w.in.Pump(w.opts.Source, w.handleOther)
	w.player.HandleInput()
	w.level.Update(dt, elapsed)
	w.player.Update(dt, elapsed)

	frame := w.clock.Frame()
	w.events.Drain(func(n event.Notification) {
		n.Frame = frame
		w.dispatch(ctx, n)
	})
	w.countDrops(ctx)

	w.stats.SetGauge(status.FrameNumber, float64(frame))
	w.stats.SetGauge(status.FrameDelta, dt)

	w.last = w.snapshot(dt, elapsed)
	if w.opts.Renderer != nil {
		if err := w.opts.Renderer.Render(w.last); err != nil {
			return fmt.Errorf("render frame %d: %w", frame, err)
		}
	}
	return nil
}

// Run ticks at rate frames per second until quit, ctx cancellation, or a render error
func (w *World) Run(ctx context.Context, rate int) error {
	interval := parameter.FrameUpdateInterval
	if rate > 0 {
		interval = time.Second / time.Duration(rate)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", interval).Msg("frame loop started")
	defer func() {
		w.log.Info().Int64("frames", w.clock.Frame()).Msg("frame loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.Tick(ctx); err != nil {
				return err
			}
			if w.quit {
				return nil
			}
		}
	}
}

// handleOther applies non-button input events
func (w *World) handleOther(ev input.Event) {
	switch ev.Kind {
	case input.KindLook:
		w.cam.Turn(ev.Yaw, ev.Pitch)
	case input.KindQuit:
		w.log.Info().Msg("quit requested")
		w.quit = true
	}
}

// dispatch fans one drained notification out to metrics, sound and the journal
func (w *World) dispatch(ctx context.Context, n event.Notification) {
	switch n.Type {
	case event.EventPlayerFire:
		w.stats.Add(ctx, status.PlayerFires, 1)
	case event.EventEnemyHit:
		w.stats.Add(ctx, status.EnemyHits, 1)
	case event.EventEnemyDown:
		w.stats.Add(ctx, status.EnemyDown, 1)
	case event.EventEnemyGrounded:
		w.stats.Add(ctx, status.EnemyGrounded, 1)
	case event.EventLevelCleared:
		w.log.Info().Int64("frame", n.Frame).Msg("level cleared")
	}
	w.stats.SetLabel(status.LastEvent, n.Type.String())

	if w.opts.Sound != nil {
		w.opts.Sound.Play(n)
	}
	if w.opts.Recorder != nil {
		if err := w.opts.Recorder.Record(n.Frame, n); err != nil {
			w.log.Warn().Err(err).Stringer("type", n.Type).Msg("journal record failed")
		}
	}

	w.log.Debug().
		Int64("frame", n.Frame).
		Stringer("type", n.Type).
		Str("origin", n.Origin).
		Msg("event")
}

func (w *World) countDrops(ctx context.Context) {
	if d := w.in.Dropped(); d != w.seenInput {
		w.stats.Add(ctx, status.InputDropped, int64(d-w.seenInput))
		w.seenInput = d
	}
	if d := w.cmds.Dropped(); d != w.seenCmd {
		w.stats.Add(ctx, status.CommandDropped, int64(d-w.seenCmd))
		w.seenCmd = d
	}
	if d := w.events.Dropped(); d != w.seenEvent {
		w.stats.Add(ctx, status.EventDropped, int64(d-w.seenEvent))
		w.log.Warn().Uint64("total", d).Msg("event queue overflow")
		w.seenEvent = d
	}
}

func (w *World) snapshot(dt, elapsed float64) Snapshot {
	enemies := w.level.Enemies()
	views := make([]EnemyView, 0, len(enemies))
	for _, e := range enemies {
		views = append(views, EnemyView{
			Name:      e.Name(),
			Position:  e.Position(),
			Rotation:  e.Rotation(),
			State:     e.State(),
			Health:    e.Health(),
			MaxHealth: e.MaxHealth(),
			OnTarget:  e.IsOnTarget(),
		})
	}

	return Snapshot{
		Frame:     w.clock.Frame(),
		DT:        dt,
		Elapsed:   elapsed,
		Player:    w.cam.Position(),
		Yaw:       w.cam.Yaw(),
		Pitch:     w.cam.Pitch(),
		Moving:    w.player.Moving(),
		Enemies:   views,
		Remaining: w.level.Remaining(),
		Cleared:   w.level.Cleared(),
		Maze:      w.level.Maze(),
		Counters:  w.stats.Counters(),
		LastEvent: w.stats.Label(status.LastEvent),
	}
}

// Close releases the level's subscriptions
func (w *World) Close() {
	w.level.Close()
}

// Snapshot returns the state after the latest tick
func (w *World) Snapshot() Snapshot { return w.last }

func (w *World) Quit() bool                 { return w.quit }
func (w *World) Player() *player.Controller { return w.player }
func (w *World) Level() *level.Level        { return w.level }
func (w *World) Camera() *camera.Camera     { return w.cam }
func (w *World) Stats() *status.Stats       { return w.stats }

// Aim returns the current fire ray
func (w *World) Aim() vmath.Ray { return w.cam.Ray() }

package input

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/pipejesus/chill-out/core"
	"github.com/pipejesus/chill-out/parameter"
)

// TerminalSource turns tcell key events into button edges
// Terminals report presses and auto-repeat only, so a release is synthesized once a held
// key has not been seen for the hold timeout
// Repeats of an already held key refresh its hold instead of producing a new press
type TerminalSource struct {
	screen      tcell.Screen
	keys        *KeyTable
	holdTimeout time.Duration
	log         zerolog.Logger

	out   chan Event
	start time.Time

	mu       sync.Mutex
	lastSeen map[ButtonID]time.Time

	dropped  atomic.Uint64
	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewTerminalSource creates a source reading from an initialized screen
// A nil key table uses DefaultKeyTable, a non-positive timeout uses parameter.InputHoldTimeout
func NewTerminalSource(screen tcell.Screen, keys *KeyTable, holdTimeout time.Duration, log zerolog.Logger) *TerminalSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if holdTimeout <= 0 {
		holdTimeout = parameter.InputHoldTimeout
	}
	return &TerminalSource{
		screen:      screen,
		keys:        keys,
		holdTimeout: holdTimeout,
		log:         log.With().Str("component", "input").Logger(),
		out:         make(chan Event, parameter.InputEventBuffer),
		lastSeen:    make(map[ButtonID]time.Time),
		stop:        make(chan struct{}),
	}
}

// Events implements Source
func (t *TerminalSource) Events() <-chan Event {
	return t.out
}

// Dropped returns events lost to a full channel
func (t *TerminalSource) Dropped() uint64 {
	return t.dropped.Load()
}

// Start launches the poll and release sweep goroutines
func (t *TerminalSource) Start() {
	t.start = time.Now()
	t.wg.Add(2)
	core.Go(t.pollLoop)
	core.Go(t.sweepLoop)
}

// Stop terminates both goroutines and waits for them
// The screen must still be alive so the poll loop can be woken
func (t *TerminalSource) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	t.wg.Wait()
}

func (t *TerminalSource) pollLoop() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		select {
		case <-t.stop:
			return
		default:
		}
		if ev == nil {
			// Screen finalized
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.handleKey(ev, time.Now())
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *TerminalSource) sweepLoop() {
	defer t.wg.Done()
	ticker := time.NewTicker(parameter.InputSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case now := <-ticker.C:
			t.sweep(now)
		}
	}
}

func (t *TerminalSource) handleKey(ev *tcell.EventKey, now time.Time) {
	b, ok := t.keys.Lookup(ev)
	if !ok {
		return
	}

	switch b.Kind {
	case ActionQuit:
		t.send(Event{Kind: KindQuit, Time: t.stamp(now)})
	case ActionLook:
		t.send(Event{Kind: KindLook, Time: t.stamp(now), Yaw: b.Yaw, Pitch: b.Pitch})
	case ActionButton:
		t.mu.Lock()
		_, held := t.lastSeen[b.Button]
		t.lastSeen[b.Button] = now
		t.mu.Unlock()
		if !held {
			t.send(Event{Kind: KindPress, Button: b.Button, Time: t.stamp(now)})
		}
	}
}

// sweep releases buttons whose key has gone quiet
func (t *TerminalSource) sweep(now time.Time) {
	var released []ButtonID
	t.mu.Lock()
	for b, seen := range t.lastSeen {
		if now.Sub(seen) >= t.holdTimeout {
			delete(t.lastSeen, b)
			released = append(released, b)
		}
	}
	t.mu.Unlock()

	for _, b := range released {
		t.send(Event{Kind: KindRelease, Button: b, Time: t.stamp(now)})
	}
}

// stamp converts wall time to milliseconds since Start
func (t *TerminalSource) stamp(now time.Time) float64 {
	return float64(now.Sub(t.start).Microseconds()) / 1000.0
}

// send never blocks; the frame loop owns the consumer side
func (t *TerminalSource) send(ev Event) {
	select {
	case t.out <- ev:
	default:
		if t.dropped.Add(1) == 1 {
			t.log.Warn().Msg("input channel full, dropping events")
		}
	}
}

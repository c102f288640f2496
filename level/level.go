// Package level builds the playable scene: the maze floor and the enemy flock, wired to
// the player through observer subscriptions
package level

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/pipejesus/chill-out/actor"
	"github.com/pipejesus/chill-out/enemy"
	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/player"
)

// Name is the origin of notifications the level creates itself
const Name = "level"

type Config struct {
	Enemies int

	// Template for every enemy; Name and InitialAngle are assigned per spawn
	Enemy enemy.Config

	Maze maze.Config
}

// DefaultConfig returns three enemies around the arena center
func DefaultConfig() Config {
	return Config{
		Enemies: parameter.EnemyCount,
		Enemy:   enemy.DefaultConfig(),
		Maze:    maze.DefaultConfig(),
	}
}

// Level is the actor owning the enemies
// It observes the player and every enemy and forwards what it hears into the world queue
type Level struct {
	cfg     Config
	maze    *maze.Maze
	enemies []*enemy.Phuck
	queue   *event.EventQueue
	log     zerolog.Logger

	subs    []*actor.Subscription
	cleared bool
}

// New spawns the enemies evenly around the orbit and subscribes them to p
// Enemies observe the player before the level so they see a shot before it is journaled
func New(cfg Config, p *player.Controller, queue *event.EventQueue, log zerolog.Logger) (*Level, error) {
	if cfg.Enemies < 0 {
		return nil, fmt.Errorf("level: negative enemy count %d", cfg.Enemies)
	}
	if queue == nil {
		return nil, fmt.Errorf("level: nil event queue")
	}

	l := &Level{
		cfg:   cfg,
		queue: queue,
		log:   log.With().Str("component", "level").Logger(),
	}
	l.maze = maze.Generate(cfg.Maze, p.Position())

	for i := 0; i < cfg.Enemies; i++ {
		ec := cfg.Enemy
		ec.Name = fmt.Sprintf("phuck-%d", i)
		ec.InitialAngle = float64(i) * (360.0 / float64(cfg.Enemies)) * math.Pi / 180

		e := enemy.New(ec)
		l.subs = append(l.subs, p.AddObserver(e), e.AddObserver(l))
		l.enemies = append(l.enemies, e)
	}
	l.subs = append(l.subs, p.AddObserver(l))

	l.log.Info().
		Int("enemies", len(l.enemies)).
		Int("path_len", len(l.maze.Path())).
		Msg("level built")
	return l, nil
}

// Update advances every enemy and reports when the last one has landed
func (l *Level) Update(dt, elapsed float64) {
	for _, e := range l.enemies {
		e.Update(dt, elapsed)
	}

	if l.cleared {
		return
	}
	for _, e := range l.enemies {
		if e.State() != enemy.StateGrounded {
			return
		}
	}
	l.cleared = true
	l.forward(event.Notification{Type: event.EventLevelCleared, Origin: Name})
}

// OnNotify queues every notification from the player and the enemies
func (l *Level) OnNotify(_ actor.Actor, n event.Notification) {
	l.forward(n)
}

func (l *Level) forward(n event.Notification) {
	if !l.queue.Push(n) {
		l.log.Debug().Stringer("type", n.Type).Str("origin", n.Origin).Msg("event queue full, notification dropped")
	}
}

// Close releases every subscription the level created
func (l *Level) Close() {
	for _, s := range l.subs {
		s.Release()
	}
	l.subs = nil
}

func (l *Level) Maze() *maze.Maze        { return l.maze }
func (l *Level) Enemies() []*enemy.Phuck { return l.enemies }
func (l *Level) Cleared() bool           { return l.cleared }

// Remaining counts enemies that have not reached the floor
func (l *Level) Remaining() int {
	n := 0
	for _, e := range l.enemies {
		if e.State() != enemy.StateGrounded {
			n++
		}
	}
	return n
}

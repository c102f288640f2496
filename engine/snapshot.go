package engine

import (
	"github.com/pipejesus/chill-out/enemy"
	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/vmath"
)

// EnemyView is the render-facing copy of one enemy
type EnemyView struct {
	Name      string
	Position  vmath.Vec3F
	Rotation  float64
	State     enemy.State
	Health    float64
	MaxHealth float64
	OnTarget  bool
}

// Snapshot is an immutable copy of the world state after a tick
type Snapshot struct {
	Frame   int64
	DT      float64
	Elapsed float64

	Player vmath.Vec3F
	Yaw    float64
	Pitch  float64
	Moving bool

	Enemies   []EnemyView
	Remaining int
	Cleared   bool

	// Shared, read only
	Maze *maze.Maze

	Counters  map[string]int64
	LastEvent string
}

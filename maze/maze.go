// Package maze lays out the walled floor the player walks through
// The grid is centered on the world origin with one cell per wall block and a round
// open arena in the middle where the enemies orbit
package maze

import (
	"math"

	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/vmath"
)

type Config struct {
	// Floor edge length in world units
	FloorSize float64

	// Edge length of one wall block, also the cell size
	CellSize float64

	// Wall block height
	WallHeight float64

	// Radius of the open arena around the origin
	ArenaRadius float64

	// 0.0 keeps a perfect maze, 1.0 opens a loop at every dead end
	Braiding float64

	// 0 picks a time based seed
	Seed int64
}

// DefaultConfig returns the 100x100 floor with 4 unit walls
func DefaultConfig() Config {
	return Config{
		FloorSize:   parameter.LevelFloorSize,
		CellSize:    parameter.LevelWallSize,
		WallHeight:  parameter.LevelWallHeight,
		ArenaRadius: parameter.LevelArenaRadius,
		Braiding:    parameter.LevelMazeBraiding,
	}
}

// Maze is an immutable wall grid mapped onto the XZ plane
// Row index grows with world Z, column index with world X
type Maze struct {
	grid       [][]bool
	rows, cols int
	cellSize   float64
	wallHeight float64

	start Point
	path  []Point
}

// Generate builds a maze whose start cell contains the world position start
// The start cell is always open and connected to the arena
func Generate(cfg Config, start vmath.Vec3F) *Maze {
	if cfg.CellSize <= 0 {
		cfg.CellSize = parameter.LevelWallSize
	}
	n := ensureOdd(int(cfg.FloorSize / cfg.CellSize))

	m := &Maze{
		grid:       make([][]bool, n),
		rows:       n,
		cols:       n,
		cellSize:   cfg.CellSize,
		wallHeight: cfg.WallHeight,
	}
	for i := range m.grid {
		m.grid[i] = make([]bool, n)
		for j := range m.grid[i] {
			m.grid[i][j] = Wall
		}
	}

	rng := newRNG(cfg.Seed)
	startCell, ok := m.CellAt(start)
	if !ok {
		startCell = Point{n / 2, 1}
	}

	carve(m.grid, startCell, rng)
	if cfg.Braiding > 0 {
		braid(m.grid, cfg.Braiding, rng)
	}
	m.carveArena(cfg.ArenaRadius)
	m.openStart(startCell)

	m.start = startCell
	m.path = solve(m.grid, startCell, m.Center())
	return m
}

// carveArena opens every cell whose center lies within radius of the origin
func (m *Maze) carveArena(radius float64) {
	if radius <= 0 {
		return
	}
	for row := 1; row < m.rows-1; row++ {
		for col := 1; col < m.cols-1; col++ {
			c := m.CellCenter(Point{col, row})
			if math.Hypot(c.X, c.Z) <= radius {
				m.grid[row][col] = Passage
			}
		}
	}
}

// openStart clears the start cell and links it to a neighboring passage if isolated
func (m *Maze) openStart(p Point) {
	m.grid[p.Y][p.X] = Passage
	if exits(m.grid, p.X, p.Y) > 0 {
		return
	}
	for _, d := range adjDirs {
		nx, ny := p.X+d.X, p.Y+d.Y
		if nx > 0 && nx < m.cols-1 && ny > 0 && ny < m.rows-1 {
			m.grid[ny][nx] = Passage
			return
		}
	}
}

// Size returns columns and rows
func (m *Maze) Size() (cols, rows int) {
	return m.cols, m.rows
}

// CellSize returns the world edge length of one cell
func (m *Maze) CellSize() float64 {
	return m.cellSize
}

// IsWall reports whether the cell is solid; cells outside the grid are solid
func (m *Maze) IsWall(p Point) bool {
	return !isPassage(m.grid, p.X, p.Y)
}

// Start returns the cell the player spawns in
func (m *Maze) Start() Point {
	return m.start
}

// Center returns the arena cell at the world origin
func (m *Maze) Center() Point {
	return Point{m.cols / 2, m.rows / 2}
}

// Path returns the shortest walk from the start cell to the arena center
func (m *Maze) Path() []Point {
	return m.path
}

// CellAt maps a world position to its cell, ok is false off the floor
func (m *Maze) CellAt(pos vmath.Vec3F) (Point, bool) {
	col := int(math.Floor(pos.X/m.cellSize + float64(m.cols/2) + 0.5))
	row := int(math.Floor(pos.Z/m.cellSize + float64(m.rows/2) + 0.5))
	p := Point{col, row}
	return p, inside(m.grid, col, row)
}

// CellCenter returns the world position of a cell's center at ground level
func (m *Maze) CellCenter(p Point) vmath.Vec3F {
	return vmath.V3F(
		float64(p.X-m.cols/2)*m.cellSize,
		0,
		float64(p.Y-m.rows/2)*m.cellSize,
	)
}

// Blocked reports whether pos is inside a wall block or off the floor
func (m *Maze) Blocked(pos vmath.Vec3F) bool {
	p, ok := m.CellAt(pos)
	if !ok {
		return true
	}
	if pos.Y >= m.wallHeight {
		return false
	}
	return m.IsWall(p)
}

// WallBoxes returns the bounding box of every wall block
func (m *Maze) WallBoxes() []vmath.AABB {
	half := m.cellSize / 2
	var boxes []vmath.AABB
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.grid[row][col] != Wall {
				continue
			}
			c := m.CellCenter(Point{col, row})
			boxes = append(boxes, vmath.AABB{
				Min: vmath.V3F(c.X-half, 0, c.Z-half),
				Max: vmath.V3F(c.X+half, m.wallHeight, c.Z+half),
			})
		}
	}
	return boxes
}

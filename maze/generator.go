package maze

import (
	"math/rand"
	"time"
)

// Cell values
const (
	Wall    = true
	Passage = false
)

// Point is a grid cell, X is the column and Y the row
type Point struct {
	X, Y int
}

var (
	stepDirs = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	adjDirs  = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// carve runs a recursive backtracker from the room nearest to start
// Rooms sit on odd coordinates; the result is a spanning tree over all rooms
func carve(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	start = nearestRoom(start, rows, cols)
	stack := []Point{start}
	grid[start.Y][start.X] = Passage

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range stepDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Outer ring stays solid
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := Point{curr.X + d.X, curr.Y + d.Y}
		grid[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens one extra wall at a fraction of dead ends, turning the tree into a graph
// Walls whose removal would leave a 2x2 open square or an isolated pillar are kept
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Wall || exits(grid, x, y) != 1 {
				continue
			}
			if rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, d := range stepDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[ny][nx] == Passage && grid[wy][wx] == Wall && safeToOpen(grid, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = Passage
			}
		}
	}
}

func exits(grid [][]bool, x, y int) int {
	n := 0
	for _, d := range adjDirs {
		if isPassage(grid, x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// safeToOpen reports whether turning (x, y) into a passage keeps the maze free of
// open squares and free-standing wall cells
func safeToOpen(grid [][]bool, x, y int) bool {
	// 2x2 open squares around (x, y)
	quads := [4][3]Point{
		{{x - 1, y - 1}, {x, y - 1}, {x - 1, y}},
		{{x, y - 1}, {x + 1, y - 1}, {x + 1, y}},
		{{x - 1, y}, {x - 1, y + 1}, {x, y + 1}},
		{{x + 1, y}, {x, y + 1}, {x + 1, y + 1}},
	}
	for _, q := range quads {
		if isPassage(grid, q[0].X, q[0].Y) && isPassage(grid, q[1].X, q[1].Y) && isPassage(grid, q[2].X, q[2].Y) {
			return false
		}
	}

	// Adjacent walls must keep at least one other wall neighbor
	for _, d := range adjDirs {
		nx, ny := x+d.X, y+d.Y
		if !inside(grid, nx, ny) || grid[ny][nx] != Wall {
			continue
		}
		links := 0
		for _, d2 := range adjDirs {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if inside(grid, ax, ay) && grid[ay][ax] == Wall {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}

// solve returns the shortest passage path from start to end, nil when unreachable
func solve(grid [][]bool, start, end Point) []Point {
	if !isPassage(grid, start.X, start.Y) || !isPassage(grid, end.X, end.Y) {
		return nil
	}

	queue := []Point{start}
	cameFrom := map[Point]Point{start: start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []Point
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range adjDirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if _, seen := cameFrom[next]; seen || !isPassage(grid, next.X, next.Y) {
				continue
			}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func inside(grid [][]bool, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0])
}

func isPassage(grid [][]bool, x, y int) bool {
	return inside(grid, x, y) && grid[y][x] == Passage
}

// nearestRoom snaps p to the closest odd interior cell
func nearestRoom(p Point, rows, cols int) Point {
	snap := func(v, n int) int {
		if v < 1 {
			return 1
		}
		if v > n-2 {
			v = n - 2
		}
		if v%2 == 0 {
			v--
		}
		return v
	}
	return Point{snap(p.X, cols), snap(p.Y, rows)}
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

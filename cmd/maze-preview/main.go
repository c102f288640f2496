package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pipejesus/chill-out/config"
	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./chill-out.toml)")
	seedFlag   = flag.Int64("seed", -1, "Override level.seed (0 = time based)")
	braidFlag  = flag.Float64("braid", -1, "Override braiding factor [0.0 - 1.0]")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-preview: %v\n", err)
		os.Exit(1)
	}

	mc := cfg.LevelConfig().Maze
	if *seedFlag >= 0 {
		mc.Seed = *seedFlag
	}
	if *braidFlag >= 0 {
		mc.Braiding = min(*braidFlag, 1.0)
	}
	start := vmath.V3F(cfg.Player.Start[0], cfg.Player.Start[1], cfg.Player.Start[2])

	startT := time.Now()
	m := maze.Generate(mc, start)
	dur := time.Since(startT)

	cols, rows := m.Size()
	fmt.Printf("Done in %v\n", dur)
	fmt.Printf("Grid Dimensions: %dx%d (cell %.1f)\n", cols, rows, m.CellSize())
	if path := m.Path(); path != nil {
		fmt.Printf("Solution Path Length: %d steps\n", len(path))
	} else {
		fmt.Println("Status: Unsolvable (Isolated Start/Center)")
	}

	draw(os.Stdout, m)
}

// draw prints S at the player start, C at the arena center and the solved route
func draw(w io.Writer, m *maze.Maze) {
	pathMap := make(map[maze.Point]bool)
	for _, p := range m.Path() {
		pathMap[p] = true
	}

	cols, rows := m.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == m.Start():
				fmt.Fprint(w, "S")
			case p == m.Center():
				fmt.Fprint(w, "C")
			case m.IsWall(p):
				fmt.Fprint(w, "█")
			case pathMap[p]:
				fmt.Fprint(w, "•")
			default:
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
}

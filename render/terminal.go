// Package render draws engine snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pipejesus/chill-out/engine"
	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/status"
	"github.com/pipejesus/chill-out/vmath"
)

const (
	// Terminal cells per maze cell horizontally, keeps the map roughly square
	cellWidth = 2

	// Map origin below the status bar
	mapX = 0
	mapY = 1

	// Aim line length in maze cells
	aimReach = 3

	healthBarWidth = 10
)

// Heading glyphs clockwise from screen up
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Terminal renders a top-down view: row index grows with world Z, column with world X
type Terminal struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Render implements engine.Renderer
func (t *Terminal) Render(s engine.Snapshot) error {
	t.screen.Fill(' ', t.base)

	t.drawStatusBar(s)
	if s.Maze != nil {
		t.drawMaze(s.Maze)
		t.drawAim(s)
		t.drawEnemies(s)
		t.drawPlayer(s)
		t.drawHealthBars(s)
	}
	if s.Cleared {
		t.drawCleared()
	}

	t.screen.Show()
	return nil
}

// drawStatusBar writes the HUD line at the top
func (t *Terminal) drawStatusBar(s engine.Snapshot) {
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}

	text := fmt.Sprintf(" F:%d  ENEMIES:%d/%d  YAW:%d°  PITCH:%d°  FIRES:%d  HITS:%d",
		s.Frame,
		s.Remaining, len(s.Enemies),
		int(math.Round(degrees(s.Yaw))),
		int(math.Round(degrees(s.Pitch))),
		s.Counters[status.PlayerFires],
		s.Counters[status.EnemyHits],
	)
	if s.LastEvent != "" {
		text += "  LAST:" + s.LastEvent
	}
	if dropped := s.Counters[status.InputDropped] + s.Counters[status.CommandDropped] + s.Counters[status.EventDropped]; dropped > 0 {
		text += fmt.Sprintf("  DROP:%d", dropped)
	}
	t.drawText(0, 0, text, style)
}

func (t *Terminal) drawMaze(m *maze.Maze) {
	cols, rows := m.Size()
	wall := t.base.Foreground(RgbWall).Background(RgbWall)
	floor := t.base.Background(RgbFloor)
	route := t.base.Foreground(RgbPath).Background(RgbFloor)

	onPath := make(map[maze.Point]bool, len(m.Path()))
	for _, p := range m.Path() {
		onPath[p] = true
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := maze.Point{X: col, Y: row}
			ch, style := ' ', floor
			switch {
			case m.IsWall(p):
				ch, style = '█', wall
			case onPath[p]:
				ch, style = '.', route
			}
			for i := 0; i < cellWidth; i++ {
				t.setCell(mapX+col*cellWidth+i, mapY+row, ch, style)
			}
		}
	}
}

// drawAim marks a short line along the heading, stopping at the first wall
func (t *Terminal) drawAim(s engine.Snapshot) {
	m := s.Maze
	style := t.base.Foreground(RgbAim).Background(RgbFloor)
	dir := vmath.V3F(-math.Sin(s.Yaw), 0, -math.Cos(s.Yaw))
	step := m.CellSize() / 2

	for i := 1; i <= aimReach*2; i++ {
		p := vmath.V3FAdd(s.Player, vmath.V3FScale(dir, step*float64(i)))
		p.Y = 0
		if m.Blocked(p) {
			return
		}
		x, y, ok := t.toScreen(m, p)
		if !ok {
			return
		}
		ch := '·'
		if i == aimReach*2 {
			ch = '+'
		}
		t.setCell(x, y, ch, style)
	}
}

func (t *Terminal) drawEnemies(s engine.Snapshot) {
	for _, e := range s.Enemies {
		x, y, ok := t.toScreen(s.Maze, e.Position)
		if !ok {
			continue
		}
		ch, color := EnemyGlyph(e.State, e.OnTarget)
		t.setCell(x, y, ch, t.base.Foreground(color).Background(RgbFloor).Bold(e.OnTarget))
	}
}

func (t *Terminal) drawPlayer(s engine.Snapshot) {
	x, y, ok := t.toScreen(s.Maze, s.Player)
	if !ok {
		return
	}
	t.setCell(x, y, HeadingGlyph(s.Yaw), t.base.Foreground(RgbPlayer).Background(RgbFloor).Bold(true))
}

// drawHealthBars lists every enemy below the map
func (t *Terminal) drawHealthBars(s engine.Snapshot) {
	_, rows := s.Maze.Size()
	y := mapY + rows + 1
	label := t.base.Foreground(RgbHUDText)

	for i, e := range s.Enemies {
		row := y + i
		ch, color := EnemyGlyph(e.State, e.OnTarget)
		t.setCell(0, row, ch, t.base.Foreground(color))
		x := t.drawText(2, row, fmt.Sprintf("%-10s %-8s ", e.Name, e.State), label)

		ratio := 0.0
		if e.MaxHealth > 0 {
			ratio = e.Health / e.MaxHealth
		}
		filled := int(math.Ceil(ratio * healthBarWidth))
		barColor := GetHealthColor(ratio)
		for j := 0; j < healthBarWidth; j++ {
			if j < filled {
				t.setCell(x+j, row, '█', t.base.Foreground(barColor))
			} else {
				t.setCell(x+j, row, '░', t.base.Foreground(RgbHealthEmpty))
			}
		}
	}
}

func (t *Terminal) drawCleared() {
	w, h := t.screen.Size()
	msg := " LEVEL CLEARED "
	x := (w - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	t.drawText(x, h/2, msg, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbCleared).Bold(true))
}

// toScreen maps a world position to a screen cell, half a maze cell per terminal column
func (t *Terminal) toScreen(m *maze.Maze, pos vmath.Vec3F) (int, int, bool) {
	cols, rows := m.Size()
	fx := pos.X/m.CellSize() + float64(cols/2) + 0.5
	fz := pos.Z/m.CellSize() + float64(rows/2) + 0.5
	col := math.Floor(fx)
	row := math.Floor(fz)
	if col < 0 || row < 0 || int(col) >= cols || int(row) >= rows {
		return 0, 0, false
	}
	sub := int((fx - col) * cellWidth)
	return mapX + int(col)*cellWidth + sub, mapY + int(row), true
}

// drawText writes s and returns the column after the last rune
func (t *Terminal) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		t.setCell(x, y, ch, style)
		x++
	}
	return x
}

func (t *Terminal) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := t.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.screen.SetContent(x, y, ch, nil, style)
}

// HeadingGlyph returns the arrow for a camera yaw, yaw 0 faces up the screen
func HeadingGlyph(yaw float64) rune {
	sx := -math.Sin(yaw)
	sy := -math.Cos(yaw)
	a := math.Atan2(sx, -sy)
	octant := int(math.Round(a/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

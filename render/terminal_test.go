package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipejesus/chill-out/enemy"
	"github.com/pipejesus/chill-out/engine"
	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/status"
	"github.com/pipejesus/chill-out/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// lines returns the shown screen contents as text rows
func lines(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	out := make([]string, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		out[y] = b.String()
	}
	return out
}

func testMaze() *maze.Maze {
	cfg := maze.DefaultConfig()
	cfg.Seed = 7
	return maze.Generate(cfg, vmath.V3F(0, 2, -30))
}

func runeAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	ch, _, style, _ := s.GetContent(x, y)
	return ch, style
}

// screenOf mirrors the cell mapping for a cell center
func screenOf(p maze.Point) (int, int) {
	return mapX + p.X*cellWidth + 1, mapY + p.Y
}

func TestRenderStatusBar(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewTerminal(screen)

	require.NoError(t, r.Render(engine.Snapshot{
		Frame:     7,
		Yaw:       math.Pi,
		Remaining: 2,
		Enemies:   make([]engine.EnemyView, 3),
		Counters: map[string]int64{
			status.PlayerFires:  4,
			status.EnemyHits:    1,
			status.InputDropped: 2,
		},
		LastEvent: "enemy_hit",
	}))

	top := lines(screen)[0]
	assert.Contains(t, top, "F:7")
	assert.Contains(t, top, "ENEMIES:2/3")
	assert.Contains(t, top, "YAW:180°")
	assert.Contains(t, top, "FIRES:4")
	assert.Contains(t, top, "HITS:1")
	assert.Contains(t, top, "LAST:enemy_hit")
	assert.Contains(t, top, "DROP:2")
}

func TestRenderMazeAndActors(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewTerminal(screen)
	m := testMaze()
	center := m.Center()

	live := center
	live.X += 2
	falling := center
	falling.X -= 2
	grounded := center
	grounded.Y += 2

	require.NoError(t, r.Render(engine.Snapshot{
		Player: m.CellCenter(m.Start()),
		Yaw:    0,
		Maze:   m,
		Enemies: []engine.EnemyView{
			{Name: "phuck-0", Position: m.CellCenter(live), State: enemy.StateLive, Health: 100, MaxHealth: 100, OnTarget: true},
			{Name: "phuck-1", Position: m.CellCenter(falling), State: enemy.StateFalling, Health: 0, MaxHealth: 100},
			{Name: "phuck-2", Position: m.CellCenter(grounded), State: enemy.StateGrounded, Health: 0, MaxHealth: 100},
		},
	}))

	x, y := screenOf(m.Start())
	ch, _ := runeAt(screen, x, y)
	assert.Equal(t, '↑', ch, "player arrow")

	x, y = screenOf(live)
	ch, style := runeAt(screen, x, y)
	assert.Equal(t, '@', ch)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbEnemyTarget, fg, "on target highlight")

	x, y = screenOf(falling)
	ch, _ = runeAt(screen, x, y)
	assert.Equal(t, 'v', ch)

	x, y = screenOf(grounded)
	ch, _ = runeAt(screen, x, y)
	assert.Equal(t, '_', ch)

	// Walls: the corner cell is always solid
	ch, _ = runeAt(screen, mapX, mapY)
	assert.Equal(t, '█', ch)
}

func TestRenderAimLine(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewTerminal(screen)
	m := testMaze()
	center := m.Center()

	require.NoError(t, r.Render(engine.Snapshot{
		Player: m.CellCenter(center),
		Yaw:    0,
		Maze:   m,
	}))

	ahead := center
	ahead.Y--
	x, y := screenOf(ahead)
	ch, _ := runeAt(screen, x, y)
	assert.Equal(t, '·', ch)
}

func TestRenderHealthBars(t *testing.T) {
	screen := newScreen(t, 100, 40)
	r := NewTerminal(screen)
	m := testMaze()
	_, rows := m.Size()

	require.NoError(t, r.Render(engine.Snapshot{
		Maze:   m,
		Player: m.CellCenter(m.Start()),
		Enemies: []engine.EnemyView{
			{Name: "phuck-0", State: enemy.StateLive, Health: 50, MaxHealth: 100},
			{Name: "phuck-1", State: enemy.StateGrounded, Health: 0, MaxHealth: 100},
		},
	}))

	out := lines(screen)
	first := out[mapY+rows+1]
	assert.Contains(t, first, "phuck-0")
	assert.Contains(t, first, "live")
	assert.Equal(t, 5, strings.Count(first, "█"))
	assert.Equal(t, 5, strings.Count(first, "░"))

	second := out[mapY+rows+2]
	assert.Contains(t, second, "grounded")
	assert.Equal(t, 0, strings.Count(second, "█"))
}

func TestRenderCleared(t *testing.T) {
	screen := newScreen(t, 80, 30)
	r := NewTerminal(screen)

	require.NoError(t, r.Render(engine.Snapshot{Cleared: true}))
	assert.Contains(t, lines(screen)[15], "LEVEL CLEARED")
}

func TestRenderTinyScreen(t *testing.T) {
	screen := newScreen(t, 8, 3)
	r := NewTerminal(screen)
	m := testMaze()

	assert.NotPanics(t, func() {
		_ = r.Render(engine.Snapshot{
			Maze:    m,
			Cleared: true,
			Enemies: []engine.EnemyView{{Name: "phuck-0", MaxHealth: 100}},
		})
	})
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '→'},
		{math.Pi / 4, '↖'},
		{-math.Pi / 4, '↗'},
		{3 * math.Pi / 4, '↙'},
		{2 * math.Pi, '↑'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(HeadingGlyph(tt.yaw)), "yaw %.2f", tt.yaw)
	}
}

func TestEnemyGlyphGroundedIgnoresTarget(t *testing.T) {
	ch, color := EnemyGlyph(enemy.StateGrounded, true)
	assert.Equal(t, '_', ch)
	assert.Equal(t, RgbEnemyGrounded, color)
}

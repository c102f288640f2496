package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipejesus/chill-out/maze"
	"github.com/pipejesus/chill-out/vmath"
)

func TestDraw(t *testing.T) {
	cfg := maze.DefaultConfig()
	cfg.Seed = 3
	m := maze.Generate(cfg, vmath.V3F(0, 0, -30))

	var buf bytes.Buffer
	draw(&buf, m)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	cols, rows := m.Size()
	require.Len(t, lines, rows)
	for _, l := range lines {
		assert.Equal(t, cols, len([]rune(l)))
	}

	start := m.Start()
	center := m.Center()
	assert.Equal(t, 'S', []rune(lines[start.Y])[start.X])
	assert.Equal(t, 'C', []rune(lines[center.Y])[center.X])
	assert.Equal(t, 1, strings.Count(buf.String(), "S"))

	// Every route cell between the endpoints is marked
	assert.Equal(t, len(m.Path())-2, strings.Count(buf.String(), "•"))
}

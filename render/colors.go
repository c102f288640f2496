package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pipejesus/chill-out/enemy"
)

// RGB color definitions for the top-down view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(40, 42, 54)    // Slightly lifted floor
	RgbWall       = tcell.NewRGBColor(90, 96, 130)   // Muted slate
	RgbPath       = tcell.NewRGBColor(55, 58, 75)    // Solved route hint
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAim        = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbEnemyLive     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbEnemyFalling  = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbEnemyGrounded = tcell.NewRGBColor(120, 120, 120) // Gray
	RgbEnemyTarget   = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow

	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDText     = tcell.NewRGBColor(255, 255, 255) // White
	RgbHealthFull  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbHealthEmpty = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbCleared     = tcell.NewRGBColor(144, 238, 144) // Light grass green
)

// EnemyGlyph returns the glyph and color for an enemy state
func EnemyGlyph(s enemy.State, onTarget bool) (rune, tcell.Color) {
	var ch rune
	var color tcell.Color
	switch s {
	case enemy.StateLive:
		ch, color = '@', RgbEnemyLive
	case enemy.StateFalling:
		ch, color = 'v', RgbEnemyFalling
	default:
		ch, color = '_', RgbEnemyGrounded
	}
	if onTarget && s != enemy.StateGrounded {
		color = RgbEnemyTarget
	}
	return ch, color
}

// GetHealthColor returns the bar color for a health ratio in [0,1]
func GetHealthColor(ratio float64) tcell.Color {
	if ratio <= 0 {
		return RgbHealthEmpty
	}
	if ratio > 1 {
		ratio = 1
	}
	// Red to green
	r := int32(255 * (1 - ratio))
	g := int32(200 * ratio)
	return tcell.NewRGBColor(r, g, 0)
}

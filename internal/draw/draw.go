// Package draw rasterizes game shapes into terminal half-block cells and
// presents them through an ANSI writer or a tcell screen.
package draw

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Game palette.
var (
	Background = Color{R: 0x3a, G: 0x2e, B: 0x3f}
	Foreground = Color{R: 240, G: 240, B: 240}
)

// fgSequence returns the ANSI true-color foreground escape.
func (c Color) fgSequence() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// bgSequence returns the ANSI true-color background escape.
func (c Color) bgSequence() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// TCell converts the color for use in a tcell style.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// text is a string overlay placed over the canvas after rasterization.
type text struct {
	value    string
	col, row int // 1-based terminal position of the first rune
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

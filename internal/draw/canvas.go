package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/tomz197/meteors/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game code draws in logical coordinates; the canvas scales them
// to the terminal cells it covers.
type Canvas struct {
	termWidth      int    // Terminal columns covered by the canvas
	termHeight     int    // Terminal rows covered by the canvas
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets of the canvas when it is letterboxed.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewCanvas creates a canvas that scales a logicalWidth×logicalHeight play
// field into a termWidth×termHeight block of terminal cells.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// FitArea returns the largest block of cells inside a termWidth×termHeight
// terminal that keeps the logical aspect ratio, and the offsets that center
// it. A cell is two sub-pixels tall and one wide.
func FitArea(termWidth, termHeight int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	width = termWidth
	height = int(float64(width) * logicalHeight / logicalWidth / 2)
	if height > termHeight {
		height = termHeight
		width = int(float64(height*2) * logicalWidth / logicalHeight)
	}
	width = max(width, 1)
	height = max(height, 1)
	return width, height, max((termWidth-width)/2, 0), max((termHeight-height)/2, 0)
}

// Fit resizes and centers the canvas for the given terminal size.
func (c *Canvas) Fit(termWidth, termHeight int) {
	w, h, col, row := FitArea(termWidth, termHeight, c.logicalWidth, c.logicalHeight)
	c.Resize(w, h)
	c.offsetCol = col
	c.offsetRow = row
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Offset returns the 0-based terminal column and row of the canvas origin.
func (c *Canvas) Offset() (col, row int) {
	return c.offsetCol, c.offsetRow
}

// TerminalWidth returns the number of columns the canvas covers.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the number of rows the canvas covers.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel using logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon. If filled is true, the interior is
// filled using a scanline pass before the outline is drawn.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawShape draws a shape's outline centered at pos, rotated by rotation
// degrees counter-clockwise.
func (c *Canvas) DrawShape(shape *physics.Shape, pos physics.Vector2, rotation float64) {
	if shape == nil || len(shape.Outline) == 0 {
		return
	}
	points := c.borrowPoints(len(shape.Outline))
	for i, p := range shape.Outline {
		if rotation != 0 {
			p = p.Rotate(rotation)
		}
		points[i] = Point{X: pos.X + p.X, Y: pos.Y + p.Y}
	}
	c.DrawPolygon(points, shape.Filled)
}

// fillPolygon fills a polygon in sub-pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = math.Min(minY, scaled[i].Y)
		maxY = math.Max(maxY, scaled[i].Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	n := len(scaled)
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xEnd := int(math.Floor(intersections[i+1]))
			for x := int(math.Ceil(intersections[i])); x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once.
// Large single writes make slow terminals tear mid-frame.
const maxChunkSize = 1400

// Cells calls fn for every terminal cell with at least one lit sub-pixel.
// col and row are 0-based and relative to the canvas origin.
func (c *Canvas) Cells(fn func(col, row int, ch rune)) {
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top && bottom:
				fn(col, row, BlockFull)
			case top:
				fn(col, row, BlockUpperHalf)
			case bottom:
				fn(col, row, BlockLowerHalf)
			}
		}
	}
}

// Render writes the lit cells at absolute terminal positions.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	c.Cells(func(col, row int, ch rune) {
		fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
	})

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// Border calls fn for each cell of the frame around a letterboxed canvas,
// in absolute 0-based terminal coordinates. Sides are only drawn where the
// offset leaves room for them.
func (c *Canvas) Border(fn func(col, row int, ch rune)) {
	hasSides := c.offsetCol >= 1
	hasEnds := c.offsetRow >= 1

	left := c.offsetCol - 1
	right := c.offsetCol + c.termWidth
	top := c.offsetRow - 1
	bottom := c.offsetRow + c.termHeight

	if hasEnds {
		for col := c.offsetCol; col < right; col++ {
			fn(col, top, '─')
			fn(col, bottom, '─')
		}
	}
	if hasSides {
		for row := c.offsetRow; row < bottom; row++ {
			fn(left, row, '│')
			fn(right, row, '│')
		}
	}
	if hasEnds && hasSides {
		fn(left, top, '┌')
		fn(right, top, '┐')
		fn(left, bottom, '└')
		fn(right, bottom, '┘')
	}
}

// TextPosition returns the 1-based terminal position of the first rune of s
// so that s is centered on the logical point (x, y).
func (c *Canvas) TextPosition(s string, x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	col = px + 1 + c.offsetCol - len([]rune(s))/2
	row = py/2 + 1 + c.offsetRow
	return max(col, 1), max(row, 1)
}

// borrowPoints returns a reusable slice of Points valid until the next call.
func (c *Canvas) borrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

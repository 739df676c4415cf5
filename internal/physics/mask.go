package physics

import (
	"math"
	"sort"
)

// Mask is a per-pixel opacity bitmap used for shape-accurate collisions.
// Pixel (0,0) is the top-left corner of the owning shape's bounding box.
type Mask struct {
	width  int
	height int
	bits   []bool // Flat slice: [y * width + x]
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Set marks a pixel opaque. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x >= 0 && x < m.width && y >= 0 && y < m.height {
		m.bits[y*m.width+x] = true
	}
}

// Get reports whether a pixel is opaque. Out-of-range pixels are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any opaque pixel of m coincides with an opaque pixel
// of other, where other's top-left corner sits at (dx, dy) in m's pixel space.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, dx+other.width)
	y1 := min(m.height, dy+other.height)

	for y := y0; y < y1; y++ {
		row := y * m.width
		orow := (y - dy) * other.width
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && other.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}

// FillPolygon rasterizes a closed polygon given in mask pixel coordinates
// using a scanline fill. A pixel is set when its center lies inside.
func (m *Mask) FillPolygon(points []Vector2) {
	if len(points) < 3 {
		return
	}

	var intersections []float64
	n := len(points)
	for y := 0; y < m.height; y++ {
		scanY := float64(y) + 0.5 // Sample at pixel center

		intersections = intersections[:0]
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				m.Set(x, y)
			}
		}
	}
}

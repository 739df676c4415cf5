// Package physics provides the geometry the game simulates with: vectors,
// bounding boxes, per-pixel opacity masks and broad-phase lookup.
package physics

import "math"

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter returns the w×h box centered on c.
func RectFromCenter(c Vector2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the box.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MidTop returns the center of the top edge.
func (r Rect) MidTop() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y}
}

// MidBottom returns the center of the bottom edge.
func (r Rect) MidBottom() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H}
}

// Intersects reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Collide reports whether shape a centered at ac overlaps shape b centered at bc.
// The bounding boxes are compared first; the opacity masks decide the rest.
func Collide(a *Shape, ac Vector2, b *Shape, bc Vector2) bool {
	if a == nil || b == nil {
		return false
	}
	ra := a.Bounds(ac)
	rb := b.Bounds(bc)
	if !ra.Intersects(rb) {
		return false
	}
	if a.Mask == nil || b.Mask == nil {
		return true
	}
	dx := int(math.Round(rb.X - ra.X))
	dy := int(math.Round(rb.Y - ra.Y))
	return a.Mask.Overlap(b.Mask, dx, dy)
}

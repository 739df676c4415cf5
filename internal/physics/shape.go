package physics

import "math"

// Shape describes how an entity looks and what it collides with.
// Outline points are relative to the shape center and drive rendering; Mask
// is the unrotated opacity bitmap covering the Width×Height bounding box.
type Shape struct {
	Width   float64
	Height  float64
	Outline []Vector2
	Filled  bool
	Mask    *Mask
}

// NewShape builds a shape from an outline centered on the origin. The bounding
// box is the smallest integer-sized box centered on the origin that contains
// every outline point, and the mask is the rasterized polygon.
func NewShape(outline []Vector2, filled bool) *Shape {
	var halfW, halfH float64
	for _, p := range outline {
		halfW = math.Max(halfW, math.Abs(p.X))
		halfH = math.Max(halfH, math.Abs(p.Y))
	}
	w := math.Ceil(halfW * 2)
	h := math.Ceil(halfH * 2)

	mask := NewMask(int(w), int(h))
	local := make([]Vector2, len(outline))
	for i, p := range outline {
		local[i] = Vector2{X: p.X + w/2, Y: p.Y + h/2}
	}
	mask.FillPolygon(local)

	return &Shape{
		Width:   w,
		Height:  h,
		Outline: outline,
		Filled:  filled,
		Mask:    mask,
	}
}

// Bounds returns the shape's bounding box when centered at c.
func (s *Shape) Bounds(c Vector2) Rect {
	return RectFromCenter(c, s.Width, s.Height)
}

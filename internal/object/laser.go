package object

import (
	"github.com/tomz197/meteors/internal/physics"
)

// LaserSpeed is how fast lasers travel up the screen, in pixels per second.
const LaserSpeed = 400.0

// NewLaser creates a laser whose bottom edge is centered on midBottom.
func NewLaser(midBottom physics.Vector2, shape *physics.Shape) *Entity {
	center := midBottom
	if shape != nil {
		center.Y -= shape.Height / 2
	}
	e := newEntity(KindLaser, center, shape)
	e.Direction = physics.Vec(0, -1)
	e.Speed = LaserSpeed
	return e
}

// updateLaser moves the laser up and removes it once it leaves the top.
func (e *Entity) updateLaser(ctx UpdateContext) {
	e.move(ctx.Delta.Seconds())

	if e.Bounds().Bottom() <= 0 {
		e.Kill()
	}
}

package object

import (
	"github.com/tomz197/meteors/internal/physics"
)

// ExplosionFrameRate is how many animation frames play per second.
const ExplosionFrameRate = 20.0

// ExplosionState is the explosion-specific part of an Entity.
type ExplosionState struct {
	Frames     []*physics.Shape
	FrameIndex float64
}

// NewExplosion creates a one-shot explosion animation centered at pos.
func NewExplosion(pos physics.Vector2, frames []*physics.Shape) *Entity {
	var first *physics.Shape
	if len(frames) > 0 {
		first = frames[0]
	}
	e := newEntity(KindExplosion, pos, first)
	e.Explosion = ExplosionState{Frames: frames}
	return e
}

// Frame returns the index of the frame currently shown.
func (s ExplosionState) Frame() int {
	return int(s.FrameIndex)
}

// updateExplosion advances the animation and removes the explosion after
// its last frame.
func (e *Entity) updateExplosion(ctx UpdateContext) {
	x := &e.Explosion
	x.FrameIndex += ExplosionFrameRate * ctx.Delta.Seconds()

	if x.FrameIndex >= float64(len(x.Frames)) {
		e.Kill()
		return
	}
	e.Shape = x.Frames[x.Frame()]
}

// NewStar creates a static background star.
func NewStar(pos physics.Vector2, shape *physics.Shape) *Entity {
	return newEntity(KindStar, pos, shape)
}

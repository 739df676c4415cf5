package object

import (
	"math/rand"

	"github.com/tomz197/meteors/internal/physics"
)

// Meteor spawn and motion ranges.
const (
	MeteorMinSpeed         = 400
	MeteorMaxSpeed         = 500
	MeteorMinRotationSpeed = 20 // Degrees per second
	MeteorMaxRotationSpeed = 50
	MeteorMaxDrift         = 0.5 // Horizontal direction component range (±)
	MeteorSpawnMinY        = -200
	MeteorSpawnMaxY        = -100
)

// MeteorState is the meteor-specific part of an Entity.
type MeteorState struct {
	RotationSpeed float64 // Degrees per second
}

// NewMeteor creates a meteor centered at pos moving along dir.
// dir is used as given (it is not normalized), matching the falling model
// where the vertical component is always 1.
func NewMeteor(pos, dir physics.Vector2, speed, rotationSpeed float64, shape *physics.Shape) *Entity {
	e := newEntity(KindMeteor, pos, shape)
	e.Direction = dir
	e.Speed = speed
	e.Meteor = MeteorState{RotationSpeed: rotationSpeed}
	return e
}

// NewRandomMeteor creates a meteor above the visible area at a random column,
// drifting slightly sideways while it falls.
func NewRandomMeteor(rng *rand.Rand, screen Screen, sprites *Sprites) *Entity {
	pos := physics.Vec(
		float64(randInt(rng, 0, screen.Width)),
		float64(randInt(rng, MeteorSpawnMinY, MeteorSpawnMaxY)),
	)
	dir := physics.Vec(uniform(rng, -MeteorMaxDrift, MeteorMaxDrift), 1)
	speed := float64(randInt(rng, MeteorMinSpeed, MeteorMaxSpeed))
	rotation := float64(randInt(rng, MeteorMinRotationSpeed, MeteorMaxRotationSpeed))

	return NewMeteor(pos, dir, speed, rotation, sprites.RandomMeteor(rng))
}

// updateMeteor moves and spins the meteor, removing it once it falls off
// the bottom of the screen.
func (e *Entity) updateMeteor(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	e.move(dt)

	if e.Bounds().Top() >= float64(ctx.Screen.Height) {
		e.Kill()
		return
	}

	e.Rotation += e.Meteor.RotationSpeed * dt
}

// randInt returns an integer in the closed range [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniform returns a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

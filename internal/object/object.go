// Package object holds the game entities, the registry that owns them and
// the scheduler that spawns meteors.
package object

import (
	"time"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/physics"
)

// Spawner allows entities to spawn new entities during update.
type Spawner interface {
	Spawn(e *Entity, categories Category)
}

// Drawer is the part of the renderer entities draw themselves onto.
type Drawer interface {
	DrawShape(shape *physics.Shape, pos physics.Vector2, rotation float64)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Input   Input
	Screen  Screen
	Spawner Spawner
	Sprites *Sprites
	Audio   audio.Signal
}

// Screen represents the logical play field dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Center returns the middle of the play field.
func (s Screen) Center() physics.Vector2 {
	return physics.Vec(float64(s.Width)/2, float64(s.Height)/2)
}

// Kind tags which variant an Entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindStar
	KindLaser
	KindMeteor
	KindExplosion
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindStar:
		return "star"
	case KindLaser:
		return "laser"
	case KindMeteor:
		return "meteor"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Entity is a single game object. Kind selects which of the kind-specific
// state blocks is meaningful; the others stay zero.
type Entity struct {
	ID        uint64
	Kind      Kind
	Position  physics.Vector2 // Center of the bounding box
	Direction physics.Vector2
	Speed     float64 // Pixels per second along Direction
	Rotation  float64 // Degrees; display only, never affects collisions
	Shape     *physics.Shape

	Player    PlayerState
	Meteor    MeteorState
	Explosion ExplosionState

	alive      bool
	categories Category
}

// newEntity creates a live entity of the given kind.
func newEntity(kind Kind, pos physics.Vector2, shape *physics.Shape) *Entity {
	return &Entity{
		Kind:     kind,
		Position: pos,
		Shape:    shape,
		alive:    true,
	}
}

// Alive reports whether the entity is still part of the game.
func (e *Entity) Alive() bool {
	return e.alive
}

// Kill marks the entity for removal at the next registry sweep.
// Returns false if it was already dead.
func (e *Entity) Kill() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	return true
}

// Categories returns the registry categories the entity belongs to.
func (e *Entity) Categories() Category {
	return e.categories
}

// Bounds returns the axis-aligned bounding box around the current position.
func (e *Entity) Bounds() physics.Rect {
	if e.Shape == nil {
		return physics.Rect{X: e.Position.X, Y: e.Position.Y}
	}
	return e.Shape.Bounds(e.Position)
}

// Collides reports whether the two entities' shapes overlap.
func (e *Entity) Collides(o *Entity) bool {
	return physics.Collide(e.Shape, e.Position, o.Shape, o.Position)
}

// Update advances the entity by one frame.
func (e *Entity) Update(ctx UpdateContext) {
	if !e.alive {
		return
	}
	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(ctx)
	case KindLaser:
		e.updateLaser(ctx)
	case KindMeteor:
		e.updateMeteor(ctx)
	case KindExplosion:
		e.updateExplosion(ctx)
	case KindStar:
		// Stars are static.
	}
}

// Draw renders the entity.
func (e *Entity) Draw(d Drawer) {
	if !e.alive || e.Shape == nil {
		return
	}
	d.DrawShape(e.Shape, e.Position, e.Rotation)
}

// move applies Direction*Speed for one frame.
func (e *Entity) move(dt float64) {
	e.Position = e.Position.Add(e.Direction.Scale(e.Speed * dt))
}

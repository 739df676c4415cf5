package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/meteors/internal/physics"
)

// Sprite dimensions in logical pixels.
const (
	meteorRadius       = 48.0
	meteorVariants     = 4
	laserWidth         = 9.0
	laserHeight        = 54.0
	starRadius         = 10.0
	explosionFrames    = 21
	explosionSpikes    = 12
	explosionMinRadius = 12.0
	explosionMaxRadius = 64.0
)

// Sprites is the immutable set of shapes every entity draws and collides with.
// It is built once at startup and shared read-only.
type Sprites struct {
	Player    *physics.Shape
	Laser     *physics.Shape
	Star      *physics.Shape
	Meteors   []*physics.Shape
	Explosion []*physics.Shape
}

// NewSprites generates the procedural sprite set. Meteor outlines are
// irregular, so they depend on rng.
func NewSprites(rng *rand.Rand) *Sprites {
	s := &Sprites{
		Player:    physics.NewShape(shipOutline(), true),
		Laser:     physics.NewShape(rectOutline(laserWidth, laserHeight), true),
		Star:      physics.NewShape(starOutline(starRadius, starRadius*0.3, 4), true),
		Meteors:   make([]*physics.Shape, meteorVariants),
		Explosion: make([]*physics.Shape, explosionFrames),
	}
	for i := range s.Meteors {
		s.Meteors[i] = physics.NewShape(meteorOutline(rng, meteorRadius), false)
	}
	for i := range s.Explosion {
		// Grow from a small flash to a wide ring.
		t := float64(i) / float64(explosionFrames-1)
		outer := explosionMinRadius + t*(explosionMaxRadius-explosionMinRadius)
		s.Explosion[i] = physics.NewShape(starOutline(outer, outer*0.6, explosionSpikes), false)
	}
	return s
}

// RandomMeteor picks one of the meteor outlines.
func (s *Sprites) RandomMeteor(rng *rand.Rand) *physics.Shape {
	if len(s.Meteors) == 0 {
		return nil
	}
	return s.Meteors[rng.Intn(len(s.Meteors))]
}

// shipOutline is an arrowhead pointing up.
func shipOutline() []physics.Vector2 {
	return []physics.Vector2{
		{X: 0, Y: -38},
		{X: 14, Y: -8},
		{X: 48, Y: 22},
		{X: 48, Y: 38},
		{X: 16, Y: 26},
		{X: 0, Y: 32},
		{X: -16, Y: 26},
		{X: -48, Y: 38},
		{X: -48, Y: 22},
		{X: -14, Y: -8},
	}
}

func rectOutline(w, h float64) []physics.Vector2 {
	hw, hh := w/2, h/2
	return []physics.Vector2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

// starOutline alternates between the outer and inner radius, starting at
// the top.
func starOutline(outer, inner float64, spikes int) []physics.Vector2 {
	points := make([]physics.Vector2, 0, spikes*2)
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*step - math.Pi/2
		points = append(points, physics.Vec(math.Cos(angle)*r, math.Sin(angle)*r))
	}
	return points
}

// meteorOutline creates an irregular polygon with 8-12 vertices, each at
// 70-130% of the base radius.
func meteorOutline(rng *rand.Rand, radius float64) []physics.Vector2 {
	numVerts := 8 + rng.Intn(5)
	points := make([]physics.Vector2, numVerts)
	for i := range points {
		r := radius * (0.7 + rng.Float64()*0.6)
		angle := float64(i) * 2 * math.Pi / float64(numVerts)
		points[i] = physics.Vec(math.Cos(angle)*r, math.Sin(angle)*r)
	}
	return points
}

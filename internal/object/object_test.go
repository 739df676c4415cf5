package object

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/physics"
)

type recorder struct {
	sounds []audio.Sound
}

func (r *recorder) Play(s audio.Sound) {
	r.sounds = append(r.sounds, s)
}

func testSprites() *Sprites {
	return NewSprites(rand.New(rand.NewSource(1)))
}

func testContext(dt time.Duration, in Input) UpdateContext {
	return UpdateContext{
		Delta:   dt,
		Input:   in,
		Screen:  NewScreen(1280, 720),
		Sprites: testSprites(),
		Audio:   &recorder{},
	}
}

func box(w, h float64) *physics.Shape {
	return physics.NewShape(rectOutline(w, h), true)
}

func TestPlayerZeroIntentKeepsZeroDirection(t *testing.T) {
	inputs := []Input{
		{},
		{Left: true, Right: true},
		{Up: true, Down: true},
		{Left: true, Right: true, Up: true, Down: true},
	}
	for _, in := range inputs {
		p := NewPlayer(physics.Vec(640, 360), box(10, 10), 300, 400*time.Millisecond)
		p.Update(testContext(16*time.Millisecond, in))

		require.True(t, p.Direction.IsZero(), "input %+v", in)
		require.False(t, math.IsNaN(p.Position.X) || math.IsNaN(p.Position.Y))
		require.Equal(t, physics.Vec(640, 360), p.Position)
	}
}

func TestPlayerDirectionIsUnitLength(t *testing.T) {
	inputs := []Input{
		{Left: true},
		{Right: true},
		{Up: true},
		{Down: true},
		{Left: true, Up: true},
		{Right: true, Down: true},
		{Left: true, Down: true, Up: true},
	}
	for _, in := range inputs {
		p := NewPlayer(physics.Vec(640, 360), box(10, 10), 300, 400*time.Millisecond)
		p.Update(testContext(time.Second, in))

		require.InDelta(t, 1.0, p.Direction.Len(), 1e-9, "input %+v", in)
		require.InDelta(t, 300.0, physics.Distance(physics.Vec(640, 360), p.Position), 1e-9)
	}
}

func TestPlayerShootSpawnsLaserAtNose(t *testing.T) {
	reg := NewRegistry()
	sounds := &recorder{}
	player := reg.Add(NewPlayer(physics.Vec(640, 360), box(100, 80), 300, 400*time.Millisecond), 0)

	ctx := testContext(0, Input{Shoot: true, ShootPressed: true})
	ctx.Audio = sounds
	reg.UpdateAll(ctx)

	require.Equal(t, 1, reg.Len(CategoryLasers))
	require.False(t, player.Player.CanShoot)
	require.Equal(t, []audio.Sound{audio.SoundLaser}, sounds.sounds)

	reg.ForEach(CategoryLasers, func(l *Entity) bool {
		require.Equal(t, KindLaser, l.Kind)
		require.InDelta(t, player.Bounds().Top(), l.Bounds().Bottom(), 1e-9)
		require.InDelta(t, player.Position.X, l.Position.X, 1e-9)
		return false
	})
}

func TestPlayerCooldown(t *testing.T) {
	reg := NewRegistry()
	player := reg.Add(NewPlayer(physics.Vec(640, 360), box(100, 80), 300, 400*time.Millisecond), 0)
	shoot := Input{Shoot: true, ShootPressed: true}
	step := 100 * time.Millisecond

	reg.UpdateAll(testContext(step, shoot))
	require.False(t, player.Player.CanShoot)
	require.Equal(t, 1, reg.Len(CategoryLasers))

	// Repeated presses while reloading do nothing.
	for i := 0; i < 3; i++ {
		reg.UpdateAll(testContext(step, shoot))
		require.False(t, player.Player.CanShoot, "tick %d", i)
	}
	require.Equal(t, 1, reg.Len(CategoryLasers))
	require.Equal(t, 300*time.Millisecond, player.Player.ShotClock)

	// Exactly 400ms after firing.
	reg.UpdateAll(testContext(step, Input{}))
	require.True(t, player.Player.CanShoot)

	reg.UpdateAll(testContext(step, shoot))
	require.Equal(t, 2, reg.Len(CategoryLasers))
}

func TestPlayerHeldShootWithoutEdgeDoesNotFire(t *testing.T) {
	reg := NewRegistry()
	reg.Add(NewPlayer(physics.Vec(640, 360), box(100, 80), 300, 400*time.Millisecond), 0)

	for i := 0; i < 10; i++ {
		reg.UpdateAll(testContext(100*time.Millisecond, Input{Shoot: true}))
	}
	require.Zero(t, reg.Len(CategoryLasers))
}

func TestLaserDiesWhenBottomReachesTop(t *testing.T) {
	// 400 px/s * 125ms = 50px per tick; bottom starts at 200.
	l := NewLaser(physics.Vec(100, 200), box(9, 54))
	require.InDelta(t, 200.0, l.Bounds().Bottom(), 1e-9)

	ctx := testContext(125*time.Millisecond, Input{})
	for i := 1; i <= 3; i++ {
		l.Update(ctx)
		require.True(t, l.Alive(), "tick %d", i)
		require.InDelta(t, 200.0-50*float64(i), l.Bounds().Bottom(), 1e-9)
	}

	l.Update(ctx)
	require.InDelta(t, 0.0, l.Bounds().Bottom(), 1e-9)
	require.False(t, l.Alive())
}

func TestMeteorFallsLinearly(t *testing.T) {
	shape := box(40, 40)
	m := NewMeteor(physics.Vec(300, -150), physics.Vec(0, 1), 450, 30, shape)
	ctx := testContext(125*time.Millisecond, Input{})

	elapsed := 0.0
	for m.Alive() {
		m.Update(ctx)
		elapsed += 0.125

		y := -150 + 450*elapsed
		if !m.Alive() {
			require.GreaterOrEqual(t, y-shape.Height/2, 720.0)
			break
		}
		require.InDelta(t, y, m.Position.Y, 1e-9)
		require.Less(t, m.Bounds().Top(), 720.0)
		require.InDelta(t, 30*elapsed, m.Rotation, 1e-9)
	}
	// First tick where the top edge reaches 720: y = 750.
	require.InDelta(t, 2.0, elapsed, 1e-9)
}

func TestRandomMeteorRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sprites := testSprites()
	screen := NewScreen(1280, 720)

	for i := 0; i < 500; i++ {
		m := NewRandomMeteor(rng, screen, sprites)

		require.Equal(t, KindMeteor, m.Kind)
		require.GreaterOrEqual(t, m.Position.X, 0.0)
		require.LessOrEqual(t, m.Position.X, 1280.0)
		require.GreaterOrEqual(t, m.Position.Y, -200.0)
		require.LessOrEqual(t, m.Position.Y, -100.0)
		require.Equal(t, 1.0, m.Direction.Y)
		require.GreaterOrEqual(t, m.Direction.X, -0.5)
		require.Less(t, m.Direction.X, 0.5)
		require.GreaterOrEqual(t, m.Speed, 400.0)
		require.LessOrEqual(t, m.Speed, 500.0)
		require.Equal(t, math.Trunc(m.Speed), m.Speed)
		require.GreaterOrEqual(t, m.Meteor.RotationSpeed, 20.0)
		require.LessOrEqual(t, m.Meteor.RotationSpeed, 50.0)
		require.NotNil(t, m.Shape)
	}
}

func TestExplosionPlaysEveryFrameOnce(t *testing.T) {
	sprites := testSprites()
	require.Len(t, sprites.Explosion, 21)

	e := NewExplosion(physics.Vec(10, 10), sprites.Explosion)
	ctx := testContext(50*time.Millisecond, Input{})

	for i := 1; i <= 20; i++ {
		e.Update(ctx)
		require.True(t, e.Alive(), "tick %d", i)
		require.Equal(t, i, e.Explosion.Frame())
		require.Same(t, sprites.Explosion[i], e.Shape)
	}

	e.Update(ctx)
	require.False(t, e.Alive())
}

func TestStarNeverMoves(t *testing.T) {
	s := NewStar(physics.Vec(5, 6), testSprites().Star)
	s.Update(testContext(time.Second, Input{Left: true}))

	require.True(t, s.Alive())
	require.Equal(t, physics.Vec(5, 6), s.Position)
}

func TestKillIsIdempotent(t *testing.T) {
	e := NewStar(physics.Vec(0, 0), nil)

	require.True(t, e.Kill())
	require.False(t, e.Kill())
	require.False(t, e.Alive())
}

func TestSpritesCollisionMasks(t *testing.T) {
	s := testSprites()

	require.Equal(t, 9.0, s.Laser.Width)
	require.Equal(t, 54.0, s.Laser.Height)
	require.Equal(t, 9*54, s.Laser.Mask.Count())
	require.Positive(t, s.Player.Mask.Count())
	for _, m := range s.Meteors {
		require.Positive(t, m.Mask.Count())
		require.LessOrEqual(t, m.Width, 2*meteorRadius*1.3+1)
	}
}

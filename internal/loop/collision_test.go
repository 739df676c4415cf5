package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
)

type recorder struct {
	sounds []audio.Sound
}

func (r *recorder) Play(s audio.Sound) {
	r.sounds = append(r.sounds, s)
}

type collisionFixture struct {
	reg     *object.Registry
	sprites *object.Sprites
	player  *object.Entity
	state   *GameState
	sounds  *recorder
	system  *CollisionSystem
}

func newCollisionFixture(playerPos physics.Vector2) *collisionFixture {
	sprites := object.NewSprites(rand.New(rand.NewSource(1)))
	sounds := &recorder{}
	reg := object.NewRegistry()
	f := &collisionFixture{
		reg:     reg,
		sprites: sprites,
		player:  reg.Add(object.NewPlayer(playerPos, sprites.Player, 300, 400*time.Millisecond), 0),
		state:   NewGameState(),
		sounds:  sounds,
		system:  NewCollisionSystem(object.NewScreen(1280, 720), sprites, sounds),
	}
	return f
}

func (f *collisionFixture) meteor(pos physics.Vector2) *object.Entity {
	return f.reg.Add(object.NewMeteor(pos, physics.Vec(0, 1), 450, 0, f.sprites.Meteors[0]), object.CategoryMeteors)
}

func (f *collisionFixture) laser(midBottom physics.Vector2) *object.Entity {
	return f.reg.Add(object.NewLaser(midBottom, f.sprites.Laser), object.CategoryLasers)
}

func (f *collisionFixture) explosions() []*object.Entity {
	var out []*object.Entity
	f.reg.ForEach(object.CategoryAll, func(e *object.Entity) bool {
		if e.Kind == object.KindExplosion {
			out = append(out, e)
		}
		return false
	})
	return out
}

func TestLaserDestroysMeteor(t *testing.T) {
	f := newCollisionFixture(physics.Vec(100, 650))
	m := f.meteor(physics.Vec(640, 300))
	l := f.laser(physics.Vec(640, 330))
	f.reg.Commit()
	f.state.Score = 3
	origin := l.Bounds().MidTop()

	res := f.system.Resolve(f.reg, f.player, f.state)

	require.Equal(t, CollisionResult{MeteorsDestroyed: 1}, res)
	require.False(t, m.Alive())
	require.False(t, l.Alive())
	require.Equal(t, 4, f.state.Score)
	require.True(t, f.state.Running)
	require.Equal(t, []audio.Sound{audio.SoundExplosion}, f.sounds.sounds)

	require.Equal(t, 2, f.reg.RemoveDead())
	f.reg.Commit()
	explosions := f.explosions()
	require.Len(t, explosions, 1)
	require.Equal(t, origin, explosions[0].Position)
}

func TestPlayerHitEndsGame(t *testing.T) {
	f := newCollisionFixture(physics.Vec(640, 360))
	m := f.meteor(physics.Vec(640, 360))
	// A laser hit elsewhere is not resolved in the same tick.
	other := f.meteor(physics.Vec(200, 200))
	l := f.laser(physics.Vec(200, 230))
	f.reg.Commit()
	f.state.Score = 12

	res := f.system.Resolve(f.reg, f.player, f.state)

	require.True(t, res.PlayerHit)
	require.False(t, m.Alive())
	require.True(t, f.player.Alive())
	require.Zero(t, f.state.Score)
	require.False(t, f.state.Running)
	require.Equal(t, PhaseGameOver, f.state.Phase)
	require.Equal(t, []audio.Sound{audio.SoundDamage}, f.sounds.sounds)
	require.True(t, other.Alive())
	require.True(t, l.Alive())
}

func TestNearMissDoesNothing(t *testing.T) {
	f := newCollisionFixture(physics.Vec(640, 650))
	m := f.meteor(physics.Vec(300, 300))
	l := f.laser(physics.Vec(300+meteorReach(f)+10, 330))
	f.reg.Commit()

	res := f.system.Resolve(f.reg, f.player, f.state)

	require.Equal(t, CollisionResult{}, res)
	require.True(t, m.Alive())
	require.True(t, l.Alive())
	require.Empty(t, f.sounds.sounds)
}

func TestLaserDestroysOneMeteorPerTick(t *testing.T) {
	f := newCollisionFixture(physics.Vec(100, 650))
	a := f.meteor(physics.Vec(640, 300))
	b := f.meteor(physics.Vec(642, 302))
	f.laser(physics.Vec(640, 330))
	f.reg.Commit()

	f.system.Resolve(f.reg, f.player, f.state)

	require.Equal(t, 1, f.state.Score)
	require.NotEqual(t, a.Alive(), b.Alive())
}

func TestTwoLasersOneMeteor(t *testing.T) {
	f := newCollisionFixture(physics.Vec(100, 650))
	f.meteor(physics.Vec(640, 300))
	first := f.laser(physics.Vec(640, 330))
	second := f.laser(physics.Vec(641, 332))
	f.reg.Commit()

	f.system.Resolve(f.reg, f.player, f.state)

	require.Equal(t, 1, f.state.Score)
	require.False(t, first.Alive())
	require.True(t, second.Alive())
	require.Len(t, f.sounds.sounds, 1)
}

func TestCollisionAboveScreen(t *testing.T) {
	f := newCollisionFixture(physics.Vec(100, 650))
	m := f.meteor(physics.Vec(640, -150))
	f.laser(physics.Vec(640, -120))
	f.reg.Commit()

	f.system.Resolve(f.reg, f.player, f.state)

	require.False(t, m.Alive())
	require.Equal(t, 1, f.state.Score)
}

func TestDeadEntitiesDoNotCollide(t *testing.T) {
	f := newCollisionFixture(physics.Vec(640, 360))
	m := f.meteor(physics.Vec(640, 360))
	f.reg.Commit()
	m.Kill()

	res := f.system.Resolve(f.reg, f.player, f.state)

	require.False(t, res.PlayerHit)
	require.True(t, f.state.Running)
}

// meteorReach is the largest half-extent of the meteor used in fixtures.
func meteorReach(f *collisionFixture) float64 {
	s := f.sprites.Meteors[0]
	return max(s.Width, s.Height)/2 + f.sprites.Laser.Width/2
}

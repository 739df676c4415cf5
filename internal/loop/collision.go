package loop

import (
	"math"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
)

// CollisionResult summarizes what happened during one Resolve call.
type CollisionResult struct {
	PlayerHit        bool
	MeteorsDestroyed int
}

// CollisionSystem detects player–meteor and laser–meteor contacts and applies
// their effects to the game state.
type CollisionSystem struct {
	grid    *physics.SpatialGrid
	sprites *object.Sprites
	audio   audio.Signal

	// Reused between ticks to avoid allocations.
	meteors []*object.Entity
	lasers  []*object.Entity
}

// NewCollisionSystem creates a collision system for the given play field.
// The broad-phase cell size is derived from the largest meteor and laser so
// that every overlapping pair shares a 3x3 neighborhood.
func NewCollisionSystem(screen object.Screen, sprites *object.Sprites, sig audio.Signal) *CollisionSystem {
	if sig == nil {
		sig = audio.Nop{}
	}
	return &CollisionSystem{
		grid:    physics.NewSpatialGrid(float64(screen.Width), float64(screen.Height), broadPhaseCellSize(sprites)),
		sprites: sprites,
		audio:   sig,
	}
}

func broadPhaseCellSize(sprites *object.Sprites) float64 {
	var meteor float64
	for _, m := range sprites.Meteors {
		meteor = math.Max(meteor, math.Max(m.Width, m.Height))
	}
	laser := math.Max(sprites.Laser.Width, sprites.Laser.Height)
	return meteor + laser
}

// Resolve runs collision detection for one tick. A player hit ends the game
// and skips the laser checks. Explosions are spawned through reg and become
// visible after its next Commit.
//
// When a laser overlaps several meteors, the one destroyed is the first found
// in broad-phase cell order.
func (c *CollisionSystem) Resolve(reg *object.Registry, player *object.Entity, state *GameState) CollisionResult {
	var res CollisionResult
	c.collect(reg)

	if c.checkPlayer(player, state) {
		res.PlayerHit = true
		return res
	}

	c.grid.Clear()
	for i, m := range c.meteors {
		c.grid.Insert(m.Position, i)
	}

	for _, l := range c.lasers {
		c.grid.QueryAround(l.Position, func(i int) bool {
			m := c.meteors[i]
			if !m.Alive() || !l.Collides(m) {
				return false
			}

			origin := l.Bounds().MidTop()
			l.Kill()
			m.Kill()
			state.Score++
			reg.Spawn(object.NewExplosion(origin, c.sprites.Explosion), 0)
			c.audio.Play(audio.SoundExplosion)
			res.MeteorsDestroyed++
			return true // One meteor per laser
		})
	}
	return res
}

// checkPlayer ends the game on the first meteor touching the player.
func (c *CollisionSystem) checkPlayer(player *object.Entity, state *GameState) bool {
	if player == nil || !player.Alive() {
		return false
	}
	for _, m := range c.meteors {
		if !player.Collides(m) {
			continue
		}
		m.Kill()
		state.Score = 0
		state.End(PhaseGameOver)
		c.audio.Play(audio.SoundDamage)
		return true
	}
	return false
}

// collect gathers the live meteors and lasers from the registry.
func (c *CollisionSystem) collect(reg *object.Registry) {
	c.meteors = c.meteors[:0]
	c.lasers = c.lasers[:0]

	reg.ForEach(object.CategoryMeteors, func(e *object.Entity) bool {
		c.meteors = append(c.meteors, e)
		return false
	})
	reg.ForEach(object.CategoryLasers, func(e *object.Entity) bool {
		c.lasers = append(c.lasers, e)
		return false
	})
}

package object

import (
	"time"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/physics"
)

// PlayerState is the ship-specific part of an Entity.
type PlayerState struct {
	CanShoot  bool
	ShotClock time.Duration // Time since the last shot, only advanced while reloading
	Cooldown  time.Duration // Minimum time between shots
}

// NewPlayer creates the player-controlled ship centered at pos.
func NewPlayer(pos physics.Vector2, shape *physics.Shape, speed float64, cooldown time.Duration) *Entity {
	e := newEntity(KindPlayer, pos, shape)
	e.Speed = speed
	e.Player = PlayerState{
		CanShoot: true,
		Cooldown: cooldown,
	}
	return e
}

// updatePlayer handles movement, reloading and shooting.
func (e *Entity) updatePlayer(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	// Movement: unit vector of the held direction keys.
	intent := physics.Vec(axis(ctx.Input.Left, ctx.Input.Right), axis(ctx.Input.Up, ctx.Input.Down))
	e.Direction = intent.Normalize()
	e.move(dt)

	// Reload
	p := &e.Player
	if !p.CanShoot {
		p.ShotClock += ctx.Delta
		if p.ShotClock >= p.Cooldown {
			p.CanShoot = true
		}
	}

	// Shooting fires on the press edge only, never on a held key.
	if ctx.Input.ShootPressed && p.CanShoot && ctx.Spawner != nil && ctx.Sprites != nil {
		p.CanShoot = false
		p.ShotClock = 0

		laser := NewLaser(e.Bounds().MidTop(), ctx.Sprites.Laser)
		ctx.Spawner.Spawn(laser, CategoryLasers)
		if ctx.Audio != nil {
			ctx.Audio.Play(audio.SoundLaser)
		}
	}
}

// axis converts a pair of opposing keys into -1, 0 or 1.
func axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// Package audio plays the game's sound cues. The game core only ever calls
// Play and never waits on or inspects the result.
package audio

// Sound identifies a sound cue.
type Sound int

const (
	SoundLaser     Sound = iota // Player fired a laser
	SoundExplosion              // Laser destroyed a meteor
	SoundDamage                 // Meteor hit the player
	soundCount
)

// String returns the cue name used in logs.
func (s Sound) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosion:
		return "explosion"
	case SoundDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Signal is the fire-and-forget sink for sound cues.
type Signal interface {
	Play(s Sound)
}

// Nop discards every cue. Used when audio is disabled or unavailable.
type Nop struct{}

// Play implements Signal.
func (Nop) Play(Sound) {}

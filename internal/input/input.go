// Package input turns raw terminal key events into per-frame input state.
package input

import (
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and auto-repeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Shoot  bool // Shoot key is held
	Escape bool
	Quit   bool

	// ShootPressed is true only on the frame the shoot key went from
	// released to held.
	ShootPressed bool
}

// Key identifies a game-relevant key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShoot
	KeyEscape
	KeyQuit
	keyCount
)

// Tracker records the last time each key was pressed and builds Input
// snapshots from it.
type Tracker struct {
	seen      [keyCount]time.Time
	lastShoot bool
	now       func() time.Time
}

// NewTracker creates a tracker using the wall clock.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Press records a key press at the current time.
func (t *Tracker) Press(k Key) {
	t.PressAt(k, t.now())
}

// PressAt records a key press at the given time.
func (t *Tracker) PressAt(k Key, at time.Time) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	t.seen[k] = at
}

// Snapshot builds the input for the current frame.
func (t *Tracker) Snapshot() Input {
	return t.SnapshotAt(t.now())
}

// SnapshotAt builds the input as of the given time and advances the shoot
// edge detector. Call it once per frame.
func (t *Tracker) SnapshotAt(now time.Time) Input {
	held := func(k Key) bool {
		return !t.seen[k].IsZero() && now.Sub(t.seen[k]) < keyHoldDuration
	}

	in := Input{
		Left:   held(KeyLeft),
		Right:  held(KeyRight),
		Up:     held(KeyUp),
		Down:   held(KeyDown),
		Shoot:  held(KeyShoot),
		Escape: held(KeyEscape),
		Quit:   held(KeyQuit),
	}
	in.ShootPressed = in.Shoot && !t.lastShoot
	t.lastShoot = in.Shoot

	return in
}

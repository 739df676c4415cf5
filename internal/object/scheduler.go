package object

import (
	"time"
)

// Scheduler emits spawn events at a fixed interval, carrying leftover time
// between ticks so long frames catch up instead of dropping spawns.
type Scheduler struct {
	interval    time.Duration
	accumulated time.Duration
}

// NewScheduler creates a scheduler firing every interval.
func NewScheduler(interval time.Duration) *Scheduler {
	return &Scheduler{interval: interval}
}

// Tick advances the scheduler by dt and calls emit once per elapsed
// interval. Returns the number of emits.
func (s *Scheduler) Tick(dt time.Duration, emit func()) int {
	if s.interval <= 0 {
		return 0
	}

	s.accumulated += dt
	n := 0
	for s.accumulated >= s.interval {
		s.accumulated -= s.interval
		emit()
		n++
	}
	return n
}

// Pending returns the time accumulated towards the next emit.
func (s *Scheduler) Pending() time.Duration {
	return s.accumulated
}

package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventSource is the part of tcell.Screen the screen source reads from.
type EventSource interface {
	PollEvent() tcell.Event
}

// ScreenSource decodes tcell key events into per-frame input.
type ScreenSource struct {
	events  chan tcell.Event
	tracker *Tracker
	quit    bool
}

// StartScreenSource spawns a goroutine pumping events from screen.
// The goroutine ends when PollEvent returns nil (screen finalized).
func StartScreenSource(screen EventSource) *ScreenSource {
	s := &ScreenSource{
		events:  make(chan tcell.Event, 128),
		tracker: NewTracker(),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s
}

// Poll drains pending events (non-blocking) and returns this frame's input.
func (s *ScreenSource) Poll() Input {
	now := s.tracker.now()

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.quit = true
				break drain
			}
			if k := EventKey(ev); k != KeyNone {
				s.tracker.PressAt(k, now)
			}
		default:
			break drain
		}
	}

	in := s.tracker.SnapshotAt(now)
	if s.quit {
		in.Quit = true
	}
	return in
}

// EventKey maps a tcell event to a game key.
func EventKey(ev tcell.Event) Key {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return KeyNone
	}

	switch kev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		if kev.Rune() > 0x7f {
			return KeyNone
		}
		return byteKey(byte(kev.Rune()))
	}
	return KeyNone
}

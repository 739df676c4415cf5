package input

import (
	"bufio"
)

// Stream delivers raw stdin bytes via a channel and decodes them into key
// presses for a Tracker.
type Stream struct {
	ch      chan byte
	tracker *Tracker
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		tracker: NewTracker(),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the input for this frame. A closed input stream reads as a quit request.
func (s *Stream) Poll() Input {
	now := s.tracker.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	Decode(buf, func(k Key) { s.tracker.PressAt(k, now) })

	in := s.tracker.SnapshotAt(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// Decode parses raw terminal bytes and reports each recognized key.
// Handles CSI escape sequences for arrow keys; a lone ESC is the escape key.
func Decode(buf []byte, press func(Key)) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			// CSI sequence: ESC [ <code> (or SS3 ESC O <code> in application mode)
			if k := arrowKey(buf[i+2]); k != KeyNone {
				press(k)
				i += 2
				continue
			}
		}

		if k := byteKey(b); k != KeyNone {
			press(k)
		}
	}
}

func arrowKey(code byte) Key {
	switch code {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}

// byteKey maps a single byte to a key.
func byteKey(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return KeyQuit
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'k', 'K':
		return KeyUp
	case 's', 'S', 'j', 'J':
		return KeyDown
	case ' ':
		return KeyShoot
	case '\x1b':
		return KeyEscape
	}
	return KeyNone
}

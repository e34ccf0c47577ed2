// Package input turns a raw terminal byte stream into steering and
// lifecycle signals.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte
// arrived. Terminals only report presses, so auto-repeat keeps a held
// key alive and silence releases it.
const keyHoldDuration = 150 * time.Millisecond

// Input is the state of the logical signals for one frame.
type Input struct {
	Left  bool // steer left active
	Right bool // steer right active
	Start bool // start or restart requested
	Quit  bool
}

// Direction converts the steering signals to -1, 0 or 1.
func (in Input) Direction() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

type keyState struct {
	left  time.Time
	right time.Time
	start time.Time
	quit  time.Time
}

// Stream delivers terminal bytes read by a background goroutine.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that forwards bytes from r until it fails.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains the pending bytes without blocking and reports which
// signals are currently active. A closed stream reads as Quit.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

// Reset forgets held keys, so a key that started the game does not leak
// into the next frame.
func (s *Stream) Reset() {
	s.state = keyState{}
}

func (s *Stream) read(now time.Time) Input {
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

	for i := 0; i < len(buf); i++ {
		// CSI arrow keys: ESC [ C / ESC [ D
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case 'A', 'B':
				i += 2
				continue
			}
		}
		applyByte(&s.state, buf[i], now)
	}

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Input{
		Left:  held(s.state.left),
		Right: held(s.state.right),
		Start: held(s.state.start),
		Quit:  s.closed || held(s.state.quit),
	}
}

func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'h', 'H', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', '\r', '\n':
		state.start = now
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		state.quit = now
	}
}

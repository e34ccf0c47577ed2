package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Input
	}{
		{"left arrow", "\x1b[D", Input{Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"letters", "ad", Input{Left: true, Right: true}},
		{"vim keys", "l", Input{Right: true}},
		{"space starts", " ", Input{Start: true}},
		{"enter starts", "\r", Input{Start: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl c", "\x03", Input{Quit: true}},
		{"up arrow ignored", "\x1b[A", Input{}},
		{"nothing", "", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.data)
			if got := s.read(time.Now()); got != tt.want {
				t.Errorf("read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyReleasesAfterHold(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, "a")
	if !s.read(now).Left {
		t.Fatal("left not active right after press")
	}
	if !s.read(now.Add(keyHoldDuration / 2)).Left {
		t.Error("left released before hold duration")
	}
	if s.read(now.Add(keyHoldDuration)).Left {
		t.Error("left still active after hold duration")
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	s := newStream()
	feed(s, " ")
	now := time.Now()
	if !s.read(now).Start {
		t.Fatal("start not active")
	}
	s.Reset()
	if s.read(now).Start {
		t.Error("start survived Reset")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		in   Input
		want int
	}{
		{Input{}, 0},
		{Input{Left: true}, -1},
		{Input{Right: true}, 1},
		{Input{Left: true, Right: true}, 0},
	}
	for _, tt := range tests {
		if got := tt.in.Direction(); got != tt.want {
			t.Errorf("%+v.Direction() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Quit {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("stream closed but Quit never reported")
}

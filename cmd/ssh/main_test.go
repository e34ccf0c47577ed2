package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.update(100+n, 30+n)
		}(i)
	}
	wg.Wait()

	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil {
		t.Fatalf("getSize: %v", err)
	}
	if w != 120 || h != 40 {
		t.Errorf("getSize = %dx%d, want 120x40", w, h)
	}
}

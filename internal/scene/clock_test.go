package scene

import (
	"testing"
	"time"
)

func TestClockDue(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(16*time.Millisecond, start)

	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{15 * time.Millisecond, 0},
		{16 * time.Millisecond, 1},
		{20 * time.Millisecond, 0},
		{32 * time.Millisecond, 1},
		{81 * time.Millisecond, 3}, // ticks at 48, 64, 80
		{95 * time.Millisecond, 0},
		{96 * time.Millisecond, 1},
	}

	for _, s := range steps {
		if got := c.Due(start.Add(s.at)); got != s.want {
			t.Errorf("Due(+%v) = %d, want %d", s.at, got, s.want)
		}
	}
}

func TestClockCatchUpIsBounded(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(16*time.Millisecond, start)

	if got := c.Due(start.Add(10 * time.Second)); got != maxCatchUp {
		t.Errorf("after a stall: got %d ticks, want %d", got, maxCatchUp)
	}
	if got := c.Until(start.Add(10 * time.Second)); got != 16*time.Millisecond {
		t.Errorf("next tick after a stall: got %v, want 16ms", got)
	}
}

func TestClockUntil(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(16*time.Millisecond, start)
	if got := c.Until(start.Add(10 * time.Millisecond)); got != 6*time.Millisecond {
		t.Errorf("Until: got %v, want 6ms", got)
	}
}

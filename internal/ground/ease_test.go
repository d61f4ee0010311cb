package ground

import "testing"

func TestEaseEndpoints(t *testing.T) {
	if got := Ease(2, 10, 0); got != 2 {
		t.Errorf("expected start value at t=0, got %v", got)
	}
	if got := Ease(2, 10, 1); got != 10 {
		t.Errorf("expected end value at t=1, got %v", got)
	}
	if got := Ease(2, 10, -3); got != 2 {
		t.Errorf("expected clamp to start below 0, got %v", got)
	}
	if got := Ease(2, 10, 7); got != 10 {
		t.Errorf("expected clamp to end above 1, got %v", got)
	}
}

func TestEaseMidpoint(t *testing.T) {
	// The cubic in-out curve crosses the middle exactly halfway through.
	if got := Ease(0, 1, 0.5); got != 0.5 {
		t.Errorf("expected 0.5 at midpoint, got %v", got)
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := Ease(0, 1, 0)
	for i := 1; i <= 100; i++ {
		cur := Ease(0, 1, float64(i)/100)
		if cur < prev {
			t.Fatalf("not monotonic at t=%v: %v < %v", float64(i)/100, cur, prev)
		}
		prev = cur
	}
}

func TestEaseDescending(t *testing.T) {
	// Works with end < start too, as the pulse radius animation needs.
	if got := Ease(10, 2, 0); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if got := Ease(10, 2, 1); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	mid := Ease(10, 2, 0.5)
	if mid != 6 {
		t.Errorf("expected 6 at midpoint, got %v", mid)
	}
}

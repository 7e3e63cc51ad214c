package grid

import (
	"testing"
	"time"
)

func TestEaseInOut(t *testing.T) {
	if EaseInOut(0) != 0 || EaseInOut(1) != 1 {
		t.Fatalf("Expected endpoints 0 and 1, got %v and %v", EaseInOut(0), EaseInOut(1))
	}
	if got := EaseInOut(0.5); got != 0.5 {
		t.Errorf("Expected midpoint 0.5, got %v", got)
	}
	if EaseInOut(-1) != 0 || EaseInOut(2) != 1 {
		t.Error("Expected progress to be clamped")
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOut not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestAnimatorSnapsOnRebuild(t *testing.T) {
	a := NewAnimator(300 * time.Millisecond)
	a.Sync([]Cell{{Offset: 10}, {Offset: -5}})

	if a.Value(0) != 10 || a.Value(1) != -5 {
		t.Errorf("Expected snapped values, got %v, %v", a.Value(0), a.Value(1))
	}
	if !a.Settled() {
		t.Error("Expected animator to be settled after rebuild")
	}
	if a.Value(7) != 0 || a.Value(-1) != 0 {
		t.Error("Expected 0 for out of range index")
	}
}

func TestAnimatorEasesTowardsTarget(t *testing.T) {
	a := NewAnimator(300 * time.Millisecond)
	cells := []Cell{{Offset: 0}}
	a.Sync(cells)

	cells[0].Offset = 40
	a.Sync(cells)
	if a.Settled() {
		t.Fatal("Expected a running transition")
	}

	prev := 0.0
	for i := 0; i < 10; i++ {
		a.Step(30 * time.Millisecond)
		v := a.Value(0)
		if v < prev || v > 40 {
			t.Fatalf("Step %d: value %v outside (%v, 40]", i, v, prev)
		}
		prev = v
	}
	if a.Value(0) != 40 || !a.Settled() {
		t.Errorf("Expected transition to finish at 40, got %v", a.Value(0))
	}

	// Cells themselves are never touched.
	if cells[0].Offset != 40 {
		t.Errorf("Cell offset modified: %v", cells[0].Offset)
	}
}

func TestAnimatorRetargetsMidway(t *testing.T) {
	a := NewAnimator(300 * time.Millisecond)
	cells := []Cell{{Offset: 0}}
	a.Sync(cells)

	cells[0].Offset = 40
	a.Sync(cells)
	a.Step(150 * time.Millisecond)
	mid := a.Value(0)
	if mid <= 0 || mid >= 40 {
		t.Fatalf("Expected value between 0 and 40 midway, got %v", mid)
	}

	cells[0].Offset = 0
	a.Sync(cells)
	a.Step(time.Millisecond)
	if v := a.Value(0); v > mid {
		t.Errorf("Expected retarget to start from %v, got %v", mid, v)
	}
	a.Step(time.Second)
	if a.Value(0) != 0 {
		t.Errorf("Expected to settle at 0, got %v", a.Value(0))
	}
}

func TestAnimatorResetSnapsSameCount(t *testing.T) {
	a := NewAnimator(300 * time.Millisecond)
	cells := []Cell{{Offset: 0}, {Offset: 0}}
	a.Sync(cells)
	cells[0].Offset = 40
	a.Sync(cells)
	a.Step(150 * time.Millisecond)

	fresh := []Cell{{Offset: 0}, {Offset: -12}}
	a.Reset(fresh)
	if a.Value(0) != 0 || a.Value(1) != -12 {
		t.Errorf("Expected rebuilt cells at their targets, got %v, %v", a.Value(0), a.Value(1))
	}
	if !a.Settled() {
		t.Error("Expected no running transition after reset")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

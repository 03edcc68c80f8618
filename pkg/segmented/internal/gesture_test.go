package internal

import "testing"

func TestHitTestHalfOpen(t *testing.T) {
	l := ComputeLayout([]string{"A", "B"}, 108, 40, UniformInsets(4))
	// A spans x [4, 54), B spans x [54, 104)

	tests := []struct {
		p        Point
		expected int
		ok       bool
	}{
		{Pt(4, 4), 0, true},
		{Pt(53, 35), 0, true},
		{Pt(54, 20), 1, true},
		{Pt(103, 20), 1, true},
		{Pt(104, 20), -1, false},
		{Pt(2, 20), -1, false},
		{Pt(20, 2), -1, false},
		{Pt(20, 36), -1, false},
	}

	for _, tt := range tests {
		idx, ok := HitTest(l.Items, tt.p)
		if idx != tt.expected || ok != tt.ok {
			t.Errorf("HitTest(%v) failed: expected (%d, %v), got (%d, %v)", tt.p, tt.expected, tt.ok, idx, ok)
		}
	}
}

func TestTrackerSingleContact(t *testing.T) {
	var tr Tracker

	if tr.Move(1) {
		t.Errorf("Move while idle failed: expected ignored")
	}
	if !tr.Down(1) || tr.State() != GestureTracking {
		t.Fatalf("Down failed: expected tracking")
	}
	if tr.Down(2) {
		t.Errorf("Second contact failed: expected ignored")
	}
	if tr.Move(2) {
		t.Errorf("Move of second contact failed: expected ignored")
	}
	if !tr.Move(1) {
		t.Errorf("Move of tracked contact failed: expected accepted")
	}
	if tr.Up(2) || tr.State() != GestureTracking {
		t.Errorf("Up of second contact failed: expected still tracking")
	}
	if !tr.Up(1) || tr.State() != GestureIdle {
		t.Errorf("Up failed: expected idle")
	}
}

func TestTrackerCancel(t *testing.T) {
	var tr Tracker
	tr.Down(7)

	if tr.Cancel(8) || tr.State() != GestureTracking {
		t.Errorf("Cancel of other contact failed: expected still tracking")
	}
	if !tr.Cancel(7) {
		t.Errorf("Cancel failed: expected tracked contact to end")
	}

	if tr.State() != GestureIdle {
		t.Errorf("Cancel failed: expected idle, got %v", tr.State())
	}
	if tr.Move(7) {
		t.Errorf("Move after cancel failed: expected ignored")
	}
}

func TestTrackerReset(t *testing.T) {
	var tr Tracker
	tr.Down(3)
	tr.Reset()

	if tr.State() != GestureIdle {
		t.Errorf("Reset failed: expected idle, got %v", tr.State())
	}
}

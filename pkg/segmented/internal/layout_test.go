package internal

import "testing"

func TestDistributeSumsToTotal(t *testing.T) {
	for _, total := range []int32{0, 1, 7, 100, 367, 1000} {
		for n := 1; n <= 7; n++ {
			widths := Distribute(total, n)
			if len(widths) != n {
				t.Fatalf("Distribute(%d, %d) failed: expected %d widths, got %d", total, n, n, len(widths))
			}
			var sum int32
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Errorf("Distribute(%d, %d) failed: expected sum %d, got %d", total, n, total, sum)
			}
		}
	}
}

func TestDistributeRemainderGoesLeft(t *testing.T) {
	widths := Distribute(367, 4)
	expected := []int32{92, 92, 92, 91}
	for i := range expected {
		if widths[i] != expected[i] {
			t.Errorf("Distribute failed at %d: expected %d, got %d", i, expected[i], widths[i])
		}
	}
}

func TestDistributeDegenerate(t *testing.T) {
	if got := Distribute(100, 0); got != nil {
		t.Errorf("Distribute with no items failed: expected nil, got %v", got)
	}
	for i, w := range Distribute(-5, 3) {
		if w != 0 {
			t.Errorf("Distribute negative total failed at %d: expected 0, got %d", i, w)
		}
	}
}

func TestComputeLayoutSpansInterior(t *testing.T) {
	items := []string{"Years", "Months", "Days", "All Photos"}
	l := ComputeLayout(items, 375, 40, UniformInsets(4))

	if len(l.Items) != len(items) {
		t.Fatalf("ComputeLayout failed: expected %d items, got %d", len(items), len(l.Items))
	}

	expectedInterior := Rect{X: 4, Y: 4, W: 367, H: 32}
	if l.Interior != expectedInterior {
		t.Errorf("Interior failed: expected %v, got %v", expectedInterior, l.Interior)
	}

	x := l.Interior.X
	for i, item := range l.Items {
		if item.Text != items[i] || item.Index != i {
			t.Errorf("Item %d failed: expected %q, got %q (index %d)", i, items[i], item.Text, item.Index)
		}
		if item.Rect.X != x {
			t.Errorf("Item %d failed: expected x %d, got %d", i, x, item.Rect.X)
		}
		if item.Rect.Y != 4 || item.Rect.H != 32 {
			t.Errorf("Item %d failed: expected y 4 h 32, got %v", i, item.Rect)
		}
		if d := item.Rect.W - l.Interior.W/int32(len(items)); d < 0 || d > 1 {
			t.Errorf("Item %d failed: width %d not within one unit of equal share", i, item.Rect.W)
		}
		x += item.Rect.W
	}

	if x != l.Interior.X+l.Interior.W {
		t.Errorf("Items failed to span interior: expected end %d, got %d", l.Interior.X+l.Interior.W, x)
	}

	expectedBackground := Rect{W: 375, H: 40}
	if l.Background != expectedBackground {
		t.Errorf("Background failed: expected %v, got %v", expectedBackground, l.Background)
	}
}

func TestComputeLayoutIsIdempotent(t *testing.T) {
	items := []string{"A", "B", "C"}
	first := ComputeLayout(items, 200, 40, UniformInsets(4))
	second := ComputeLayout(items, 200, 40, UniformInsets(4))

	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Errorf("Idempotence failed at %d: %v != %v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestComputeLayoutEmptyAndZeroWidth(t *testing.T) {
	if l := ComputeLayout(nil, 300, 40, UniformInsets(4)); len(l.Items) != 0 {
		t.Errorf("Empty layout failed: expected no items, got %d", len(l.Items))
	}

	l := ComputeLayout([]string{"A", "B"}, 0, 40, UniformInsets(4))
	for i, item := range l.Items {
		if item.Rect.W != 0 {
			t.Errorf("Zero width failed at %d: expected width 0, got %d", i, item.Rect.W)
		}
		if item.Rect.X != 4 {
			t.Errorf("Zero width failed at %d: expected x 4, got %d", i, item.Rect.X)
		}
	}
}

func TestFindItemFirstExactMatch(t *testing.T) {
	l := ComputeLayout([]string{"Days", "days", "Days"}, 300, 40, UniformInsets(4))

	item, ok := FindItem(l.Items, "Days")
	if !ok || item.Index != 0 {
		t.Errorf("FindItem failed: expected index 0, got %d (found %v)", item.Index, ok)
	}

	item, ok = FindItem(l.Items, "days")
	if !ok || item.Index != 1 {
		t.Errorf("FindItem case-sensitive failed: expected index 1, got %d (found %v)", item.Index, ok)
	}

	if _, ok := FindItem(l.Items, "Weeks"); ok {
		t.Errorf("FindItem failed: expected no match for absent item")
	}
}

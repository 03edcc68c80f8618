package internal

import "testing"

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var released []string
	c := NewTextureCacheWithSize(2, func(v string) {
		released = append(released, v)
	})

	c.Set("a", "A")
	c.Set("b", "B")
	c.Get("a")
	c.Set("c", "C")

	if _, ok := c.Get("b"); ok {
		t.Errorf("Eviction failed: expected b to be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != "A" {
		t.Errorf("Get failed: expected A, got %q (%v)", v, ok)
	}
	if len(released) != 1 || released[0] != "B" {
		t.Errorf("Release failed: expected [B], got %v", released)
	}

	c.Destroy()
	if c.Len() != 0 {
		t.Errorf("Destroy failed: expected empty cache, got %d", c.Len())
	}
	if len(released) != 3 {
		t.Errorf("Destroy failed: expected 3 releases, got %d", len(released))
	}
}

package internal

// LaidOutItem pairs an item's display text with its bounding rectangle in
// the container's coordinate space.
type LaidOutItem struct {
	Index int
	Text  string
	Rect  Rect
}

// Layout is the result of one layout pass.
type Layout struct {
	Container  Rect // Full strip, also the background capsule
	Interior   Rect // Container minus the insets
	Items      []LaidOutItem
	Background Rect
}

// Distribute splits total into n abutting segment widths.
// Every segment gets total/n and the leftmost total%n segments get one
// extra unit, so the widths always sum to total. A non-positive total yields
// zero-width segments.
func Distribute(total int32, n int) []int32 {
	if n <= 0 {
		return nil
	}

	widths := make([]int32, n)
	if total <= 0 {
		return widths
	}

	base := total / int32(n)
	rem := int(total % int32(n))
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

// ComputeLayout lays items out left to right inside a strip of the given
// size. The same inputs always produce the same geometry.
func ComputeLayout(items []string, width, height int32, insets Insets) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	container := Rect{W: width, H: height}
	interior := insets.Apply(container)

	l := Layout{
		Container:  container,
		Interior:   interior,
		Background: container,
	}
	if len(items) == 0 {
		return l
	}

	widths := Distribute(interior.W, len(items))
	l.Items = make([]LaidOutItem, len(items))

	x := interior.X
	for i, text := range items {
		l.Items[i] = LaidOutItem{
			Index: i,
			Text:  text,
			Rect:  Rect{X: x, Y: interior.Y, W: widths[i], H: interior.H},
		}
		x += widths[i]
	}
	return l
}

// FindItem returns the first laid-out item whose text equals text exactly.
func FindItem(items []LaidOutItem, text string) (LaidOutItem, bool) {
	for _, item := range items {
		if item.Text == text {
			return item, true
		}
	}
	return LaidOutItem{}, false
}

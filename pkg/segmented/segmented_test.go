package segmented

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var photoItems = []string{"Years", "Months", "Days", "All Photos"}

func newTestControl(items []string, width int32) (*Control, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(Options{
		Items: items,
		Width: width,
		Clock: clock.Now,
	})
	return c, clock
}

func center(r Rect) Point {
	return Pt(r.X+r.W/2, r.Y+r.H/2)
}

func TestSetItemsSelectsFirst(t *testing.T) {
	c, _ := newTestControl(nil, 375)

	if _, ok := c.SelectedItem(); ok {
		t.Errorf("Empty control failed: expected no selection")
	}

	c.SetItems([]string{"B", "A"})
	if sel, ok := c.SelectedItem(); !ok || sel != "B" {
		t.Errorf("SetItems failed: expected B, got %q (%v)", sel, ok)
	}

	c.SetSelectedItem("A")
	c.SetItems([]string{"C", "A"})
	if sel, _ := c.SelectedItem(); sel != "C" {
		t.Errorf("SetItems reset failed: expected C, got %q", sel)
	}

	c.SetItems(nil)
	if _, ok := c.SelectedItem(); ok {
		t.Errorf("SetItems(nil) failed: expected no selection")
	}
	if len(c.LaidOutItems()) != 0 {
		t.Errorf("SetItems(nil) failed: expected empty layout")
	}
	if _, visible := c.Highlight(c.Now()); visible {
		t.Errorf("SetItems(nil) failed: expected hidden highlight")
	}
}

func TestSetItemsCopiesInput(t *testing.T) {
	items := []string{"A", "B"}
	c, _ := newTestControl(items, 200)
	items[0] = "Z"

	if got := c.Items()[0]; got != "A" {
		t.Errorf("Items failed: expected A, got %q", got)
	}
}

func TestLayoutEqualWidths(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	laid := c.LaidOutItems()

	if len(laid) != 4 {
		t.Fatalf("Layout failed: expected 4 items, got %d", len(laid))
	}

	expectedX := []int32{4, 96, 188, 280}
	expectedW := []int32{92, 92, 92, 91}
	for i, item := range laid {
		if item.Text != photoItems[i] {
			t.Errorf("Item %d failed: expected %q, got %q", i, photoItems[i], item.Text)
		}
		if item.Rect.X != expectedX[i] || item.Rect.W != expectedW[i] {
			t.Errorf("Item %d failed: expected x %d w %d, got %v", i, expectedX[i], expectedW[i], item.Rect)
		}
	}

	w, h := c.Size()
	if w != 375 || h != 40 {
		t.Errorf("Size failed: expected 375x40, got %dx%d", w, h)
	}
}

func TestResizeRelayouts(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	c.Resize(808)

	for i, item := range c.LaidOutItems() {
		if item.Rect.W != 200 {
			t.Errorf("Resize failed at %d: expected width 200, got %d", i, item.Rect.W)
		}
	}

	c.Resize(-10)
	for i, item := range c.LaidOutItems() {
		if item.Rect.W != 0 {
			t.Errorf("Negative resize failed at %d: expected width 0, got %d", i, item.Rect.W)
		}
	}
}

func TestPointerDownSelectsItemUnderPointer(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	laid := c.LaidOutItems()

	for i, item := range laid {
		c.PointerDown(MousePointerID, center(item.Rect))
		if sel, _ := c.SelectedItem(); sel != photoItems[i] {
			t.Errorf("PointerDown on %d failed: expected %q, got %q", i, photoItems[i], sel)
		}
		c.PointerUp(MousePointerID)
	}
}

func TestPointerOutsideItemsKeepsSelection(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	c.SetSelectedItem("Months")

	if c.PointerDown(MousePointerID, Pt(1, 20)) {
		t.Errorf("PointerDown in margin failed: expected no change")
	}
	if c.PointerMove(MousePointerID, Pt(200, 39)) {
		t.Errorf("PointerMove in margin failed: expected no change")
	}
	if sel, _ := c.SelectedItem(); sel != "Months" {
		t.Errorf("Selection failed: expected Months, got %q", sel)
	}
}

func TestPointerMoveWithoutDownIsIgnored(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	days := c.LaidOutItems()[2]

	c.PointerMove(MousePointerID, center(days.Rect))
	if sel, _ := c.SelectedItem(); sel != "Years" {
		t.Errorf("Hover failed: expected Years, got %q", sel)
	}
}

func TestSecondContactIsIgnored(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	laid := c.LaidOutItems()

	c.PointerDown(1, center(laid[1].Rect))
	c.PointerDown(2, center(laid[3].Rect))
	c.PointerMove(2, center(laid[2].Rect))

	if sel, _ := c.SelectedItem(); sel != "Months" {
		t.Errorf("Second contact failed: expected Months, got %q", sel)
	}

	c.PointerUp(1)
	if c.GestureState() != GestureIdle {
		t.Errorf("PointerUp failed: expected idle")
	}
}

func TestOriginTranslatesPointer(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	c.SetOrigin(Pt(100, 50))

	days := c.LaidOutItems()[2]
	p := center(days.Rect)
	c.PointerDown(MousePointerID, Pt(p.X+100, p.Y+50))

	if sel, _ := c.SelectedItem(); sel != "Days" {
		t.Errorf("Origin failed: expected Days, got %q", sel)
	}
}

func TestUnknownSelectionKeepsHighlight(t *testing.T) {
	c, clock := newTestControl(photoItems, 375)
	clock.Advance(time.Second)

	before, _ := c.HighlightTarget()
	c.SetSelectedItem("Weeks")
	after, visible := c.HighlightTarget()

	if !visible || before != after {
		t.Errorf("Unknown selection failed: expected highlight kept at %v, got %v (visible %v)", before, after, visible)
	}
	if c.Animating(clock.Now()) {
		t.Errorf("Unknown selection failed: expected no animation")
	}
	if c.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex failed: expected -1, got %d", c.SelectedIndex())
	}
	if sel, ok := c.SelectedItem(); !ok || sel != "Weeks" {
		t.Errorf("SelectedItem failed: expected Weeks, got %q (%v)", sel, ok)
	}
}

func TestSnapInitialHighlight(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(Options{
		Items:                photoItems,
		Width:                375,
		Clock:                clock.Now,
		SnapInitialHighlight: true,
	})

	rect, visible := c.Highlight(clock.Now())
	if !visible || rect != c.LaidOutItems()[0].Rect.ToRectF() {
		t.Errorf("Snap failed: expected highlight on first item, got %v (visible %v)", rect, visible)
	}
	if c.Animating(clock.Now()) {
		t.Errorf("Snap failed: expected no animation")
	}
}

func TestHighlightWaitsForWidth(t *testing.T) {
	c, clock := newTestControl(photoItems, 0)

	if _, visible := c.Highlight(clock.Now()); visible {
		t.Errorf("Zero width failed: expected hidden highlight")
	}

	c.Resize(375)
	target, visible := c.HighlightTarget()
	if !visible || target != c.LaidOutItems()[0].Rect.ToRectF() {
		t.Errorf("Resize failed: expected highlight target on first item, got %v", target)
	}
}

func TestOnChangeFiresOncePerChange(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)

	var changes []SelectionChange
	cancel := c.OnChange(func(ch SelectionChange) {
		changes = append(changes, ch)
	})

	days := c.LaidOutItems()[2]
	c.PointerDown(MousePointerID, center(days.Rect))
	c.PointerMove(MousePointerID, Pt(center(days.Rect).X+5, 20))
	c.SetSelectedItem("Days")
	c.SetSelectedItem("Years")

	if len(changes) != 2 {
		t.Fatalf("OnChange failed: expected 2 changes, got %d", len(changes))
	}
	if changes[0].Current != "Days" || changes[0].Previous != "Years" || changes[0].Source != ChangeSourcePointer {
		t.Errorf("First change failed: got %+v", changes[0])
	}
	if changes[1].Current != "Years" || changes[1].Source != ChangeSourceProgrammatic {
		t.Errorf("Second change failed: got %+v", changes[1])
	}

	cancel()
	c.ClearSelection()
	if len(changes) != 2 {
		t.Errorf("Cancel failed: expected no more changes, got %d", len(changes))
	}
}

func TestSetItemsNotifiesReset(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)

	var got SelectionChange
	c.OnChange(func(ch SelectionChange) { got = ch })
	c.SetItems([]string{"Albums"})

	if got.Source != ChangeSourceItemsReset || got.Current != "Albums" || got.Previous != "Years" {
		t.Errorf("Reset notification failed: got %+v", got)
	}
}

func TestAppearanceInversion(t *testing.T) {
	c, clock := newTestControl(photoItems, 375)

	tests := []struct {
		appearance Appearance
		highlight  Material
		background Material
	}{
		{AppearanceLight, MaterialDark, MaterialLight},
		{AppearanceDark, MaterialLight, MaterialDark},
		{AppearanceUnspecified, MaterialSystem, MaterialSystem},
		{AppearanceDark, MaterialLight, MaterialDark},
		{AppearanceLight, MaterialDark, MaterialLight},
	}

	for _, tt := range tests {
		c.SetAppearance(tt.appearance)
		frame := c.Frame(clock.Now())
		if frame.Highlight.Material != tt.highlight {
			t.Errorf("Highlight material for %v failed: expected %v, got %v", tt.appearance, tt.highlight, frame.Highlight.Material)
		}
		if frame.Background.Material != tt.background {
			t.Errorf("Background material for %v failed: expected %v, got %v", tt.appearance, tt.background, frame.Background.Material)
		}
	}
}

func TestObserveAppearanceSource(t *testing.T) {
	c, _ := newTestControl(photoItems, 375)
	src := NewAppearanceBroadcaster(AppearanceDark)

	cancel := c.Observe(src)
	if c.Appearance() != AppearanceDark {
		t.Errorf("Observe failed: expected initial dark, got %v", c.Appearance())
	}

	src.Set(AppearanceLight)
	if c.HighlightMaterial() != MaterialDark {
		t.Errorf("Observe failed: expected dark highlight, got %v", c.HighlightMaterial())
	}

	cancel()
	src.Set(AppearanceDark)
	if c.Appearance() != AppearanceLight {
		t.Errorf("Cancel failed: expected appearance to stay light, got %v", c.Appearance())
	}
}

func TestFrameCapsules(t *testing.T) {
	c, clock := newTestControl(photoItems, 375)
	clock.Advance(time.Second)

	frame := c.Frame(clock.Now())
	if frame.Background.Rect != (RectF{W: 375, H: 40}) || frame.Background.Radius != 20 {
		t.Errorf("Background failed: got %+v", frame.Background)
	}
	if frame.Highlight.Radius != 16 || !frame.Highlight.Visible {
		t.Errorf("Highlight failed: got %+v", frame.Highlight)
	}
	if frame.Selected != 0 || frame.Animating {
		t.Errorf("Frame failed: expected selected 0 and settled, got %d %v", frame.Selected, frame.Animating)
	}
}

func TestSlideToSelectScenario(t *testing.T) {
	c, clock := newTestControl(photoItems, 375)

	if sel, _ := c.SelectedItem(); sel != "Years" {
		t.Fatalf("Construction failed: expected Years, got %q", sel)
	}
	laid := c.LaidOutItems()
	if len(laid) != 4 {
		t.Fatalf("Construction failed: expected 4 items, got %d", len(laid))
	}
	clock.Advance(time.Second)

	c.PointerDown(MousePointerID, center(laid[2].Rect))
	if sel, _ := c.SelectedItem(); sel != "Days" {
		t.Errorf("PointerDown failed: expected Days, got %q", sel)
	}
	target, _ := c.HighlightTarget()
	if target != laid[2].Rect.ToRectF() {
		t.Errorf("Highlight target failed: expected %v, got %v", laid[2].Rect.ToRectF(), target)
	}
	if !c.Animating(clock.Now()) {
		t.Errorf("Highlight failed: expected animation scheduled")
	}

	clock.Advance(150 * time.Millisecond)
	midFlight, _ := c.Highlight(clock.Now())

	c.PointerMove(MousePointerID, center(laid[0].Rect))
	if sel, _ := c.SelectedItem(); sel != "Years" {
		t.Errorf("PointerMove failed: expected Years, got %q", sel)
	}
	retargeted, _ := c.Highlight(clock.Now())
	if retargeted != midFlight {
		t.Errorf("Retarget failed: expected to start from %v, got %v", midFlight, retargeted)
	}
	target, _ = c.HighlightTarget()
	if target != laid[0].Rect.ToRectF() {
		t.Errorf("Retarget failed: expected target %v, got %v", laid[0].Rect.ToRectF(), target)
	}

	clock.Advance(500 * time.Millisecond)
	settled, _ := c.Highlight(clock.Now())
	if settled != laid[0].Rect.ToRectF() {
		t.Errorf("Settle failed: expected %v, got %v", laid[0].Rect.ToRectF(), settled)
	}
}

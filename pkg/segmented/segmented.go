package segmented

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
)

// Control is the state machine behind a segmented control. It owns the item
// list and the selection, derives item geometry for the current width,
// tracks one pointer contact at a time and animates the highlight.
//
// Every mutating call recomputes layout and re-targets the highlight
// synchronously. A Control is not safe for concurrent use.
type Control struct {
	opts   Options
	logger *slog.Logger
	clock  func() time.Time

	items        []string
	selected     string
	hasSelection bool

	width  int32
	origin Point
	layout internal.Layout

	highlight  *internal.Highlight
	tracker    internal.Tracker
	appearance Appearance

	listeners    []listener
	nextListener int
	unobserve    func()
}

type listener struct {
	id int
	fn func(SelectionChange)
}

// New creates a Control. The first of opts.Items, if any, is selected.
func New(opts Options) *Control {
	opts = opts.withDefaults()

	c := &Control{
		opts:       opts,
		logger:     opts.Logger,
		clock:      opts.Clock,
		width:      clampWidth(opts.Width),
		appearance: opts.Appearance,
		highlight: internal.NewHighlight(
			opts.HighlightDuration,
			internal.NewSpringCurve(
				constants.HighlightSpringDamping,
				constants.HighlightSpringVelocity,
				opts.HighlightDuration.Seconds(),
			),
		),
	}

	c.SetItems(opts.Items)
	return c
}

func clampWidth(width int32) int32 {
	if width < 0 {
		return 0
	}
	return width
}

// SetItems replaces the item list. The selection is reset to the first
// item, or cleared when items is empty.
func (c *Control) SetItems(items []string) {
	prev, hadPrev := c.selected, c.hasSelection

	c.items = append([]string(nil), items...)
	if len(c.items) > 0 {
		c.selected, c.hasSelection = c.items[0], true
	} else {
		c.selected, c.hasSelection = "", false
		c.highlight.Hide()
	}

	c.logger.Debug("segmented items replaced", "count", len(c.items))
	c.relayout()
	c.notify(prev, hadPrev, ChangeSourceItemsReset)
}

// Items returns a copy of the item list.
func (c *Control) Items() []string {
	return append([]string(nil), c.items...)
}

// SetSelectedItem selects item. A value that is not in the item list is
// stored as is and leaves the highlight where it was.
func (c *Control) SetSelectedItem(item string) {
	c.setSelection(item, true, ChangeSourceProgrammatic)
}

// ClearSelection clears the selection. The highlight stays where it was.
func (c *Control) ClearSelection() {
	c.setSelection("", false, ChangeSourceProgrammatic)
}

// SelectedItem returns the selected item and whether there is one.
func (c *Control) SelectedItem() (string, bool) {
	return c.selected, c.hasSelection
}

// SelectedIndex returns the index of the first item equal to the
// selection, or -1.
func (c *Control) SelectedIndex() int {
	if !c.hasSelection {
		return -1
	}
	for i, item := range c.items {
		if item == c.selected {
			return i
		}
	}
	return -1
}

// Resize sets the container width. The height is fixed.
func (c *Control) Resize(width int32) {
	width = clampWidth(width)
	if width == c.width {
		return
	}
	c.width = width
	c.relayout()
}

// Size returns the container size.
func (c *Control) Size() (width, height int32) {
	return c.width, constants.StripHeight
}

// SetOrigin sets where the control sits in host coordinates. Pointer events
// are translated by it before hit testing.
func (c *Control) SetOrigin(origin Point) {
	c.origin = origin
}

// Origin returns the control's position in host coordinates.
func (c *Control) Origin() Point {
	return c.origin
}

// LaidOutItems returns the current item geometry in container coordinates.
func (c *Control) LaidOutItems() []LaidOutItem {
	return append([]LaidOutItem(nil), c.layout.Items...)
}

// HitTest returns the index of the item under p, given in host coordinates.
func (c *Control) HitTest(p Point) (int, bool) {
	return internal.HitTest(c.layout.Items, p.Sub(c.origin))
}

// GestureState returns the state of the pointer tracker.
func (c *Control) GestureState() GestureState {
	return c.tracker.State()
}

// HandlePointer feeds a pointer event to the tracker. It reports whether
// the event changed the selection.
func (c *Control) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if !c.tracker.Down(ev.ID) {
			return false
		}
		return c.selectAt(ev.Point)
	case PointerMove:
		if !c.tracker.Move(ev.ID) {
			return false
		}
		return c.selectAt(ev.Point)
	case PointerUp:
		c.tracker.Up(ev.ID)
	case PointerCancel:
		c.tracker.Cancel(ev.ID)
	}
	return false
}

// PointerDown starts a gesture for pointer id at p.
func (c *Control) PointerDown(id int64, p Point) bool {
	return c.HandlePointer(PointerEvent{Kind: PointerDown, ID: id, Point: p})
}

// PointerMove continues the gesture of pointer id at p.
func (c *Control) PointerMove(id int64, p Point) bool {
	return c.HandlePointer(PointerEvent{Kind: PointerMove, ID: id, Point: p})
}

// PointerUp ends the gesture of pointer id.
func (c *Control) PointerUp(id int64) {
	c.HandlePointer(PointerEvent{Kind: PointerUp, ID: id})
}

// PointerCancel ends the gesture of pointer id without selecting.
func (c *Control) PointerCancel(id int64) {
	c.HandlePointer(PointerEvent{Kind: PointerCancel, ID: id})
}

func (c *Control) selectAt(p Point) bool {
	idx, ok := c.HitTest(p)
	if !ok {
		return false
	}
	return c.setSelection(c.layout.Items[idx].Text, true, ChangeSourcePointer)
}

// SetAppearance updates the ambient appearance. The highlight material is
// its inverse.
func (c *Control) SetAppearance(a Appearance) {
	if a == c.appearance {
		return
	}
	c.appearance = a
	c.logger.Debug("segmented appearance changed",
		"appearance", a.String(),
		"highlight_material", internal.InvertedMaterial(a).String(),
	)
	c.relayout()
}

// Appearance returns the ambient appearance last reported to the control.
func (c *Control) Appearance() Appearance {
	return c.appearance
}

// HighlightMaterial returns the material the highlight is drawn with.
func (c *Control) HighlightMaterial() Material {
	return internal.InvertedMaterial(c.appearance)
}

// Observe samples src and subscribes to its changes, replacing any source
// observed before. The returned function stops observing. src must deliver
// changes on the UI goroutine.
func (c *Control) Observe(src AppearanceSource) (cancel func()) {
	if c.unobserve != nil {
		c.unobserve()
		c.unobserve = nil
	}

	c.SetAppearance(src.Appearance())
	unsubscribe := src.Subscribe(c.SetAppearance)

	var stopped bool
	stop := func() {
		if stopped {
			return
		}
		stopped = true
		unsubscribe()
	}
	c.unobserve = stop
	return stop
}

// OnChange registers fn to be called after every selection change. The
// returned function removes it.
func (c *Control) OnChange(fn func(SelectionChange)) (cancel func()) {
	id := c.nextListener
	c.nextListener++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Highlight returns the highlight rectangle at now and whether it is shown.
func (c *Control) Highlight(now time.Time) (RectF, bool) {
	return c.highlight.Current(now), c.highlight.Visible()
}

// HighlightTarget returns the rectangle the highlight is moving to.
func (c *Control) HighlightTarget() (RectF, bool) {
	return c.highlight.Target(), c.highlight.Visible()
}

// Animating reports whether the highlight is still moving at now. Hosts
// keep redrawing while it is true.
func (c *Control) Animating(now time.Time) bool {
	return c.highlight.Animating(now)
}

// HighlightDuration returns how long one highlight transition takes.
func (c *Control) HighlightDuration() time.Duration {
	return c.opts.HighlightDuration
}

// Now returns the control's clock reading.
func (c *Control) Now() time.Time {
	return c.clock()
}

func (c *Control) setSelection(item string, has bool, source ChangeSource) bool {
	prev, hadPrev := c.selected, c.hasSelection
	c.selected, c.hasSelection = item, has
	if !has {
		c.selected = ""
	}

	c.relayout()
	return c.notify(prev, hadPrev, source)
}

func (c *Control) relayout() {
	c.layout = internal.ComputeLayout(
		c.items,
		c.width,
		constants.StripHeight,
		internal.UniformInsets(constants.StripMargin),
	)
	c.retarget()
}

func (c *Control) retarget() {
	if !c.hasSelection {
		return
	}

	item, ok := internal.FindItem(c.layout.Items, c.selected)
	if !ok {
		return
	}

	// Nothing to grow into until the control has been given a width.
	if !c.highlight.Placed() && item.Rect.Empty() {
		return
	}

	now := c.clock()
	if !c.highlight.Placed() && c.opts.SnapInitialHighlight {
		c.highlight.Place(item.Rect, now)
		return
	}

	if c.highlight.Retarget(item.Rect, now) {
		c.logger.Debug("segmented highlight retargeted", "item", item.Text, "rect", item.Rect.String())
	}
}

func (c *Control) notify(prev string, hadPrev bool, source ChangeSource) bool {
	if prev == c.selected && hadPrev == c.hasSelection {
		return false
	}

	change := SelectionChange{
		Previous:    prev,
		HadPrevious: hadPrev,
		Current:     c.selected,
		HasCurrent:  c.hasSelection,
		Source:      source,
	}

	c.logger.Debug("segmented selection changed",
		"previous", prev,
		"current", c.selected,
		"source", source.String(),
	)

	for _, l := range append([]listener(nil), c.listeners...) {
		l.fn(change)
	}
	return true
}

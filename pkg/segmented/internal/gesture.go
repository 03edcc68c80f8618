package internal

// GestureState is the state of the pointer tracker.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureTracking
)

func (s GestureState) String() string {
	if s == GestureTracking {
		return "tracking"
	}
	return "idle"
}

// HitTest returns the index of the item containing p.
func HitTest(items []LaidOutItem, p Point) (int, bool) {
	for i, item := range items {
		if item.Rect.Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Tracker follows one pointer contact at a time. It only decides whether an
// event belongs to the tracked gesture; hit testing and selection happen in
// the caller.
type Tracker struct {
	state   GestureState
	pointer int64
}

// State returns the current gesture state.
func (t *Tracker) State() GestureState {
	return t.state
}

// Pointer returns the tracked pointer ID. Only meaningful while tracking.
func (t *Tracker) Pointer() int64 {
	return t.pointer
}

// Down starts tracking id. It returns false when another contact is
// already being tracked.
func (t *Tracker) Down(id int64) bool {
	if t.state == GestureTracking && t.pointer != id {
		return false
	}
	t.state = GestureTracking
	t.pointer = id
	return true
}

// Move reports whether a move of id belongs to the tracked gesture.
func (t *Tracker) Move(id int64) bool {
	return t.state == GestureTracking && t.pointer == id
}

// Up ends the gesture if id is the tracked contact.
func (t *Tracker) Up(id int64) bool {
	if !t.Move(id) {
		return false
	}
	t.state = GestureIdle
	return true
}

// Cancel ends the gesture if id is the tracked contact.
func (t *Tracker) Cancel(id int64) bool {
	return t.Up(id)
}

// Reset ends any gesture in progress.
func (t *Tracker) Reset() {
	t.state = GestureIdle
}

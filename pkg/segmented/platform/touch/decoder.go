package touch

import (
	"sort"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	evdev "github.com/holoplot/go-evdev"
)

// Axis maps a raw absolute axis range onto [0, size).
type Axis struct {
	Min  int32
	Max  int32
	Size int32
}

func (a Axis) scale(v int32) int32 {
	span := int64(a.Max) - int64(a.Min)
	if span <= 0 || a.Size <= 0 {
		return v
	}
	s := (int64(v) - int64(a.Min)) * int64(a.Size) / (span + 1)
	if s < 0 {
		return 0
	}
	if s >= int64(a.Size) {
		return a.Size - 1
	}
	return int32(s)
}

type contact struct {
	id      int32 // tracking ID, -1 when lifted
	x, y    int32
	down    bool
	changed bool
	lifting bool
}

// Decoder turns a stream of kernel input events into pointer events. It
// understands multi-touch protocol B (slots) and single-touch devices that
// report ABS_X/ABS_Y with BTN_TOUCH. Events are emitted on SYN_REPORT.
type Decoder struct {
	X Axis
	Y Axis

	slot     int32
	contacts map[int32]*contact
	multi    bool
}

// NewDecoder creates a decoder for the given axes. multi selects protocol
// B up front; otherwise it is detected from the first ABS_MT event.
func NewDecoder(x, y Axis, multi bool) *Decoder {
	return &Decoder{
		X:        x,
		Y:        y,
		contacts: make(map[int32]*contact),
		multi:    multi,
	}
}

func (d *Decoder) current() *contact {
	c, ok := d.contacts[d.slot]
	if !ok {
		c = &contact{id: -1}
		d.contacts[d.slot] = c
	}
	return c
}

// Feed consumes one input event and returns the pointer events completed by
// it, if any.
func (d *Decoder) Feed(ev *evdev.InputEvent) []segmented.PointerEvent {
	switch ev.Type {
	case evdev.EV_ABS:
		d.feedAbs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		// Multi-touch devices also report BTN_TOUCH for legacy readers.
		if ev.Code == evdev.BTN_TOUCH && !d.multi {
			d.slot = 0
			c := d.current()
			if ev.Value != 0 && c.id < 0 {
				c.id = 0
				c.down = true
				c.changed = true
			} else if ev.Value == 0 && c.id >= 0 {
				c.lifting = true
				c.changed = true
			}
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.flush()
		}
	}
	return nil
}

func (d *Decoder) feedAbs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT, evdev.ABS_MT_TRACKING_ID, evdev.ABS_MT_POSITION_X, evdev.ABS_MT_POSITION_Y:
		d.multi = true
	}

	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
	case evdev.ABS_MT_TRACKING_ID:
		c := d.current()
		if value < 0 {
			if c.id >= 0 {
				c.lifting = true
				c.changed = true
			}
			return
		}
		c.id = value
		c.down = true
		c.lifting = false
		c.changed = true
	case evdev.ABS_MT_POSITION_X:
		c := d.current()
		c.x = d.X.scale(value)
		c.changed = true
	case evdev.ABS_MT_POSITION_Y:
		c := d.current()
		c.y = d.Y.scale(value)
		c.changed = true
	case evdev.ABS_X:
		if !d.multi {
			c := d.current()
			c.x = d.X.scale(value)
			c.changed = true
		}
	case evdev.ABS_Y:
		if !d.multi {
			c := d.current()
			c.y = d.Y.scale(value)
			c.changed = true
		}
	}
}

func (d *Decoder) slots() []int32 {
	slots := make([]int32, 0, len(d.contacts))
	for slot := range d.contacts {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

func (d *Decoder) flush() []segmented.PointerEvent {
	var out []segmented.PointerEvent
	for _, slot := range d.slots() {
		c := d.contacts[slot]
		if !c.changed {
			continue
		}
		c.changed = false

		if c.id < 0 {
			continue
		}

		id := pointerID(c.id)
		p := segmented.Pt(c.x, c.y)
		switch {
		case c.lifting:
			out = append(out, segmented.PointerEvent{Kind: segmented.PointerUp, ID: id, Point: p})
			c.id = -1
			c.lifting = false
			c.down = false
		case c.down:
			out = append(out, segmented.PointerEvent{Kind: segmented.PointerDown, ID: id, Point: p})
			c.down = false
		default:
			out = append(out, segmented.PointerEvent{Kind: segmented.PointerMove, ID: id, Point: p})
		}
	}
	return out
}

// pointerID places a kernel tracking ID in the touchscreen pointer range.
func pointerID(tracking int32) int64 {
	return segmented.TouchPointerBase + int64(tracking)
}

// Reset drops all contacts, emitting a cancel for each one that was down.
// Used after SYN_DROPPED, when the kernel lost events.
func (d *Decoder) Reset() []segmented.PointerEvent {
	var out []segmented.PointerEvent
	for _, slot := range d.slots() {
		c := d.contacts[slot]
		if c.id >= 0 && !c.down {
			out = append(out, segmented.PointerEvent{
				Kind:  segmented.PointerCancel,
				ID:    pointerID(c.id),
				Point: segmented.Pt(c.x, c.y),
			})
		}
	}
	d.contacts = make(map[int32]*contact)
	d.slot = 0
	return out
}

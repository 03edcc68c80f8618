package segmented

// AppearanceSource reports the ambient appearance and notifies subscribers
// when it changes.
type AppearanceSource interface {
	Appearance() Appearance
	Subscribe(fn func(Appearance)) (unsubscribe func())
}

// AppearanceBroadcaster is an AppearanceSource driven by explicit Set calls.
// Subscribers are called synchronously from Set.
type AppearanceBroadcaster struct {
	current     Appearance
	subscribers map[int]func(Appearance)
	next        int
}

// NewAppearanceBroadcaster creates a broadcaster reporting initial.
func NewAppearanceBroadcaster(initial Appearance) *AppearanceBroadcaster {
	return &AppearanceBroadcaster{
		current:     initial,
		subscribers: make(map[int]func(Appearance)),
	}
}

func (b *AppearanceBroadcaster) Appearance() Appearance {
	return b.current
}

func (b *AppearanceBroadcaster) Subscribe(fn func(Appearance)) func() {
	id := b.next
	b.next++
	b.subscribers[id] = fn
	return func() {
		delete(b.subscribers, id)
	}
}

// Set records a new appearance and notifies subscribers if it changed.
func (b *AppearanceBroadcaster) Set(a Appearance) {
	if a == b.current {
		return
	}
	b.current = a
	for i := 0; i < b.next; i++ {
		if fn, ok := b.subscribers[i]; ok {
			fn(a)
		}
	}
}

// Package input connects host input events to a polydraw controller.
//
// Hosts (a window loop, a script replayer) publish raw screen-space
// events on a [Bus]. A [Binder] subscribes to the bus, normalizes
// coordinates through a viewport and calls into the controller. Nothing
// in here keeps global state; every handler gets its collaborators
// explicitly.
package input

import "slices"

// Kind identifies a host event.
type Kind uint8

const (
	// Click is a primary button press at screen (X, Y).
	Click Kind = iota
	// PointerMove is a pointer motion to screen (X, Y).
	PointerMove
	// Resize reports a new surface size; X is the width, Y the height.
	Resize
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case PointerMove:
		return "pointermove"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one host input event in screen coordinates.
type Event struct {
	Kind Kind
	X, Y float64
}

// Handler receives dispatched events.
type Handler func(Event)

// Subscription identifies a handler registration. The zero value never
// identifies a live subscription.
type Subscription uint64

type entry struct {
	sub Subscription
	h   Handler
}

// Bus delivers events to subscribers in subscription order.
// Subscriptions are tokens, so the same function may be registered
// several times and removed without comparing function values.
//
// Bus is not safe for concurrent use.
type Bus struct {
	handlers map[Kind][]entry
	next     Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Kind][]entry)}
}

// Subscribe registers h for events of kind k.
func (b *Bus) Subscribe(k Kind, h Handler) Subscription {
	b.next++
	b.handlers[k] = append(b.handlers[k], entry{sub: b.next, h: h})
	return b.next
}

// Unsubscribe removes a subscription. It reports whether the
// subscription was live.
func (b *Bus) Unsubscribe(s Subscription) bool {
	if s == 0 {
		return false
	}
	for k, es := range b.handlers {
		i := slices.IndexFunc(es, func(e entry) bool { return e.sub == s })
		if i < 0 {
			continue
		}
		b.handlers[k] = slices.Delete(es, i, i+1)
		return true
	}
	return false
}

// Subscribers returns the number of live subscriptions for k.
func (b *Bus) Subscribers(k Kind) int {
	return len(b.handlers[k])
}

// Dispatch delivers ev to every handler subscribed to ev.Kind at the
// moment of the call. Handlers may subscribe or unsubscribe while
// running; changes take effect from the next dispatch, except that a
// handler removed earlier in the same dispatch is skipped.
func (b *Bus) Dispatch(ev Event) {
	snapshot := slices.Clone(b.handlers[ev.Kind])
	for _, e := range snapshot {
		if !b.live(ev.Kind, e.sub) {
			continue
		}
		e.h(ev)
	}
}

func (b *Bus) live(k Kind, s Subscription) bool {
	return slices.ContainsFunc(b.handlers[k], func(e entry) bool { return e.sub == s })
}

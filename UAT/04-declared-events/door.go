package declared

import "github.com/toejough/eventmon"

//go:generate eventgen Door

// Door demonstrates an explicitly declared event set. The generated Events method makes *Door an
// eventmon.EventSource, so Monitor uses exactly the listed events, including the lazily created
// Locked event once it exists.
type Door struct {
	Opened eventmon.Event[func(sender any)]
	Closed eventmon.Event[func(sender any)]
	Locked *eventmon.Event[func(sender any, code string)]

	open bool
}

// EnableLock creates the Locked event. Monitor only sees it when called after this.
func (d *Door) EnableLock() {
	if d.Locked == nil {
		d.Locked = &eventmon.Event[func(sender any, code string)]{}
	}
}

// Lock closes the door and raises Locked, if locking is enabled.
func (d *Door) Lock(code string) {
	d.Toggle(false)

	if d.Locked == nil {
		return
	}

	for _, handler := range d.Locked.Handlers() {
		handler(d, code)
	}
}

// Toggle opens or closes the door, raising the matching event on a change.
func (d *Door) Toggle(open bool) {
	if d.open == open {
		return
	}

	d.open = open

	event := &d.Closed
	if open {
		event = &d.Opened
	}

	for _, handler := range event.Handlers() {
		handler(d)
	}
}

package core

import "time"

// Capture is one observed occurrence of an event: the arguments its handler received, in
// delivery order. For conventional events that is [sender, args].
type Capture struct {
	Event  string
	Params []any
	// Sequence orders occurrences across every monitored event in the process.
	Sequence uint64
	At       time.Time
}

// Sender returns the first parameter of the occurrence, if there is one.
func (c Capture) Sender() (any, bool) {
	if len(c.Params) == 0 {
		return nil, false
	}

	return c.Params[0], true
}

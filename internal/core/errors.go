package core

import "errors"

// Usage errors. These mean the test itself is malformed, as opposed to the code under test
// misbehaving, so they are returned from Monitor and panicked from the query functions instead
// of being reported through the TestReporter.
var (
	ErrNilSource          = errors.New("cannot monitor a nil source")
	ErrNoEvents           = errors.New("source does not expose any events")
	ErrDuplicateEvent     = errors.New("source declares the same event twice")
	ErrUnsupportedHandler = errors.New("unsupported event handler type")
	ErrNotMonitored       = errors.New("source is not being monitored")
	ErrUnknownEvent       = errors.New("source does not expose the event")
	ErrEmptyRecorder      = errors.New("no occurrences were recorded")
	ErrNoArguments        = errors.New("event occurrence carries no arguments")
	ErrNoArgumentOfType   = errors.New("no argument of the event is of the requested type")
	ErrAmbiguousArgument  = errors.New("ambiguous argument type")
	ErrNotAField          = errors.New("pointer does not address a field of the source")
)

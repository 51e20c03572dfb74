// Package eventmon lets tests observe the events an object publishes and assert on them
// fluently: that an event fired, that it did not, who sent it and with which arguments, and
// which properties changed.
//
//	recorders, err := eventmon.Monitor(widget)
//	...
//	widget.Rename("knob")
//	eventmon.ShouldRaise(t, widget, "Changed").WithSender(widget)
//
// This is the public API entry point. Implementation lives in internal/core.
package eventmon

import (
	"github.com/sirupsen/logrus"
	"github.com/toejough/eventmon/internal/core"
)

// PropertyChanged is the name of the conventional property-change notification event.
const PropertyChanged = core.PropertyChanged

// LogLevelEnv names the environment variable holding the default log level.
const LogLevelEnv = core.LogLevelEnv

// Types re-exported from internal/core.

// Capture is one recorded occurrence of an event.
type Capture = core.Capture

// Event is a list of handlers a source publishes to; embed it as an exported field.
type Event[F any] = core.Event[F]

// EventSource is implemented by sources that declare their events explicitly.
type EventSource = core.EventSource

// Matcher defines the interface for flexible argument matching.
type Matcher = core.Matcher

// NamedEvent pairs an event with the name assertions refer to it by.
type NamedEvent = core.NamedEvent

// Option configures a Monitor call.
type Option = core.Option

// PropertyChangedArgs is the payload of the PropertyChanged event.
type PropertyChangedArgs = core.PropertyChangedArgs

// PropertyChangedHandler is the handler signature of the PropertyChanged event.
type PropertyChangedHandler = core.PropertyChangedHandler

// PropertyNotifier is implemented by sources that publish property-change notifications.
type PropertyNotifier = core.PropertyNotifier

// Raised is the view of an event's occurrences returned by assertions, for chaining.
type Raised = core.Raised

// Recorder is the log of one event's occurrences on one monitored source.
type Recorder = core.Recorder

// RecorderSet is every recorder created by one Monitor call.
type RecorderSet = core.RecorderSet

// Subscribable is anything a recording handler can be attached to.
type Subscribable = core.Subscribable

// TestReporter is the minimal interface eventmon needs from test frameworks.
type TestReporter = core.TestReporter

// Usage errors re-exported from internal/core.
var (
	ErrNilSource          = core.ErrNilSource
	ErrNoEvents           = core.ErrNoEvents
	ErrDuplicateEvent     = core.ErrDuplicateEvent
	ErrUnsupportedHandler = core.ErrUnsupportedHandler
	ErrNotMonitored       = core.ErrNotMonitored
	ErrUnknownEvent       = core.ErrUnknownEvent
	ErrEmptyRecorder      = core.ErrEmptyRecorder
	ErrNoArguments        = core.ErrNoArguments
	ErrNoArgumentOfType   = core.ErrNoArgumentOfType
	ErrAmbiguousArgument  = core.ErrAmbiguousArgument
	ErrNotAField          = core.ErrNotAField
)

// Functions re-exported from internal/core.

// MatchValue checks if actual matches expected, a Matcher or a plain value.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Monitor starts recording every event source publishes. Monitoring the same source again
// replaces the earlier recorders.
func Monitor[T any](source *T, options ...Option) (RecorderSet, error) {
	return core.Monitor(source, options...)
}

// OccurredEvents returns every occurrence of every monitored event of source, in firing order.
func OccurredEvents[T any](source *T) []Capture {
	return core.OccurredEvents(source)
}

// PropertyName resolves a pointer to one of source's fields to the field's name.
func PropertyName[T any](source *T, field any) string {
	return core.PropertyName(source, field)
}

// RecorderFor returns the recorder of the named event of source.
func RecorderFor[T any](source *T, event string) *Recorder {
	return core.RecorderFor(source, event)
}

// Recorders returns the recorders of the latest Monitor call on source.
func Recorders[T any](source *T) RecorderSet {
	return core.Recorders(source)
}

// ShouldNotRaise asserts that the named event of source has not fired.
func ShouldNotRaise[T any](t TestReporter, source *T, event string, reasonAndArgs ...any) {
	t.Helper()
	core.ShouldNotRaise(t, source, event, reasonAndArgs...)
}

// ShouldNotRaisePropertyChangeFor asserts that source has not announced a change of property.
func ShouldNotRaisePropertyChangeFor[T any](t TestReporter, source *T, property string, reasonAndArgs ...any) {
	t.Helper()
	core.ShouldNotRaisePropertyChangeFor(t, source, property, reasonAndArgs...)
}

// ShouldRaise asserts that the named event of source fired at least once.
func ShouldRaise[T any](t TestReporter, source *T, event string, reasonAndArgs ...any) *Raised {
	t.Helper()

	return core.ShouldRaise(t, source, event, reasonAndArgs...)
}

// ShouldRaisePropertyChangeFor asserts that source announced a change of property.
func ShouldRaisePropertyChangeFor[T any](t TestReporter, source *T, property string, reasonAndArgs ...any) *Raised {
	t.Helper()

	return core.ShouldRaisePropertyChangeFor(t, source, property, reasonAndArgs...)
}

// WithArgs narrows raised to occurrences whose argument of type A satisfies predicate.
func WithArgs[A any](raised *Raised, predicate func(A) bool) *Raised {
	return core.WithArgs(raised, predicate)
}

// WithLogger sends a monitor's logs to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return core.WithLogger(logger)
}

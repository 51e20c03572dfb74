package core

import (
	"fmt"
	"reflect"
)

// OccurredEvents returns every occurrence of every monitored event of source, in firing order.
// It panics with ErrNotMonitored if source is not monitored.
func OccurredEvents[T any](source *T) []Capture {
	recorders := Recorders(source)

	var all []Capture
	for _, recorder := range recorders {
		all = append(all, recorder.Captures()...)
	}

	sortBySequence(all)

	return all
}

// RecorderFor returns the recorder of the named event of source. It panics with ErrNotMonitored
// or ErrUnknownEvent.
func RecorderFor[T any](source *T, event string) *Recorder {
	recorder, ok := Recorders(source).Find(event)
	if !ok {
		panic(fmt.Errorf("%w: type %T does not expose an event named %q", ErrUnknownEvent, source, event))
	}

	return recorder
}

// Recorders returns the recorders created by the latest Monitor call on source. It panics with
// ErrNotMonitored if there is none.
func Recorders[T any](source *T) RecorderSet {
	sess, err := lookup(source)
	if err != nil {
		panic(err)
	}

	return sess.recorders
}

// ShouldNotRaise asserts that the named event of source has not fired since Monitor was called.
func ShouldNotRaise[T any](t TestReporter, source *T, event string, reasonAndArgs ...any) {
	t.Helper()

	recorder := RecorderFor(source, event)
	count := recorder.Count()

	verify(t, count == 0,
		"Expected object %s to not raise event %q%s, but it did %d time(s).",
		recorder.sourceType, event, formatReason(reasonAndArgs), count,
	)
}

// ShouldNotRaisePropertyChangeFor asserts that source has not raised PropertyChanged for the
// named property.
func ShouldNotRaisePropertyChangeFor[T any](
	t TestReporter, source *T, property string, reasonAndArgs ...any,
) {
	t.Helper()

	recorder := RecorderFor(source, PropertyChanged)

	for _, capture := range recorder.Captures() {
		if !changesProperty(capture, property) {
			continue
		}

		fail(t,
			"Did not expect object %s to raise the %q event for property %q%s, but it did.",
			recorder.sourceType, PropertyChanged, property, formatReason(reasonAndArgs),
		)

		return
	}
}

// ShouldRaise asserts that the named event of source fired at least once since Monitor was
// called, and returns the occurrences for further assertions.
func ShouldRaise[T any](t TestReporter, source *T, event string, reasonAndArgs ...any) *Raised {
	t.Helper()

	recorder := RecorderFor(source, event)

	if !verify(t, recorder.Any(),
		"Expected object %s to raise event %q%s, but it did not.",
		recorder.sourceType, event, formatReason(reasonAndArgs),
	) {
		return nil
	}

	return &Raised{t: t, recorder: recorder}
}

// ShouldRaisePropertyChangeFor asserts that source raised PropertyChanged for the named property
// and returns just those occurrences.
func ShouldRaisePropertyChangeFor[T any](
	t TestReporter, source *T, property string, reasonAndArgs ...any,
) *Raised {
	t.Helper()

	raised := ShouldRaise(t, source, PropertyChanged, reasonAndArgs...)
	if raised == nil {
		return nil
	}

	changed := raised.filter(func(capture Capture) bool {
		return changesProperty(capture, property)
	})

	if !verify(t, changed.Count() > 0,
		"Expected object %s to raise event %q for property %q%s, but it did not.",
		raised.recorder.sourceType, PropertyChanged, property, formatReason(reasonAndArgs),
	) {
		return nil
	}

	return changed
}

// WithArgs narrows raised to the occurrences whose argument of type A satisfies predicate, and
// fails if there are none. The view re-applies predicate whenever it is read, so predicate should
// be free of side effects. It panics with ErrNoArgumentOfType if no occurrence has an argument
// of type A, and with ErrAmbiguousArgument if an occurrence has more than one.
func WithArgs[A any](raised *Raised, predicate func(A) bool) *Raised {
	if raised == nil {
		return nil
	}

	raised.t.Helper()

	argType := reflect.TypeFor[A]()
	name := raised.recorder.name
	captures := raised.Captures()
	typed, satisfied := 0, 0

	for _, capture := range captures {
		arg, found := argumentOfType[A](name, capture)
		if !found {
			continue
		}

		typed++

		if predicate(arg) {
			satisfied++
		}
	}

	if typed == 0 {
		panic(fmt.Errorf(
			"%w: event %q of %s carries no %v argument in %d occurrence(s)",
			ErrNoArgumentOfType, name, raised.recorder.sourceType, argType, len(captures),
		))
	}

	if !verify(raised.t, satisfied > 0,
		"Expected at least one occurrence of event %q of %s with an argument of type %v matching the predicate, but found none.",
		name, raised.recorder.sourceType, argType,
	) {
		return nil
	}

	return raised.filter(func(capture Capture) bool {
		arg, found := argumentOfType[A](name, capture)

		return found && predicate(arg)
	})
}

// argumentOfType returns the single argument of capture whose dynamic type is A.
func argumentOfType[A any](event string, capture Capture) (A, bool) {
	var (
		found A
		count int
	)

	for _, param := range capture.Params {
		if typed, ok := param.(A); ok {
			found = typed
			count++
		}
	}

	if count > 1 {
		panic(fmt.Errorf(
			"%w: occurrence (sequence %d) of event %q carries %d arguments of type %v",
			ErrAmbiguousArgument, capture.Sequence, event, count, reflect.TypeFor[A](),
		))
	}

	return found, count == 1
}

// changesProperty reports whether capture is a PropertyChanged occurrence for property.
func changesProperty(capture Capture, property string) bool {
	for _, param := range capture.Params {
		if args, ok := param.(PropertyChangedArgs); ok && args.PropertyName == property {
			return true
		}
	}

	return false
}

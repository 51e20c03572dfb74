package core

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Raised is a live view of the occurrences of one event that an assertion found, possibly
// narrowed by later assertions in the chain. Every method tolerates a nil *Raised, which is what
// assertions return after reporting a failure, so chains stay safe with reporters that do not
// unwind.
type Raised struct {
	t        TestReporter
	recorder *Recorder
	match    func(Capture) bool
}

// All iterates the occurrences in the view, re-reading the recorder on each iteration.
func (r *Raised) All() iter.Seq[Capture] {
	return func(yield func(Capture) bool) {
		for _, capture := range r.Captures() {
			if !yield(capture) {
				return
			}
		}
	}
}

// Captures returns the occurrences in the view, in firing order.
func (r *Raised) Captures() []Capture {
	if r == nil {
		return nil
	}

	captures := r.recorder.Captures()
	if r.match == nil {
		return captures
	}

	return slices.DeleteFunc(captures, func(capture Capture) bool {
		return !r.match(capture)
	})
}

// Count returns the number of occurrences in the view.
func (r *Raised) Count() int {
	return len(r.Captures())
}

// First returns the earliest occurrence in the view, or ErrEmptyRecorder.
func (r *Raised) First() (Capture, error) {
	captures := r.Captures()
	if len(captures) == 0 {
		return Capture{}, fmt.Errorf("%w: in the selected occurrences", ErrEmptyRecorder)
	}

	return captures[0], nil
}

// Recorder returns the underlying, unfiltered recorder.
func (r *Raised) Recorder() *Recorder {
	if r == nil {
		return nil
	}

	return r.recorder
}

// WithArgsMatching narrows the view to occurrences whose arguments match expected position by
// position, and fails if there are none. Each expected value is either a Matcher (gomega
// matchers qualify) or compared with reflect.DeepEqual.
func (r *Raised) WithArgsMatching(expected ...any) *Raised {
	if r == nil {
		return nil
	}

	r.t.Helper()

	captures := r.Captures()

	var mismatches []string

	for index, capture := range captures {
		err := matchParams(capture.Params, expected)
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("  occurrence %d: %v", index+1, err))
		}
	}

	if !verify(r.t, len(mismatches) < len(captures),
		"Expected at least one occurrence of event %q of %s with matching arguments, but found none:\n%s",
		r.recorder.name, r.recorder.sourceType, strings.Join(mismatches, "\n"),
	) {
		return nil
	}

	return r.filter(func(capture Capture) bool {
		return matchParams(capture.Params, expected) == nil
	})
}

// WithSender asserts that every occurrence in the view was raised by expected, compared by
// identity. It panics with ErrNoArguments if an occurrence carries no sender at all.
func (r *Raised) WithSender(expected any) *Raised {
	if r == nil {
		return nil
	}

	r.t.Helper()

	captures := r.Captures()

	for _, capture := range captures {
		if len(capture.Params) == 0 {
			panic(fmt.Errorf(
				"%w: cannot check the sender of event %q of %s",
				ErrNoArguments, r.recorder.name, r.recorder.sourceType,
			))
		}
	}

	for _, capture := range captures {
		sender, _ := capture.Sender()

		if !verify(r.t, sameObject(sender, expected),
			"Expected sender %s of event %q of %s, but found %s.",
			describe(expected), r.recorder.name, r.recorder.sourceType, describe(sender),
		) {
			return nil
		}
	}

	return r
}

// filter returns a view narrowed further by match.
func (r *Raised) filter(match func(Capture) bool) *Raised {
	previous := r.match

	return &Raised{
		t:        r.t,
		recorder: r.recorder,
		match: func(capture Capture) bool {
			return (previous == nil || previous(capture)) && match(capture)
		},
	}
}

// matchParams compares actual params against expected values or matchers.
func matchParams(actual, expected []any) error {
	if len(actual) != len(expected) {
		//nolint:err113 // validation error with dynamic context
		return fmt.Errorf("expected %d args, got %d", len(expected), len(actual))
	}

	for index, want := range expected {
		ok, msg := MatchValue(actual[index], want)
		if !ok {
			//nolint:err113 // validation error with dynamic context
			return fmt.Errorf("arg %d: %s", index, msg)
		}
	}

	return nil
}

// sortBySequence orders captures by firing order.
func sortBySequence(captures []Capture) {
	slices.SortFunc(captures, func(a, b Capture) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		default:
			return 0
		}
	})
}

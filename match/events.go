package match

import (
	"fmt"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/toejough/eventmon"
)

// BeRaised succeeds when actual, a *eventmon.Recorder or *eventmon.Raised, holds at least one
// occurrence.
func BeRaised() types.GomegaMatcher {
	return &raisedMatcher{}
}

// BeRaisedTimes succeeds when actual, a *eventmon.Recorder or *eventmon.Raised, holds exactly
// count occurrences.
func BeRaisedTimes(count int) types.GomegaMatcher {
	return &raisedMatcher{count: count, exact: true}
}

// HaveOccurrenceMatching succeeds when some occurrence held by actual has arguments matching
// expected position by position. Expected values are matchers or plain values, as in
// eventmon's WithArgsMatching.
func HaveOccurrenceMatching(expected ...any) types.GomegaMatcher {
	return &occurrenceMatcher{expected: expected}
}

type occurrenceMatcher struct {
	expected []any
	captures []eventmon.Capture
}

func (m *occurrenceMatcher) FailureMessage(actual any) string {
	return format.Message(m.captures, "to contain an occurrence with arguments matching", m.expected)
}

func (m *occurrenceMatcher) Match(actual any) (bool, error) {
	captures, err := capturesOf(actual)
	if err != nil {
		return false, err
	}

	m.captures = captures

	for _, capture := range captures {
		if paramsMatch(capture.Params, m.expected) {
			return true, nil
		}
	}

	return false, nil
}

func (m *occurrenceMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(m.captures, "not to contain an occurrence with arguments matching", m.expected)
}

type raisedMatcher struct {
	count  int
	exact  bool
	actual int
}

func (m *raisedMatcher) FailureMessage(actual any) string {
	if m.exact {
		return format.Message(m.actual, fmt.Sprintf("occurrence(s) to equal %d", m.count))
	}

	return format.Message(m.actual, "occurrence(s) to be at least 1")
}

func (m *raisedMatcher) Match(actual any) (bool, error) {
	captures, err := capturesOf(actual)
	if err != nil {
		return false, err
	}

	m.actual = len(captures)

	if m.exact {
		return m.actual == m.count, nil
	}

	return m.actual > 0, nil
}

func (m *raisedMatcher) NegatedFailureMessage(actual any) string {
	if m.exact {
		return format.Message(m.actual, fmt.Sprintf("occurrence(s) not to equal %d", m.count))
	}

	return format.Message(m.actual, "occurrence(s) to be 0")
}

// capturesOf reads the occurrences held by a recorder or raised view.
func capturesOf(actual any) ([]eventmon.Capture, error) {
	switch typed := actual.(type) {
	case *eventmon.Recorder:
		if typed == nil {
			return nil, fmt.Errorf("%w: nil *eventmon.Recorder", errTypeMismatch)
		}

		return typed.Captures(), nil
	case *eventmon.Raised:
		return typed.Captures(), nil
	default:
		return nil, fmt.Errorf(
			"%w: expected *eventmon.Recorder or *eventmon.Raised, got %s",
			errTypeMismatch, format.Object(actual, 1),
		)
	}
}

func paramsMatch(actual, expected []any) bool {
	if len(actual) != len(expected) {
		return false
	}

	for index, want := range expected {
		if ok, _ := eventmon.MatchValue(actual[index], want); !ok {
			return false
		}
	}

	return true
}

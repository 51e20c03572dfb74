// Package match provides matchers for eventmon's WithArgsMatching and gomega matchers over
// recorded events. It is meant to be used alongside a dot-imported gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/toejough/eventmon/match"
//	)
//
//	eventmon.ShouldRaise(t, widget, "Moved").WithArgsMatching(match.BeAny, BeNumerically(">", 0), match.BeAny)
//	g.Expect(eventmon.RecorderFor(widget, "Closed")).To(match.BeRaisedTimes(1))
package match

import (
	"errors"
	"fmt"

	"github.com/toejough/eventmon"
)

// Matcher is eventmon's argument matcher; gomega matchers satisfy it too.
type Matcher = eventmon.Matcher

// BeAny accepts any argument, usually standing in for a sender the test does not care about.
//
//nolint:gochecknoglobals // stateless matcher shared by every caller
var BeAny Matcher = anyArgument{}

// ChangeProperty accepts an eventmon.PropertyChangedArgs naming property:
//
//	eventmon.ShouldRaise(t, account, eventmon.PropertyChanged).
//	    WithArgsMatching(account, match.ChangeProperty("Balance"))
func ChangeProperty(property string) Matcher {
	return propertyArgument{property: property}
}

// Satisfy accepts an argument of type A for which check returns nil. The returned error explains
// the mismatch in the failure message:
//
//	raised.WithArgsMatching(match.BeAny, match.Satisfy(func(args ChangedArgs) error {
//	    if args.Name == "" { return errors.New("expected a name") }
//	    return nil
//	}))
func Satisfy[A any](check func(A) error) Matcher {
	return &checkedArgument[A]{check: check}
}

type anyArgument struct{}

func (anyArgument) FailureMessage(any) string {
	return ""
}

func (anyArgument) Match(any) (bool, error) {
	return true, nil
}

type checkedArgument[A any] struct {
	check  func(A) error
	reason error
}

func (m *checkedArgument[A]) FailureMessage(actual any) string {
	return fmt.Sprintf("event argument %#v was rejected: %v", actual, m.reason)
}

func (m *checkedArgument[A]) Match(actual any) (bool, error) {
	arg, ok := actual.(A)
	if !ok {
		return false, fmt.Errorf("%w: event argument is %T, not %T", errTypeMismatch, actual, *new(A))
	}

	m.reason = m.check(arg)

	return m.reason == nil, nil
}

type propertyArgument struct {
	property string
}

func (m propertyArgument) FailureMessage(actual any) string {
	return fmt.Sprintf("expected a change of property %q, got %#v", m.property, actual)
}

func (m propertyArgument) Match(actual any) (bool, error) {
	args, ok := actual.(eventmon.PropertyChangedArgs)
	if !ok {
		return false, fmt.Errorf("%w: event argument is %T, not eventmon.PropertyChangedArgs", errTypeMismatch, actual)
	}

	return args.PropertyName == m.property, nil
}

// unexported variables.
var (
	errTypeMismatch = errors.New("type mismatch")
)

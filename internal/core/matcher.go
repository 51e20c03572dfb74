package core

import (
	"fmt"
	"reflect"
)

// Matcher checks one recorded event argument. Gomega matchers satisfy it, so they can be passed
// to WithArgsMatching directly.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// MatchValue checks one recorded argument against an expectation. A Matcher decides for itself.
// Pointer-like expectations, typically a sender, must be the very same object; anything else is
// compared with reflect.DeepEqual. The message explains a mismatch and is empty on success.
func MatchValue(actual, expected any) (bool, string) {
	matcher, isMatcher := expected.(Matcher)

	switch {
	case isMatcher:
		success, err := matcher.Match(actual)
		if err != nil {
			return false, err.Error()
		}

		if !success {
			return false, matcher.FailureMessage(actual)
		}
	case isReference(expected):
		if !sameObject(actual, expected) {
			return false, fmt.Sprintf("expected the same object as %s, got %s", describe(expected), describe(actual))
		}
	case !reflect.DeepEqual(actual, expected):
		return false, fmt.Sprintf("expected %s, got %s", describe(expected), describe(actual))
	}

	return true, ""
}

// isReference reports whether value is compared by identity rather than contents.
func isReference(value any) bool {
	if value == nil {
		return false
	}

	switch reflect.ValueOf(value).Kind() { //nolint:exhaustive // everything else compares by value
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

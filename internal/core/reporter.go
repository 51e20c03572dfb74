package core

import (
	"fmt"
	"reflect"
	"strings"
)

// TestReporter is the minimal interface eventmon needs from test frameworks.
// *testing.T and *testing.B satisfy it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// describe renders a value for failure messages. Reference-like values are shown by type and
// address, since printing a monitored source in full tends to drag its whole object graph along.
func describe(value any) string {
	if value == nil {
		return "<nil>"
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // everything else is printed by value
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("%T(%#x)", value, rv.Pointer())
	default:
		return fmt.Sprintf("%#v", value)
	}
}

// fail reports an assertion failure.
func fail(t TestReporter, format string, args ...any) {
	t.Helper()
	t.Fatalf(format, args...)
}

// formatReason renders the optional reason of an assertion the way gomega renders optional
// descriptions: either a format string followed by its args, or a func() string. The result is
// empty or starts with " because ".
func formatReason(reasonAndArgs []any) string {
	if len(reasonAndArgs) == 0 {
		return ""
	}

	var reason string

	switch first := reasonAndArgs[0].(type) {
	case string:
		reason = first
		if len(reasonAndArgs) > 1 {
			reason = fmt.Sprintf(first, reasonAndArgs[1:]...)
		}
	case func() string:
		reason = first()
	default:
		reason = fmt.Sprint(reasonAndArgs...)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ""
	}

	if !strings.HasPrefix(reason, "because") {
		reason = "because " + reason
	}

	return " " + reason
}

// sameObject reports whether two values are the same object: identical pointers for
// reference-like kinds, equal values for comparable ones.
func sameObject(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}

	lv, rv := reflect.ValueOf(left), reflect.ValueOf(right)
	if lv.Type() != rv.Type() {
		return false
	}

	switch lv.Kind() { //nolint:exhaustive // everything else compares by value
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return lv.Pointer() == rv.Pointer()
	case reflect.Slice:
		return lv.Pointer() == rv.Pointer() && lv.Len() == rv.Len()
	default:
		if !lv.Type().Comparable() {
			return false
		}

		return left == right
	}
}

// verify reports an assertion failure unless condition holds. It returns condition so callers
// can stop after a failure when the reporter does not unwind.
func verify(t TestReporter, condition bool, format string, args ...any) bool {
	t.Helper()

	if !condition {
		fail(t, format, args...)
	}

	return condition
}

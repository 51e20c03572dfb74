package core

import (
	"fmt"
	"reflect"
)

// discoverEvents lists the events source publishes. Sources implementing EventSource are taken
// at their word; otherwise the exported fields of the struct source points to are searched for
// Subscribable values, descending into embedded structs. A PropertyNotifier contributes the
// PropertyChanged event unless one was already found.
func discoverEvents(source any) ([]NamedEvent, error) {
	var events []NamedEvent

	if declared, ok := source.(EventSource); ok {
		events = declared.Events()
	} else {
		events = fieldEvents(reflect.ValueOf(source), map[string]bool{})
	}

	seen := make(map[string]bool, len(events))

	for _, event := range events {
		if event.Event == nil {
			return nil, fmt.Errorf("%w: event %q of %T is nil", ErrUnsupportedHandler, event.Name, source)
		}

		if seen[event.Name] {
			return nil, fmt.Errorf("%w: %q on %T", ErrDuplicateEvent, event.Name, source)
		}

		seen[event.Name] = true
	}

	if notifier, ok := source.(PropertyNotifier); ok && !seen[PropertyChanged] {
		events = append(events, NamedEvent{Name: PropertyChanged, Event: notifierEvent{notifier: notifier}})
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("%w: %T", ErrNoEvents, source)
	}

	return events, nil
}

// fieldEvents collects Subscribable fields of the struct value points to. Names already in
// taken are skipped, so fields of outer structs shadow promoted ones like Go's selector rules.
func fieldEvents(value reflect.Value, taken map[string]bool) []NamedEvent {
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return nil
	}

	structValue := value.Elem()
	structType := structValue.Type()

	var (
		events   []NamedEvent
		embedded []reflect.Value
	)

	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		event, ok := asSubscribable(structValue.Field(i))
		if ok {
			if !taken[field.Name] {
				taken[field.Name] = true
				events = append(events, NamedEvent{Name: field.Name, Event: event})
			}

			continue
		}

		if field.Anonymous {
			embedded = append(embedded, structValue.Field(i))
		}
	}

	for _, inner := range embedded {
		if inner.Kind() == reflect.Struct {
			inner = inner.Addr()
		}

		events = append(events, fieldEvents(inner, taken)...)
	}

	return events
}

// asSubscribable returns the field as a Subscribable, taking its address if only the pointer
// type implements the interface.
func asSubscribable(field reflect.Value) (Subscribable, bool) {
	subscribableType := reflect.TypeFor[Subscribable]()

	switch {
	case field.Kind() == reflect.Pointer && field.Type().Implements(subscribableType):
		if field.IsNil() {
			return nil, false
		}

		event, ok := field.Interface().(Subscribable)

		return event, ok
	case field.Kind() == reflect.Interface && field.Type().Implements(subscribableType):
		if field.IsNil() {
			return nil, false
		}

		event, ok := field.Interface().(Subscribable)

		return event, ok
	case field.CanAddr() && reflect.PointerTo(field.Type()).Implements(subscribableType):
		event, ok := field.Addr().Interface().(Subscribable)

		return event, ok
	default:
		return nil, false
	}
}

package core

import (
	"fmt"
	"reflect"
)

// PropertyName resolves a pointer to one of source's fields to the field's name, so property
// assertions can be written against the field itself:
//
//	eventmon.ShouldRaisePropertyChangeFor(t, person, eventmon.PropertyName(person, &person.Name))
//
// Only direct fields of the struct resolve; fields of nested structs are not supported. It
// panics with ErrNotAField when field does not address a direct field of source.
func PropertyName[T any](source *T, field any) string {
	structValue := reflect.ValueOf(source)
	if source == nil || structValue.Elem().Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: %T is not a pointer to a struct", ErrNotAField, source))
	}

	fieldValue := reflect.ValueOf(field)
	if fieldValue.Kind() != reflect.Pointer || fieldValue.IsNil() {
		panic(fmt.Errorf("%w: %T is not a field pointer", ErrNotAField, field))
	}

	structValue = structValue.Elem()
	structType := structValue.Type()
	target := fieldValue.Pointer()

	for i := range structType.NumField() {
		candidate := structType.Field(i)

		// zero-sized fields can share an address with the next field, so types must agree too
		if structValue.Field(i).Addr().Pointer() == target && candidate.Type == fieldValue.Type().Elem() {
			return candidate.Name
		}
	}

	panic(fmt.Errorf("%w: %T does not address a field of %T", ErrNotAField, field, source))
}

package core

import (
	"fmt"
	"reflect"
)

// adaptHandler builds a handler of exactly handlerType whose body forwards every argument it
// receives, in order, to record. Common shapes come from a table of plain closures; anything else
// is synthesized with reflect.MakeFunc. Results of the synthesized handler are zero values.
func adaptHandler(handlerType reflect.Type, record func(params []any)) (any, error) {
	if handlerType == nil || handlerType.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %v is not a func type", ErrUnsupportedHandler, handlerType)
	}

	if build, ok := handlerShapes[shapeOf(handlerType)]; ok {
		// The closure's type is the unnamed shape; convert it so named handler types are honored.
		return reflect.ValueOf(build(record)).Convert(handlerType).Interface(), nil
	}

	relay := func(args []reflect.Value) []reflect.Value {
		record(unreflectValues(args))

		return zeroResults(handlerType)
	}

	return reflect.MakeFunc(handlerType, relay).Interface(), nil
}

// shapeOf returns the unnamed func type with the same signature as handlerType.
func shapeOf(handlerType reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, handlerType.NumIn())
	for i := range handlerType.NumIn() {
		in = append(in, handlerType.In(i))
	}

	out := make([]reflect.Type, 0, handlerType.NumOut())
	for i := range handlerType.NumOut() {
		out = append(out, handlerType.Out(i))
	}

	return reflect.FuncOf(in, out, handlerType.IsVariadic())
}

// unreflectValues converts reflected args back to plain values.
func unreflectValues(args []reflect.Value) []any {
	if len(args) == 0 {
		return nil
	}

	params := make([]any, 0, len(args))
	for _, arg := range args {
		params = append(params, arg.Interface())
	}

	return params
}

// zeroResults returns the zero value of every result of handlerType.
func zeroResults(handlerType reflect.Type) []reflect.Value {
	results := make([]reflect.Value, 0, handlerType.NumOut())
	for i := range handlerType.NumOut() {
		results = append(results, reflect.Zero(handlerType.Out(i)))
	}

	return results
}

// unexported variables.
var (
	//nolint:gochecknoglobals // dispatch table of handler shapes that need no reflection
	handlerShapes = map[reflect.Type]func(record func([]any)) any{
		reflect.TypeFor[func()](): func(record func([]any)) any {
			return func() { record(nil) }
		},
		reflect.TypeFor[func(any)](): func(record func([]any)) any {
			return func(sender any) { record([]any{sender}) }
		},
		reflect.TypeFor[func(any, any)](): func(record func([]any)) any {
			return func(sender, args any) { record([]any{sender, args}) }
		},
		reflect.TypeFor[func(any, PropertyChangedArgs)](): func(record func([]any)) any {
			return func(sender any, args PropertyChangedArgs) { record([]any{sender, args}) }
		},
	}
)

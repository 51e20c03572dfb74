// Package detect finds a struct type and its event fields in parsed package files.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"

	"github.com/dave/dst"
)

// EventmonPath is the import path whose Event type marks a field as an event.
const EventmonPath = "github.com/toejough/eventmon"

// EventField is one exported field of type Event[F] or *Event[F].
type EventField struct {
	Name    string
	Pointer bool
}

// Struct describes a struct type with event fields.
type Struct struct {
	TypeName string
	PkgName  string
	// Qualifier is the name the struct's file imports eventmon under, or empty inside eventmon.
	Qualifier string
	Fields    []EventField
}

// FindStruct finds the non-generic struct type named typeName in files and collects its
// exported event fields, in declaration order.
func FindStruct(files []*dst.File, typeName string) (Struct, error) {
	for _, file := range files {
		spec := findTypeSpec(file, typeName)
		if spec == nil {
			continue
		}

		if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
			return Struct{}, fmt.Errorf("%w: %s", ErrGenericType, typeName)
		}

		structType, ok := spec.Type.(*dst.StructType)
		if !ok {
			return Struct{}, fmt.Errorf("%w: %s", ErrNotStruct, typeName)
		}

		qualifier, ok := eventmonQualifier(file)
		if !ok {
			return Struct{}, fmt.Errorf("%w: %s (its file does not import %s)", ErrNoEventFields, typeName, EventmonPath)
		}

		fields := eventFields(structType, qualifier)
		if len(fields) == 0 {
			return Struct{}, fmt.Errorf("%w: %s", ErrNoEventFields, typeName)
		}

		return Struct{
			TypeName:  typeName,
			PkgName:   file.Name.Name,
			Qualifier: qualifier,
			Fields:    fields,
		}, nil
	}

	return Struct{}, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
}

// Exported variables.
var (
	ErrGenericType   = errors.New("generic types are not supported")
	ErrNoEventFields = errors.New("type has no exported event fields")
	ErrNotStruct     = errors.New("type is not a struct")
	ErrTypeNotFound  = errors.New("type not found")
)

// eventFields returns the exported fields of structType whose type is an Event.
func eventFields(structType *dst.StructType, qualifier string) []EventField {
	var fields []EventField

	for _, field := range structType.Fields.List {
		pointer, ok := isEventType(field.Type, qualifier)
		if !ok {
			continue
		}

		// embedded Event[F] is promoted under its type name
		if len(field.Names) == 0 {
			fields = append(fields, EventField{Name: "Event", Pointer: pointer})

			continue
		}

		for _, name := range field.Names {
			if token.IsExported(name.Name) {
				fields = append(fields, EventField{Name: name.Name, Pointer: pointer})
			}
		}
	}

	return fields
}

// eventmonQualifier returns the name file refers to eventmon by. Dot and blank imports are
// unsupported.
func eventmonQualifier(file *dst.File) (string, bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != EventmonPath {
			continue
		}

		if spec.Name == nil {
			return "eventmon", true
		}

		if spec.Name.Name == "." || spec.Name.Name == "_" {
			return "", false
		}

		return spec.Name.Name, true
	}

	if file.Name.Name == "eventmon" {
		return "", true
	}

	return "", false
}

// findTypeSpec returns the type spec named typeName declared in file, or nil.
func findTypeSpec(file *dst.File, typeName string) *dst.TypeSpec {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*dst.TypeSpec)
			if ok && typeSpec.Name.Name == typeName {
				return typeSpec
			}
		}
	}

	return nil
}

// isEventType reports whether expr is Event[F] or *Event[F] under qualifier.
func isEventType(expr dst.Expr, qualifier string) (pointer, ok bool) {
	if star, isStar := expr.(*dst.StarExpr); isStar {
		_, ok = isEventType(star.X, qualifier)

		return true, ok
	}

	index, isIndex := expr.(*dst.IndexExpr)
	if !isIndex {
		return false, false
	}

	if qualifier == "" {
		ident, isIdent := index.X.(*dst.Ident)

		return false, isIdent && ident.Name == "Event"
	}

	selector, isSelector := index.X.(*dst.SelectorExpr)
	if !isSelector {
		return false, false
	}

	pkg, isIdent := selector.X.(*dst.Ident)

	return false, isIdent && pkg.Name == qualifier && selector.Sel.Name == "Event"
}

// Package generate renders the explicit event declaration of a struct.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
	"unicode/utf8"

	detect "github.com/toejough/eventmon/eventgen/run/3_detect"
)

// Events returns the gofmt-ed source of a file declaring the event name constants and the Events
// method of found, in package pkgName.
func Events(found detect.Struct, pkgName string) (string, error) {
	data := eventsData{
		PkgName:  pkgName,
		TypeName: found.TypeName,
		Receiver: receiverName(found.TypeName, found.Qualifier),
		Import:   found.Qualifier != "",
	}

	if found.Qualifier != "" {
		data.Prefix = found.Qualifier + "."

		if found.Qualifier != "eventmon" {
			data.ImportName = found.Qualifier + " "
		}
	}

	for _, field := range found.Fields {
		data.Fields = append(data.Fields, fieldData{
			Name:    field.Name,
			Const:   found.TypeName + field.Name + "Event",
			Pointer: field.Pointer,
		})
	}

	var buf bytes.Buffer

	err := eventsTmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to render events of %s: %w", found.TypeName, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format events of %s: %w", found.TypeName, err)
	}

	return string(formatted), nil
}

type eventsData struct {
	PkgName    string
	TypeName   string
	Receiver   string
	Import     bool
	ImportName string
	Prefix     string
	Fields     []fieldData
}

type fieldData struct {
	Name    string
	Const   string
	Pointer bool
}

// unexported variables.
var (
	//nolint:gochecknoglobals // parsed once; the template is a constant
	eventsTmpl = template.Must(template.New("events").Parse(eventsTemplate))
)

// receiverName returns the conventional short receiver for typeName, lengthened when it would
// shadow the eventmon import qualifier.
func receiverName(typeName, qualifier string) string {
	first, size := utf8.DecodeRuneInString(typeName)

	receiver := string(unicode.ToLower(first))
	if receiver != qualifier {
		return receiver
	}

	receiver += typeName[size:]
	if receiver != qualifier {
		return receiver
	}

	return receiver + "Recv"
}

const eventsTemplate = `// Code generated by eventgen. DO NOT EDIT.

package {{.PkgName}}
{{if .Import}}
import {{.ImportName}}"github.com/toejough/eventmon"
{{end}}
// Event names of {{.TypeName}}.
const (
{{- range .Fields}}
	{{.Const}} = {{printf "%q" .Name}}
{{- end}}
)

// Events declares the events of {{.TypeName}} to {{.Prefix}}Monitor.
func ({{.Receiver}} *{{.TypeName}}) Events() []{{.Prefix}}NamedEvent {
	events := make([]{{.Prefix}}NamedEvent, 0, {{len .Fields}})
{{range .Fields}}{{if .Pointer}}
	if {{$.Receiver}}.{{.Name}} != nil {
		events = append(events, {{$.Prefix}}NamedEvent{Name: {{.Const}}, Event: {{$.Receiver}}.{{.Name}}})
	}
{{else}}
	events = append(events, {{$.Prefix}}NamedEvent{Name: {{.Const}}, Event: &{{$.Receiver}}.{{.Name}}})
{{end}}{{end}}
	return events
}
`

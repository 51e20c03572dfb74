package eventmon_test

import (
	"fmt"
	"sync"

	"github.com/toejough/eventmon"
)

// ChangedArgs is the payload of widget.Changed.
type ChangedArgs struct {
	Name string
}

// ResizedHandler is a named, n-ary handler type with a result.
type ResizedHandler func(sender any, width, height int, unit string) error

// inert exposes no events at all.
type inert struct {
	Value int
}

// mockReporter records assertion failures instead of ending the test.
type mockReporter struct {
	mu       sync.Mutex
	failures []string
}

func (m *mockReporter) Fatalf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures = append(m.failures, fmt.Sprintf(format, args...))
}

func (m *mockReporter) Failures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.failures...)
}

func (m *mockReporter) Helper() {}

// person publishes property changes through PropertyNotifier only.
type person struct {
	Name    string
	Age     int
	ID      string
	Address address

	changed eventmon.Event[eventmon.PropertyChangedHandler]
}

func (p *person) OnPropertyChanged(handler eventmon.PropertyChangedHandler) func() {
	return p.changed.Subscribe(handler)
}

func (p *person) SetAge(age int) {
	p.Age = age
	p.notify("Age")
}

func (p *person) SetName(name string) {
	p.Name = name
	p.notify("Name")
}

func (p *person) notify(property string) {
	for _, handler := range p.changed.Handlers() {
		handler(p, eventmon.PropertyChangedArgs{PropertyName: property})
	}
}

type address struct {
	Street string
}

// widget publishes events through exported Event fields.
type widget struct {
	Changed eventmon.Event[func(sender any, args ChangedArgs)]
	Closed  eventmon.Event[func()]
	Moved   eventmon.Event[func(sender any, x, y int)]
	Resized eventmon.Event[ResizedHandler]
	Tagged  eventmon.Event[func(sender any, tags ...string)]

	name string
}

func (w *widget) Close() {
	for _, handler := range w.Closed.Handlers() {
		handler()
	}
}

func (w *widget) Move(x, y int) {
	for _, handler := range w.Moved.Handlers() {
		handler(w, x, y)
	}
}

func (w *widget) Rename(name string) {
	w.renameAs(w, name)
}

func (w *widget) Resize(width, height int) error {
	for _, handler := range w.Resized.Handlers() {
		err := handler(w, width, height, "px")
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *widget) Tag(tags ...string) {
	for _, handler := range w.Tagged.Handlers() {
		handler(w, tags...)
	}
}

// renameAs raises Changed with an arbitrary sender.
func (w *widget) renameAs(sender any, name string) {
	w.name = name

	for _, handler := range w.Changed.Handlers() {
		handler(sender, ChangedArgs{Name: name})
	}
}

// widgetEventNames lists widget's events in field order.
func widgetEventNames() []string {
	return []string{"Changed", "Closed", "Moved", "Resized", "Tagged"}
}

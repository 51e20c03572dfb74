package core

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"weak"
)

// PropertyChanged is the name of the conventional property-change notification event.
const PropertyChanged = "PropertyChanged"

// Event is a list of handlers a source publishes to. Embed it as an exported field:
//
//	type Widget struct {
//	    Changed eventmon.Event[func(sender any, args ChangedArgs)]
//	}
//
//	func (w *Widget) Rename(name string) {
//	    for _, handler := range w.Changed.Handlers() {
//	        handler(w, ChangedArgs{Name: name})
//	    }
//	}
//
// F should be a func type. The zero value is ready to use. Event must not be copied after first
// use.
type Event[F any] struct {
	mu            sync.Mutex
	nextID        uint64
	subscriptions []subscription[F]
}

// HandlerType returns the handler signature of the event.
func (e *Event[F]) HandlerType() reflect.Type {
	return reflect.TypeFor[F]()
}

// Handlers returns a snapshot of the subscribed handlers, in subscription order.
func (e *Event[F]) Handlers() []F {
	e.mu.Lock()
	defer e.mu.Unlock()

	handlers := make([]F, 0, len(e.subscriptions))
	for _, sub := range e.subscriptions {
		handlers = append(handlers, sub.handler)
	}

	return handlers
}

// Subscribe adds a handler and returns the function that removes it again.
// The returned function only weakly references the event, so holding on to it does not keep the
// event's owner alive.
func (e *Event[F]) Subscribe(handler F) (unsubscribe func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subscriptions = append(e.subscriptions, subscription[F]{id: id, handler: handler})
	e.mu.Unlock()

	ref := weak.Make(e)

	return func() {
		if event := ref.Value(); event != nil {
			event.remove(id)
		}
	}
}

// SubscribeHandler is Subscribe for handlers built at runtime. The handler's dynamic type must
// be F.
func (e *Event[F]) SubscribeHandler(handler any) (func(), error) {
	typed, ok := handler.(F)
	if !ok {
		return nil, fmt.Errorf("%w: expected %v, got %T", ErrUnsupportedHandler, e.HandlerType(), handler)
	}

	return e.Subscribe(typed), nil
}

// remove drops the subscription with the given id.
func (e *Event[F]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscriptions = slices.DeleteFunc(e.subscriptions, func(sub subscription[F]) bool {
		return sub.id == id
	})
}

// EventSource is implemented by sources that declare their events explicitly instead of
// leaving them to be discovered from struct fields.
type EventSource interface {
	Events() []NamedEvent
}

// NamedEvent pairs an event with the name assertions refer to it by.
type NamedEvent struct {
	Name  string
	Event Subscribable
}

// PropertyChangedArgs is the payload of the PropertyChanged event.
type PropertyChangedArgs struct {
	PropertyName string
}

// PropertyChangedHandler is the handler signature of the PropertyChanged event.
type PropertyChangedHandler = func(sender any, args PropertyChangedArgs)

// PropertyNotifier is implemented by sources that publish property-change notifications.
type PropertyNotifier interface {
	OnPropertyChanged(handler PropertyChangedHandler) (unsubscribe func())
}

// Subscribable is anything a recording handler can be attached to. Event implements it.
type Subscribable interface {
	// HandlerType returns the func type handlers must have.
	HandlerType() reflect.Type
	// SubscribeHandler attaches a handler whose dynamic type is HandlerType.
	SubscribeHandler(handler any) (unsubscribe func(), err error)
}

// notifierEvent adapts a PropertyNotifier to Subscribable.
type notifierEvent struct {
	notifier PropertyNotifier
}

func (n notifierEvent) HandlerType() reflect.Type {
	return reflect.TypeFor[PropertyChangedHandler]()
}

func (n notifierEvent) SubscribeHandler(handler any) (func(), error) {
	typed, ok := handler.(PropertyChangedHandler)
	if !ok {
		return nil, fmt.Errorf("%w: expected %v, got %T", ErrUnsupportedHandler, n.HandlerType(), handler)
	}

	return n.notifier.OnPropertyChanged(typed), nil
}

type subscription[F any] struct {
	id      uint64
	handler F
}

package delegates

import (
	"errors"

	"github.com/toejough/eventmon"
)

// ShippedHandler demonstrates a named, n-ary handler type with a result. While monitored, the
// recording handler returns the zero value, so ErrRejected never comes back from it.
type ShippedHandler func(sender any, orderID string, items int, express bool) error

// Order demonstrates handler shapes beyond sender + args.
type Order struct {
	ID string

	// Shipped demonstrates a named handler type.
	Shipped eventmon.Event[ShippedHandler]

	// Tagged demonstrates a variadic handler, recorded with its tail as a slice.
	Tagged eventmon.Event[func(sender any, tags ...string)]

	// Priced demonstrates an unnamed handler shape with two results.
	Priced eventmon.Event[func(cents int64, currency string) (accepted bool, err error)]
}

// ErrRejected is what a subscriber returns to refuse a shipment.
var ErrRejected = errors.New("shipment rejected")

// Ship raises Shipped and stops at the first subscriber that rejects it.
func (o *Order) Ship(items int, express bool) error {
	for _, handler := range o.Shipped.Handlers() {
		err := handler(o, o.ID, items, express)
		if err != nil {
			return err
		}
	}

	return nil
}

// Price raises Priced and reports whether every subscriber accepted the price.
func (o *Order) Price(cents int64, currency string) bool {
	for _, handler := range o.Priced.Handlers() {
		accepted, err := handler(cents, currency)
		if err != nil || !accepted {
			return false
		}
	}

	return true
}

// Tag raises Tagged with tags.
func (o *Order) Tag(tags ...string) {
	for _, handler := range o.Tagged.Handlers() {
		handler(o, tags...)
	}
}

package basic

import "github.com/toejough/eventmon"

// Thermostat demonstrates plain struct events: each exported Event field is discovered by
// eventmon.Monitor without any declaration.
type Thermostat struct {
	// Changed demonstrates the conventional sender + args handler shape.
	Changed eventmon.Event[func(sender any, args TemperatureChanged)]

	// Alarm demonstrates a handler without parameters.
	Alarm eventmon.Event[func()]

	celsius int
	limit   int
}

// TemperatureChanged is the payload of Thermostat.Changed.
type TemperatureChanged struct {
	From, To int
}

// NewThermostat returns a thermostat that sounds its alarm above limit degrees.
func NewThermostat(limit int) *Thermostat {
	return &Thermostat{limit: limit}
}

// Set changes the temperature, raising Changed when it differs and Alarm when it exceeds the
// limit.
func (t *Thermostat) Set(celsius int) {
	if celsius == t.celsius {
		return
	}

	previous := t.celsius
	t.celsius = celsius

	for _, handler := range t.Changed.Handlers() {
		handler(t, TemperatureChanged{From: previous, To: celsius})
	}

	if celsius > t.limit {
		for _, handler := range t.Alarm.Handlers() {
			handler()
		}
	}
}

package basic_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/eventmon"
	basic "github.com/toejough/eventmon/UAT/01-basic-events"
)

// TestThermostat_RaisesChanged demonstrates asserting an event, its sender and its payload.
func TestThermostat_RaisesChanged(t *testing.T) {
	t.Parallel()

	thermostat := basic.NewThermostat(30)

	_, err := eventmon.Monitor(thermostat)
	if err != nil {
		t.Fatal(err)
	}

	thermostat.Set(21)
	thermostat.Set(23)

	raised := eventmon.ShouldRaise(t, thermostat, "Changed", "the temperature was set twice").WithSender(thermostat)

	eventmon.WithArgs(raised, func(args basic.TemperatureChanged) bool {
		return args.From == 21 && args.To == 23
	})

	eventmon.ShouldNotRaise(t, thermostat, "Alarm", "23 degrees is below the limit")
}

// TestThermostat_SameTemperatureIsSilent demonstrates that only firings after Monitor count.
func TestThermostat_SameTemperatureIsSilent(t *testing.T) {
	t.Parallel()

	thermostat := basic.NewThermostat(30)
	thermostat.Set(25)

	_, err := eventmon.Monitor(thermostat)
	if err != nil {
		t.Fatal(err)
	}

	thermostat.Set(25)

	eventmon.ShouldNotRaise(t, thermostat, "Changed")
}

// TestThermostat_Alarm demonstrates reading recorded occurrences directly.
func TestThermostat_Alarm(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	thermostat := basic.NewThermostat(30)

	recorders, err := eventmon.Monitor(thermostat)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(recorders.Names()).To(Equal([]string{"Changed", "Alarm"}))

	thermostat.Set(31)
	thermostat.Set(35)

	alarm := eventmon.ShouldRaise(t, thermostat, "Alarm")
	g.Expect(alarm.Count()).To(Equal(2))

	first, err := alarm.First()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(first.Params).To(BeEmpty())

	var order []string
	for _, capture := range eventmon.OccurredEvents(thermostat) {
		order = append(order, capture.Event)
	}

	g.Expect(order).To(Equal([]string{"Changed", "Alarm", "Changed", "Alarm"}))
}

// TestThermostat_Unmonitored demonstrates the usage error for forgetting Monitor.
func TestThermostat_Unmonitored(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	thermostat := basic.NewThermostat(30)

	g.Expect(func() {
		eventmon.ShouldRaise(t, thermostat, "Changed")
	}).To(PanicWith(MatchError(eventmon.ErrNotMonitored)))
}

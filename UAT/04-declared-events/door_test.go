package declared_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/eventmon"
	declared "github.com/toejough/eventmon/UAT/04-declared-events"
)

// TestDoor_DeclaredEvents demonstrates that a declared EventSource drives discovery.
func TestDoor_DeclaredEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	door := &declared.Door{}

	recorders, err := eventmon.Monitor(door)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(recorders.Names()).To(Equal([]string{declared.DoorOpenedEvent, declared.DoorClosedEvent}))

	door.Toggle(true)
	door.Toggle(false)

	eventmon.ShouldRaise(t, door, declared.DoorOpenedEvent).WithSender(door)
	eventmon.ShouldRaise(t, door, declared.DoorClosedEvent).WithSender(door)
}

// TestDoor_LazyEvent demonstrates re-monitoring after the event set grows.
func TestDoor_LazyEvent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	door := &declared.Door{}
	_, err := eventmon.Monitor(door)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(func() {
		eventmon.ShouldNotRaise(t, door, declared.DoorLockedEvent)
	}).To(PanicWith(MatchError(eventmon.ErrUnknownEvent)))

	door.EnableLock()

	_, err = eventmon.Monitor(door)
	g.Expect(err).NotTo(HaveOccurred())

	door.Toggle(true)
	door.Lock("1234")

	eventmon.ShouldRaise(t, door, declared.DoorLockedEvent).WithArgsMatching(door, "1234")
	g.Expect(eventmon.RecorderFor(door, declared.DoorOpenedEvent).Count()).To(Equal(1))
	g.Expect(eventmon.RecorderFor(door, declared.DoorClosedEvent).Count()).To(Equal(1))
}

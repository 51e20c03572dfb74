package delegates_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/eventmon"
	delegates "github.com/toejough/eventmon/UAT/03-custom-delegates"
	"github.com/toejough/eventmon/match"
)

// TestOrder_NamedHandler demonstrates positional argument matching on an n-ary event.
func TestOrder_NamedHandler(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	order := &delegates.Order{ID: "A-17"}

	_, err := eventmon.Monitor(order)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(order.Ship(3, true)).To(Succeed())

	eventmon.ShouldRaise(t, order, "Shipped").
		WithSender(order).
		WithArgsMatching(match.BeAny, "A-17", BeNumerically(">", 0), true)
}

// TestOrder_ZeroResults demonstrates that recording handlers return zero values.
func TestOrder_ZeroResults(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	order := &delegates.Order{}

	_, err := eventmon.Monitor(order)
	g.Expect(err).NotTo(HaveOccurred())

	// the recorder answers (false, nil), which Price treats as a refusal
	g.Expect(order.Price(1999, "EUR")).To(BeFalse())

	eventmon.ShouldRaise(t, order, "Priced").WithArgsMatching(int64(1999), "EUR")
}

// TestOrder_Variadic demonstrates that a variadic tail is recorded as one slice argument.
func TestOrder_Variadic(t *testing.T) {
	t.Parallel()

	order := &delegates.Order{}

	_, err := eventmon.Monitor(order)
	if err != nil {
		t.Fatal(err)
	}

	order.Tag("fragile", "gift")

	raised := eventmon.ShouldRaise(t, order, "Tagged")
	raised.WithArgsMatching(order, []string{"fragile", "gift"})
	eventmon.WithArgs(raised, func(tags []string) bool { return len(tags) == 2 })
}

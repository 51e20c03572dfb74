package matchers_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/eventmon"
	matchers "github.com/toejough/eventmon/UAT/06-gomega-matchers"
	"github.com/toejough/eventmon/match"
)

// TestPrinter_Matchers demonstrates BeRaised, BeRaisedTimes and HaveOccurrenceMatching.
func TestPrinter_Matchers(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	printer := &matchers.Printer{}

	_, err := eventmon.Monitor(printer)
	g.Expect(err).NotTo(HaveOccurred())

	printer.Print(4, true, 0)
	printer.Print(10, false, 7)

	g.Expect(eventmon.RecorderFor(printer, "Printed")).To(match.BeRaisedTimes(1))
	g.Expect(eventmon.RecorderFor(printer, "Printed")).To(match.HaveOccurrenceMatching(printer, 4, true))
	g.Expect(eventmon.RecorderFor(printer, "Jammed")).To(match.BeRaised())
	g.Expect(eventmon.RecorderFor(printer, "Jammed")).To(match.HaveOccurrenceMatching(match.BeAny, BeNumerically("==", 7)))
}

// TestPrinter_PredicateMatcher demonstrates match.Satisfy inside WithArgsMatching.
func TestPrinter_PredicateMatcher(t *testing.T) {
	t.Parallel()

	printer := &matchers.Printer{}

	_, err := eventmon.Monitor(printer)
	if err != nil {
		t.Fatal(err)
	}

	printer.Print(2, false, 0)

	eventmon.ShouldRaise(t, printer, "Printed").WithArgsMatching(
		match.BeAny,
		match.Satisfy(func(pages int) error {
			if pages%2 != 0 {
				return errOddPages
			}

			return nil
		}),
		false,
	)
}

// unexported variables.
var (
	errOddPages = errors.New("odd page count")
)

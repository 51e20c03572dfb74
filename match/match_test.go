package match_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/eventmon"
	"github.com/toejough/eventmon/match"
)

type valve struct {
	Opened eventmon.Event[func(sender any, turns int)]
	Shut   eventmon.Event[func()]
}

func (v *valve) Open(turns int) {
	for _, handler := range v.Opened.Handlers() {
		handler(v, turns)
	}
}

func TestBeAny(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, value := range []any{nil, 0, "x", &valve{}} {
		ok, err := match.BeAny.Match(value)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(ok).To(BeTrue())
	}
}

func TestSatisfy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	positive := match.Satisfy(func(turns int) error {
		if turns <= 0 {
			return errors.New("expected positive turns")
		}

		return nil
	})

	ok, err := positive.Match(3)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = positive.Match(-1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(positive.FailureMessage(-1)).To(Equal("event argument -1 was rejected: expected positive turns"))

	_, err = positive.Match("three")
	g.Expect(err).To(MatchError(ContainSubstring("type mismatch")))
	g.Expect(err).To(MatchError(ContainSubstring("event argument is string, not int")))
}

func TestChangeProperty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	balance := match.ChangeProperty("Balance")

	ok, err := balance.Match(eventmon.PropertyChangedArgs{PropertyName: "Balance"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = balance.Match(eventmon.PropertyChangedArgs{PropertyName: "Owner"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(balance.FailureMessage(eventmon.PropertyChangedArgs{PropertyName: "Owner"})).
		To(HavePrefix(`expected a change of property "Balance"`))

	_, err = balance.Match("Balance")
	g.Expect(err).To(MatchError(ContainSubstring("type mismatch")))
}

func TestBeRaised(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := &valve{}
	recorders, err := eventmon.Monitor(source)
	g.Expect(err).NotTo(HaveOccurred())

	opened, _ := recorders.Find("Opened")

	g.Expect(opened).NotTo(match.BeRaised())
	g.Expect(opened).To(match.BeRaisedTimes(0))

	source.Open(2)
	source.Open(5)

	g.Expect(opened).To(match.BeRaised())
	g.Expect(opened).To(match.BeRaisedTimes(2))
	g.Expect(eventmon.RecorderFor(source, "Shut")).NotTo(match.BeRaised())
}

func TestBeRaised_FailureMessage(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := &valve{}
	_, err := eventmon.Monitor(source)
	g.Expect(err).NotTo(HaveOccurred())

	matcher := match.BeRaisedTimes(3)
	recorder := eventmon.RecorderFor(source, "Opened")

	ok, err := matcher.Match(recorder)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(matcher.FailureMessage(recorder)).To(ContainSubstring("occurrence(s) to equal 3"))
}

func TestBeRaised_RejectsOtherTypes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := match.BeRaised().Match("Opened")
	g.Expect(err).To(MatchError(ContainSubstring("expected *eventmon.Recorder or *eventmon.Raised")))
}

func TestHaveOccurrenceMatching(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := &valve{}
	_, err := eventmon.Monitor(source)
	g.Expect(err).NotTo(HaveOccurred())

	source.Open(2)
	source.Open(5)

	recorder := eventmon.RecorderFor(source, "Opened")

	g.Expect(recorder).To(match.HaveOccurrenceMatching(match.BeAny, 5))
	g.Expect(recorder).To(match.HaveOccurrenceMatching(BeIdenticalTo(source), BeNumerically("<", 3)))
	g.Expect(recorder).NotTo(match.HaveOccurrenceMatching(match.BeAny, 9))
	g.Expect(recorder).NotTo(match.HaveOccurrenceMatching(match.BeAny))
}

func TestHaveOccurrenceMatching_OnRaisedView(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := &valve{}
	_, err := eventmon.Monitor(source)
	g.Expect(err).NotTo(HaveOccurred())

	source.Open(2)
	source.Open(5)

	narrowed := eventmon.WithArgs(eventmon.ShouldRaise(t, source, "Opened"), func(turns int) bool { return turns > 3 })

	g.Expect(narrowed).To(match.BeRaisedTimes(1))
	g.Expect(narrowed).NotTo(match.HaveOccurrenceMatching(match.BeAny, 2))
}

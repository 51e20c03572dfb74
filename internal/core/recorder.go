package core

import (
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Recorder is the append-only log of one event's occurrences on one monitored source.
//
// Recorder is safe for concurrent use: handlers may fire from any goroutine while a test queries
// the log.
type Recorder struct {
	name       string
	sourceType string
	log        logrus.FieldLogger

	mu          sync.Mutex
	captures    []Capture
	unsubscribe func()
}

// All iterates the occurrences recorded so far, in firing order. Each iteration reads the
// current log, so ranging again later observes occurrences recorded in between.
func (r *Recorder) All() iter.Seq[Capture] {
	return func(yield func(Capture) bool) {
		for _, capture := range r.Captures() {
			if !yield(capture) {
				return
			}
		}
	}
}

// Any reports whether the event fired at least once.
func (r *Recorder) Any() bool {
	return r.Count() > 0
}

// Captures returns a copy of the occurrences recorded so far.
func (r *Recorder) Captures() []Capture {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.captures)
}

// Count returns how many times the event fired.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.captures)
}

// First returns the earliest occurrence, or ErrEmptyRecorder.
func (r *Recorder) First() (Capture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.captures) == 0 {
		return Capture{}, fmt.Errorf("%w: event %q of %s", ErrEmptyRecorder, r.name, r.sourceType)
	}

	return r.captures[0], nil
}

// Name returns the name of the recorded event.
func (r *Recorder) Name() string {
	return r.name
}

// SourceType returns the type name of the monitored source.
func (r *Recorder) SourceType() string {
	return r.sourceType
}

// Unsubscribe detaches the recorder from its event. Occurrences already recorded stay queryable.
// Calling it more than once is harmless.
func (r *Recorder) Unsubscribe() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		r.log.WithField("event", r.name).Debug("unsubscribed recorder")
	}
}

// record appends one occurrence. It is the body of every handler adapter.
func (r *Recorder) record(params []any) {
	capture := Capture{
		Event:  r.name,
		Params: slices.Clone(params),
	}

	// sequence and time are taken under the lock so they agree with log order
	r.mu.Lock()
	capture.Sequence = sequence.Add(1)
	capture.At = time.Now()
	r.captures = append(r.captures, capture)
	count := len(r.captures)
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{
		"event": r.name,
		"count": count,
	}).Trace("recorded occurrence")
}

// setUnsubscribe stores the function that detaches the recorder's handler.
func (r *Recorder) setUnsubscribe(unsubscribe func()) {
	r.mu.Lock()
	r.unsubscribe = unsubscribe
	r.mu.Unlock()
}

// RecorderSet is every recorder created by one Monitor call, in discovery order.
type RecorderSet []*Recorder

// Find returns the recorder for the named event.
func (s RecorderSet) Find(event string) (*Recorder, bool) {
	for _, recorder := range s {
		if recorder.name == event {
			return recorder, true
		}
	}

	return nil, false
}

// Names returns the event names in discovery order.
func (s RecorderSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, recorder := range s {
		names = append(names, recorder.name)
	}

	return names
}

// Unsubscribe detaches every recorder in the set.
func (s RecorderSet) Unsubscribe() {
	for _, recorder := range s {
		recorder.Unsubscribe()
	}
}

// newRecorder creates an empty recorder for one event.
func newRecorder(name, sourceType string, log logrus.FieldLogger) *Recorder {
	return &Recorder{
		name:       name,
		sourceType: sourceType,
		log:        log,
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // process-wide ordering of occurrences across recorders
	sequence atomic.Uint64
)

// Package core implements event monitoring: discovering and subscribing to a source's events,
// recording their occurrences, and the assertions that query those recordings.
package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Monitor subscribes a recording handler to every event source publishes and registers the
// recorders under source's identity, replacing (and unsubscribing) any earlier monitoring of the
// same source. The recorders are returned in discovery order; the query functions find them
// again from source, so callers need not keep them.
func Monitor[T any](source *T, options ...Option) (RecorderSet, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: %T", ErrNilSource, source)
	}

	cfg := newConfig(options)
	sourceType := fmt.Sprintf("%T", source)
	log := cfg.logger.WithField("source", sourceType)

	events, err := discoverEvents(source)
	if err != nil {
		return nil, err
	}

	sess := &session{sourceType: sourceType}
	sess.active.Store(true)

	for _, event := range events {
		recorder, err := sess.subscribe(event, log)
		if err != nil {
			sess.recorders.Unsubscribe()

			return nil, err
		}

		sess.recorders = append(sess.recorders, recorder)
	}

	if prior := register(source, sess); prior != nil {
		prior.stop()
		log.WithField("events", len(prior.recorders)).Debug("replaced previous monitoring session")
	}

	log.WithField("events", sess.recorders.Names()).Debug("monitoring source")

	return sess.recorders, nil
}

// record forwards one occurrence to recorder while the session is active. Handler closures call
// through the session, which is what keeps the session reachable from the source.
func (s *session) record(recorder *Recorder, params []any) {
	if !s.active.Load() {
		return
	}

	recorder.record(params)
}

// stop unsubscribes every recorder and ignores occurrences still delivered to handlers whose
// event could not unsubscribe them.
func (s *session) stop() {
	s.active.Store(false)
	s.recorders.Unsubscribe()
}

// subscribe creates the recorder for one event and attaches an adapted handler to it.
func (s *session) subscribe(event NamedEvent, log logrus.FieldLogger) (*Recorder, error) {
	recorder := newRecorder(event.Name, s.sourceType, log)

	handler, err := adaptHandler(event.Event.HandlerType(), func(params []any) {
		s.record(recorder, params)
	})
	if err != nil {
		return nil, fmt.Errorf("event %q of %s: %w", event.Name, s.sourceType, err)
	}

	unsubscribe, err := event.Event.SubscribeHandler(handler)
	if err != nil {
		return nil, fmt.Errorf("event %q of %s: %w", event.Name, s.sourceType, err)
	}

	recorder.setUnsubscribe(unsubscribe)
	log.WithFields(logrus.Fields{
		"event":   event.Name,
		"handler": event.Event.HandlerType().String(),
	}).Debug("subscribed recorder")

	return recorder, nil
}

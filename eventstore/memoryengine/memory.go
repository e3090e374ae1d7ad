package memoryengine

import (
	"context"
	"errors"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

const (
	logMsgQueryCompleted      = "eventstore operation: query completed"
	logMsgEventsAppended      = "eventstore operation: events appended"
	logMsgConcurrencyConflict = "eventstore operation: concurrency conflict detected"
	logAttrEventCount         = "event_count"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// ErrUndecodablePayload is returned when a stored payload can't be decoded for predicate matching.
var ErrUndecodablePayload = errors.New("payload can not be decoded for predicate matching")

type row struct {
	sequenceNumber eventstore.MaxSequenceNumberUint
	event          eventstore.StorableEvent
	payload        map[string]any
}

// EventStore keeps StorableEvents in a slice ordered by sequence number.
type EventStore struct {
	mu     *sync.RWMutex
	rows   *[]row
	logger eventstore.Logger
}

// Option configures an EventStore.
type Option func(*EventStore) error

// WithLogger sets a logger receiving info messages about queries, appends and conflicts.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.logger = logger

		return nil
	}
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (EventStore, error) {
	rows := make([]row, 0)
	es := EventStore{
		mu:   &sync.RWMutex{},
		rows: &rows,
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// Query returns all events matching filter in sequence order plus the highest matching sequence number.
func (es EventStore) Query(_ context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	es.mu.RLock()
	defer es.mu.RUnlock()

	events := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, r := range *es.rows {
		if matches(filter, r) {
			events = append(events, r.event)
			maxSequenceNumber = r.sequenceNumber
		}
	}

	es.logInfo(logMsgQueryCompleted, logAttrEventCount, len(events))

	return events, maxSequenceNumber, nil
}

// Append stores the events atomically if the highest sequence number matching filter
// still equals expectedMaxSequenceNumber, otherwise it returns eventstore.ErrConcurrencyConflict.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	newRows := make([]row, 0, 1+len(additionalEvents))

	for _, e := range append([]eventstore.StorableEvent{event}, additionalEvents...) {
		payload, err := decodePayload(e.PayloadJSON)
		if err != nil {
			return errors.Join(eventstore.ErrAppendingEventFailed, err)
		}

		newRows = append(newRows, row{event: e, payload: payload})
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	actual := eventstore.MaxSequenceNumberUint(0)
	for _, r := range *es.rows {
		if matches(filter, r) {
			actual = r.sequenceNumber
		}
	}

	if actual != expectedMaxSequenceNumber {
		es.logInfo(
			logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actual,
		)

		return eventstore.ErrConcurrencyConflict
	}

	next := eventstore.MaxSequenceNumberUint(len(*es.rows))
	for i := range newRows {
		next++
		newRows[i].sequenceNumber = next
	}

	*es.rows = append(*es.rows, newRows...)

	es.logInfo(logMsgEventsAppended, logAttrEventCount, len(newRows))

	return nil
}

func (es EventStore) logInfo(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

func decodePayload(payloadJSON []byte) (map[string]any, error) {
	payload := make(map[string]any)

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrUndecodablePayload, err)
	}

	return payload, nil
}

func matches(filter eventstore.Filter, r row) bool {
	if len(filter.Items()) == 0 {
		return true
	}

	return slices.ContainsFunc(filter.Items(), func(item eventstore.FilterItem) bool {
		return matchesItem(item, r)
	})
}

func matchesItem(item eventstore.FilterItem, r row) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), r.event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	predicateMatches := func(p eventstore.FilterPredicate) bool {
		val, ok := r.payload[p.Key()].(string)

		return ok && val == p.Val()
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range item.Predicates() {
			if !predicateMatches(p) {
				return false
			}
		}

		return true
	}

	return slices.ContainsFunc(item.Predicates(), predicateMatches)
}

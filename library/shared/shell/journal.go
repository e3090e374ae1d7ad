package shell

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

var (
	// ErrNilEventStore is returned when a Journal is created without an EventStore.
	ErrNilEventStore = errors.New("event store must not be nil")

	// ErrNilDirectory is returned when a handler is created without a LibraryDirectory.
	ErrNilDirectory = errors.New("library directory must not be nil")
)

// Journal is the append-only audit trail of everything that happened at the circulation desk.
// It is never read back to rebuild directory state.
type Journal struct {
	eventStore   EventStore
	retryOptions []RetryOption
}

// JournalOption configures a Journal.
type JournalOption func(*Journal) error

// WithRetryOptions sets a custom retry configuration for Record.
func WithRetryOptions(opts ...RetryOption) JournalOption {
	return func(j *Journal) error {
		j.retryOptions = opts

		return nil
	}
}

// NewJournal creates a Journal on top of eventStore.
func NewJournal(eventStore EventStore, opts ...JournalOption) (Journal, error) {
	if eventStore == nil {
		return Journal{}, ErrNilEventStore
	}

	journal := Journal{eventStore: eventStore}

	for _, opt := range opts {
		if err := opt(&journal); err != nil {
			return Journal{}, err
		}
	}

	return journal, nil
}

// Record appends event to the stream selected by filter.
//
// Each attempt reads the stream's current max sequence number with strong consistency and
// appends with it as the expected value; concurrency conflicts are retried with backoff.
func (j Journal) Record(ctx context.Context, filter eventstore.Filter, event core.DomainEvent) (RetryMetrics, error) {
	storableEvent, err := StorableEventFrom(event, BuildInitialEventMetadata())
	if err != nil {
		return RetryMetrics{Attempts: 0, LastErrorType: errorTypeOther}, err
	}

	return RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		retryCtx = eventstore.WithStrongConsistency(retryCtx)

		_, maxSequenceNumber, queryErr := j.eventStore.Query(retryCtx, filter)
		if queryErr != nil {
			return queryErr
		}

		return j.eventStore.Append(retryCtx, filter, maxSequenceNumber, storableEvent)
	}, j.retryOptions...)
}

// History returns every recorded event of the stream selected by filter, oldest first.
// Reads may be served by a replica.
func (j Journal) History(ctx context.Context, filter eventstore.Filter) (EventEnvelopes, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, _, err := j.eventStore.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	return EventEnvelopesFrom(storableEvents)
}

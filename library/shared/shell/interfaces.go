package shell

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// EventStore is what the journal needs from an engine. Both memoryengine.EventStore and
// postgresengine.EventStore satisfy it.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by every command type; CommandType must work on the zero value.
type Command interface {
	CommandType() string
}

// Query is implemented by every query type; QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// CommandHandler processes a command against the directory and journals what happened.
// The error is reserved for infrastructure failures; rejected operations are reported
// through HandlerResult.Outcome.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueryHandler builds a read model R for a query.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

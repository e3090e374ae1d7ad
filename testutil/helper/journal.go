package helper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// NewMemoryJournal returns a Journal on a fresh in-memory event store, plus the store for assertions.
func NewMemoryJournal(t testing.TB) (shell.Journal, memoryengine.EventStore) {
	t.Helper()

	store, err := memoryengine.NewEventStore()
	require.NoError(t, err)

	journal, err := shell.NewJournal(store)
	require.NoError(t, err)

	return journal, store
}

// RecordedEventTypes returns the types of all events in store, in append order.
func RecordedEventTypes(t testing.TB, store shell.EventStore) []string {
	t.Helper()

	events, _, err := store.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	eventTypes := make([]string, 0, len(events))
	for _, event := range events {
		eventTypes = append(eventTypes, event.EventType)
	}

	return eventTypes
}

package memoryengine_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_Append_Then_Query_ReturnsMatchingEventsInOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, err := memoryengine.NewEventStore()
	require.NoError(t, err)

	filter := barcodeFilter("B1")
	first := storable(t, "BookCheckedOut", `{"Barcode":"B1","CardID":"C1"}`)
	second := storable(t, "BookReturned", `{"Barcode":"B1","CardID":"C1"}`)
	other := storable(t, "BookCheckedOut", `{"Barcode":"B2","CardID":"C1"}`)

	// act
	require.NoError(t, es.Append(ctx, filter, 0, first))
	require.NoError(t, es.Append(ctx, barcodeFilter("B2"), 0, other))
	require.NoError(t, es.Append(ctx, filter, 1, second))
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "BookCheckedOut", events[0].EventType)
	assert.Equal(t, "BookReturned", events[1].EventType)
	assert.Equal(t, uint(3), maxSeq)
}

func Test_Query_WithEmptyFilter_ReturnsAllEvents(t *testing.T) {
	ctx := context.Background()
	es, _ := memoryengine.NewEventStore()

	require.NoError(t, es.Append(ctx, barcodeFilter("B1"), 0, storable(t, "BookAddedToCatalog", `{"Barcode":"B1"}`)))
	require.NoError(t, es.Append(ctx, barcodeFilter("B2"), 0, storable(t, "BookAddedToCatalog", `{"Barcode":"B2"}`)))

	events, maxSeq, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(2), maxSeq)
}

func Test_Append_WithStaleSequence_ReturnsConcurrencyConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, _ := memoryengine.NewEventStore()
	filter := barcodeFilter("B1")
	require.NoError(t, es.Append(ctx, filter, 0, storable(t, "BookCheckedOut", `{"Barcode":"B1"}`)))

	// act
	err := es.Append(ctx, filter, 0, storable(t, "BookCheckedOut", `{"Barcode":"B1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	events, _, _ := es.Query(ctx, filter)
	assert.Len(t, events, 1)
}

func Test_Append_MultipleEvents_IsAtomic(t *testing.T) {
	ctx := context.Background()
	es, _ := memoryengine.NewEventStore()
	filter := barcodeFilter("B1")

	err := es.Append(ctx, filter, 0,
		storable(t, "BookCheckedOut", `{"Barcode":"B1"}`),
		storable(t, "BookReturned", `{"Barcode":"B1"}`),
	)

	assert.NoError(t, err)
	_, maxSeq, _ := es.Query(ctx, filter)
	assert.Equal(t, uint(2), maxSeq)
}

func Test_Query_AllPredicatesMustMatch(t *testing.T) {
	ctx := context.Background()
	es, _ := memoryengine.NewEventStore()
	anyFilter := eventstore.BuildEventFilter().MatchingAnyEvent()

	require.NoError(t, es.Append(ctx, anyFilter, 0, storable(t, "BookReserved", `{"Barcode":"B1","CardID":"C1"}`)))
	require.NoError(t, es.Append(ctx, anyFilter, 1, storable(t, "BookReserved", `{"Barcode":"B1","CardID":"C2"}`)))

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("BookReserved").
		AndAllPredicatesOf(eventstore.P("Barcode", "B1"), eventstore.P("CardID", "C2")).
		Finalize()

	events, maxSeq, err := es.Query(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, uint(2), maxSeq)
}

func Test_Append_ConcurrentWritersOnSameStream_OnlyOneWins(t *testing.T) {
	ctx := context.Background()
	es, _ := memoryengine.NewEventStore()
	filter := barcodeFilter("B1")

	event := storable(t, "BookCheckedOut", `{"Barcode":"B1"}`)

	var wg sync.WaitGroup
	results := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- es.Append(ctx, filter, 0, event)
		}()
	}

	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	}

	assert.Equal(t, 1, succeeded)
}

func Test_WithLogger_LogsAppendsAndConflicts(t *testing.T) {
	ctx := context.Background()
	spy := helper.NewLogHandlerSpy(false)
	es, _ := memoryengine.NewEventStore(memoryengine.WithLogger(helper.NewSlogLogger(spy)))
	filter := barcodeFilter("B1")

	_ = es.Append(ctx, filter, 0, storable(t, "BookCheckedOut", `{"Barcode":"B1"}`))
	_ = es.Append(ctx, filter, 0, storable(t, "BookCheckedOut", `{"Barcode":"B1"}`))

	assert.True(t, spy.HasMessage("eventstore operation: events appended"))
	assert.True(t, spy.HasMessage("eventstore operation: concurrency conflict detected"))
}

func barcodeFilter(barcode string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Barcode", barcode)).
		Finalize()
}

func storable(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Now(), []byte(payload))
	require.NoError(t, err)

	return event
}

// Package eventstore provides the storage abstractions behind the circulation journal.
//
// Events are stored as scalar DTOs (StorableEvent) so engines never depend on the
// domain types of the library. A "dynamic event stream" is whatever subset of events a
// Filter selects; appending is guarded by the highest sequence number seen for that
// same Filter, which gives optimistic concurrency without fixed stream boundaries.
//
// Typical usage:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookCheckedOutEventType,
//			core.BookReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("Barcode", barcode)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Append(ctx, filter, maxSeq, storableEvent)
//
// Engines live in the subpackages memoryengine and postgresengine.
package eventstore

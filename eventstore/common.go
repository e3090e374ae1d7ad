package eventstore

import (
	"errors"
)

var (
	// ErrEmptyEventsTableName is returned when an engine is configured with an empty table name.
	ErrEmptyEventsTableName = errors.New("events table name must not be empty")

	// ErrNilDatabaseConnection is returned when an engine is constructed without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned by Append when the expected max sequence number is stale.
	ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

	// ErrQueryingEventsFailed wraps engine failures while querying.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrAppendingEventFailed wraps engine failures while appending.
	ErrAppendingEventFailed = errors.New("appending event failed")

	// ErrBuildingQueryFailed wraps failures while building SQL.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrScanningDBRowFailed wraps row scan failures.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrBuildingStorableEventFailed wraps failures while converting a row into a StorableEvent.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")

	// ErrGettingRowsAffectedFailed wraps failures while reading the affected row count.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)

// MaxSequenceNumberUint is the highest sequence number within a dynamic event stream.
type MaxSequenceNumberUint = uint

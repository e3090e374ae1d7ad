// Package postgresengine stores dynamic event streams in a PostgreSQL table.
//
// The engine runs on pgx (*pgxpool.Pool or any PGXQuerier), database/sql or sqlx.
// Queries are built with goqu; payload predicates become jsonb containment checks.
// Append is a single INSERT ... SELECT guarded by the max sequence number of the
// filtered stream, so a stale expectation inserts nothing and yields
// eventstore.ErrConcurrencyConflict.
//
// Migrate creates the default "events" table with goose.
//
//	db, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(db, postgresengine.WithLogger(logger))
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine

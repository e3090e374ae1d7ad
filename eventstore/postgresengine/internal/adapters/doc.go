// Package adapters lets the PostgreSQL event store run on pgx, database/sql or sqlx.
//
// Every adapter optionally holds a read replica which serves queries whose context
// carries eventstore.EventualConsistency.
package adapters

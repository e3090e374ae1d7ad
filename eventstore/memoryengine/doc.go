// Package memoryengine provides an in-process EventStore with the same query and
// optimistic-concurrency semantics as postgresengine.
//
// It backs the circulation journal when no database is configured; its contents live
// only as long as the process.
package memoryengine

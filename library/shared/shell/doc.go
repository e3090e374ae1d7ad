// Package shell connects the library domain to the circulation journal.
//
// It maps domain events to storable events and back, records events in the journal with
// optimistic-concurrency retry, and provides the logging and metrics helpers shared by all
// command and query handlers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell

// Package core contains the domain of the library circulation engine:
// catalog items, borrower accounts, the library directory holding both, the fine
// calculator, and the domain events describing what happened.
//
// State transitions never fail with an error. Every operation reports an Outcome so a
// front-end decides how to present "already checked out", "capacity exceeded" and the like.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core

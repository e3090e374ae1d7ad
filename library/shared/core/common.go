package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// BarcodeString identifies a catalog item.
type BarcodeString = string

// CardIDString identifies a borrower account.
type CardIDString = string

// ISBNString represents an ISBN identifier.
type ISBNString = string

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

const (
	// DefaultLoanDays is the loan period used by a checkout unless configured otherwise.
	DefaultLoanDays = 10

	// DefaultMaxBooks is the number of items an account may hold at once.
	DefaultMaxBooks = 5

	day = 24 * time.Hour
)

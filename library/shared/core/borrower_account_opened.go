package core

import (
	"time"
)

// BorrowerAccountOpenedEventType is the event type identifier.
const BorrowerAccountOpenedEventType = "BorrowerAccountOpened"

// BorrowerAccountOpened represents when a member gets a library card.
type BorrowerAccountOpened struct {
	CardID     CardIDString
	Name       string
	MaxBooks   int
	LoanDays   int
	OccurredAt OccurredAtTS
}

// BuildBorrowerAccountOpened creates a new BorrowerAccountOpened event.
func BuildBorrowerAccountOpened(
	cardID CardIDString,
	name string,
	maxBooks int,
	loanDays int,
	occurredAt time.Time,
) BorrowerAccountOpened {

	event := BorrowerAccountOpened{
		CardID:     cardID,
		Name:       name,
		MaxBooks:   maxBooks,
		LoanDays:   loanDays,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e BorrowerAccountOpened) EventType() string {
	return BorrowerAccountOpenedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowerAccountOpened) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BorrowerAccountOpened) IsErrorEvent() bool {
	return false
}

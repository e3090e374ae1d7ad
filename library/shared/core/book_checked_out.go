package core

import (
	"time"
)

// BookCheckedOutEventType is the event type identifier.
const BookCheckedOutEventType = "BookCheckedOut"

// BookCheckedOut represents when a catalog item is lent to a borrower.
type BookCheckedOut struct {
	Barcode    BarcodeString
	CardID     CardIDString
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookCheckedOut creates a new BookCheckedOut event.
func BuildBookCheckedOut(barcode BarcodeString, cardID CardIDString, dueDate time.Time, occurredAt time.Time) BookCheckedOut {
	event := BookCheckedOut{
		Barcode:    barcode,
		CardID:     cardID,
		DueDate:    ToOccurredAt(dueDate),
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e BookCheckedOut) EventType() string {
	return BookCheckedOutEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCheckedOut) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCheckedOut) IsErrorEvent() bool {
	return false
}

package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a borrower brings a catalog item back.
type BookReturned struct {
	Barcode     BarcodeString
	CardID      CardIDString
	OverdueDays int
	OccurredAt  OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(barcode BarcodeString, cardID CardIDString, overdueDays int, occurredAt time.Time) BookReturned {
	event := BookReturned{
		Barcode:     barcode,
		CardID:      cardID,
		OverdueDays: overdueDays,
		OccurredAt:  ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e BookReturned) EventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturned) IsErrorEvent() bool {
	return false
}

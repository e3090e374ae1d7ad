package core

import (
	"time"
)

// BookReservedEventType is the event type identifier.
const BookReservedEventType = "BookReserved"

// BookReserved represents when a borrower registers interest in a checked-out item.
type BookReserved struct {
	Barcode    BarcodeString
	CardID     CardIDString
	OccurredAt OccurredAtTS
}

// BuildBookReserved creates a new BookReserved event.
func BuildBookReserved(barcode BarcodeString, cardID CardIDString, occurredAt time.Time) BookReserved {
	event := BookReserved{
		Barcode:    barcode,
		CardID:     cardID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e BookReserved) EventType() string {
	return BookReservedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReserved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReserved) IsErrorEvent() bool {
	return false
}

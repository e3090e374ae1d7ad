package core

import (
	"time"
)

// ReservingBookFailedEventType is the event type identifier.
const ReservingBookFailedEventType = "ReservingBookFailed"

// ReservingBookFailed represents when a reservation is rejected.
type ReservingBookFailed struct {
	Barcode     BarcodeString
	CardID      CardIDString
	Reason      string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReservingBookFailed creates a new ReservingBookFailed event.
func BuildReservingBookFailed(
	barcode BarcodeString,
	cardID CardIDString,
	outcome Outcome,
	occurredAt time.Time,
) ReservingBookFailed {

	event := ReservingBookFailed{
		Barcode:     barcode,
		CardID:      cardID,
		Reason:      outcome.String(),
		FailureInfo: outcome.Message(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e ReservingBookFailed) EventType() string {
	return ReservingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReservingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e ReservingBookFailed) IsErrorEvent() bool {
	return true
}

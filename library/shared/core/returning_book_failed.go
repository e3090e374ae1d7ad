package core

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when a return is rejected.
type ReturningBookFailed struct {
	Barcode     BarcodeString
	CardID      CardIDString
	Reason      string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(
	barcode BarcodeString,
	cardID CardIDString,
	outcome Outcome,
	occurredAt time.Time,
) ReturningBookFailed {

	event := ReturningBookFailed{
		Barcode:     barcode,
		CardID:      cardID,
		Reason:      outcome.String(),
		FailureInfo: outcome.Message(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e ReturningBookFailed) EventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}

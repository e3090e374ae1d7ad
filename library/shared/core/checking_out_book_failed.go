package core

import (
	"time"
)

// CheckingOutBookFailedEventType is the event type identifier.
const CheckingOutBookFailedEventType = "CheckingOutBookFailed"

// CheckingOutBookFailed represents when a checkout is rejected.
type CheckingOutBookFailed struct {
	Barcode     BarcodeString
	CardID      CardIDString
	Reason      string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCheckingOutBookFailed creates a new CheckingOutBookFailed event.
func BuildCheckingOutBookFailed(
	barcode BarcodeString,
	cardID CardIDString,
	outcome Outcome,
	occurredAt time.Time,
) CheckingOutBookFailed {

	event := CheckingOutBookFailed{
		Barcode:     barcode,
		CardID:      cardID,
		Reason:      outcome.String(),
		FailureInfo: outcome.Message(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e CheckingOutBookFailed) EventType() string {
	return CheckingOutBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckingOutBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e CheckingOutBookFailed) IsErrorEvent() bool {
	return true
}

package core

import "time"

// Receipt describes the result of a directory-level circulation operation.
type Receipt struct {
	Outcome Outcome
	Barcode BarcodeString
	CardID  CardIDString
	At      time.Time

	// DueDate is set by a successful checkout.
	DueDate time.Time

	// OverdueDays is set by a successful return.
	OverdueDays int
}

// Late reports whether a return happened after the due date.
func (r Receipt) Late() bool {
	return r.OverdueDays > 0
}

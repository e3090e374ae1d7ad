package borrowerledger

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// HeldItem is an item currently checked out to the account.
type HeldItem struct {
	Barcode     core.BarcodeString
	Title       string
	DueDate     time.Time
	OverdueDays int
}

// ReservedItem is an item the account has shown interest in.
type ReservedItem struct {
	Barcode    core.BarcodeString
	Title      string
	CheckedOut bool
}

// BorrowerLedger is the front-end view of one account. Found is false for an unknown card.
type BorrowerLedger struct {
	Found    bool
	Name     string
	CardID   core.CardIDString
	MaxBooks int
	Held     []HeldItem
	Reserved []ReservedItem
}

// ResultSize returns the number of held and reserved items.
func (r BorrowerLedger) ResultSize() int {
	return len(r.Held) + len(r.Reserved)
}

// RemainingCapacity returns how many more items the account may check out.
func (r BorrowerLedger) RemainingCapacity() int {
	return max(0, r.MaxBooks-len(r.Held))
}

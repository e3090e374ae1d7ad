package overduereport

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// OverdueEntry is one overdue item.
type OverdueEntry struct {
	Title        string
	Barcode      core.BarcodeString
	BorrowerName string
	CardID       core.CardIDString
	DueDate      time.Time
	OverdueDays  int
	Fine         int
}

// OverdueReport lists the overdue items in catalog order.
type OverdueReport struct {
	Entries     []OverdueEntry
	Count       int
	TotalFines  int
	GeneratedAt time.Time
}

// ResultSize returns the number of overdue items.
func (r OverdueReport) ResultSize() int {
	return r.Count
}

package overduereport

import (
	"time"

	"github.com/samber/lo"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project builds the report for the overdue items as of now.
func Project(items []core.CatalogItem, now time.Time, calculator core.FineCalculator) OverdueReport {
	entries := lo.Map(items, func(item core.CatalogItem, _ int) OverdueEntry {
		dueDate, _ := item.DueDate()
		overdueDays := item.OverdueDays(now)
		entry := OverdueEntry{
			Title:       item.Title,
			Barcode:     item.Barcode,
			DueDate:     dueDate,
			OverdueDays: overdueDays,
			Fine:        calculator.CalculateFine(overdueDays),
		}

		if borrower := item.Borrower(); borrower != nil {
			entry.BorrowerName = borrower.Name
			entry.CardID = borrower.CardID
		}

		return entry
	})

	return OverdueReport{
		Entries: entries,
		Count:   len(entries),
		TotalFines: lo.SumBy(entries, func(e OverdueEntry) int {
			return e.Fine
		}),
		GeneratedAt: now,
	}
}

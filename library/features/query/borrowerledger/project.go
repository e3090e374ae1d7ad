package borrowerledger

import (
	"time"

	"github.com/samber/lo"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project builds the ledger from an account snapshot as of now.
func Project(account core.AccountSnapshot, now time.Time) BorrowerLedger {
	return BorrowerLedger{
		Found:    true,
		Name:     account.Name,
		CardID:   account.CardID,
		MaxBooks: account.MaxBooks,
		Held: lo.Map(account.Held, func(item core.CatalogItem, _ int) HeldItem {
			dueDate, _ := item.DueDate()

			return HeldItem{
				Barcode:     item.Barcode,
				Title:       item.Title,
				DueDate:     dueDate,
				OverdueDays: item.OverdueDays(now),
			}
		}),
		Reserved: lo.Map(account.Reserved, func(item core.CatalogItem, _ int) ReservedItem {
			return ReservedItem{
				Barcode:    item.Barcode,
				Title:      item.Title,
				CheckedOut: item.IsCheckedOut(),
			}
		}),
	}
}

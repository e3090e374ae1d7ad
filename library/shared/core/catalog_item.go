package core

import (
	"math"
	"slices"
	"time"
)

// CatalogItem is a physical book on a shelf.
//
// It is either available or checked out. While checked out it carries a due date and a
// reference to its borrower; both are cleared on return.
type CatalogItem struct {
	ISBN          ISBNString
	Title         string
	Subject       string
	Publisher     string
	Authors       []string
	Barcode       BarcodeString
	ShelfLocation string

	checkedOut bool
	dueDate    time.Time
	borrower   *BorrowerAccount
}

// NewCatalogItem creates an available CatalogItem.
func NewCatalogItem(
	isbn ISBNString,
	title string,
	subject string,
	publisher string,
	authors []string,
	barcode BarcodeString,
	shelfLocation string,
) *CatalogItem {

	return &CatalogItem{
		ISBN:          isbn,
		Title:         title,
		Subject:       subject,
		Publisher:     publisher,
		Authors:       slices.Clone(authors),
		Barcode:       barcode,
		ShelfLocation: shelfLocation,
	}
}

// IsCheckedOut reports whether the item is currently lent.
func (i *CatalogItem) IsCheckedOut() bool {
	return i.checkedOut
}

// DueDate returns the due date and true while the item is checked out.
func (i *CatalogItem) DueDate() (time.Time, bool) {
	return i.dueDate, i.checkedOut
}

// Borrower returns the account holding the item, nil if it is available.
func (i *CatalogItem) Borrower() *BorrowerAccount {
	return i.borrower
}

// Checkout lends the item to borrower for loanDays days starting at now.
// A checked-out item is left untouched and AlreadyCheckedOut is reported.
func (i *CatalogItem) Checkout(borrower *BorrowerAccount, loanDays int, now time.Time) Outcome {
	if i.checkedOut {
		return AlreadyCheckedOut
	}

	i.checkedOut = true
	i.dueDate = now.Add(time.Duration(loanDays) * day)
	i.borrower = borrower

	return OK
}

// Return makes the item available again and reports how many whole days it was overdue.
// Fines are not charged here, see FineCalculator.
func (i *CatalogItem) Return(now time.Time) (Outcome, int) {
	if !i.checkedOut {
		return NotCheckedOut, 0
	}

	overdueDays := i.OverdueDays(now)

	i.checkedOut = false
	i.dueDate = time.Time{}
	i.borrower = nil

	return OK, overdueDays
}

// OverdueDays returns max(0, floor((now - due) / 24h)), zero for an available item.
func (i *CatalogItem) OverdueDays(now time.Time) int {
	if !i.checkedOut {
		return 0
	}

	days := int(math.Floor(now.Sub(i.dueDate).Hours() / 24))

	return max(0, days)
}

// IsOverdue reports whether the item is checked out and its due date is strictly before now.
func (i *CatalogItem) IsOverdue(now time.Time) bool {
	return i.checkedOut && i.dueDate.Before(now)
}

package core

import (
	"slices"
	"time"
)

// BorrowerAccount is a member's ledger of held and reserved items.
type BorrowerAccount struct {
	Name   string
	CardID CardIDString

	maxBooks int
	loanDays int
	held     []*CatalogItem
	reserved []*CatalogItem
}

// AccountOption configures a BorrowerAccount.
type AccountOption func(*BorrowerAccount)

// WithMaxBooks overrides DefaultMaxBooks.
func WithMaxBooks(maxBooks int) AccountOption {
	return func(a *BorrowerAccount) {
		a.maxBooks = maxBooks
	}
}

// WithLoanDays overrides DefaultLoanDays.
func WithLoanDays(loanDays int) AccountOption {
	return func(a *BorrowerAccount) {
		a.loanDays = loanDays
	}
}

// NewBorrowerAccount creates an account without any held or reserved items.
func NewBorrowerAccount(name string, cardID CardIDString, opts ...AccountOption) *BorrowerAccount {
	a := &BorrowerAccount{
		Name:     name,
		CardID:   cardID,
		maxBooks: DefaultMaxBooks,
		loanDays: DefaultLoanDays,
		held:     make([]*CatalogItem, 0),
		reserved: make([]*CatalogItem, 0),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *BorrowerAccount) MaxBooks() int {
	return a.maxBooks
}

func (a *BorrowerAccount) LoanDays() int {
	return a.loanDays
}

// HeldItems returns the held items in checkout order.
func (a *BorrowerAccount) HeldItems() []*CatalogItem {
	return slices.Clone(a.held)
}

// ReservedItems returns the reserved items in reservation order.
func (a *BorrowerAccount) ReservedItems() []*CatalogItem {
	return slices.Clone(a.reserved)
}

// Holds reports whether item is in this account's held list.
func (a *BorrowerAccount) Holds(item *CatalogItem) bool {
	return slices.Contains(a.held, item)
}

// CheckOutBook checks item out to this account.
//
// The capacity check comes before the availability check, so a full account gets
// CapacityExceeded even for an item somebody else holds.
func (a *BorrowerAccount) CheckOutBook(item *CatalogItem, now time.Time) Outcome {
	if len(a.held) >= a.maxBooks {
		return CapacityExceeded
	}

	if item.IsCheckedOut() {
		return AlreadyCheckedOut
	}

	if outcome := item.Checkout(a, a.loanDays, now); !outcome.IsOK() {
		return outcome
	}

	a.held = append(a.held, item)

	return OK
}

// ReturnBook returns item if this account holds it, together with the overdue day count.
// Items held by other accounts yield NotHeld.
func (a *BorrowerAccount) ReturnBook(item *CatalogItem, now time.Time) (Outcome, int) {
	idx := slices.Index(a.held, item)
	if idx < 0 {
		return NotHeld, 0
	}

	outcome, overdueDays := item.Return(now)
	if !outcome.IsOK() {
		return outcome, 0
	}

	a.held = slices.Delete(a.held, idx, idx+1)

	return OK, overdueDays
}

// ReserveBook records interest in a checked-out item.
// An available item is not reserved, NotCheckedOut tells the caller to check it out instead.
func (a *BorrowerAccount) ReserveBook(item *CatalogItem) Outcome {
	if !item.IsCheckedOut() {
		return NotCheckedOut
	}

	a.reserved = append(a.reserved, item)

	return OK
}

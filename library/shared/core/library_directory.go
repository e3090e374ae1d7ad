package core

import (
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

// SearchCriteria holds the optional filters of SearchBooks. Blank filters are ignored.
type SearchCriteria struct {
	Title   string
	Author  string
	Subject string
}

// AccountSnapshot is a copy of an account's ledger.
type AccountSnapshot struct {
	Name     string
	CardID   CardIDString
	MaxBooks int
	Held     []CatalogItem
	Reserved []CatalogItem
}

// LibraryDirectory holds all catalog items and borrower accounts.
//
// Items and accounts are never removed. Adding does not check for duplicate barcodes or
// card ids; lookups return the first match.
// Every method locks the directory, which makes each circulation operation a single
// atomic check-and-set. Query methods return value copies.
type LibraryDirectory struct {
	Name    string
	Address string

	clock    Clock
	mu       sync.Mutex
	items    []*CatalogItem
	accounts []*BorrowerAccount
}

// NewLibraryDirectory creates an empty directory using clock for every time-dependent operation.
func NewLibraryDirectory(name string, address string, clock Clock) *LibraryDirectory {
	if clock == nil {
		clock = SystemClock()
	}

	return &LibraryDirectory{
		Name:     name,
		Address:  address,
		clock:    clock,
		items:    make([]*CatalogItem, 0),
		accounts: make([]*BorrowerAccount, 0),
	}
}

// Now returns the directory clock's current time.
func (d *LibraryDirectory) Now() time.Time {
	return d.clock.Now()
}

// AddBook appends item to the catalog.
func (d *LibraryDirectory) AddBook(item *CatalogItem) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = append(d.items, item)
}

// AddAccount appends account to the directory.
func (d *LibraryDirectory) AddAccount(account *BorrowerAccount) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.accounts = append(d.accounts, account)
}

// ItemCount returns the number of catalog items.
func (d *LibraryDirectory) ItemCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.items)
}

// FindItem returns a copy of the first item with barcode.
func (d *LibraryDirectory) FindItem(barcode BarcodeString) (CatalogItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	item, found := d.findItem(barcode)
	if !found {
		return CatalogItem{}, false
	}

	return *item, true
}

// FindAccount returns a snapshot of the first account with cardID.
func (d *LibraryDirectory) FindAccount(cardID CardIDString) (AccountSnapshot, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, found := d.findAccount(cardID)
	if !found {
		return AccountSnapshot{}, false
	}

	return AccountSnapshot{
		Name:     account.Name,
		CardID:   account.CardID,
		MaxBooks: account.maxBooks,
		Held:     copyItems(account.held),
		Reserved: copyItems(account.reserved),
	}, true
}

// Held returns copies of the items held by the account with cardID, in checkout order.
func (d *LibraryDirectory) Held(cardID CardIDString) ([]CatalogItem, bool) {
	account, found := d.FindAccount(cardID)

	return account.Held, found
}

// Reserved returns copies of the items reserved by the account with cardID.
func (d *LibraryDirectory) Reserved(cardID CardIDString) ([]CatalogItem, bool) {
	account, found := d.FindAccount(cardID)

	return account.Reserved, found
}

// CheckOut checks the item with barcode out to the account with cardID.
func (d *LibraryDirectory) CheckOut(cardID CardIDString, barcode BarcodeString) Receipt {
	d.mu.Lock()
	defer d.mu.Unlock()

	receipt := Receipt{Barcode: barcode, CardID: cardID, At: d.clock.Now()}

	account, item, found := d.resolve(cardID, barcode)
	if !found {
		receipt.Outcome = NotFound
		return receipt
	}

	receipt.Outcome = account.CheckOutBook(item, receipt.At)
	if receipt.Outcome.IsOK() {
		receipt.DueDate, _ = item.DueDate()
	}

	return receipt
}

// Return takes the item with barcode back from the account with cardID.
func (d *LibraryDirectory) Return(cardID CardIDString, barcode BarcodeString) Receipt {
	d.mu.Lock()
	defer d.mu.Unlock()

	receipt := Receipt{Barcode: barcode, CardID: cardID, At: d.clock.Now()}

	account, item, found := d.resolve(cardID, barcode)
	if !found {
		receipt.Outcome = NotFound
		return receipt
	}

	receipt.Outcome, receipt.OverdueDays = account.ReturnBook(item, receipt.At)

	return receipt
}

// Reserve records the interest of the account with cardID in the item with barcode.
func (d *LibraryDirectory) Reserve(cardID CardIDString, barcode BarcodeString) Receipt {
	d.mu.Lock()
	defer d.mu.Unlock()

	receipt := Receipt{Barcode: barcode, CardID: cardID, At: d.clock.Now()}

	account, item, found := d.resolve(cardID, barcode)
	if !found {
		receipt.Outcome = NotFound
		return receipt
	}

	receipt.Outcome = account.ReserveBook(item)

	return receipt
}

// SearchBooks returns every item matching at least one non-blank filter, case-insensitively:
// title and subject by substring, author by substring of any author name.
// Filters are OR-combined, and without any non-blank filter nothing matches.
func (d *LibraryDirectory) SearchBooks(criteria SearchCriteria) []CatalogItem {
	title := strings.ToLower(criteria.Title)
	author := strings.ToLower(criteria.Author)
	subject := strings.ToLower(criteria.Subject)

	d.mu.Lock()
	defer d.mu.Unlock()

	matching := lo.Filter(d.items, func(item *CatalogItem, _ int) bool {
		if title != "" && strings.Contains(strings.ToLower(item.Title), title) {
			return true
		}

		if author != "" && lo.SomeBy(item.Authors, func(a string) bool {
			return strings.Contains(strings.ToLower(a), author)
		}) {
			return true
		}

		return subject != "" && strings.Contains(strings.ToLower(item.Subject), subject)
	})

	return copyItems(matching)
}

// OverdueItems returns every checked-out item whose due date is strictly before now.
func (d *LibraryDirectory) OverdueItems() []CatalogItem {
	items, _ := d.OverdueItemsAt()

	return items
}

// OverdueItemsAt is OverdueItems plus the instant the scan was made.
func (d *LibraryDirectory) OverdueItemsAt() ([]CatalogItem, time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	overdue := lo.Filter(d.items, func(item *CatalogItem, _ int) bool {
		return item.IsOverdue(now)
	})

	return copyItems(overdue), now
}

func (d *LibraryDirectory) resolve(cardID CardIDString, barcode BarcodeString) (*BorrowerAccount, *CatalogItem, bool) {
	account, accountFound := d.findAccount(cardID)
	item, itemFound := d.findItem(barcode)

	return account, item, accountFound && itemFound
}

func (d *LibraryDirectory) findItem(barcode BarcodeString) (*CatalogItem, bool) {
	return lo.Find(d.items, func(item *CatalogItem) bool {
		return item.Barcode == barcode
	})
}

func (d *LibraryDirectory) findAccount(cardID CardIDString) (*BorrowerAccount, bool) {
	return lo.Find(d.accounts, func(account *BorrowerAccount) bool {
		return account.CardID == cardID
	})
}

func copyItems(items []*CatalogItem) []CatalogItem {
	return lo.Map(items, func(item *CatalogItem, _ int) CatalogItem {
		return *item
	})
}

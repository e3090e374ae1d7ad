package searchbooks

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BookInfo describes one matching catalog item.
type BookInfo struct {
	Barcode       core.BarcodeString
	ISBN          core.ISBNString
	Title         string
	Authors       []string
	Subject       string
	Publisher     string
	ShelfLocation string
	CheckedOut    bool
	DueDate       time.Time // zero while available
}

// SearchResult lists the matching items in catalog order.
type SearchResult struct {
	Books []BookInfo
	Count int
}

// ResultSize returns the number of matches.
func (r SearchResult) ResultSize() int {
	return r.Count
}

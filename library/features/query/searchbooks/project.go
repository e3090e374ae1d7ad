package searchbooks

import (
	"slices"

	"github.com/samber/lo"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project maps the matching catalog items into the search result.
func Project(items []core.CatalogItem) SearchResult {
	books := lo.Map(items, func(item core.CatalogItem, _ int) BookInfo {
		dueDate, _ := item.DueDate()

		return BookInfo{
			Barcode:       item.Barcode,
			ISBN:          item.ISBN,
			Title:         item.Title,
			Authors:       slices.Clone(item.Authors),
			Subject:       item.Subject,
			Publisher:     item.Publisher,
			ShelfLocation: item.ShelfLocation,
			CheckedOut:    item.IsCheckedOut(),
			DueDate:       dueDate,
		}
	})

	return SearchResult{
		Books: books,
		Count: len(books),
	}
}

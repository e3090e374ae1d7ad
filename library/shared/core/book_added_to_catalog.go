package core

import (
	"slices"
	"time"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents when a catalog item is put on the shelf.
type BookAddedToCatalog struct {
	Barcode       BarcodeString
	ISBN          ISBNString
	Title         string
	Subject       string
	Publisher     string
	Authors       []string
	ShelfLocation string
	OccurredAt    OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event from item.
func BuildBookAddedToCatalog(item CatalogItem, occurredAt time.Time) BookAddedToCatalog {
	event := BookAddedToCatalog{
		Barcode:       item.Barcode,
		ISBN:          item.ISBN,
		Title:         item.Title,
		Subject:       item.Subject,
		Publisher:     item.Publisher,
		Authors:       slices.Clone(item.Authors),
		ShelfLocation: item.ShelfLocation,
		OccurredAt:    ToOccurredAt(occurredAt),
	}

	return event
}

// EventType returns the event type identifier.
func (e BookAddedToCatalog) EventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}

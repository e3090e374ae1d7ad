package addbook

import (
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BuildEventFilter selects the journal stream of the new item.
func BuildEventFilter(barcode core.BarcodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType).
		AndAnyPredicateOf(eventstore.P("Barcode", barcode)).
		Finalize()
}

// Apply adds the book to the directory. Adding always succeeds.
func Apply(directory *core.LibraryDirectory, command Command) core.DecisionResult {
	item := core.NewCatalogItem(
		command.ISBN,
		command.Title,
		command.Subject,
		command.Publisher,
		command.Authors,
		command.Barcode,
		command.ShelfLocation,
	)

	now := directory.Now()
	event := core.BuildBookAddedToCatalog(*item, now)
	directory.AddBook(item)

	return core.SuccessDecision(event, core.Receipt{Barcode: command.Barcode, At: now})
}

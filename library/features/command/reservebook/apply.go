package reservebook

import (
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BuildEventFilter selects the reservation events of the item.
func BuildEventFilter(barcode core.BarcodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookReservedEventType, core.ReservingBookFailedEventType).
		AndAnyPredicateOf(eventstore.P("Barcode", barcode)).
		Finalize()
}

// Apply reserves the item and translates the receipt into BookReserved or ReservingBookFailed.
func Apply(directory *core.LibraryDirectory, command Command) core.DecisionResult {
	receipt := directory.Reserve(command.CardID, command.Barcode)

	if !receipt.Outcome.IsOK() {
		return core.FailureDecision(
			core.BuildReservingBookFailed(command.Barcode, command.CardID, receipt.Outcome, receipt.At),
			receipt,
		)
	}

	return core.SuccessDecision(
		core.BuildBookReserved(command.Barcode, command.CardID, receipt.At),
		receipt,
	)
}

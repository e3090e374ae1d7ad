package checkoutbook

import (
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BuildEventFilter selects every journaled event about the item or the account.
func BuildEventFilter(barcode core.BarcodeString, cardID core.CardIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(
			eventstore.P("Barcode", barcode),
			eventstore.P("CardID", cardID),
		).
		Finalize()
}

// Apply checks the item out and translates the receipt into BookCheckedOut or CheckingOutBookFailed.
func Apply(directory *core.LibraryDirectory, command Command) core.DecisionResult {
	receipt := directory.CheckOut(command.CardID, command.Barcode)

	if !receipt.Outcome.IsOK() {
		return core.FailureDecision(
			core.BuildCheckingOutBookFailed(command.Barcode, command.CardID, receipt.Outcome, receipt.At),
			receipt,
		)
	}

	return core.SuccessDecision(
		core.BuildBookCheckedOut(command.Barcode, command.CardID, receipt.DueDate, receipt.At),
		receipt,
	)
}

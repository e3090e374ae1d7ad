package openaccount

import (
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BuildEventFilter selects the journal stream of the account.
func BuildEventFilter(cardID core.CardIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BorrowerAccountOpenedEventType).
		AndAnyPredicateOf(eventstore.P("CardID", cardID)).
		Finalize()
}

// Apply adds the account to the directory. Opening always succeeds.
func Apply(directory *core.LibraryDirectory, command Command) core.DecisionResult {
	opts := make([]core.AccountOption, 0, 2)

	if command.MaxBooks > 0 {
		opts = append(opts, core.WithMaxBooks(command.MaxBooks))
	}

	if command.LoanDays > 0 {
		opts = append(opts, core.WithLoanDays(command.LoanDays))
	}

	account := core.NewBorrowerAccount(command.Name, command.CardID, opts...)
	now := directory.Now()
	event := core.BuildBorrowerAccountOpened(account.CardID, account.Name, account.MaxBooks(), account.LoanDays(), now)
	directory.AddAccount(account)

	return core.SuccessDecision(event, core.Receipt{CardID: command.CardID, At: now})
}

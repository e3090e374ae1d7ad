package borrowerledger

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// QueryHandler reads account ledgers from the directory.
type QueryHandler struct {
	directory *core.LibraryDirectory
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(directory *core.LibraryDirectory) (QueryHandler, error) {
	if directory == nil {
		return QueryHandler{}, shell.ErrNilDirectory
	}

	return QueryHandler{directory: directory}, nil
}

// Handle returns the ledger of the first account with the card id.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowerLedger, error) {
	if err := ctx.Err(); err != nil {
		return BorrowerLedger{}, err
	}

	account, found := h.directory.FindAccount(query.CardID)
	if !found {
		return BorrowerLedger{CardID: query.CardID}, nil
	}

	return Project(account, h.directory.Now()), nil
}

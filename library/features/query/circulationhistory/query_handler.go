package circulationhistory

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// QueryHandler reads item histories from the journal.
type QueryHandler struct {
	journal shell.Journal
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(journal shell.Journal) QueryHandler {
	return QueryHandler{journal: journal}
}

// Handle returns the history of the item. A blank barcode yields an empty history.
func (h QueryHandler) Handle(ctx context.Context, query Query) (CirculationHistory, error) {
	if query.Barcode == "" {
		return Project(query.Barcode, nil), nil
	}

	envelopes, err := h.journal.History(ctx, BuildEventFilter(query.Barcode))
	if err != nil {
		return CirculationHistory{Barcode: query.Barcode}, err
	}

	return Project(query.Barcode, envelopes), nil
}

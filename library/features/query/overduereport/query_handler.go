package overduereport

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// QueryHandler builds the overdue report from the directory.
type QueryHandler struct {
	directory  *core.LibraryDirectory
	calculator core.FineCalculator
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithFineCalculator replaces the default calculator charging core.DefaultFinePerDay.
func WithFineCalculator(calculator core.FineCalculator) Option {
	return func(h *QueryHandler) {
		h.calculator = calculator
	}
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(directory *core.LibraryDirectory, opts ...Option) (QueryHandler, error) {
	if directory == nil {
		return QueryHandler{}, shell.ErrNilDirectory
	}

	handler := QueryHandler{
		directory:  directory,
		calculator: core.NewFineCalculator(core.DefaultFinePerDay),
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler, nil
}

// Handle scans the directory for overdue items and prices them.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (OverdueReport, error) {
	if err := ctx.Err(); err != nil {
		return OverdueReport{}, err
	}

	items, now := h.directory.OverdueItemsAt()

	return Project(items, now, h.calculator), nil
}

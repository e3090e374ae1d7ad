package searchbooks

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// QueryHandler searches the directory.
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

// Handle runs the search.
func (h QueryHandler) Handle(ctx context.Context, query Query) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	items := h.directory.SearchBooks(core.SearchCriteria{
		Title:   query.Title,
		Author:  query.Author,
		Subject: query.Subject,
	})

	return Project(items), nil
}

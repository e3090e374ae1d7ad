package addbook

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// CommandHandler applies the command to the directory and journals the event.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	directory *core.LibraryDirectory
	journal   shell.Journal
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(directory *core.LibraryDirectory, journal shell.Journal) (CommandHandler, error) {
	if directory == nil {
		return CommandHandler{}, shell.ErrNilDirectory
	}

	return CommandHandler{directory: directory, journal: journal}, nil
}

// Handle adds the book and records BookAddedToCatalog.
// A journal failure is returned as error; the book stays in the directory.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	decision := Apply(h.directory, command)
	retryMetrics, err := h.journal.Record(ctx, BuildEventFilter(command.Barcode), decision.Event)

	return shell.NewDecisionResult(decision, retryMetrics), err
}

package checkoutbook

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// CommandHandler applies the command to the directory and journals the result.
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

// Handle runs the checkout exactly once; only journaling is retried on concurrency conflicts.
// Business rejections are reported through HandlerResult.Outcome, never as error.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := ctx.Err(); err != nil {
		return shell.HandlerResult{}, err
	}

	decision := Apply(h.directory, command)
	retryMetrics, err := h.journal.Record(ctx, BuildEventFilter(command.Barcode, command.CardID), decision.Event)

	return shell.NewDecisionResult(decision, retryMetrics), err
}

package shell

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// HandlerResult represents the outcome of a command handler execution.
// It carries the business outcome next to the journal's retry metadata, so wrappers can
// log and measure without knowing the handler.
type HandlerResult struct {
	// Outcome is the business result of the operation. Rejections are not errors.
	Outcome core.Outcome

	// Receipt holds the details of a circulation operation (due date, overdue days).
	Receipt core.Receipt

	// RetryAttempts is the total number of journal attempts made (1 for no retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the type of the final journal error, "none" on success.
	LastErrorType string

	// RetriesExhausted indicates whether max retry attempts were reached with a retryable error.
	RetriesExhausted bool
}

// NewDecisionResult creates a HandlerResult for an applied decision.
// It is also used when journaling failed, since the directory already changed.
func NewDecisionResult(decision core.DecisionResult, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Outcome:          decision.Outcome,
		Receipt:          decision.Receipt,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// IsRejected reports whether the operation was refused by a business rule.
func (r HandlerResult) IsRejected() bool {
	return !r.Outcome.IsOK()
}

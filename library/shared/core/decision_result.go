package core

// DecisionResult represents what an Apply function did to the directory and which event records it.
//
// Construct it with SuccessDecision or FailureDecision only.
type DecisionResult struct {
	Outcome Outcome
	Event   DomainEvent
	Receipt Receipt
}

// SuccessDecision creates a DecisionResult for an operation that changed the directory.
func SuccessDecision(event DomainEvent, receipt Receipt) DecisionResult {
	receipt.Outcome = OK

	return DecisionResult{
		Outcome: OK,
		Event:   event,
		Receipt: receipt,
	}
}

// FailureDecision creates a DecisionResult for a rejected operation; the directory is unchanged.
func FailureDecision(event DomainEvent, receipt Receipt) DecisionResult {
	return DecisionResult{
		Outcome: receipt.Outcome,
		Event:   event,
		Receipt: receipt,
	}
}

// HasEventToAppend returns true if there is an event to record in the journal.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Event != nil
}

// IsSuccess reports whether the operation changed the directory.
func (r DecisionResult) IsSuccess() bool {
	return r.Outcome.IsOK()
}

package core

// Outcome is the result of a circulation operation.
type Outcome int

const (
	OK Outcome = iota
	AlreadyCheckedOut
	NotCheckedOut
	CapacityExceeded
	NotHeld
	NotFound
)

// IsOK reports whether the operation changed state as requested.
func (o Outcome) IsOK() bool {
	return o == OK
}

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case AlreadyCheckedOut:
		return "already_checked_out"
	case NotCheckedOut:
		return "not_checked_out"
	case CapacityExceeded:
		return "capacity_exceeded"
	case NotHeld:
		return "not_held"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Message returns a short human-readable description.
func (o Outcome) Message() string {
	switch o {
	case OK:
		return "done"
	case AlreadyCheckedOut:
		return "item is already checked out"
	case NotCheckedOut:
		return "item is not checked out"
	case CapacityExceeded:
		return "account can not hold more items"
	case NotHeld:
		return "item is not held by this account"
	case NotFound:
		return "invalid account or item"
	default:
		return "unknown outcome"
	}
}

package core

// DefaultFinePerDay is the fine in currency units per overdue day.
const DefaultFinePerDay = 1

// FineCalculator maps overdue days to a fine.
type FineCalculator struct {
	RatePerDay int
}

// NewFineCalculator returns a FineCalculator charging ratePerDay per overdue day.
func NewFineCalculator(ratePerDay int) FineCalculator {
	return FineCalculator{RatePerDay: ratePerDay}
}

// CalculateFine expects overdueDays >= 0.
func (c FineCalculator) CalculateFine(overdueDays int) int {
	return overdueDays * c.RatePerDay
}

// CalculateFine applies DefaultFinePerDay.
func CalculateFine(overdueDays int) int {
	return NewFineCalculator(DefaultFinePerDay).CalculateFine(overdueDays)
}

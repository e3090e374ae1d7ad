package circulationhistory

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// HistoryEntry is one recorded event.
type HistoryEntry struct {
	EventType  string
	OccurredAt time.Time
	CardID     core.CardIDString
	Detail     string
	Failed     bool
	MessageID  string
}

// CirculationHistory lists the recorded events of an item, oldest first.
type CirculationHistory struct {
	Barcode core.BarcodeString
	Entries []HistoryEntry
	Count   int
}

// ResultSize returns the number of entries.
func (r CirculationHistory) ResultSize() int {
	return r.Count
}

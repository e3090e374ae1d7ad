package circulationhistory

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

const dateLayout = time.DateOnly

// BuildEventFilter selects every recorded event carrying the barcode.
func BuildEventFilter(barcode core.BarcodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Barcode", barcode)).
		Finalize()
}

// Project turns the journal envelopes into history entries.
func Project(barcode core.BarcodeString, envelopes shell.EventEnvelopes) CirculationHistory {
	entries := lo.Map(envelopes, func(envelope shell.EventEnvelope, _ int) HistoryEntry {
		event := envelope.DomainEvent
		entry := HistoryEntry{
			EventType:  event.EventType(),
			OccurredAt: event.HasOccurredAt(),
			Failed:     event.IsErrorEvent(),
			MessageID:  envelope.EventMetadata.MessageID,
		}

		switch e := event.(type) {
		case core.BookAddedToCatalog:
			entry.Detail = fmt.Sprintf("%q shelved at %s", e.Title, e.ShelfLocation)
		case core.BookCheckedOut:
			entry.CardID = e.CardID
			entry.Detail = "due " + e.DueDate.Format(dateLayout)
		case core.BookReturned:
			entry.CardID = e.CardID
			entry.Detail = fmt.Sprintf("%d days overdue", e.OverdueDays)
		case core.BookReserved:
			entry.CardID = e.CardID
		case core.CheckingOutBookFailed:
			entry.CardID = e.CardID
			entry.Detail = e.FailureInfo
		case core.ReturningBookFailed:
			entry.CardID = e.CardID
			entry.Detail = e.FailureInfo
		case core.ReservingBookFailed:
			entry.CardID = e.CardID
			entry.Detail = e.FailureInfo
		}

		return entry
	})

	return CirculationHistory{
		Barcode: barcode,
		Entries: entries,
		Count:   len(entries),
	}
}

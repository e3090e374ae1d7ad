package checkoutbook_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/memoryengine"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/checkoutbook"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	directory := givenDirectory("B1")
	journal, store := helper.NewMemoryJournal(t)
	handler, err := checkoutbook.NewCommandHandler(directory, journal)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(context.Background(), checkoutbook.BuildCommand("C1", "B1"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OK, result.Outcome)
	assert.Equal(t, start.AddDate(0, 0, core.DefaultLoanDays), result.Receipt.DueDate)

	item, _ := directory.FindItem("B1")
	assert.True(t, item.IsCheckedOut())
	assert.Equal(t, []string{core.BookCheckedOutEventType}, helper.RecordedEventTypes(t, store))
}

func Test_CommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		arrange     func(directory *core.LibraryDirectory)
		command     checkoutbook.Command
		wantOutcome core.Outcome
	}{
		{
			name:        "unknown item",
			command:     checkoutbook.BuildCommand("C1", "B404"),
			wantOutcome: core.NotFound,
		},
		{
			name:        "unknown account",
			command:     checkoutbook.BuildCommand("C404", "B1"),
			wantOutcome: core.NotFound,
		},
		{
			name: "already checked out",
			arrange: func(directory *core.LibraryDirectory) {
				directory.AddAccount(core.NewBorrowerAccount("Grace", "C2"))
				directory.CheckOut("C2", "B1")
			},
			command:     checkoutbook.BuildCommand("C1", "B1"),
			wantOutcome: core.AlreadyCheckedOut,
		},
		{
			name: "capacity exceeded",
			arrange: func(directory *core.LibraryDirectory) {
				for i := range core.DefaultMaxBooks {
					barcode := fmt.Sprintf("X%d", i)
					directory.AddBook(core.NewCatalogItem("", barcode, "", "", nil, barcode, ""))
					directory.CheckOut("C1", barcode)
				}
			},
			command:     checkoutbook.BuildCommand("C1", "B1"),
			wantOutcome: core.CapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := givenDirectory("B1")
			if tt.arrange != nil {
				tt.arrange(directory)
			}
			journal, store := helper.NewMemoryJournal(t)
			handler, _ := checkoutbook.NewCommandHandler(directory, journal)

			result, err := handler.Handle(context.Background(), tt.command)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.True(t, result.IsRejected())
			assert.Equal(t, []string{core.CheckingOutBookFailedEventType}, helper.RecordedEventTypes(t, store))
		})
	}
}

func Test_CommandHandler_Handle_JournalFailure_IsReturnedAsError(t *testing.T) {
	// arrange
	directory := givenDirectory("B1")
	memoryStore, err := memoryengine.NewEventStore()
	require.NoError(t, err)
	journal, err := shell.NewJournal(failingAppendStore{EventStore: memoryStore})
	require.NoError(t, err)
	handler, _ := checkoutbook.NewCommandHandler(directory, journal)

	// act
	result, err := handler.Handle(context.Background(), checkoutbook.BuildCommand("C1", "B1"))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrAppendingEventFailed)
	assert.Equal(t, core.OK, result.Outcome)
	assert.Equal(t, 1, result.RetryAttempts)

	item, _ := directory.FindItem("B1")
	assert.True(t, item.IsCheckedOut())
}

func Test_CommandHandler_Handle_CanceledContext_DoesNotTouchDirectory(t *testing.T) {
	// arrange
	directory := givenDirectory("B1")
	journal, _ := helper.NewMemoryJournal(t)
	handler, _ := checkoutbook.NewCommandHandler(directory, journal)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := handler.Handle(ctx, checkoutbook.BuildCommand("C1", "B1"))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	item, _ := directory.FindItem("B1")
	assert.False(t, item.IsCheckedOut())
}

type failingAppendStore struct {
	memoryengine.EventStore
}

func (s failingAppendStore) Append(
	_ context.Context,
	_ eventstore.Filter,
	_ eventstore.MaxSequenceNumberUint,
	_ eventstore.StorableEvent,
	_ ...eventstore.StorableEvent,
) error {

	return errors.Join(eventstore.ErrAppendingEventFailed, errors.New("disk full"))
}

func givenDirectory(barcodes ...core.BarcodeString) *core.LibraryDirectory {
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", helper.NewManualClock(start))
	directory.AddAccount(core.NewBorrowerAccount("Ada", "C1"))

	for _, barcode := range barcodes {
		directory.AddBook(core.NewCatalogItem("978-0", "Title "+barcode, "Subject", "Publisher", []string{"Author"}, barcode, "R1"))
	}

	return directory
}

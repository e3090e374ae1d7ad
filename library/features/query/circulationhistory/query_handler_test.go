package circulationhistory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/checkoutbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/openaccount"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/circulationhistory"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_QueryHandler_Handle_ListsEverythingRecordedForTheItem(t *testing.T) {
	// arrange
	ctx := context.Background()
	clock := helper.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", clock)
	journal, _ := helper.NewMemoryJournal(t)

	addBook, _ := addbook.NewCommandHandler(directory, journal)
	openAccount, _ := openaccount.NewCommandHandler(directory, journal)
	checkOut, _ := checkoutbook.NewCommandHandler(directory, journal)
	returnBook, _ := returnbook.NewCommandHandler(directory, journal)

	_, err := addBook.Handle(ctx, addbook.BuildCommand("1", "The Hobbit", "Fantasy", "Allen & Unwin", []string{"J.R.R. Tolkien"}, "B1", "R1"))
	require.NoError(t, err)
	_, err = addBook.Handle(ctx, addbook.BuildCommand("2", "Dune", "Science Fiction", "Chilton", []string{"Frank Herbert"}, "B2", "R2"))
	require.NoError(t, err)
	_, err = openAccount.Handle(ctx, openaccount.BuildCommand("C1", "Ada", 0, 0))
	require.NoError(t, err)
	_, err = openAccount.Handle(ctx, openaccount.BuildCommand("C2", "Grace", 0, 0))
	require.NoError(t, err)
	_, err = checkOut.Handle(ctx, checkoutbook.BuildCommand("C1", "B1"))
	require.NoError(t, err)
	_, err = checkOut.Handle(ctx, checkoutbook.BuildCommand("C2", "B1"))
	require.NoError(t, err)
	clock.AdvanceDays(core.DefaultLoanDays + 3)
	_, err = returnBook.Handle(ctx, returnbook.BuildCommand("C1", "B1"))
	require.NoError(t, err)

	handler := circulationhistory.NewQueryHandler(journal)

	// act
	history, err := handler.Handle(ctx, circulationhistory.BuildQuery("B1"))

	// assert
	require.NoError(t, err)
	require.Equal(t, 4, history.ResultSize())
	assert.Equal(t, core.BookAddedToCatalogEventType, history.Entries[0].EventType)
	assert.Equal(t, core.BookCheckedOutEventType, history.Entries[1].EventType)
	assert.Equal(t, "C1", history.Entries[1].CardID)
	assert.Equal(t, "due 2025-03-11", history.Entries[1].Detail)
	assert.Equal(t, core.CheckingOutBookFailedEventType, history.Entries[2].EventType)
	assert.True(t, history.Entries[2].Failed)
	assert.Equal(t, core.AlreadyCheckedOut.Message(), history.Entries[2].Detail)
	assert.Equal(t, core.BookReturnedEventType, history.Entries[3].EventType)
	assert.Equal(t, "3 days overdue", history.Entries[3].Detail)
	assert.NotEmpty(t, history.Entries[3].MessageID)
}

func Test_QueryHandler_Handle_BlankBarcode_IsEmpty(t *testing.T) {
	journal, _ := helper.NewMemoryJournal(t)
	handler := circulationhistory.NewQueryHandler(journal)

	history, err := handler.Handle(context.Background(), circulationhistory.BuildQuery(""))

	require.NoError(t, err)
	assert.Empty(t, history.Entries)
}

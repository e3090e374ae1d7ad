package returnbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func Test_CommandHandler_Handle_OnTimeAndLate(t *testing.T) {
	tests := []struct {
		name            string
		daysAfterLoan   int
		wantOverdueDays int
	}{
		{name: "on time", daysAfterLoan: 4, wantOverdueDays: 0},
		{name: "on the due date", daysAfterLoan: core.DefaultLoanDays, wantOverdueDays: 0},
		{name: "three days late", daysAfterLoan: core.DefaultLoanDays + 3, wantOverdueDays: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			clock := helper.NewManualClock(start)
			directory := givenDirectory(clock)
			require.True(t, directory.CheckOut("C1", "B1").Outcome.IsOK())
			clock.AdvanceDays(tt.daysAfterLoan)

			journal, store := helper.NewMemoryJournal(t)
			handler, err := returnbook.NewCommandHandler(directory, journal)
			require.NoError(t, err)

			// act
			result, err := handler.Handle(context.Background(), returnbook.BuildCommand("C1", "B1"))

			// assert
			require.NoError(t, err)
			assert.Equal(t, core.OK, result.Outcome)
			assert.Equal(t, tt.wantOverdueDays, result.Receipt.OverdueDays)
			assert.Equal(t, tt.wantOverdueDays > 0, result.Receipt.Late())

			item, _ := directory.FindItem("B1")
			assert.False(t, item.IsCheckedOut())
			held, _ := directory.Held("C1")
			assert.Empty(t, held)
			assert.Equal(t, []string{core.BookReturnedEventType}, helper.RecordedEventTypes(t, store))
		})
	}
}

func Test_CommandHandler_Handle_ItemNotHeld_IsRejected(t *testing.T) {
	// arrange
	directory := givenDirectory(helper.NewManualClock(start))
	directory.AddAccount(core.NewBorrowerAccount("Grace", "C2"))
	require.True(t, directory.CheckOut("C2", "B1").Outcome.IsOK())

	journal, store := helper.NewMemoryJournal(t)
	handler, _ := returnbook.NewCommandHandler(directory, journal)

	// act
	result, err := handler.Handle(context.Background(), returnbook.BuildCommand("C1", "B1"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.NotHeld, result.Outcome)
	item, _ := directory.FindItem("B1")
	assert.True(t, item.IsCheckedOut())
	assert.Equal(t, []string{core.ReturningBookFailedEventType}, helper.RecordedEventTypes(t, store))
}

func Test_CommandHandler_Handle_UnknownItem_IsNotFound(t *testing.T) {
	directory := givenDirectory(helper.NewManualClock(start))
	journal, _ := helper.NewMemoryJournal(t)
	handler, _ := returnbook.NewCommandHandler(directory, journal)

	result, err := handler.Handle(context.Background(), returnbook.BuildCommand("C1", "B404"))

	require.NoError(t, err)
	assert.Equal(t, core.NotFound, result.Outcome)
}

func givenDirectory(clock core.Clock) *core.LibraryDirectory {
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", clock)
	directory.AddAccount(core.NewBorrowerAccount("Ada", "C1"))
	directory.AddBook(core.NewCatalogItem("978-0", "The Hobbit", "Fantasy", "Allen & Unwin", []string{"J.R.R. Tolkien"}, "B1", "R1"))

	return directory
}

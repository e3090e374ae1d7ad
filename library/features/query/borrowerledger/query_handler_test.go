package borrowerledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowerledger"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_QueryHandler_Handle_ShowsHeldAndReservedItems(t *testing.T) {
	// arrange
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := helper.NewManualClock(start)
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", clock)
	directory.AddAccount(core.NewBorrowerAccount("Ada", "C1", core.WithMaxBooks(3)))
	directory.AddAccount(core.NewBorrowerAccount("Grace", "C2"))
	directory.AddBook(core.NewCatalogItem("1", "The Hobbit", "Fantasy", "Allen & Unwin", []string{"J.R.R. Tolkien"}, "B1", "R1"))
	directory.AddBook(core.NewCatalogItem("2", "Dune", "Science Fiction", "Chilton", []string{"Frank Herbert"}, "B2", "R2"))
	require.True(t, directory.CheckOut("C1", "B1").Outcome.IsOK())
	require.True(t, directory.CheckOut("C2", "B2").Outcome.IsOK())
	require.True(t, directory.Reserve("C1", "B2").Outcome.IsOK())
	clock.AdvanceDays(core.DefaultLoanDays + 2)

	handler, err := borrowerledger.NewQueryHandler(directory)
	require.NoError(t, err)

	// act
	ledger, err := handler.Handle(context.Background(), borrowerledger.BuildQuery("C1"))

	// assert
	require.NoError(t, err)
	assert.True(t, ledger.Found)
	assert.Equal(t, "Ada", ledger.Name)
	assert.Equal(t, 2, ledger.RemainingCapacity())
	require.Len(t, ledger.Held, 1)
	assert.Equal(t, "B1", ledger.Held[0].Barcode)
	assert.Equal(t, start.AddDate(0, 0, core.DefaultLoanDays), ledger.Held[0].DueDate)
	assert.Equal(t, 2, ledger.Held[0].OverdueDays)
	require.Len(t, ledger.Reserved, 1)
	assert.Equal(t, "B2", ledger.Reserved[0].Barcode)
	assert.True(t, ledger.Reserved[0].CheckedOut)
	assert.Equal(t, 2, ledger.ResultSize())
}

func Test_QueryHandler_Handle_UnknownCard(t *testing.T) {
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)
	handler, _ := borrowerledger.NewQueryHandler(directory)

	ledger, err := handler.Handle(context.Background(), borrowerledger.BuildQuery("C404"))

	require.NoError(t, err)
	assert.False(t, ledger.Found)
	assert.Equal(t, "C404", ledger.CardID)
	assert.Equal(t, 0, ledger.ResultSize())
}

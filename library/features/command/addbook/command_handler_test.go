package addbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_CommandHandler_Handle_AddsBookAndJournalsIt(t *testing.T) {
	// arrange
	clock := helper.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", clock)
	journal, store := helper.NewMemoryJournal(t)
	handler, err := addbook.NewCommandHandler(directory, journal)
	require.NoError(t, err)

	command := addbook.BuildCommand(
		"978-0-261-10221-7", "The Hobbit", "Fantasy", "Allen & Unwin",
		[]string{"J.R.R. Tolkien"}, "B1", "R1",
	)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OK, result.Outcome)
	assert.Equal(t, 1, result.RetryAttempts)

	item, found := directory.FindItem("B1")
	require.True(t, found)
	assert.Equal(t, "The Hobbit", item.Title)
	assert.Equal(t, []string{"J.R.R. Tolkien"}, item.Authors)
	assert.False(t, item.IsCheckedOut())

	assert.Equal(t, []string{core.BookAddedToCatalogEventType}, helper.RecordedEventTypes(t, store))
}

func Test_CommandHandler_Handle_AcceptsDuplicateBarcodes(t *testing.T) {
	// arrange
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)
	journal, store := helper.NewMemoryJournal(t)
	handler, _ := addbook.NewCommandHandler(directory, journal)

	// act
	_, err1 := handler.Handle(context.Background(), addbook.BuildCommand("1", "First", "", "", nil, "B1", "R1"))
	_, err2 := handler.Handle(context.Background(), addbook.BuildCommand("2", "Second", "", "", nil, "B1", "R2"))

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 2, directory.ItemCount())
	item, _ := directory.FindItem("B1")
	assert.Equal(t, "First", item.Title)
	assert.Len(t, helper.RecordedEventTypes(t, store), 2)
}

func Test_NewCommandHandler_WithoutDirectory_Fails(t *testing.T) {
	journal, _ := helper.NewMemoryJournal(t)

	_, err := addbook.NewCommandHandler(nil, journal)

	assert.ErrorIs(t, err, shell.ErrNilDirectory)
}

package openaccount_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/openaccount"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_Apply(t *testing.T) {
	tests := []struct {
		name         string
		command      openaccount.Command
		wantMaxBooks int
		wantLoanDays int
	}{
		{
			name:         "defaults",
			command:      openaccount.BuildCommand("C1", "Ada", 0, 0),
			wantMaxBooks: core.DefaultMaxBooks,
			wantLoanDays: core.DefaultLoanDays,
		},
		{
			name:         "custom limits",
			command:      openaccount.BuildCommand("C2", "Grace", 2, 21),
			wantMaxBooks: 2,
			wantLoanDays: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)

			decision := openaccount.Apply(directory, tt.command)

			assert.True(t, decision.IsSuccess())
			event, ok := decision.Event.(core.BorrowerAccountOpened)
			require.True(t, ok)
			assert.Equal(t, tt.wantMaxBooks, event.MaxBooks)
			assert.Equal(t, tt.wantLoanDays, event.LoanDays)

			account, found := directory.FindAccount(tt.command.CardID)
			require.True(t, found)
			assert.Equal(t, tt.command.Name, account.Name)
			assert.Equal(t, tt.wantMaxBooks, account.MaxBooks)
		})
	}
}

func Test_CommandHandler_Handle_JournalsAccountOpened(t *testing.T) {
	// arrange
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)
	journal, store := helper.NewMemoryJournal(t)
	handler, err := openaccount.NewCommandHandler(directory, journal)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(context.Background(), openaccount.BuildCommand("C1", "Ada", 0, 0))

	// assert
	require.NoError(t, err)
	assert.False(t, result.IsRejected())
	assert.Equal(t, []string{core.BorrowerAccountOpenedEventType}, helper.RecordedEventTypes(t, store))
}

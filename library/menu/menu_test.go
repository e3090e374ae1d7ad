package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/checkoutbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/openaccount"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/reservebook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowerledger"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/circulationhistory"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overduereport"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/searchbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/menu"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

var start = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func Test_Menu_Run_AddBookAndAccountThenCheckOut(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	input := lines(
		"1", "978-1", "Dune", "Science Fiction", "Chilton", "Frank Herbert, ,", "B1", "R1",
		"2", "Ada", "C1",
		"3", "C1", "B1",
		"3", "C1", "B1",
		"8",
	)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(input), &out, handlers)
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Book Dune added to the library.")
	assert.Contains(t, out.String(), "Account for Ada added.")
	assert.Contains(t, out.String(), "Book B1 checked out by card C1, due on 2025-03-11.")
	assert.Contains(t, out.String(), "Book B1 is already checked out.")
	assert.Contains(t, out.String(), "Exiting...")
}

func Test_Menu_Run_ReturnLateAndReportOverdue(t *testing.T) {
	// arrange
	handlers, clock := givenHandlers(t)
	directoryInput := lines(
		"1", "978-1", "Dune", "SF", "Chilton", "Frank Herbert", "B1", "R1",
		"2", "Ada", "C1",
		"3", "C1", "B1",
	)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(directoryInput), &out, handlers)
	require.NoError(t, err)
	require.NoError(t, m.Run(context.Background()))

	clock.AdvanceDays(core.DefaultLoanDays + 3)
	out.Reset()

	m, err = menu.New(strings.NewReader(lines("7", "4", "C1", "B1", "7", "8")), &out, handlers)
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Title: Dune, Borrower: Ada, Fine: $3")
	assert.Contains(t, out.String(), "Book B1 returned late. Fine applicable for 3 days.")
	assert.Contains(t, out.String(), "No overdue books.")
}

func Test_Menu_Run_SearchAndReserve(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	input := lines(
		"1", "978-1", "Dune", "Science Fiction", "Chilton", "Frank Herbert", "B1", "R1",
		"2", "Ada", "C1",
		"2", "Grace", "C2",
		"5", "C2", "B1",
		"3", "C1", "B1",
		"5", "C2", "B1",
		"6", "", "herbert", "",
		"6", "Foundation", "", "",
		"5", "C2", "B404",
		"8",
	)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(input), &out, handlers)
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Book B1 is available and can be checked out.")
	assert.Contains(t, out.String(), "Book B1 reserved by card C2.")
	assert.Contains(t, out.String(), "Title: Dune, Authors: Frank Herbert, Subject: Science Fiction")
	assert.Contains(t, out.String(), "No books found.")
	assert.Contains(t, out.String(), "Invalid account or book.")
}

func Test_Menu_Run_LedgerAndHistory(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	input := lines(
		"1", "978-1", "Dune", "SF", "Chilton", "Frank Herbert", "B1", "R1",
		"2", "Ada", "C1",
		"3", "C1", "B1",
		"9", "C1",
		"9", "C404",
		"10", "B1",
		"10", "B404",
		"8",
	)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(input), &out, handlers)
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Account of Ada (card C1), 1 of 5 books held")
	assert.Contains(t, out.String(), "Held: Dune (B1), due on 2025-03-11")
	assert.Contains(t, out.String(), "Invalid account.")
	assert.Contains(t, out.String(), "History of B1:")
	assert.Contains(t, out.String(), core.BookCheckedOutEventType+" card=C1")
	assert.Contains(t, out.String(), "No history recorded.")
}

func Test_Menu_Run_InvalidChoiceAndEndOfInput(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(lines("42")), &out, handlers, menu.WithTitle("Branch Office"))
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Branch Office")
	assert.Contains(t, out.String(), "Invalid choice, please try again.")
	assert.NotContains(t, out.String(), "Exiting...")
}

func Test_Menu_Run_AccountLimits(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	input := lines(
		"1", "978-1", "Dune", "SF", "Chilton", "Frank Herbert", "B1", "R1",
		"1", "978-2", "Emma", "Novel", "Murray", "Jane Austen", "B2", "R2",
		"2", "Ada", "C1",
		"3", "C1", "B1",
		"3", "C1", "B2",
		"8",
	)
	var out bytes.Buffer

	m, err := menu.New(strings.NewReader(input), &out, handlers, menu.WithAccountLimits(1, 7))
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Book B1 checked out by card C1, due on 2025-03-08.")
	assert.Contains(t, out.String(), "Cannot check out more books on card C1.")
}

func Test_Menu_Run_ReportsHandlerErrorsAndContinues(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	handlers.SearchBooks = failingSearch{}
	logHandler := helper.NewLogHandlerSpy(false)
	var out bytes.Buffer

	m, err := menu.New(
		strings.NewReader(lines("6", "Dune", "", "", "8")),
		&out,
		handlers,
		menu.WithLogger(helper.NewSlogLogger(logHandler)),
	)
	require.NoError(t, err)

	// act
	err = m.Run(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Something went wrong: search index unavailable")
	assert.Contains(t, out.String(), "Exiting...")
	assert.True(t, logHandler.HasMessage("menu action failed"))
}

func Test_Menu_Run_StopsOnCanceledContext(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := menu.New(strings.NewReader(lines("8")), &bytes.Buffer{}, handlers)
	require.NoError(t, err)

	// act
	err = m.Run(ctx)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_New_MissingHandler(t *testing.T) {
	// arrange
	handlers, _ := givenHandlers(t)
	handlers.CirculationHistory = nil

	// act
	m, err := menu.New(strings.NewReader(""), &bytes.Buffer{}, handlers)

	// assert
	assert.Nil(t, m)
	assert.ErrorIs(t, err, menu.ErrMissingHandler)
}

type failingSearch struct{}

func (failingSearch) Handle(context.Context, searchbooks.Query) (searchbooks.SearchResult, error) {
	return searchbooks.SearchResult{}, errors.New("search index unavailable")
}

var _ shell.QueryHandler[searchbooks.Query, searchbooks.SearchResult] = failingSearch{}

func givenHandlers(t *testing.T) (menu.Handlers, *helper.ManualClock) {
	t.Helper()

	clock := helper.NewManualClock(start)
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", clock)
	journal, _ := helper.NewMemoryJournal(t)

	addBook, err := addbook.NewCommandHandler(directory, journal)
	require.NoError(t, err)
	openAccount, err := openaccount.NewCommandHandler(directory, journal)
	require.NoError(t, err)
	checkOut, err := checkoutbook.NewCommandHandler(directory, journal)
	require.NoError(t, err)
	returnBook, err := returnbook.NewCommandHandler(directory, journal)
	require.NoError(t, err)
	reserve, err := reservebook.NewCommandHandler(directory, journal)
	require.NoError(t, err)
	search, err := searchbooks.NewQueryHandler(directory)
	require.NoError(t, err)
	overdue, err := overduereport.NewQueryHandler(directory)
	require.NoError(t, err)
	ledger, err := borrowerledger.NewQueryHandler(directory)
	require.NoError(t, err)

	return menu.Handlers{
		AddBook:            addBook,
		OpenAccount:        openAccount,
		CheckOutBook:       checkOut,
		ReturnBook:         returnBook,
		ReserveBook:        reserve,
		SearchBooks:        search,
		OverdueReport:      overdue,
		BorrowerLedger:     ledger,
		CirculationHistory: circulationhistory.NewQueryHandler(journal),
	}, clock
}

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

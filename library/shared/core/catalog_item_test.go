package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

func Test_CatalogItem_Checkout_ThenReturn_RestoresAvailability(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := givenItem("B1", "The Hobbit")
	account := core.NewBorrowerAccount("Alice", "C1")

	// act
	checkoutOutcome := item.Checkout(account, core.DefaultLoanDays, now)
	returnOutcome, overdueDays := item.Return(now)

	// assert
	assert.Equal(t, core.OK, checkoutOutcome)
	assert.Equal(t, core.OK, returnOutcome)
	assert.Equal(t, 0, overdueDays)
	assert.False(t, item.IsCheckedOut())
	assert.Nil(t, item.Borrower())
	dueDate, isSet := item.DueDate()
	assert.False(t, isSet)
	assert.True(t, dueDate.IsZero())
}

func Test_CatalogItem_Checkout_SetsDueDateAndBorrower(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := givenItem("B1", "The Hobbit")
	account := core.NewBorrowerAccount("Alice", "C1")

	// act
	outcome := item.Checkout(account, 14, now)

	// assert
	assert.Equal(t, core.OK, outcome)
	assert.True(t, item.IsCheckedOut())
	assert.Same(t, account, item.Borrower())
	dueDate, isSet := item.DueDate()
	assert.True(t, isSet)
	assert.Equal(t, now.AddDate(0, 0, 14), dueDate)
}

func Test_CatalogItem_Checkout_IsNoOp_WhenAlreadyCheckedOut(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := givenItem("B1", "The Hobbit")
	first := core.NewBorrowerAccount("Alice", "C1")
	second := core.NewBorrowerAccount("Bob", "C2")
	item.Checkout(first, core.DefaultLoanDays, now)
	dueBefore, _ := item.DueDate()

	// act
	outcome := item.Checkout(second, 3, now.Add(time.Hour))

	// assert
	assert.Equal(t, core.AlreadyCheckedOut, outcome)
	assert.Same(t, first, item.Borrower())
	dueAfter, _ := item.DueDate()
	assert.Equal(t, dueBefore, dueAfter)
}

func Test_CatalogItem_Return_ReportsNotCheckedOut_WhenAvailable(t *testing.T) {
	// arrange
	item := givenItem("B1", "The Hobbit")

	// act
	outcome, overdueDays := item.Return(time.Now())

	// assert
	assert.Equal(t, core.NotCheckedOut, outcome)
	assert.Equal(t, 0, overdueDays)
}

func Test_CatalogItem_Return_CountsWholeOverdueDays(t *testing.T) {
	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{name: "returned early", elapsed: 2 * 24 * time.Hour, expected: 0},
		{name: "returned at due date", elapsed: 10 * 24 * time.Hour, expected: 0},
		{name: "less than one day late", elapsed: 10*24*time.Hour + 23*time.Hour, expected: 0},
		{name: "three days late", elapsed: 13 * 24 * time.Hour, expected: 3},
		{name: "three and a half days late", elapsed: 13*24*time.Hour + 12*time.Hour, expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
			item := givenItem("B1", "The Hobbit")
			item.Checkout(core.NewBorrowerAccount("Alice", "C1"), core.DefaultLoanDays, now)

			// act
			outcome, overdueDays := item.Return(now.Add(tc.elapsed))

			// assert
			assert.Equal(t, core.OK, outcome)
			assert.Equal(t, tc.expected, overdueDays)
		})
	}
}

func Test_CatalogItem_IsOverdue_OnlyWhenDueDateStrictlyBeforeNow(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := givenItem("B1", "The Hobbit")
	item.Checkout(core.NewBorrowerAccount("Alice", "C1"), 1, now)
	dueDate, _ := item.DueDate()

	// act & assert
	assert.False(t, item.IsOverdue(now))
	assert.False(t, item.IsOverdue(dueDate))
	assert.True(t, item.IsOverdue(dueDate.Add(time.Nanosecond)))
	assert.False(t, givenItem("B2", "Dune").IsOverdue(now.AddDate(1, 0, 0)))
}

func givenItem(barcode core.BarcodeString, title string) *core.CatalogItem {
	return core.NewCatalogItem(
		"978-0-261-10221-7",
		title,
		"Fantasy",
		"Allen & Unwin",
		[]string{"J. R. R. Tolkien"},
		barcode,
		"R1",
	)
}

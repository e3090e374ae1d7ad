package searchbooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/query/searchbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

func Test_QueryHandler_Handle(t *testing.T) {
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)
	directory.AddBook(core.NewCatalogItem("1", "The Hobbit", "Fantasy", "Allen & Unwin", []string{"J.R.R. Tolkien"}, "B1", "R1"))
	directory.AddBook(core.NewCatalogItem("2", "Dune", "Science Fiction", "Chilton", []string{"Frank Herbert"}, "B2", "R2"))
	directory.AddBook(core.NewCatalogItem("3", "Good Omens", "Fantasy", "Gollancz", []string{"Terry Pratchett", "Neil Gaiman"}, "B3", "R3"))
	directory.AddAccount(core.NewBorrowerAccount("Ada", "C1"))
	require.True(t, directory.CheckOut("C1", "B2").Outcome.IsOK())

	handler, err := searchbooks.NewQueryHandler(directory)
	require.NoError(t, err)

	tests := []struct {
		name         string
		query        searchbooks.Query
		wantBarcodes []string
	}{
		{name: "title substring ignores case", query: searchbooks.BuildQuery("hobbit", "", ""), wantBarcodes: []string{"B1"}},
		{name: "any author matches", query: searchbooks.BuildQuery("", "gaiman", ""), wantBarcodes: []string{"B3"}},
		{name: "filters are OR-combined", query: searchbooks.BuildQuery("dune", "", "fantasy"), wantBarcodes: []string{"B1", "B2", "B3"}},
		{name: "no filter finds nothing", query: searchbooks.BuildQuery("", "", ""), wantBarcodes: []string{}},
		{name: "no match", query: searchbooks.BuildQuery("Ulysses", "", ""), wantBarcodes: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler.Handle(context.Background(), tt.query)

			require.NoError(t, err)
			barcodes := make([]string, 0, len(result.Books))
			for _, book := range result.Books {
				barcodes = append(barcodes, book.Barcode)
			}
			assert.Equal(t, tt.wantBarcodes, barcodes)
			assert.Equal(t, len(tt.wantBarcodes), result.ResultSize())
		})
	}
}

func Test_Project_ReportsLoanState(t *testing.T) {
	directory := core.NewLibraryDirectory("Central Library", "123 Library St.", nil)
	directory.AddBook(core.NewCatalogItem("2", "Dune", "Science Fiction", "Chilton", []string{"Frank Herbert"}, "B2", "R2"))
	directory.AddAccount(core.NewBorrowerAccount("Ada", "C1"))
	receipt := directory.CheckOut("C1", "B2")

	result := searchbooks.Project(directory.SearchBooks(core.SearchCriteria{Title: "Dune"}))

	require.Len(t, result.Books, 1)
	assert.True(t, result.Books[0].CheckedOut)
	assert.Equal(t, receipt.DueDate, result.Books[0].DueDate)
	assert.Equal(t, "R2", result.Books[0].ShelfLocation)
}

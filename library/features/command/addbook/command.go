package addbook

import (
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to put a new book on the shelf.
type Command struct {
	ISBN          core.ISBNString
	Title         string
	Subject       string
	Publisher     string
	Authors       []string
	Barcode       core.BarcodeString
	ShelfLocation string
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	isbn core.ISBNString,
	title string,
	subject string,
	publisher string,
	authors []string,
	barcode core.BarcodeString,
	shelfLocation string,
) Command {

	return Command{
		ISBN:          isbn,
		Title:         title,
		Subject:       subject,
		Publisher:     publisher,
		Authors:       slices.Clone(authors),
		Barcode:       barcode,
		ShelfLocation: shelfLocation,
	}
}

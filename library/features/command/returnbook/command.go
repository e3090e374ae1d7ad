package returnbook

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "ReturnBook"
)

// Command represents the intent to bring the item with Barcode back from the account with CardID.
type Command struct {
	CardID  core.CardIDString
	Barcode core.BarcodeString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(cardID core.CardIDString, barcode core.BarcodeString) Command {
	return Command{
		CardID:  cardID,
		Barcode: barcode,
	}
}

package checkoutbook

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "CheckOutBook"
)

// Command represents the intent to lend the item with Barcode to the account with CardID.
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

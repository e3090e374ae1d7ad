package reservebook

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "ReserveBook"
)

// Command represents the interest of the account with CardID in the item with Barcode.
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

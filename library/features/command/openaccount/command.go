package openaccount

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "OpenAccount"
)

// Command represents the intent to give a member a library card.
// Zero MaxBooks or LoanDays fall back to core.DefaultMaxBooks and core.DefaultLoanDays.
type Command struct {
	CardID   core.CardIDString
	Name     string
	MaxBooks int
	LoanDays int
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(cardID core.CardIDString, name string, maxBooks int, loanDays int) Command {
	return Command{
		CardID:   cardID,
		Name:     name,
		MaxBooks: maxBooks,
		LoanDays: loanDays,
	}
}

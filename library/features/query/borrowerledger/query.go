package borrowerledger

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	queryType = "BorrowerLedger"
)

// Query asks for the ledger of the account with CardID.
type Query struct {
	CardID core.CardIDString
}

// BuildQuery creates a new Query.
func BuildQuery(cardID core.CardIDString) Query {
	return Query{CardID: cardID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

package circulationhistory

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	queryType = "CirculationHistory"
)

// Query asks for the recorded history of the item with Barcode.
type Query struct {
	Barcode core.BarcodeString
}

// BuildQuery creates a new Query.
func BuildQuery(barcode core.BarcodeString) Query {
	return Query{Barcode: barcode}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

package overduereport

const (
	queryType = "OverdueReport"
)

// Query represents the request for the overdue report. It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

package searchbooks

const (
	queryType = "SearchBooks"
)

// Query holds the optional search filters.
type Query struct {
	Title   string
	Author  string
	Subject string
}

// BuildQuery creates a new Query.
func BuildQuery(title string, author string, subject string) Query {
	return Query{
		Title:   title,
		Author:  author,
		Subject: subject,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Package searchbooks provides the catalog search.
//
// Title, author and subject filters are OR-combined case-insensitive substring matches.
// Blank filters are ignored, and a query without any filter finds nothing.
package searchbooks

// Package circulationhistory reads the journal of a single item.
//
// Unlike the other queries it does not look at the directory; it lists what was recorded,
// including rejected operations.
package circulationhistory

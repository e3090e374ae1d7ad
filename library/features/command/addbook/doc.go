// Package addbook implements the Add Book use case.
//
// A new catalog item is appended to the directory without any uniqueness check, and a
// BookAddedToCatalog event is journaled.
package addbook

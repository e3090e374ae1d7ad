// Package menu is the interactive text front-end of the library.
//
// It reads choices and field values line by line, dispatches them to the command and query
// handlers and renders the outcomes. Options 1 to 8 follow the classic circulation desk menu;
// 9 and 10 show an account ledger and an item's recorded history.
package menu

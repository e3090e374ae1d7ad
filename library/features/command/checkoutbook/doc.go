// Package checkoutbook implements the Check Out Book use case.
//
// The account's capacity is checked before the item's availability. Rejected checkouts
// leave the directory unchanged and are journaled as CheckingOutBookFailed.
package checkoutbook

// Package openaccount implements the Open Borrower Account use case.
package openaccount

// Package overduereport lists every checked-out item past its due date together with the fine owed.
//
// This is the only place where fines are computed. Returning a late item does not charge anything.
package overduereport

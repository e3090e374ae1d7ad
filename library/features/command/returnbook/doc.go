// Package returnbook implements the Return Book use case.
//
// A return reports how many whole days the item was overdue. No fine is charged here;
// fines are only computed by the overdue report.
package returnbook

package menu

import (
	"context"
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/checkoutbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/openaccount"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/reservebook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/returnbook"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowerledger"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/circulationhistory"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/overduereport"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/searchbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const msgInvalidAccountOrBook = "Invalid account or book."

func (m *Menu) addBook(ctx context.Context) error {
	answers := m.askAll(
		"Enter ISBN: ",
		"Enter Title: ",
		"Enter Subject: ",
		"Enter Publisher: ",
		"Enter Authors (comma separated): ",
		"Enter Barcode: ",
		"Enter Rack: ",
	)

	command := addbook.BuildCommand(
		answers[0], answers[1], answers[2], answers[3], splitAuthors(answers[4]), answers[5], answers[6],
	)

	if _, err := m.handlers.AddBook.Handle(ctx, command); err != nil {
		return err
	}

	m.printf("Book %s added to the library.\n", command.Title)

	return nil
}

func (m *Menu) addAccount(ctx context.Context) error {
	answers := m.askAll("Enter Member Name: ", "Enter Library Card Number: ")
	command := openaccount.BuildCommand(answers[1], answers[0], m.maxBooks, m.loanDays)

	if _, err := m.handlers.OpenAccount.Handle(ctx, command); err != nil {
		return err
	}

	m.printf("Account for %s added.\n", command.Name)

	return nil
}

func (m *Menu) checkOut(ctx context.Context) error {
	answers := m.askAll("Enter Library Card Number: ", "Enter Book Barcode: ")

	result, err := m.handlers.CheckOutBook.Handle(ctx, checkoutbook.BuildCommand(answers[0], answers[1]))
	if err != nil {
		return err
	}

	receipt := result.Receipt

	switch result.Outcome {
	case core.OK:
		m.printf("Book %s checked out by card %s, due on %s.\n",
			receipt.Barcode, receipt.CardID, receipt.DueDate.Format(dateLayout))
	case core.AlreadyCheckedOut:
		m.printf("Book %s is already checked out.\n", receipt.Barcode)
	case core.CapacityExceeded:
		m.printf("Cannot check out more books on card %s.\n", receipt.CardID)
	case core.NotFound:
		m.println(msgInvalidAccountOrBook)
	default:
		m.println(result.Outcome.Message())
	}

	return nil
}

func (m *Menu) returnBook(ctx context.Context) error {
	answers := m.askAll("Enter Library Card Number: ", "Enter Book Barcode: ")

	result, err := m.handlers.ReturnBook.Handle(ctx, returnbook.BuildCommand(answers[0], answers[1]))
	if err != nil {
		return err
	}

	receipt := result.Receipt

	switch {
	case result.Outcome == core.OK && receipt.Late():
		m.printf("Book %s returned late. Fine applicable for %d days.\n", receipt.Barcode, receipt.OverdueDays)
	case result.Outcome == core.OK:
		m.printf("Book %s returned on time.\n", receipt.Barcode)
	case result.Outcome == core.NotHeld:
		m.printf("Book %s was not checked out by card %s.\n", receipt.Barcode, receipt.CardID)
	case result.Outcome == core.NotCheckedOut:
		m.printf("Book %s was not checked out.\n", receipt.Barcode)
	case result.Outcome == core.NotFound:
		m.println(msgInvalidAccountOrBook)
	default:
		m.println(result.Outcome.Message())
	}

	return nil
}

func (m *Menu) reserve(ctx context.Context) error {
	answers := m.askAll("Enter Library Card Number: ", "Enter Book Barcode: ")

	result, err := m.handlers.ReserveBook.Handle(ctx, reservebook.BuildCommand(answers[0], answers[1]))
	if err != nil {
		return err
	}

	receipt := result.Receipt

	switch result.Outcome {
	case core.OK:
		m.printf("Book %s reserved by card %s.\n", receipt.Barcode, receipt.CardID)
	case core.NotCheckedOut:
		m.printf("Book %s is available and can be checked out.\n", receipt.Barcode)
	case core.NotFound:
		m.println(msgInvalidAccountOrBook)
	default:
		m.println(result.Outcome.Message())
	}

	return nil
}

func (m *Menu) search(ctx context.Context) error {
	answers := m.askAll(
		"Enter Title (leave blank if not searching by title): ",
		"Enter Author (leave blank if not searching by author): ",
		"Enter Subject (leave blank if not searching by subject): ",
	)

	result, err := m.handlers.SearchBooks.Handle(ctx, searchbooks.BuildQuery(answers[0], answers[1], answers[2]))
	if err != nil {
		return err
	}

	if result.Count == 0 {
		m.println("No books found.")
		return nil
	}

	m.println("\nSearch Results:")
	for _, book := range result.Books {
		m.printf("Title: %s, Authors: %s, Subject: %s\n", book.Title, strings.Join(book.Authors, ", "), book.Subject)
	}

	return nil
}

func (m *Menu) overdue(ctx context.Context) error {
	report, err := m.handlers.OverdueReport.Handle(ctx, overduereport.BuildQuery())
	if err != nil {
		return err
	}

	if report.Count == 0 {
		m.println("No overdue books.")
		return nil
	}

	m.println("\nOverdue Books:")
	for _, entry := range report.Entries {
		m.printf("Title: %s, Borrower: %s, Fine: $%d\n", entry.Title, entry.BorrowerName, entry.Fine)
	}
	m.printf("Total fines: $%d\n", report.TotalFines)

	return nil
}

func (m *Menu) ledger(ctx context.Context) error {
	cardID, _ := m.ask("Enter Library Card Number: ")

	ledger, err := m.handlers.BorrowerLedger.Handle(ctx, borrowerledger.BuildQuery(cardID))
	if err != nil {
		return err
	}

	if !ledger.Found {
		m.println("Invalid account.")
		return nil
	}

	m.printf("\nAccount of %s (card %s), %d of %d books held\n", ledger.Name, ledger.CardID, len(ledger.Held), ledger.MaxBooks)
	for _, item := range ledger.Held {
		m.printf("Held: %s (%s), due on %s\n", item.Title, item.Barcode, item.DueDate.Format(dateLayout))
	}
	for _, item := range ledger.Reserved {
		m.printf("Reserved: %s (%s)\n", item.Title, item.Barcode)
	}

	return nil
}

func (m *Menu) history(ctx context.Context) error {
	barcode, _ := m.ask("Enter Book Barcode: ")

	history, err := m.handlers.CirculationHistory.Handle(ctx, circulationhistory.BuildQuery(barcode))
	if err != nil {
		return err
	}

	if history.Count == 0 {
		m.println("No history recorded.")
		return nil
	}

	m.printf("\nHistory of %s:\n", history.Barcode)
	for _, entry := range history.Entries {
		m.printf("%s %s card=%s %s\n",
			entry.OccurredAt.Format(dateLayout), entry.EventType, entry.CardID, entry.Detail)
	}

	return nil
}

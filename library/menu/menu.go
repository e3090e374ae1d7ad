package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

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
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

const (
	choiceAddBook       = "1"
	choiceAddAccount    = "2"
	choiceCheckOut      = "3"
	choiceReturn        = "4"
	choiceReserve       = "5"
	choiceSearch        = "6"
	choiceOverdue       = "7"
	choiceExit          = "8"
	choiceLedger        = "9"
	choiceHistory       = "10"
	dateLayout          = time.DateOnly
	logMsgHandlerFailed = "menu action failed"
)

// ErrMissingHandler is returned by New when Handlers is incomplete.
var ErrMissingHandler = errors.New("menu handler must not be nil")

// Handlers are the use cases the menu dispatches to, usually wrapped with observability.
type Handlers struct {
	AddBook            shell.CommandHandler[addbook.Command]
	OpenAccount        shell.CommandHandler[openaccount.Command]
	CheckOutBook       shell.CommandHandler[checkoutbook.Command]
	ReturnBook         shell.CommandHandler[returnbook.Command]
	ReserveBook        shell.CommandHandler[reservebook.Command]
	SearchBooks        shell.QueryHandler[searchbooks.Query, searchbooks.SearchResult]
	OverdueReport      shell.QueryHandler[overduereport.Query, overduereport.OverdueReport]
	BorrowerLedger     shell.QueryHandler[borrowerledger.Query, borrowerledger.BorrowerLedger]
	CirculationHistory shell.QueryHandler[circulationhistory.Query, circulationhistory.CirculationHistory]
}

func (h Handlers) validate() error {
	if h.AddBook == nil || h.OpenAccount == nil || h.CheckOutBook == nil || h.ReturnBook == nil ||
		h.ReserveBook == nil || h.SearchBooks == nil || h.OverdueReport == nil ||
		h.BorrowerLedger == nil || h.CirculationHistory == nil {

		return ErrMissingHandler
	}

	return nil
}

// Menu runs the read-dispatch-render loop.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	handlers Handlers
	title    string
	maxBooks int
	loanDays int
	logger   shell.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithTitle sets the headline printed above the choices.
func WithTitle(title string) Option {
	return func(m *Menu) {
		m.title = title
	}
}

// WithAccountLimits sets the limits of newly opened accounts.
func WithAccountLimits(maxBooks int, loanDays int) Option {
	return func(m *Menu) {
		m.maxBooks = maxBooks
		m.loanDays = loanDays
	}
}

// WithLogger sets a logger for infrastructure failures.
func WithLogger(logger shell.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a Menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, handlers Handlers, opts ...Option) (*Menu, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}

	m := &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		handlers: handlers,
		title:    "Library Management System",
		maxBooks: core.DefaultMaxBooks,
		loanDays: core.DefaultLoanDays,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Run loops until Exit is chosen, the input ends or ctx is done.
// Failing handlers are reported on out and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printChoices()

		choice, ok := m.ask("Enter your choice: ")
		if !ok {
			return m.in.Err()
		}

		if choice == choiceExit {
			m.println("Exiting...")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if m.logger != nil {
				m.logger.Error(logMsgHandlerFailed, "choice", choice, "error", err.Error())
			}

			m.printf("Something went wrong: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case choiceAddBook:
		return m.addBook(ctx)
	case choiceAddAccount:
		return m.addAccount(ctx)
	case choiceCheckOut:
		return m.checkOut(ctx)
	case choiceReturn:
		return m.returnBook(ctx)
	case choiceReserve:
		return m.reserve(ctx)
	case choiceSearch:
		return m.search(ctx)
	case choiceOverdue:
		return m.overdue(ctx)
	case choiceLedger:
		return m.ledger(ctx)
	case choiceHistory:
		return m.history(ctx)
	default:
		m.println("Invalid choice, please try again.")
		return nil
	}
}

func (m *Menu) printChoices() {
	m.printf("\n%s\n", m.title)
	m.println("1. Add Book")
	m.println("2. Add Account")
	m.println("3. Check Out Book")
	m.println("4. Return Book")
	m.println("5. Reserve Book")
	m.println("6. Search Books")
	m.println("7. View Overdue Books")
	m.println("8. Exit")
	m.println("9. View Account")
	m.println("10. View Item History")
}

// ask prints prompt and returns the next input line without surrounding blanks.
func (m *Menu) ask(prompt string) (string, bool) {
	m.printf("%s", prompt)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

// askAll asks every prompt in order; missing input yields empty answers.
func (m *Menu) askAll(prompts ...string) []string {
	return lo.Map(prompts, func(prompt string, _ int) string {
		answer, _ := m.ask(prompt)
		return answer
	})
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(line string) {
	_, _ = fmt.Fprintln(m.out, line)
}

// splitAuthors splits a comma separated list and drops blank names.
func splitAuthors(authors string) []string {
	return lo.Compact(lo.Map(strings.Split(authors, ","), func(author string, _ int) string {
		return strings.TrimSpace(author)
	}))
}

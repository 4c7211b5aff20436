package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gastos/internal/core"
	applog "gastos/internal/log"
	"gastos/internal/render"
	"gastos/internal/storage"
)

// Ledger is what the command line needs from the ledger service.
type Ledger interface {
	AddEntry(ctx context.Context, in core.EntryInput) (string, error)
	ListEntries(ctx context.Context, m core.Month) ([]core.Record, error)
	Summarize(ctx context.Context, m core.Month) (core.Report, error)
	SummarizeYear(ctx context.Context, year int) (core.YearOverview, error)
}

type menuState int

const (
	stateMain menuState = iota
	stateAdd
	stateView
	stateReport
	stateExit
)

const mainMenuText = `
Personal expense tracker
1. Add expense
2. View expenses
3. Generate monthly report
4. Exit
`

// Menu is the interactive text menu. Every action returns to the main menu;
// only an exit choice or the end of input stops it.
type Menu struct {
	ledger  Ledger
	printer *render.Printer
	in      *bufio.Scanner
	out     io.Writer
	now     func() time.Time
	logger  *applog.Logger
}

func NewMenu(ledger Ledger, printer *render.Printer, in io.Reader, out io.Writer, now func() time.Time, logger *applog.Logger) *Menu {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = applog.Default()
	}
	return &Menu{
		ledger:  ledger,
		printer: printer,
		in:      bufio.NewScanner(in),
		out:     out,
		now:     now,
		logger:  logger.WithComponent(applog.ComponentMenu),
	}
}

// Run drives the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	state := stateMain
	for state != stateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch state {
		case stateMain:
			state, err = m.mainMenu()
		case stateAdd:
			err = m.addExpense(ctx)
			state = stateMain
		case stateView:
			err = m.viewExpenses(ctx)
			state = stateMain
		case stateReport:
			err = m.generateReport(ctx)
			state = stateMain
		}

		if errors.Is(err, io.EOF) {
			state = stateExit
		} else if err != nil {
			return err
		}
	}
	fmt.Fprintln(m.out, "Goodbye!")
	return nil
}

func (m *Menu) mainMenu() (menuState, error) {
	fmt.Fprint(m.out, mainMenuText)
	choice, err := m.prompt("Choose an option: ")
	if err != nil {
		return stateExit, err
	}
	switch strings.ToLower(choice) {
	case "1", "add":
		return stateAdd, nil
	case "2", "view":
		return stateView, nil
	case "3", "report":
		return stateReport, nil
	case "4", "exit", "q", "quit":
		return stateExit, nil
	}
	m.logger.Debug("Unknown menu choice", applog.FieldChoice, choice)
	fmt.Fprintf(m.out, "Invalid option %q, please choose 1-4.\n", choice)
	return stateMain, nil
}

func (m *Menu) addExpense(ctx context.Context) error {
	var in core.EntryInput
	for {
		s, err := m.prompt("Date (YYYY-MM-DD, empty for today): ")
		if err != nil {
			return err
		}
		if s == "" {
			s = m.now().Format(core.DateLayout)
		}
		if _, err := core.ParseDate(s); err != nil {
			fmt.Fprintln(m.out, "Invalid date, use YYYY-MM-DD.")
			continue
		}
		in.Date = s
		break
	}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Category: ", &in.Category},
		{"Amount (Colones), empty if none: ", &in.Colones},
		{"Amount (Dollars), empty if none: ", &in.Dollars},
		{"Description: ", &in.Description},
	}
	for _, f := range fields {
		s, err := m.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = s
	}

	path, err := m.ledger.AddEntry(ctx, in)
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(m.out, "Entry discarded: %v\n", verr)
	case err != nil:
		fmt.Fprintf(m.out, "Could not save expense: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Expense saved to %s\n", path)
	}
	return nil
}

func (m *Menu) viewExpenses(ctx context.Context) error {
	month, err := m.promptMonth()
	if err != nil {
		return err
	}
	records, err := m.ledger.ListEntries(ctx, month)
	if m.reportFailure(month, err) {
		return nil
	}
	return m.printer.Print(render.Entries(month, records))
}

func (m *Menu) generateReport(ctx context.Context) error {
	month, err := m.promptMonth()
	if err != nil {
		return err
	}
	report, err := m.ledger.Summarize(ctx, month)
	if m.reportFailure(month, err) {
		return nil
	}
	return m.printer.Print(render.Report(report))
}

// reportFailure prints the outcome of a failed read and reports whether
// there was one. A month without data is not an error for the user.
func (m *Menu) reportFailure(month core.Month, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, storage.ErrNoData):
		fmt.Fprintf(m.out, "No data for %s.\n", month)
	default:
		fmt.Fprintf(m.out, "Could not read expenses: %v\n", err)
	}
	return true
}

func (m *Menu) promptMonth() (core.Month, error) {
	for {
		s, err := m.prompt("Month (YYYY-MM, empty for current): ")
		if err != nil {
			return core.Month{}, err
		}
		month, err := core.ParseMonth(s, m.now())
		if err == nil {
			return month, nil
		}
		fmt.Fprintln(m.out, "Invalid month, use YYYY-MM.")
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

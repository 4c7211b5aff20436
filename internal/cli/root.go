package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gastos/internal/config"
	"gastos/internal/core"
	applog "gastos/internal/log"
	"gastos/internal/render"
	"gastos/internal/storage"
)

// options holds the persistent flags and the services built from them.
type options struct {
	configFile string
	dir        string
	style      string
	verbose    bool

	now     func() time.Time
	logOut  io.Writer
	logger  *applog.Logger
	ledger  Ledger
	printer *render.Printer
}

// NewRootCmd builds the command tree. now supplies the current time for
// every "today" and "current month" default.
func NewRootCmd(now func() time.Time, logOut io.Writer) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	opts := &options{now: now, logOut: logOut}

	root := &cobra.Command{
		Use:   "gastos",
		Short: "Personal expense ledger kept in monthly CSV files",
		Long: `gastos records personal expenses in colones and dollars.

Each calendar month is stored in its own file, expenses_<YYYY>_<MM>.csv,
under the storage directory. Run without a command for the interactive menu.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a YAML configuration file (default $LEDGER_CONFIG)")
	flags.StringVar(&opts.dir, "dir", "", "Storage directory for monthly files (default $LEDGER_DIR or .)")
	flags.StringVar(&opts.style, "style", "", "Render style: plain, auto, dark, light, notty, ...")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newMenuCmd(opts),
		newAddCmd(opts),
		newListCmd(opts),
		newReportCmd(opts),
		newYearCmd(opts),
	)
	return root
}

// Execute runs the root command against the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(time.Now, nil).ExecuteContext(ctx)
}

func (o *options) setup(cmd *cobra.Command, _ []string) error {
	logOut := o.logOut
	if logOut == nil {
		logOut = cmd.ErrOrStderr()
	}

	LoadEnvFile()
	cfg, err := LoadAndValidateConfig(o.configFile, func(c *config.Config) {
		if o.dir != "" {
			c.StorageDir = o.dir
		}
		if o.style != "" {
			c.RenderStyle = o.style
		}
		if o.verbose {
			c.LogLevel = "debug"
		}
	})
	if err != nil {
		bootstrap := applog.New(applog.Config{
			Level:     slog.LevelWarn,
			Component: applog.ComponentConfig,
			Output:    logOut,
		})
		bootstrap.Error("Invalid configuration",
			applog.NewFields().
				WithOperation(applog.OpStartup).
				WithErrorType(applog.ErrorTypeConfiguration).
				WithError(err).
				ToSlice()...)
		return err
	}

	o.logger = SetupLogger(cfg, logOut).WithComponent(applog.ComponentCLI)

	ledger, err := InitLedger(cfg, o.logger)
	if err != nil {
		return err
	}
	o.ledger = ledger

	o.printer, err = render.NewPrinter(cmd.OutOrStdout(), cfg.RenderStyle, o.logger)
	return err
}

func (o *options) runMenu(cmd *cobra.Command) error {
	menu := NewMenu(o.ledger, o.printer, cmd.InOrStdin(), cmd.OutOrStdout(), o.now, o.logger)
	return menu.Run(cmd.Context())
}

func newMenuCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runMenu(cmd)
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var in core.EntryInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append one expense to the file of its month",
		Example: `  gastos add --date 2024-03-15 --category Food --colones 1500.50 --description Lunch
  gastos add --category Transport --dollars 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Date == "" {
				in.Date = opts.now().Format(core.DateLayout)
			}
			path, err := opts.ledger.AddEntry(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense saved to %s\n", path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.Date, "date", "d", "", "Expense date, YYYY-MM-DD (defaults to today)")
	f.StringVarP(&in.Category, "category", "c", "", "Expense category")
	f.StringVar(&in.Colones, "colones", "", "Amount in colones, empty if none")
	f.StringVar(&in.Dollars, "dollars", "", "Amount in dollars, empty if none")
	f.StringVarP(&in.Description, "description", "m", "", "Free text description")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [YYYY-MM]",
		Short: "Show the entries of a month (defaults to the current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := opts.month(args)
			if err != nil {
				return err
			}
			records, err := opts.ledger.ListEntries(cmd.Context(), month)
			if noData(cmd, err, month.String()) {
				return nil
			}
			if err != nil {
				return err
			}
			return opts.printer.Print(render.Entries(month, records))
		},
	}
}

func newReportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report [YYYY-MM]",
		Short: "Show totals and per-category subtotals of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := opts.month(args)
			if err != nil {
				return err
			}
			report, err := opts.ledger.Summarize(cmd.Context(), month)
			if noData(cmd, err, month.String()) {
				return nil
			}
			if err != nil {
				return err
			}
			return opts.printer.Print(render.Report(report))
		},
	}
}

func newYearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Show monthly totals of a year (defaults to the current year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := opts.now().Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[0], core.ErrInvalidMonth)
				}
				year = y
			}
			overview, err := opts.ledger.SummarizeYear(cmd.Context(), year)
			if noData(cmd, err, strconv.Itoa(year)) {
				return nil
			}
			if err != nil {
				return err
			}
			return opts.printer.Print(render.Year(overview))
		},
	}
}

func (o *options) month(args []string) (core.Month, error) {
	selector := ""
	if len(args) == 1 {
		selector = args[0]
	}
	m, err := core.ParseMonth(selector, o.now())
	if err != nil {
		return core.Month{}, fmt.Errorf("month %q: %w", selector, err)
	}
	return m, nil
}

func noData(cmd *cobra.Command, err error, period string) bool {
	if !errors.Is(err, storage.ErrNoData) {
		return false
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No data for %s.\n", period)
	return true
}

package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/date"
	"github.com/hqnguyen/finbook/renderer"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	book *finbook.Book
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the financial overview" }
func (*overviewCmd) Usage() string {
	return `fin overview

  Shows the financial position across all accounts, transactions, loans and
  lendings, with expense and savings ratios when income exists.
`
}

func (c *overviewCmd) SetFlags(*flag.FlagSet) {}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	o := c.book.NewOverview()
	printMarkdown(renderer.OverviewMarkdown(&o))
	return subcommands.ExitSuccess
}

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	book *finbook.Book
	from string
	to   string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "income/expense report over a date range" }
func (*reportCmd) Usage() string {
	return `fin report -from <date> -to <date>

  Sums income and expense between the two dates inclusive and breaks
  expenses down by category.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, e.g. 2025-1-1.")
	f.StringVar(&c.to, "to", date.Today().String(), "End date.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		return usageError("%v", err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return usageError("%v", err)
	}
	r := date.NewRange(from, to)
	if !r.IsValid() {
		return usageError("range %s is reversed", r)
	}
	report := c.book.NewPeriodReport(r)
	printMarkdown(renderer.PeriodMarkdown(&report))
	return subcommands.ExitSuccess
}

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	book  *finbook.Book
	year  int
	month int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "income/expense report for one calendar month" }
func (*monthlyCmd) Usage() string {
	return `fin monthly [-year <year>] [-month <1-12>]

  The income/expense report bounded to one calendar month. Defaults to the
  current month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	today := date.Today()
	f.IntVar(&c.year, "year", today.Year(), "Year of the report.")
	f.IntVar(&c.month, "month", int(today.Month()), "Month of the report, 1 to 12.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		return usageError("month %d is out of range", c.month)
	}
	report := c.book.NewMonthlyReport(c.year, time.Month(c.month))
	printMarkdown(renderer.PeriodMarkdown(&report))
	return subcommands.ExitSuccess
}

// accountReportCmd holds the flags for the 'account-report' subcommand.
type accountReportCmd struct {
	book *finbook.Book
	id   string
}

func (*accountReportCmd) Name() string     { return "account-report" }
func (*accountReportCmd) Synopsis() string { return "detailed report for one account" }
func (*accountReportCmd) Usage() string {
	return `fin account-report -id <account-id>

  Shows the account's totals and its largest transactions.
`
}

func (c *accountReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
}

func (c *accountReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.book.NewAccountReport(c.id)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountMarkdown(&report))
	return subcommands.ExitSuccess
}

// creditReportCmd holds the flags for the 'credit-report' subcommand.
type creditReportCmd struct {
	book *finbook.Book
}

func (*creditReportCmd) Name() string     { return "credit-report" }
func (*creditReportCmd) Synopsis() string { return "loans and lendings with totals" }
func (*creditReportCmd) Usage() string {
	return `fin credit-report

  Lists every loan and lending with payment progress, plus the
  payable/receivable totals and their difference.
`
}

func (c *creditReportCmd) SetFlags(*flag.FlagSet) {}

func (c *creditReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := c.book.NewCreditReport()
	printMarkdown(renderer.CreditMarkdown(&report))
	return subcommands.ExitSuccess
}

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	book *finbook.Book
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare all accounts side by side" }
func (*compareCmd) Usage() string {
	return `fin compare

  Shows every account with its balance and income/expense totals.
`
}

func (c *compareCmd) SetFlags(*flag.FlagSet) {}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := c.book.NewComparisonReport()
	printMarkdown(renderer.ComparisonMarkdown(&report))
	return subcommands.ExitSuccess
}

// dueCmd holds the flags for the 'due' subcommand.
type dueCmd struct {
	book *finbook.Book
}

func (*dueCmd) Name() string     { return "due" }
func (*dueCmd) Synopsis() string { return "loans and lendings due soon or overdue" }
func (*dueCmd) Usage() string {
	return `fin due

  Lists the loans and lendings with one month or less to go, or already
  past their due date, with money still owed.
`
}

func (c *dueCmd) SetFlags(*flag.FlagSet) {}

func (c *dueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := c.book.NewDueReport()
	printMarkdown(renderer.DueMarkdown(&report))
	return subcommands.ExitSuccess
}

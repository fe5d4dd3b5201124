package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/renderer"
)

// cmdPrefix is the command-name prefix for a credit kind.
func cmdPrefix(kind finbook.CreditKind) string {
	if kind == finbook.Borrowed {
		return "loan"
	}
	return "lend"
}

// creditNewCmd implements 'loan-new' and 'lend-new'; only the kind differs.
type creditNewCmd struct {
	book         *finbook.Book
	kind         finbook.CreditKind
	counterparty string
	amount       string
	rate         float64
	months       int
	note         string
}

func (c *creditNewCmd) Name() string { return cmdPrefix(c.kind) + "-new" }
func (c *creditNewCmd) Synopsis() string {
	if c.kind == finbook.Borrowed {
		return "record money borrowed from someone"
	}
	return "record money lent to someone"
}
func (c *creditNewCmd) Usage() string {
	role := "lender"
	if c.kind == finbook.Lent {
		role = "borrower"
	}
	return fmt.Sprintf(`fin %s -name <%s> -amount <amount> [-rate <percent>] [-months <n>] [-note <text>]

  Creates the %s with simple interest over the term. The due date is the
  start date plus the term. Balances of accounts are not affected.
`, c.Name(), role, c.kind)
}

func (c *creditNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.counterparty, "name", "", "Counterparty name.")
	f.StringVar(&c.amount, "amount", "", "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.months, "months", 12, "Term in months.")
	f.StringVar(&c.note, "note", "", "Free-form description.")
}

func (c *creditNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := amount(c.amount)
	if err != nil {
		return usageError("%v", err)
	}
	create := c.book.Credits.CreateLoan
	if c.kind == finbook.Lent {
		create = c.book.Credits.CreateLending
	}
	credit, err := create(c.counterparty, m, c.rate, c.months, c.note)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s %s: %s due %s, monthly installment %s\n",
		credit.Kind, credit.ID, credit.TotalPayable(), credit.Due, credit.MonthlyInstallment())
	return subcommands.ExitSuccess
}

// creditPayCmd implements 'loan-pay' and 'lend-collect'.
type creditPayCmd struct {
	book   *finbook.Book
	kind   finbook.CreditKind
	id     string
	amount string
}

func (c *creditPayCmd) Name() string {
	if c.kind == finbook.Borrowed {
		return "loan-pay"
	}
	return "lend-collect"
}
func (c *creditPayCmd) Synopsis() string {
	if c.kind == finbook.Borrowed {
		return "pay back part of a loan"
	}
	return "collect part of a lending"
}
func (c *creditPayCmd) Usage() string {
	return fmt.Sprintf(`fin %s -id <id> -amount <amount>

  Applies the amount and reports what remains. Paying more than the
  remaining amount is refused.
`, c.Name())
}

func (c *creditPayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan or lending id.")
	f.StringVar(&c.amount, "amount", "", "Amount to apply.")
}

func (c *creditPayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := amount(c.amount)
	if err != nil {
		return usageError("%v", err)
	}
	apply := c.book.Credits.Pay
	if c.kind == finbook.Lent {
		apply = c.book.Credits.Collect
	}
	remaining, err := apply(c.id, m)
	if err != nil {
		return fail(err)
	}
	if remaining.IsZero() {
		fmt.Printf("%s is fully settled\n", c.id)
	} else {
		fmt.Printf("Applied %s to %s, %s remaining\n", m, c.id, remaining)
	}
	return subcommands.ExitSuccess
}

// creditShowCmd implements 'loan-show' and 'lend-show'.
type creditShowCmd struct {
	book *finbook.Book
	kind finbook.CreditKind
	id   string
}

func (c *creditShowCmd) Name() string { return cmdPrefix(c.kind) + "-show" }
func (c *creditShowCmd) Synopsis() string {
	if c.kind == finbook.Borrowed {
		return "show one loan with its payment history"
	}
	return "show one lending with its payment history"
}
func (c *creditShowCmd) Usage() string {
	return fmt.Sprintf(`fin %s -id <id>

  Shows the %s in full: interest figures, remaining amount, status and
  every payment recorded against it.
`, c.Name(), c.kind)
}

func (c *creditShowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Loan or lending id.")
}

func (c *creditShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	detail, err := c.book.NewCreditDetail(c.kind, c.id)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CreditDetailMarkdown(&detail))
	return subcommands.ExitSuccess
}

// creditListCmd implements 'loan-list' and 'lend-list'.
type creditListCmd struct {
	book *finbook.Book
	kind finbook.CreditKind
}

func (c *creditListCmd) Name() string { return cmdPrefix(c.kind) + "-list" }
func (c *creditListCmd) Synopsis() string {
	if c.kind == finbook.Borrowed {
		return "list all loans"
	}
	return "list all lendings"
}
func (c *creditListCmd) Usage() string {
	return fmt.Sprintf(`fin %s

  Lists every %s with its payment progress and status.
`, c.Name(), c.kind)
}

func (c *creditListCmd) SetFlags(*flag.FlagSet) {}

func (c *creditListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report := c.book.NewCreditReport()
	if c.kind == finbook.Borrowed {
		report.Lendings = nil
	} else {
		report.Loans = nil
	}
	printMarkdown(renderer.CreditMarkdown(&report))
	return subcommands.ExitSuccess
}

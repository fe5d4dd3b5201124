// Package cmd implements the CLI application to manage a bookkeeping session.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
)

// Register registers every subcommand against the given book. The book is
// shared by all commands of a session; commands mutate it in place.
func Register(c *subcommands.Commander, book *finbook.Book) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&accountNewCmd{book: book}, "accounts")
	c.Register(&accountListCmd{book: book}, "accounts")
	c.Register(&accountFindCmd{book: book}, "accounts")
	c.Register(&accountDeleteCmd{book: book}, "accounts")
	c.Register(&depositCmd{book: book}, "accounts")
	c.Register(&transferCmd{book: book}, "accounts")

	c.Register(&recordCmd{book: book, kind: finbook.Income}, "transactions")
	c.Register(&recordCmd{book: book, kind: finbook.Expense}, "transactions")
	c.Register(&txListCmd{book: book}, "transactions")

	c.Register(&creditNewCmd{book: book, kind: finbook.Borrowed}, "credits")
	c.Register(&creditNewCmd{book: book, kind: finbook.Lent}, "credits")
	c.Register(&creditPayCmd{book: book, kind: finbook.Borrowed}, "credits")
	c.Register(&creditPayCmd{book: book, kind: finbook.Lent}, "credits")
	c.Register(&creditListCmd{book: book, kind: finbook.Borrowed}, "credits")
	c.Register(&creditListCmd{book: book, kind: finbook.Lent}, "credits")
	c.Register(&creditShowCmd{book: book, kind: finbook.Borrowed}, "credits")
	c.Register(&creditShowCmd{book: book, kind: finbook.Lent}, "credits")

	c.Register(&overviewCmd{book: book}, "reports")
	c.Register(&reportCmd{book: book}, "reports")
	c.Register(&monthlyCmd{book: book}, "reports")
	c.Register(&accountReportCmd{book: book}, "reports")
	c.Register(&creditReportCmd{book: book}, "reports")
	c.Register(&compareCmd{book: book}, "reports")
	c.Register(&dueCmd{book: book}, "reports")

	c.Register(&exportCmd{book: book}, "data")
}

// printMarkdown renders markdown for the terminal. Set FINBOOK_PLAIN to any
// value to get the raw markdown instead (useful in pipes and tests).
func printMarkdown(md string) {
	if os.Getenv("FINBOOK_PLAIN") != "" {
		fmt.Println(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// amount parses a positive decimal string into the session currency.
func amount(s string) (finbook.Money, error) {
	m, err := finbook.ParseMoney(s, finbook.DefaultCurrency)
	if err != nil {
		return finbook.Money{}, fmt.Errorf("invalid amount %q: %v", s, err)
	}
	return m, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}

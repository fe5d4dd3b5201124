package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	book *finbook.Book
	out  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "dump the session as CSV" }
func (*exportCmd) Usage() string {
	return `fin export [-o <file>]

  Writes accounts, transactions, loans and lendings as CSV sections to
  stdout or a file. This is a one-way dump for spreadsheets, not a format
  the tool reads back.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var w io.Writer = os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		w = file
	}
	if err := export(w, c.book); err != nil {
		return fail(err)
	}
	if c.out != "" {
		fmt.Printf("Exported to %s\n", c.out)
	}
	return subcommands.ExitSuccess
}

func export(w io.Writer, book *finbook.Book) error {
	cw := csv.NewWriter(w)

	cw.Write([]string{"accounts"})
	cw.Write([]string{"id", "name", "type", "number", "balance", "currency"})
	for _, a := range book.Accounts.Accounts() {
		cw.Write([]string{a.ID, a.Name, string(a.Type), a.Number, a.Balance.Plain(), a.Currency})
	}

	cw.Write([]string{"transactions"})
	cw.Write([]string{"id", "account", "kind", "amount", "date", "category", "description"})
	for _, tx := range book.Transactions.All() {
		cw.Write([]string{tx.ID, tx.AccountID, string(tx.Kind), tx.Amount.Plain(), tx.Date.String(), tx.Category.Name, tx.Description})
	}

	credits := func(section string, items []finbook.Credit) {
		cw.Write([]string{section})
		cw.Write([]string{"id", "counterparty", "principal", "rate", "months", "remaining", "start", "due", "description"})
		for _, c := range items {
			cw.Write([]string{
				c.ID,
				c.Counterparty,
				c.Principal.Plain(),
				fmt.Sprintf("%g", c.Rate),
				fmt.Sprintf("%d", c.Months),
				c.Remaining.Plain(),
				c.Start.String(),
				c.Due.String(),
				c.Description,
			})
		}
	}
	credits("loans", book.Credits.Loans())
	credits("lendings", book.Credits.Lendings())

	cw.Flush()
	return cw.Error()
}

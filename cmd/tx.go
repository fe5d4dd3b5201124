package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/renderer"
)

// recordCmd implements both 'income' and 'expense'; only the kind differs.
type recordCmd struct {
	book     *finbook.Book
	kind     finbook.Kind
	id       string
	amount   string
	category string
	note     string
}

func (c *recordCmd) Name() string { return strings.ToLower(string(c.kind)) }
func (c *recordCmd) Synopsis() string {
	if c.kind == finbook.Income {
		return "record an income transaction"
	}
	return "record an expense transaction"
}
func (c *recordCmd) Usage() string {
	return fmt.Sprintf(`fin %s -id <account-id> -amount <amount> -category <name> [-note <text>]

  Records the transaction and updates the account balance. An expense that
  would drive the balance negative is rejected.
`, c.Name())
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
	f.StringVar(&c.amount, "amount", "", "Transaction amount.")
	f.StringVar(&c.category, "category", "", "Category name; created if unknown.")
	f.StringVar(&c.note, "note", "", "Free-form description.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := amount(c.amount)
	if err != nil {
		return usageError("%v", err)
	}
	tx, err := c.book.Transactions.Record(c.id, c.kind, m, c.note, c.category)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s\n", tx.ID)
	return subcommands.ExitSuccess
}

// txListCmd holds the flags for the 'tx' subcommand.
type txListCmd struct {
	book     *finbook.Book
	account  string
	category string
}

func (*txListCmd) Name() string     { return "tx" }
func (*txListCmd) Synopsis() string { return "list transactions" }
func (*txListCmd) Usage() string {
	return `fin tx [-id <account-id>] [-category <name>]

  Lists transactions in the order they were recorded, optionally restricted
  to one account or one category.
`
}

func (c *txListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "id", "", "Only transactions of this account.")
	f.StringVar(&c.category, "category", "", "Only transactions in this category.")
}

func (c *txListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var txs []finbook.Transaction
	title := "Transactions"
	switch {
	case c.account != "":
		txs = c.book.Transactions.ByAccount(c.account)
		title = "Transactions of " + c.account
	case c.category != "":
		txs = c.book.Transactions.ByCategory(c.category)
		title = "Transactions in " + c.category
	default:
		txs = c.book.Transactions.All()
	}
	printMarkdown(renderer.TransactionsMarkdown(title, txs))
	return subcommands.ExitSuccess
}

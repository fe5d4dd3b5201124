package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/renderer"
)

// accountNewCmd holds the flags for the 'account-new' subcommand.
type accountNewCmd struct {
	book    *finbook.Book
	name    string
	typ     string
	number  string
	balance string
}

func (*accountNewCmd) Name() string     { return "account-new" }
func (*accountNewCmd) Synopsis() string { return "create a new account" }
func (*accountNewCmd) Usage() string {
	return `fin account-new -name <name> -type <type> -number <number> [-balance <amount>]

  Creates an account. Types: BANK, E-WALLET, SAVINGS, CASH, CREDIT.
`
}

func (c *accountNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (2-50 letters, digits, spaces).")
	f.StringVar(&c.typ, "type", "BANK", "Account type.")
	f.StringVar(&c.number, "number", "", "Account number (5-20 alphanumeric characters).")
	f.StringVar(&c.balance, "balance", "0", "Initial balance.")
}

func (c *accountNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initial, err := amount(c.balance)
	if err != nil {
		return usageError("%v", err)
	}
	account, err := c.book.Accounts.Create(c.name, c.typ, c.number, initial)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %s (%s)\n", account.ID, account.Name)
	return subcommands.ExitSuccess
}

// accountListCmd holds the flags for the 'account-list' subcommand.
type accountListCmd struct {
	book *finbook.Book
}

func (*accountListCmd) Name() string     { return "account-list" }
func (*accountListCmd) Synopsis() string { return "list all accounts" }
func (*accountListCmd) Usage() string {
	return `fin account-list

  Lists every account with its balance.
`
}

func (c *accountListCmd) SetFlags(*flag.FlagSet) {}

func (c *accountListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.AccountsMarkdown(c.book.Accounts.Accounts()))
	return subcommands.ExitSuccess
}

// accountFindCmd holds the flags for the 'account-find' subcommand.
type accountFindCmd struct {
	book  *finbook.Book
	query string
}

func (*accountFindCmd) Name() string     { return "account-find" }
func (*accountFindCmd) Synopsis() string { return "find accounts by name" }
func (*accountFindCmd) Usage() string {
	return `fin account-find -q <text>

  Lists the accounts whose name contains the text, ignoring case.
`
}

func (c *accountFindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Text to search for in account names.")
}

func (c *accountFindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query == "" {
		return usageError("account-find needs a -q argument")
	}
	printMarkdown(renderer.AccountsMarkdown(c.book.Accounts.Search(c.query)))
	return subcommands.ExitSuccess
}

// accountDeleteCmd holds the flags for the 'account-delete' subcommand.
type accountDeleteCmd struct {
	book *finbook.Book
	id   string
}

func (*accountDeleteCmd) Name() string     { return "account-delete" }
func (*accountDeleteCmd) Synopsis() string { return "delete an account" }
func (*accountDeleteCmd) Usage() string {
	return `fin account-delete -id <account-id>

  Removes the account. Its past transactions stay in the ledger.
`
}

func (c *accountDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
}

func (c *accountDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.book.Accounts.Delete(c.id) {
		return fail(fmt.Errorf("account %q: %w", c.id, finbook.ErrNotFound))
	}
	fmt.Printf("Deleted account %s\n", c.id)
	return subcommands.ExitSuccess
}

// depositCmd holds the flags for the 'deposit' subcommand.
type depositCmd struct {
	book   *finbook.Book
	id     string
	amount string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to an account" }
func (*depositCmd) Usage() string {
	return `fin deposit -id <account-id> -amount <amount>

  Adds the amount to the account balance without recording a transaction.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id.")
	f.StringVar(&c.amount, "amount", "", "Amount to deposit.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := amount(c.amount)
	if err != nil {
		return usageError("%v", err)
	}
	account, err := c.book.Accounts.Deposit(c.id, m)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("New balance of %s: %s\n", account.Name, account.Balance)
	return subcommands.ExitSuccess
}

// transferCmd holds the flags for the 'transfer' subcommand.
type transferCmd struct {
	book   *finbook.Book
	from   string
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `fin transfer -from <account-id> -to <account-id> -amount <amount>

  Moves the amount between two accounts. All or nothing: if the source
  cannot cover it, neither balance changes.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account id.")
	f.StringVar(&c.to, "to", "", "Destination account id.")
	f.StringVar(&c.amount, "amount", "", "Amount to move.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := amount(c.amount)
	if err != nil {
		return usageError("%v", err)
	}
	if err := c.book.Accounts.Transfer(c.from, c.to, m); err != nil {
		return fail(err)
	}
	fmt.Printf("Transferred %s from %s to %s\n", m, c.from, c.to)
	return subcommands.ExitSuccess
}

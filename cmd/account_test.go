package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
)

// execute runs one subcommand the way the dispatcher does.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestAccountNewCmd(t *testing.T) {
	book := finbook.NewBook()

	status := execute(t, &accountNewCmd{book: book},
		"-name", "Tien mat", "-type", "CASH", "-number", "12345", "-balance", "500000")
	if status != subcommands.ExitSuccess {
		t.Fatalf("account-new exited with %v", status)
	}
	if book.Accounts.Count() != 1 {
		t.Fatalf("book holds %d accounts, want 1", book.Accounts.Count())
	}

	status = execute(t, &accountNewCmd{book: book},
		"-name", "X", "-type", "CASH", "-number", "1")
	if status != subcommands.ExitFailure {
		t.Errorf("invalid account-new exited with %v, want failure", status)
	}
	if book.Accounts.Count() != 1 {
		t.Errorf("failed account-new mutated the book")
	}

	status = execute(t, &accountNewCmd{book: book},
		"-name", "Momo", "-type", "WALLET", "-number", "12345", "-balance", "12x")
	if status != subcommands.ExitUsageError {
		t.Errorf("bad amount exited with %v, want usage error", status)
	}
}

func TestTransferCmd(t *testing.T) {
	book := finbook.NewBook()
	a, err := book.Accounts.Create("Tai khoan A", "BANK", "12345", finbook.VND(1_000_000))
	if err != nil {
		t.Fatal(err)
	}
	b, err := book.Accounts.Create("Tai khoan B", "CASH", "67890", finbook.VND(0))
	if err != nil {
		t.Fatal(err)
	}

	status := execute(t, &transferCmd{book: book}, "-from", a.ID, "-to", b.ID, "-amount", "400000")
	if status != subcommands.ExitSuccess {
		t.Fatalf("transfer exited with %v", status)
	}
	updated, err := book.Accounts.ByID(b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.Balance.Equal(finbook.VND(400_000)) {
		t.Errorf("destination balance = %v, want 400,000", updated.Balance)
	}

	status = execute(t, &transferCmd{book: book}, "-from", a.ID, "-to", b.ID, "-amount", "700000")
	if status != subcommands.ExitFailure {
		t.Errorf("overdrawn transfer exited with %v, want failure", status)
	}
}

func TestRecordCmd(t *testing.T) {
	book := finbook.NewBook()
	a, err := book.Accounts.Create("Tai khoan A", "BANK", "12345", finbook.VND(100_000))
	if err != nil {
		t.Fatal(err)
	}

	income := &recordCmd{book: book, kind: finbook.Income}
	if income.Name() != "income" {
		t.Errorf("income command name = %q", income.Name())
	}
	status := execute(t, income, "-id", a.ID, "-amount", "200000", "-category", "Luong")
	if status != subcommands.ExitSuccess {
		t.Fatalf("income exited with %v", status)
	}

	expense := &recordCmd{book: book, kind: finbook.Expense}
	status = execute(t, expense, "-id", a.ID, "-amount", "999999999", "-category", "Mua sam")
	if status != subcommands.ExitFailure {
		t.Errorf("overdrawn expense exited with %v, want failure", status)
	}
	if n := len(book.Transactions.All()); n != 1 {
		t.Errorf("book holds %d transactions, want 1", n)
	}
}

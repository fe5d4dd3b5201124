package cmd

import (
	"testing"

	"github.com/google/subcommands"

	"github.com/hqnguyen/finbook"
)

func TestCreditShowCmd(t *testing.T) {
	book := finbook.NewBook()
	loan, err := book.Credits.CreateLoan("Anh Tuan", finbook.VND(500_000), 0, 6, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Credits.Pay(loan.ID, finbook.VND(100_000)); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FINBOOK_PLAIN", "1")

	show := &creditShowCmd{book: book, kind: finbook.Borrowed}
	if show.Name() != "loan-show" {
		t.Errorf("command name = %q, want loan-show", show.Name())
	}
	if status := execute(t, show, "-id", loan.ID); status != subcommands.ExitSuccess {
		t.Errorf("loan-show exited with %v", status)
	}

	if status := execute(t, show, "-id", "LOAN_missing"); status != subcommands.ExitFailure {
		t.Errorf("loan-show of unknown id exited with %v, want failure", status)
	}

	// A loan is not reachable through lend-show.
	lendShow := &creditShowCmd{book: book, kind: finbook.Lent}
	if lendShow.Name() != "lend-show" {
		t.Errorf("command name = %q, want lend-show", lendShow.Name())
	}
	if status := execute(t, lendShow, "-id", loan.ID); status != subcommands.ExitFailure {
		t.Errorf("lend-show of a loan id exited with %v, want failure", status)
	}
}

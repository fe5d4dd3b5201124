package renderer

import (
	"strings"
	"testing"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/date"
)

func fixtureBook(t *testing.T) *finbook.Book {
	t.Helper()
	b := finbook.NewBook()
	b.SetClock(func() date.Date { return date.New(2025, 6, 15) })

	a, err := b.Accounts.Create("Vietcombank chinh", "BANK", "12345", finbook.VND(1_000_000))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Transactions.Record(a.ID, finbook.Income, finbook.VND(200_000), "luong", "Luong"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Transactions.Record(a.ID, finbook.Expense, finbook.VND(80_000), "an trua", "An uong"); err != nil {
		t.Fatal(err)
	}
	loan, err := b.Credits.CreateLoan("Anh Tuan", finbook.VND(500_000), 12, 6, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Credits.Pay(loan.ID, finbook.VND(100_000)); err != nil {
		t.Fatal(err)
	}
	return b
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("rendered output missing %q:\n%s", want, got)
		}
	}
}

func TestOverviewMarkdown(t *testing.T) {
	b := fixtureBook(t)
	o := b.NewOverview()

	got := OverviewMarkdown(&o)
	assertContains(t, got,
		"# Financial Overview on 2025-06-15",
		"Total Balance",
		"Net Cash Flow",
		"## Ratios",
		"40.0%",
		"1 accounts, 2 transactions",
	)
}

func TestPeriodMarkdown(t *testing.T) {
	b := fixtureBook(t)
	r := b.NewPeriodReport(date.NewRange(date.New(2025, 6, 1), date.New(2025, 6, 30)))

	got := PeriodMarkdown(&r)
	assertContains(t, got,
		"# Income/Expense Report from 2025-06-01 to 2025-06-30",
		"## Expenses by Category",
		"| An uong |",
		"100.0%",
	)
}

func TestAccountMarkdown(t *testing.T) {
	b := fixtureBook(t)
	accounts := b.Accounts.Accounts()
	r, err := b.NewAccountReport(accounts[0].ID)
	if err != nil {
		t.Fatal(err)
	}

	got := AccountMarkdown(&r)
	assertContains(t, got,
		"# Account Report: Vietcombank chinh",
		"## Largest Transactions",
		"an trua",
	)
}

func TestCreditMarkdown(t *testing.T) {
	b := fixtureBook(t)
	r := b.NewCreditReport()

	got := CreditMarkdown(&r)
	assertContains(t, got,
		"# Loans & Lendings",
		"## Loans",
		"Anh Tuan",
		"ACTIVE",
		"## Totals",
	)
	if strings.Contains(got, "## Lendings") {
		t.Error("rendered an empty lendings section")
	}
}

func TestCreditDetailMarkdown(t *testing.T) {
	b := fixtureBook(t)
	loans := b.Credits.Loans()
	d, err := b.NewCreditDetail(finbook.Borrowed, loans[0].ID)
	if err != nil {
		t.Fatal(err)
	}

	got := CreditDetailMarkdown(&d)
	assertContains(t, got,
		"# Loan "+loans[0].ID,
		"Anh Tuan",
		"Total Payable",
		"Monthly Installment",
		"ACTIVE",
		"## Payments",
		"CASH",
		"2025-06-15",
	)
}

func TestCreditDetailMarkdownNoPayments(t *testing.T) {
	b := finbook.NewBook()
	b.SetClock(func() date.Date { return date.New(2025, 6, 15) })
	lending, err := b.Credits.CreateLending("Chi Hoa", finbook.VND(300_000), 0, 3, "")
	if err != nil {
		t.Fatal(err)
	}

	d, err := b.NewCreditDetail(finbook.Lent, lending.ID)
	if err != nil {
		t.Fatal(err)
	}
	got := CreditDetailMarkdown(&d)
	assertContains(t, got, "# Lending "+lending.ID, "No payments recorded yet.")
	if strings.Contains(got, "## Payments") {
		t.Error("rendered an empty payments section")
	}
}

func TestDueMarkdownEmpty(t *testing.T) {
	b := finbook.NewBook()
	b.SetClock(func() date.Date { return date.New(2025, 6, 15) })
	r := b.NewDueReport()

	got := DueMarkdown(&r)
	assertContains(t, got, "Nothing is due within the next month.")
}

func TestComparisonMarkdown(t *testing.T) {
	b := fixtureBook(t)
	r := b.NewComparisonReport()

	got := ComparisonMarkdown(&r)
	assertContains(t, got,
		"# Account Comparison",
		"Vietcombank chinh",
		"**Total**",
	)
}

func TestTransactionsMarkdown(t *testing.T) {
	b := fixtureBook(t)

	got := TransactionsMarkdown("Transactions", b.Transactions.All())
	assertContains(t, got,
		"# Transactions",
		"| INCOME |",
		"| EXPENSE |",
		"| Luong |",
	)

	empty := TransactionsMarkdown("Transactions", nil)
	assertContains(t, empty, "No transactions recorded.")
}

func TestAccountsMarkdown(t *testing.T) {
	b := fixtureBook(t)

	got := AccountsMarkdown(b.Accounts.Accounts())
	assertContains(t, got, "# Accounts", "Vietcombank chinh", "BANK")
}

package finbook

import (
	"errors"
	"testing"

	"github.com/hqnguyen/finbook/date"
)

func newTestBook(t *testing.T) (*Book, Account) {
	t.Helper()
	b := NewBook()
	b.SetClock(func() date.Date { return date.New(2025, 6, 15) })
	a, err := b.Accounts.Create("Tai khoan chinh", "BANK", "12345", VND(1_000_000))
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return b, a
}

func TestRecordIncome(t *testing.T) {
	b, a := newTestBook(t)

	tx, err := b.Transactions.Record(a.ID, Income, VND(200_000), "luong thang 6", "Luong")
	if err != nil {
		t.Fatalf("Record() returned unexpected error: %v", err)
	}
	if tx.Kind != Income || !tx.Amount.Equal(VND(200_000)) {
		t.Errorf("Record() = %+v, want income of 200,000", tx)
	}
	if tx.Date != (date.New(2025, 6, 15)) {
		t.Errorf("Record() date = %v, want the pinned clock", tx.Date)
	}
	assertBalance(t, b.Accounts, a.ID, 1_200_000)
	if n := len(b.Transactions.All()); n != 1 {
		t.Errorf("ledger holds %d transactions, want 1", n)
	}
}

func TestRecordExpense(t *testing.T) {
	b, a := newTestBook(t)

	if _, err := b.Transactions.Record(a.ID, Expense, VND(300_000), "an trua", "An uong"); err != nil {
		t.Fatalf("Record() returned unexpected error: %v", err)
	}
	assertBalance(t, b.Accounts, a.ID, 700_000)
}

func TestRecordExpenseInsufficientFunds(t *testing.T) {
	b, a := newTestBook(t)

	_, err := b.Transactions.Record(a.ID, Expense, VND(1_000_001), "qua kha nang", "Mua sam")
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Record() = %v, want ErrInsufficientBalance", err)
	}
	// Rejected expense leaves no trace: balance unchanged, nothing appended.
	assertBalance(t, b.Accounts, a.ID, 1_000_000)
	if n := len(b.Transactions.All()); n != 0 {
		t.Errorf("ledger holds %d transactions after a rejected expense, want 0", n)
	}
}

func TestRecordValidation(t *testing.T) {
	b, a := newTestBook(t)

	testCases := []struct {
		name      string
		accountID string
		kind      Kind
		amount    Money
		category  string
	}{
		{"zero amount", a.ID, Expense, VND(0), "An uong"},
		{"negative amount", a.ID, Income, VND(-10), "Luong"},
		{"empty account id", "", Income, VND(10), "Luong"},
		{"empty category", a.ID, Income, VND(10), ""},
		{"transfer kind rejected", a.ID, Transfer, VND(10), "Luong"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Transactions.Record(tc.accountID, tc.kind, tc.amount, "", tc.category)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Record() error = %v, want *ValidationError", err)
			}
		})
	}

	if _, err := b.Transactions.Record("ACC_missing", Income, VND(10), "", "Luong"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Record(unknown account) = %v, want ErrNotFound", err)
	}
}

func TestCategoryCreatedOnMiss(t *testing.T) {
	b, a := newTestBook(t)
	seeded := len(b.Transactions.Categories())

	if _, err := b.Transactions.Record(a.ID, Expense, VND(10_000), "", "Thu cung"); err != nil {
		t.Fatalf("Record() returned unexpected error: %v", err)
	}
	if got := len(b.Transactions.Categories()); got != seeded+1 {
		t.Errorf("category count = %d, want %d", got, seeded+1)
	}

	// A second use matches the existing category, case-insensitively.
	if _, err := b.Transactions.Record(a.ID, Expense, VND(5_000), "", "THU CUNG"); err != nil {
		t.Fatalf("Record() returned unexpected error: %v", err)
	}
	if got := len(b.Transactions.Categories()); got != seeded+1 {
		t.Errorf("category count after reuse = %d, want %d", got, seeded+1)
	}
	if got := len(b.Transactions.ByCategory("thu cung")); got != 2 {
		t.Errorf("ByCategory() returned %d transactions, want 2", got)
	}
}

func TestDefaultCategoriesSeeded(t *testing.T) {
	b := NewBook()
	want := map[string]Kind{
		"Luong":      Income,
		"Thuong":     Income,
		"Dau tu":     Income,
		"An uong":    Expense,
		"Di chuyen":  Expense,
		"Giai tri":   Expense,
		"Mua sam":    Expense,
	}
	categories := b.Transactions.Categories()
	if len(categories) != len(want) {
		t.Fatalf("seeded %d categories, want %d", len(categories), len(want))
	}
	for _, c := range categories {
		kind, ok := want[c.Name]
		if !ok {
			t.Errorf("unexpected seed category %q", c.Name)
			continue
		}
		if c.Kind != kind {
			t.Errorf("category %q kind = %v, want %v", c.Name, c.Kind, kind)
		}
	}
}

func TestTransactionTotals(t *testing.T) {
	b, a := newTestBook(t)

	mustRecord(t, b, a.ID, Income, 200_000, "Luong")
	mustRecord(t, b, a.ID, Expense, 50_000, "An uong")
	mustRecord(t, b, a.ID, Expense, 30_000, "An uong")

	if got := b.Transactions.TotalIncome(); !got.Equal(VND(200_000)) {
		t.Errorf("TotalIncome() = %v, want 200,000", got)
	}
	if got := b.Transactions.TotalExpense(); !got.Equal(VND(80_000)) {
		t.Errorf("TotalExpense() = %v, want 80,000", got)
	}
}

func TestTransactionSnapshots(t *testing.T) {
	b, a := newTestBook(t)
	mustRecord(t, b, a.ID, Income, 100_000, "Luong")

	all := b.Transactions.All()
	all[0].Amount = VND(0)
	if got := b.Transactions.All()[0].Amount; !got.Equal(VND(100_000)) {
		t.Errorf("mutating a snapshot leaked into the ledger: %v", got)
	}
}

func mustRecord(t *testing.T, b *Book, accountID string, kind Kind, amount int64, category string) Transaction {
	t.Helper()
	tx, err := b.Transactions.Record(accountID, kind, VND(amount), "", category)
	if err != nil {
		t.Fatalf("Record(%v %d %q) failed: %v", kind, amount, category, err)
	}
	return tx
}

package finbook

import (
	"fmt"
	"strings"

	"github.com/hqnguyen/finbook/date"
)

// TransactionLedger owns transactions and categories. It holds a reference
// to the account ledger purely to apply balance effects; it never takes
// ownership of an account.
type TransactionLedger struct {
	entries    []*Transaction
	categories []*Category
	accounts   *AccountLedger
	now        func() date.Date
}

// NewTransactionLedger creates a transaction ledger bound to the given
// account ledger, seeded with the default income and expense categories.
func NewTransactionLedger(accounts *AccountLedger) *TransactionLedger {
	return &TransactionLedger{
		categories: defaultCategories(),
		accounts:   accounts,
		now:        date.Today,
	}
}

// category finds an existing category by case-insensitive name match across
// both kinds, or creates one bound to the given kind on a miss. Creating on
// miss is intentional.
func (l *TransactionLedger) category(name string, kind Kind) *Category {
	for _, c := range l.categories {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	c := newCategory(name, "Mo ta", kind)
	l.categories = append(l.categories, c)
	return c
}

// Record validates and applies a transaction to an account.
//
// For an expense the funds check happens before any state change; an account
// can never be driven negative and a rejected transaction leaves no trace.
func (l *TransactionLedger) Record(accountID string, kind Kind, amount Money, description, categoryName string) (Transaction, error) {
	if kind != Income && kind != Expense {
		return Transaction{}, &ValidationError{Messages: []string{
			fmt.Sprintf("transaction kind must be INCOME or EXPENSE, got %q", kind),
		}}
	}
	var v validation
	v.check(strings.TrimSpace(accountID) != "", "account id cannot be empty")
	v.check(amount.IsPositive(), "transaction amount must be positive")
	v.check(strings.TrimSpace(categoryName) != "", "category name cannot be empty")
	if err := v.err(); err != nil {
		return Transaction{}, err
	}

	account := l.accounts.get(accountID)
	if account == nil {
		return Transaction{}, fmt.Errorf("account %q: %w", accountID, ErrNotFound)
	}
	if kind == Expense && account.Balance.LessThan(amount) {
		return Transaction{}, fmt.Errorf("expense of %s with balance %s: %w",
			amount, account.Balance, ErrInsufficientBalance)
	}

	category := l.category(categoryName, kind)

	if kind == Income {
		account.credit(amount)
	} else {
		account.debit(amount)
	}
	tx := &Transaction{
		ID:          newID("TRX_"),
		AccountID:   accountID,
		Kind:        kind,
		Amount:      amount,
		Date:        l.now(),
		Description: description,
		Category:    *category,
	}
	l.entries = append(l.entries, tx)
	return *tx, nil
}

// All returns copies of every transaction in insertion order.
func (l *TransactionLedger) All() []Transaction {
	out := make([]Transaction, 0, len(l.entries))
	for _, tx := range l.entries {
		out = append(out, *tx)
	}
	return out
}

// ByAccount returns copies of the transactions recorded against an account,
// preserving insertion order.
func (l *TransactionLedger) ByAccount(accountID string) []Transaction {
	var out []Transaction
	for _, tx := range l.entries {
		if tx.AccountID == accountID {
			out = append(out, *tx)
		}
	}
	return out
}

// ByCategory returns copies of the transactions in a category, matched
// case-insensitively, preserving insertion order.
func (l *TransactionLedger) ByCategory(categoryName string) []Transaction {
	var out []Transaction
	for _, tx := range l.entries {
		if strings.EqualFold(tx.Category.Name, categoryName) {
			out = append(out, *tx)
		}
	}
	return out
}

// Categories returns copies of all known categories, seeds first.
func (l *TransactionLedger) Categories() []Category {
	out := make([]Category, 0, len(l.categories))
	for _, c := range l.categories {
		out = append(out, *c)
	}
	return out
}

// TotalIncome sums the amounts of all income transactions.
func (l *TransactionLedger) TotalIncome() Money {
	return l.sum(Income)
}

// TotalExpense sums the amounts of all expense transactions.
func (l *TransactionLedger) TotalExpense() Money {
	return l.sum(Expense)
}

func (l *TransactionLedger) sum(kind Kind) Money {
	total := VND(0)
	for _, tx := range l.entries {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

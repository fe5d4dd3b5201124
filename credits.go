package finbook

import (
	"fmt"

	"github.com/hqnguyen/finbook/date"
)

// CreditLedger owns the loan and lending collections. Loans and lendings are
// deliberately not linked to any account: repaying a loan does not debit the
// account that notionally paid it.
type CreditLedger struct {
	loans    []*Credit
	lendings []*Credit
	now      func() date.Date
}

// NewCreditLedger creates an empty credit ledger.
func NewCreditLedger() *CreditLedger {
	return &CreditLedger{now: date.Today}
}

// CreateLoan records money borrowed from a lender and returns a copy of the
// new loan, or a *ValidationError.
func (l *CreditLedger) CreateLoan(lender string, amount Money, rate float64, months int, description string) (Credit, error) {
	c, err := newCredit(Borrowed, lender, amount, rate, months, description, l.now())
	if err != nil {
		return Credit{}, err
	}
	l.loans = append(l.loans, c)
	return snapshotCredit(c), nil
}

// CreateLending records money lent to a borrower and returns a copy of the
// new lending, or a *ValidationError.
func (l *CreditLedger) CreateLending(borrower string, amount Money, rate float64, months int, description string) (Credit, error) {
	c, err := newCredit(Lent, borrower, amount, rate, months, description, l.now())
	if err != nil {
		return Credit{}, err
	}
	l.lendings = append(l.lendings, c)
	return snapshotCredit(c), nil
}

// Pay applies a repayment to a loan and returns the new remaining amount.
func (l *CreditLedger) Pay(loanID string, amount Money) (Money, error) {
	return l.apply(l.loans, loanID, amount)
}

// Collect applies a collection to a lending and returns the new remaining
// amount.
func (l *CreditLedger) Collect(lendingID string, amount Money) (Money, error) {
	return l.apply(l.lendings, lendingID, amount)
}

func (l *CreditLedger) apply(credits []*Credit, id string, amount Money) (Money, error) {
	c := find(credits, id)
	if c == nil {
		return Money{}, fmt.Errorf("credit %q: %w", id, ErrNotFound)
	}
	if err := c.pay(amount, l.now()); err != nil {
		return Money{}, err
	}
	return c.Remaining, nil
}

// Loan returns a copy of the loan with this id.
func (l *CreditLedger) Loan(id string) (Credit, error) {
	c := find(l.loans, id)
	if c == nil {
		return Credit{}, fmt.Errorf("loan %q: %w", id, ErrNotFound)
	}
	return snapshotCredit(c), nil
}

// Lending returns a copy of the lending with this id.
func (l *CreditLedger) Lending(id string) (Credit, error) {
	c := find(l.lendings, id)
	if c == nil {
		return Credit{}, fmt.Errorf("lending %q: %w", id, ErrNotFound)
	}
	return snapshotCredit(c), nil
}

// Loans returns copies of all loans in creation order.
func (l *CreditLedger) Loans() []Credit { return snapshotCredits(l.loans) }

// Lendings returns copies of all lendings in creation order.
func (l *CreditLedger) Lendings() []Credit { return snapshotCredits(l.lendings) }

// DueSoonLoans returns loans with one month or less remaining and money
// still owed.
func (l *CreditLedger) DueSoonLoans() []Credit {
	return l.filter(l.loans, (*Credit).DueSoon)
}

// DueSoonLendings returns lendings with one month or less remaining and
// money still owed.
func (l *CreditLedger) DueSoonLendings() []Credit {
	return l.filter(l.lendings, (*Credit).DueSoon)
}

// OverdueLoans returns loans past their due date with money still owed.
func (l *CreditLedger) OverdueLoans() []Credit {
	return l.filter(l.loans, (*Credit).IsOverdue)
}

// OverdueLendings returns lendings past their due date with money still owed.
func (l *CreditLedger) OverdueLendings() []Credit {
	return l.filter(l.lendings, (*Credit).IsOverdue)
}

// TotalOutstandingLoans sums the remaining amounts of all loans.
func (l *CreditLedger) TotalOutstandingLoans() Money {
	return outstanding(l.loans)
}

// TotalOutstandingLendings sums the remaining amounts of all lendings.
func (l *CreditLedger) TotalOutstandingLendings() Money {
	return outstanding(l.lendings)
}

func (l *CreditLedger) filter(credits []*Credit, keep func(*Credit, date.Date) bool) []Credit {
	now := l.now()
	var out []Credit
	for _, c := range credits {
		if keep(c, now) {
			out = append(out, snapshotCredit(c))
		}
	}
	return out
}

func find(credits []*Credit, id string) *Credit {
	for _, c := range credits {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func outstanding(credits []*Credit) Money {
	total := VND(0)
	for _, c := range credits {
		total = total.Add(c.Remaining)
	}
	return total
}

// snapshotCredit deep-copies a credit so callers cannot reach the live
// payment history.
func snapshotCredit(c *Credit) Credit {
	out := *c
	out.Payments = append([]Payment(nil), c.Payments...)
	return out
}

func snapshotCredits(credits []*Credit) []Credit {
	out := make([]Credit, 0, len(credits))
	for _, c := range credits {
		out = append(out, snapshotCredit(c))
	}
	return out
}

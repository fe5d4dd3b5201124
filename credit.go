package finbook

import (
	"fmt"
	"strings"

	"github.com/hqnguyen/finbook/date"
)

// CreditStatus is the lifecycle state of a loan or lending. It is always
// derived from (remaining amount, due date, now) and never stored, so it can
// never go stale while the process sits idle.
type CreditStatus string

const (
	Active  CreditStatus = "ACTIVE"
	Paid    CreditStatus = "PAID"
	Overdue CreditStatus = "OVERDUE"
)

// CreditKind distinguishes money the user owes from money owed to the user.
type CreditKind int

const (
	// Borrowed is a loan: the user owes the counterparty.
	Borrowed CreditKind = iota
	// Lent is a lending: the counterparty owes the user.
	Lent
)

func (k CreditKind) String() string {
	if k == Borrowed {
		return "loan"
	}
	return "lending"
}

// PaymentMethod records how a repayment or collection was made.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "CASH"
	PayBankTransfer PaymentMethod = "BANK_TRANSFER"
	PayEWallet      PaymentMethod = "E_WALLET"
	PayCreditCard   PaymentMethod = "CREDIT_CARD"
)

// Payment is a single repayment or collection event. Immutable, append-only.
type Payment struct {
	ID     string
	Amount Money
	Date   date.Date
	Method PaymentMethod
}

// Credit is the shared core of Loan and Lending: both follow exactly the
// same state machine, only the role of the counterparty differs.
type Credit struct {
	ID           string
	Kind         CreditKind
	Counterparty string // lender for a loan, borrower for a lending
	Principal    Money
	Rate         float64 // annual interest in percent
	Months       int     // term in months
	Remaining    Money
	Start        date.Date
	Due          date.Date
	Description  string
	Payments     []Payment
}

func newCredit(kind CreditKind, counterparty string, amount Money, rate float64, months int, description string, start date.Date) (*Credit, error) {
	var v validation
	v.check(strings.TrimSpace(counterparty) != "", "counterparty name cannot be empty")
	v.check(amount.IsPositive(), "principal amount must be positive")
	v.check(rate >= 0, "interest rate cannot be negative")
	v.check(months > 0, "term in months must be positive")
	if err := v.err(); err != nil {
		return nil, err
	}

	prefix := "LOAN_"
	if kind == Lent {
		prefix = "LEND_"
	}
	return &Credit{
		ID:           newID(prefix),
		Kind:         kind,
		Counterparty: counterparty,
		Principal:    amount,
		Rate:         rate,
		Months:       months,
		Remaining:    amount,
		Start:        start,
		Due:          start.AddMonths(months),
		Description:  description,
	}, nil
}

// TotalInterest is the simple (non compounding) interest over the full term:
// principal * rate/100 * months/12.
func (c *Credit) TotalInterest() Money {
	return c.Principal.MulFloat(c.Rate / 100).MulFloat(float64(c.Months) / 12)
}

// TotalPayable is principal plus total interest.
func (c *Credit) TotalPayable() Money {
	return c.Principal.Add(c.TotalInterest())
}

// MonthlyInstallment spreads the total payable evenly over the term.
func (c *Credit) MonthlyInstallment() Money {
	return c.TotalPayable().DivInt(int64(c.Months))
}

// Paid is how much of the principal has been settled so far.
func (c *Credit) Paid() Money {
	return c.Principal.Sub(c.Remaining)
}

// RemainingMonths is the number of whole months left before the due date,
// floored at zero. The difference is month-granular, not calendar days.
func (c *Credit) RemainingMonths(now date.Date) int {
	if now.After(c.Due) {
		return 0
	}
	remaining := date.MonthsBetween(c.Start, c.Due) - date.MonthsBetween(c.Start, now)
	return max(0, remaining)
}

// Status derives the state from the remaining amount and the clock.
// A settled credit is PAID regardless of the date; an unsettled one past its
// due date is OVERDUE; anything else is ACTIVE.
func (c *Credit) Status(now date.Date) CreditStatus {
	switch {
	case !c.Remaining.IsPositive():
		return Paid
	case now.After(c.Due):
		return Overdue
	default:
		return Active
	}
}

// DueSoon reports whether one month or less remains and money is still owed.
func (c *Credit) DueSoon(now date.Date) bool {
	return c.RemainingMonths(now) <= 1 && c.Remaining.IsPositive()
}

// IsOverdue reports whether the due date has passed with money still owed.
func (c *Credit) IsOverdue(now date.Date) bool {
	return now.After(c.Due) && c.Remaining.IsPositive()
}

// pay applies a repayment or collection. The caller supplies the clock.
func (c *Credit) pay(amount Money, now date.Date) error {
	if c.Status(now) == Paid {
		return fmt.Errorf("%s %s: %w", c.Kind, c.ID, ErrAlreadySettled)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%s payment: %w", c.Kind, ErrInvalidAmount)
	}
	if amount.GreaterThan(c.Remaining) {
		return fmt.Errorf("%s payment of %s with %s remaining: %w", c.Kind, amount, c.Remaining, ErrExceedsRemaining)
	}
	c.Remaining = c.Remaining.Sub(amount)
	c.Payments = append(c.Payments, Payment{
		ID:     newID("PAY_"),
		Amount: amount,
		Date:   now,
		Method: PayCash,
	})
	return nil
}

func (c *Credit) String() string {
	return fmt.Sprintf("Credit{id=%s, kind=%s, counterparty=%s, principal=%s, remaining=%s}",
		c.ID, c.Kind, c.Counterparty, c.Principal, c.Remaining)
}

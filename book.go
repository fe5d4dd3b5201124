package finbook

import "github.com/hqnguyen/finbook/date"

// Book is the composition root of the domain: one account ledger, one
// transaction ledger wired to it, one credit ledger. Construct it once per
// process run and pass it around explicitly; there is no global state.
type Book struct {
	Accounts     *AccountLedger
	Transactions *TransactionLedger
	Credits      *CreditLedger
}

// NewBook wires the three ledgers together.
func NewBook() *Book {
	accounts := NewAccountLedger()
	return &Book{
		Accounts:     accounts,
		Transactions: NewTransactionLedger(accounts),
		Credits:      NewCreditLedger(),
	}
}

// SetClock pins "now" for every time-dependent derivation in the book.
// Useful in tests; production code keeps the default wall clock.
func (b *Book) SetClock(now func() date.Date) {
	b.Transactions.now = now
	b.Credits.now = now
}

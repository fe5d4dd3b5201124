package finbook

import (
	"fmt"
	"strings"
)

// AccountLedger owns the collection of accounts. All mutation goes through
// it; query methods hand out copies so callers can never reach the live
// entities.
type AccountLedger struct {
	accounts []*Account
}

// NewAccountLedger creates an empty account ledger.
func NewAccountLedger() *AccountLedger {
	return &AccountLedger{accounts: make([]*Account, 0)}
}

// Create validates the inputs, appends a new account and returns a copy of
// it. On a validation failure nothing is mutated.
func (l *AccountLedger) Create(name, accountType, number string, initial Money) (Account, error) {
	account, err := NewAccount(name, accountType, number, initial)
	if err != nil {
		return Account{}, err
	}
	l.accounts = append(l.accounts, account)
	return *account, nil
}

// get returns the live account for internal mutation, or nil.
func (l *AccountLedger) get(id string) *Account {
	for _, a := range l.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ByID returns a copy of the account with this id.
func (l *AccountLedger) ByID(id string) (Account, error) {
	a := l.get(id)
	if a == nil {
		return Account{}, fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	return *a, nil
}

// Search returns copies of all accounts whose name contains the query,
// case-insensitively, in ledger order.
func (l *AccountLedger) Search(query string) []Account {
	query = strings.ToLower(query)
	var found []Account
	for _, a := range l.accounts {
		if strings.Contains(strings.ToLower(a.Name), query) {
			found = append(found, *a)
		}
	}
	return found
}

// Delete removes the account with this id and reports whether one was
// removed. Transactions already recorded against it are left alone.
func (l *AccountLedger) Delete(id string) bool {
	for i, a := range l.accounts {
		if a.ID == id {
			l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Deposit adds a positive amount to the account balance.
func (l *AccountLedger) Deposit(id string, amount Money) (Account, error) {
	if !amount.IsPositive() {
		return Account{}, fmt.Errorf("deposit: %w", ErrInvalidAmount)
	}
	a := l.get(id)
	if a == nil {
		return Account{}, fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	a.credit(amount)
	return *a, nil
}

// Transfer moves amount from one account to another as one logical unit.
// Every precondition is checked before any mutation, so a failed transfer
// leaves both balances untouched and no partial state is ever observable.
func (l *AccountLedger) Transfer(fromID, toID string, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer: %w", ErrInvalidAmount)
	}
	from := l.get(fromID)
	if from == nil {
		return fmt.Errorf("source account %q: %w", fromID, ErrNotFound)
	}
	to := l.get(toID)
	if to == nil {
		return fmt.Errorf("destination account %q: %w", toID, ErrNotFound)
	}
	if from.Balance.LessThan(amount) {
		return fmt.Errorf("transfer of %s with balance %s: %w", amount, from.Balance, ErrInsufficientBalance)
	}
	from.debit(amount)
	to.credit(amount)
	return nil
}

// TotalBalance sums the balances of all accounts.
func (l *AccountLedger) TotalBalance() Money {
	total := VND(0)
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// Accounts returns copies of all accounts in ledger order.
func (l *AccountLedger) Accounts() []Account {
	out := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	return out
}

// Count returns the number of accounts.
func (l *AccountLedger) Count() int { return len(l.accounts) }

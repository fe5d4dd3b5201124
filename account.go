package finbook

import (
	"fmt"
	"regexp"
	"strings"
)

// AccountType classifies where the money of an account lives.
type AccountType string

const (
	Bank          AccountType = "BANK"
	EWallet       AccountType = "E-WALLET"
	Savings       AccountType = "SAVINGS"
	Cash          AccountType = "CASH"
	CreditAccount AccountType = "CREDIT"
)

// ParseAccountType parses a string into an AccountType, case-insensitively.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BANK":
		return Bank, nil
	case "E-WALLET", "WALLET":
		return EWallet, nil
	case "SAVINGS":
		return Savings, nil
	case "CASH":
		return Cash, nil
	case "CREDIT":
		return CreditAccount, nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

func (t AccountType) String() string { return string(t) }

var (
	namePattern   = regexp.MustCompile(`^[\p{L}0-9 ]{2,50}$`)
	numberPattern = regexp.MustCompile(`^[A-Za-z0-9]{5,20}$`)
)

// Account is a named store of money with a type and a balance.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Number   string
	Balance  Money
	Currency string
}

// NewAccount validates the inputs and builds an Account, or returns a
// *ValidationError listing every failed check. No partially valid account
// ever escapes.
func NewAccount(name, accountType, number string, initial Money) (*Account, error) {
	var v validation
	v.check(namePattern.MatchString(name),
		"account name must be 2-50 characters of letters, digits and spaces")
	typ, err := ParseAccountType(accountType)
	v.check(err == nil,
		"account type must be one of BANK, E-WALLET, SAVINGS, CASH, CREDIT")
	v.check(numberPattern.MatchString(number),
		"account number must be 5-20 alphanumeric characters")
	v.check(!initial.IsNegative(), "initial balance cannot be negative")
	if err := v.err(); err != nil {
		return nil, err
	}

	return &Account{
		ID:       newID("ACC_"),
		Name:     name,
		Type:     typ,
		Number:   number,
		Balance:  initial,
		Currency: DefaultCurrency,
	}, nil
}

// credit adds amount to the balance. Callers validate the amount first.
func (a *Account) credit(amount Money) { a.Balance = a.Balance.Add(amount) }

// debit subtracts amount from the balance. Callers check funds first so the
// balance never goes negative.
func (a *Account) debit(amount Money) { a.Balance = a.Balance.Sub(amount) }

func (a *Account) String() string {
	return fmt.Sprintf("Account{id=%s, name=%s, type=%s, balance=%s}", a.ID, a.Name, a.Type, a.Balance)
}

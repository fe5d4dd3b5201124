package finbook

import (
	"fmt"

	"github.com/hqnguyen/finbook/date"
)

// Transaction is a recorded income or expense event against one account.
// It is immutable once recorded.
type Transaction struct {
	ID          string
	AccountID   string
	Kind        Kind
	Amount      Money
	Date        date.Date
	Description string
	Category    Category
}

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction{id=%s, account=%s, kind=%s, amount=%s, category=%s}",
		t.ID, t.AccountID, t.Kind, t.Amount, t.Category.Name)
}

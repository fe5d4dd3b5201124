package finbook

import (
	"fmt"
	"strings"
)

// Kind tells whether a transaction brings money in or takes it out.
// Transfer exists as a label for internal moves between accounts; it is
// never recorded as a ledger entry.
type Kind string

const (
	Income   Kind = "INCOME"
	Expense  Kind = "EXPENSE"
	Transfer Kind = "TRANSFER"
)

// ParseKind parses a string into a Kind, case-insensitively. Only Income and
// Expense are accepted for recording.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return "", fmt.Errorf("transaction kind must be INCOME or EXPENSE, got %q", s)
	}
}

func (k Kind) String() string { return string(k) }

// Category labels a transaction as belonging to an income or expense bucket.
// Categories are matched by name, case-insensitively, and created lazily the
// first time an unseen name is used.
type Category struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
}

func newCategory(name, description string, kind Kind) *Category {
	return &Category{ID: newID("CAT_"), Name: name, Description: description, Kind: kind}
}

// defaultCategories is the seed set installed at ledger construction.
func defaultCategories() []*Category {
	return []*Category{
		newCategory("Luong", "Thu nhap tu luong", Income),
		newCategory("Thuong", "Thuong", Income),
		newCategory("Dau tu", "Thu nhap tu dau tu", Income),
		newCategory("An uong", "Chi phi an uong", Expense),
		newCategory("Di chuyen", "Chi phi di lai", Expense),
		newCategory("Giai tri", "Chi phi giai tri", Expense),
		newCategory("Mua sam", "Chi phi mua sam", Expense),
	}
}

package finbook

import (
	"sort"
	"time"

	"github.com/hqnguyen/finbook/date"
)

// NewPeriodReport sums income and expense over the inclusive range and
// breaks expenses down by category, sorted by amount descending.
func (b *Book) NewPeriodReport(r date.Range) PeriodReport {
	income, expense := VND(0), VND(0)
	byCategory := make(map[string]Money)
	var order []string

	for _, tx := range b.Transactions.All() {
		if !r.Contains(tx.Date) {
			continue
		}
		switch tx.Kind {
		case Income:
			income = income.Add(tx.Amount)
		case Expense:
			expense = expense.Add(tx.Amount)
			if _, seen := byCategory[tx.Category.Name]; !seen {
				order = append(order, tx.Category.Name)
			}
			byCategory[tx.Category.Name] = byCategory[tx.Category.Name].Add(tx.Amount)
		}
	}

	shares := make([]CategoryShare, 0, len(order))
	for _, name := range order {
		amount := byCategory[name]
		share := CategoryShare{Category: name, Amount: amount}
		if expense.IsPositive() {
			share.Share = amount.Ratio(expense) * 100
		}
		shares = append(shares, share)
	}
	// Descending by amount; first-seen order breaks ties to keep the
	// output stable.
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})

	return PeriodReport{
		Range:      r,
		Income:     income,
		Expense:    expense,
		Net:        income.Sub(expense),
		Categories: shares,
	}
}

// NewMonthlyReport is the period report bounded to one calendar month.
func (b *Book) NewMonthlyReport(year int, month time.Month) PeriodReport {
	return b.NewPeriodReport(date.MonthRange(year, month))
}

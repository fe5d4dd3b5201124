package finbook

import "sort"

// NewAccountReport details one account: income/expense totals, transaction
// count, and the top five transactions by amount.
func (b *Book) NewAccountReport(accountID string) (AccountReport, error) {
	account, err := b.Accounts.ByID(accountID)
	if err != nil {
		return AccountReport{}, err
	}

	txs := b.Transactions.ByAccount(accountID)
	income, expense := VND(0), VND(0)
	for _, tx := range txs {
		if tx.Kind == Income {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	top := append([]Transaction(nil), txs...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Amount.GreaterThan(top[j].Amount)
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return AccountReport{
		Account: account,
		Income:  income,
		Expense: expense,
		Count:   len(txs),
		Top:     top,
	}, nil
}

// NewComparisonReport puts every account side by side with its own
// income/expense totals and the grand total balance.
func (b *Book) NewComparisonReport() ComparisonReport {
	accounts := b.Accounts.Accounts()
	report := ComparisonReport{
		Accounts:     make([]AccountSummary, 0, len(accounts)),
		TotalBalance: b.Accounts.TotalBalance(),
	}
	for _, account := range accounts {
		summary := AccountSummary{Account: account, Income: VND(0), Expense: VND(0)}
		for _, tx := range b.Transactions.ByAccount(account.ID) {
			if tx.Kind == Income {
				summary.Income = summary.Income.Add(tx.Amount)
			} else {
				summary.Expense = summary.Expense.Add(tx.Amount)
			}
		}
		report.Accounts = append(report.Accounts, summary)
	}
	return report
}

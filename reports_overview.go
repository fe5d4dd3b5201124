package finbook

// NewOverview projects the current financial position across all three
// ledgers.
func (b *Book) NewOverview() Overview {
	income := b.Transactions.TotalIncome()
	expense := b.Transactions.TotalExpense()
	balance := b.Accounts.TotalBalance()
	loans := b.Credits.TotalOutstandingLoans()
	lendings := b.Credits.TotalOutstandingLendings()

	o := Overview{
		Date:             b.Credits.now(),
		TotalBalance:     balance,
		TotalIncome:      income,
		TotalExpense:     expense,
		NetCashFlow:      income.Sub(expense),
		TotalLoans:       loans,
		TotalLendings:    lendings,
		NetWorth:         balance.Add(lendings).Sub(loans),
		AccountCount:     b.Accounts.Count(),
		TransactionCount: len(b.Transactions.All()),
	}
	if income.IsPositive() {
		o.HasRatios = true
		o.ExpenseRatio = expense.Ratio(income) * 100
		o.SavingsRatio = 100 - o.ExpenseRatio
	}
	return o
}

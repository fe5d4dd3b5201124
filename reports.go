package finbook

import "github.com/hqnguyen/finbook/date"

// Report projections. Every report is a read-only snapshot computed from the
// ledgers; building one never mutates anything, and rendering is somebody
// else's job.

// Overview is the at-a-glance financial position across all ledgers.
type Overview struct {
	Date             date.Date
	TotalBalance     Money
	TotalIncome      Money
	TotalExpense     Money
	NetCashFlow      Money // income - expense
	TotalLoans       Money // outstanding, owed by the user
	TotalLendings    Money // outstanding, receivable
	NetWorth         Money // balance + lendings - loans
	HasRatios        bool  // ratios only make sense with income > 0
	ExpenseRatio     float64
	SavingsRatio     float64
	AccountCount     int
	TransactionCount int
}

// CategoryShare is one slice of a period's expense breakdown.
type CategoryShare struct {
	Category string
	Amount   Money
	Share    float64 // percent of the period's total expense
}

// PeriodReport sums income and expense over an inclusive date range and
// breaks expenses down by category, largest first.
type PeriodReport struct {
	Range      date.Range
	Income     Money
	Expense    Money
	Net        Money
	Categories []CategoryShare
}

// AccountReport details a single account: totals, count, and the largest
// transactions.
type AccountReport struct {
	Account Account
	Income  Money
	Expense Money
	Count   int
	Top     []Transaction // up to five, by amount descending
}

// CreditLine is one loan or lending in the credit report.
type CreditLine struct {
	ID           string
	Counterparty string
	Paid         Money
	Principal    Money
	Remaining    Money
	Status       CreditStatus
	Overdue      bool
}

// CreditReport lists every loan and lending with aggregate totals.
type CreditReport struct {
	Loans        []CreditLine
	Lendings     []CreditLine
	TotalPayable Money // outstanding loans
	TotalOwed    Money // outstanding lendings
	Difference   Money // receivable - payable
}

// CreditDetail is one loan or lending with its time-derived state pinned,
// ready for rendering alongside the full payment history.
type CreditDetail struct {
	Credit          Credit
	Status          CreditStatus
	RemainingMonths int
}

// DueItem is one upcoming or overdue loan/lending.
type DueItem struct {
	ID              string
	Kind            CreditKind
	Counterparty    string
	Remaining       Money
	Due             date.Date
	RemainingMonths int
	Overdue         bool
}

// DueReport lists the loans and lendings due within a month or already
// overdue, with money still owed.
type DueReport struct {
	Date  date.Date
	Items []DueItem
}

// AccountSummary is one account's line in the comparison report.
type AccountSummary struct {
	Account Account
	Income  Money
	Expense Money
}

// ComparisonReport puts all accounts side by side.
type ComparisonReport struct {
	Accounts     []AccountSummary
	TotalBalance Money
}

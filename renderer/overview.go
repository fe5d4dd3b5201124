// Package renderer turns report projections into markdown strings. It never
// touches the ledgers; everything it needs comes in as a report value.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hqnguyen/finbook"
)

func OverviewMarkdown(o *finbook.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Financial Overview on %s", o.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Balance"),
			md.Bold(o.TotalBalance.String()),
		},
		Rows: [][]string{
			{"Total Income", o.TotalIncome.String()},
			{"Total Expense", o.TotalExpense.String()},
			{"Net Cash Flow", o.NetCashFlow.SignedString()},
			{"Loans Outstanding", o.TotalLoans.String()},
			{"Lendings Receivable", o.TotalLendings.String()},
			{"Net Worth", o.NetWorth.SignedString()},
		},
	})

	if o.HasRatios {
		doc.H2("Ratios")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Ratio", "Value"},
			Rows: [][]string{
				{"Expense / Income", fmt.Sprintf("%.1f%%", o.ExpenseRatio)},
				{"Savings", fmt.Sprintf("%.1f%%", o.SavingsRatio)},
			},
		})
	}

	doc.PlainText(fmt.Sprintf("%d accounts, %d transactions", o.AccountCount, o.TransactionCount))

	return doc.String()
}

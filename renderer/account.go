package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hqnguyen/finbook"
)

func AccountMarkdown(r *finbook.AccountReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account Report: %s", r.Account.Name))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Balance"),
			md.Bold(r.Account.Balance.String()),
		},
		Rows: [][]string{
			{"Type", string(r.Account.Type)},
			{"Number", r.Account.Number},
			{"Income", r.Income.String()},
			{"Expense", r.Expense.String()},
			{"Transactions", fmt.Sprintf("%d", r.Count)},
		},
	})

	if len(r.Top) > 0 {
		doc.H2("Largest Transactions")
		var lines []string
		for _, tx := range r.Top {
			lines = append(lines, TransactionLine(tx))
		}
		doc.OrderedList(lines...)
	}

	return doc.String()
}

func ComparisonMarkdown(r *finbook.ComparisonReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Comparison")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Account", "Type", "Balance", "Income", "Expense"},
	}
	for _, s := range r.Accounts {
		table.Rows = append(table.Rows, []string{
			s.Account.Name,
			string(s.Account.Type),
			s.Account.Balance.String(),
			s.Income.String(),
			s.Expense.String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"), "", md.Bold(r.TotalBalance.String()), "", "",
	})
	doc.Table(table)

	return doc.String()
}

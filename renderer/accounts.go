package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/hqnguyen/finbook"
)

func AccountsMarkdown(accounts []finbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")

	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Type", "Number", "Balance"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{
			a.ID,
			a.Name,
			string(a.Type),
			a.Number,
			a.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/hqnguyen/finbook"
)

func CreditMarkdown(r *finbook.CreditReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loans & Lendings")

	lines := func(title string, items []finbook.CreditLine) {
		if len(items) == 0 {
			return
		}
		doc.H2(title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"ID", "Counterparty", "Paid", "Principal", "Remaining", "Status"},
		}
		for _, line := range items {
			status := string(line.Status)
			if line.Overdue {
				status = md.Bold(status)
			}
			table.Rows = append(table.Rows, []string{
				line.ID,
				line.Counterparty,
				line.Paid.String(),
				line.Principal.String(),
				line.Remaining.String(),
				status,
			})
		}
		doc.Table(table)
	}
	lines("Loans", r.Loans)
	lines("Lendings", r.Lendings)

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Payable (loans)", r.TotalPayable.String()},
			{"Receivable (lendings)", r.TotalOwed.String()},
			{"Difference", r.Difference.SignedString()},
		},
	})

	return doc.String()
}

func CreditDetailMarkdown(d *finbook.CreditDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	c := d.Credit
	title := "Loan"
	if c.Kind == finbook.Lent {
		title = "Lending"
	}
	doc.H1(fmt.Sprintf("%s %s", title, c.ID))

	status := string(d.Status)
	if d.Status == finbook.Overdue {
		status = md.Bold(status)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Counterparty"),
			md.Bold(c.Counterparty),
		},
		Rows: [][]string{
			{"Principal", c.Principal.String()},
			{"Rate", fmt.Sprintf("%g%%/year", c.Rate)},
			{"Term", fmt.Sprintf("%d months", c.Months)},
			{"Total Interest", c.TotalInterest().String()},
			{"Total Payable", c.TotalPayable().String()},
			{"Monthly Installment", c.MonthlyInstallment().String()},
			{"Paid", c.Paid().String()},
			{"Remaining", c.Remaining.String()},
			{"Start", c.Start.String()},
			{"Due", c.Due.String()},
			{"Months Left", fmt.Sprintf("%d", d.RemainingMonths)},
			{"Status", status},
		},
	})

	if len(c.Payments) == 0 {
		doc.PlainText("No payments recorded yet.")
		return doc.String()
	}

	doc.H2("Payments")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Date", "Amount", "Method"},
	}
	for _, p := range c.Payments {
		table.Rows = append(table.Rows, []string{
			p.ID,
			p.Date.String(),
			p.Amount.String(),
			string(p.Method),
		})
	}
	doc.Table(table)

	return doc.String()
}

func DueMarkdown(r *finbook.DueReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Due Soon on %s", r.Date))

	if len(r.Items) == 0 {
		doc.PlainText("Nothing is due within the next month.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Kind", "Counterparty", "Remaining", "Due", "Months Left"},
	}
	for _, item := range r.Items {
		due := item.Due.String()
		if item.Overdue {
			due = md.Bold("OVERDUE " + due)
		}
		table.Rows = append(table.Rows, []string{
			item.ID,
			item.Kind.String(),
			item.Counterparty,
			item.Remaining.String(),
			due,
			fmt.Sprintf("%d", item.RemainingMonths),
		})
	}
	doc.Table(table)

	return doc.String()
}

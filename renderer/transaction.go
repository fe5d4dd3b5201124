package renderer

import (
	"fmt"
	"strings"

	"github.com/hqnguyen/finbook"
)

// TransactionLine renders a transaction to a one-line string.
func TransactionLine(tx finbook.Transaction) string {
	verb := "Received"
	if tx.Kind == finbook.Expense {
		verb = "Spent"
	}
	line := fmt.Sprintf("%s %s on %s (%s)", verb, tx.Amount, tx.Date, tx.Category.Name)
	if tx.Description != "" {
		line += ": " + tx.Description
	}
	return line
}

func TransactionsMarkdown(title string, txs []finbook.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Date | Kind | Amount | Category | Description |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|:---|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.ID, tx.Date, tx.Kind, tx.Amount, tx.Category.Name, tx.Description)
	}

	return b.String()
}

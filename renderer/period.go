package renderer

import (
	"fmt"
	"strings"

	"github.com/hqnguyen/finbook"
)

func PeriodMarkdown(r *finbook.PeriodReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Income/Expense Report from %s to %s\n\n", r.Range.From, r.Range.To)

	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income | %s |\n", r.Income)
	fmt.Fprintf(&b, "| Expense | %s |\n", r.Expense)
	fmt.Fprintf(&b, "| **Net** | **%s** |\n", r.Net.SignedString())

	if len(r.Categories) > 0 {
		fmt.Fprint(&b, "\n## Expenses by Category\n\n")
		fmt.Fprintln(&b, "| Category | Amount | Share |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, c := range r.Categories {
			fmt.Fprintf(&b, "| %s | %s | %.1f%% |\n", c.Category, c.Amount, c.Share)
		}
	}

	return b.String()
}

package finbook

// NewCreditReport lists every loan and lending with progress and aggregate
// totals.
func (b *Book) NewCreditReport() CreditReport {
	now := b.Credits.now()

	lines := func(credits []Credit) []CreditLine {
		out := make([]CreditLine, 0, len(credits))
		for _, c := range credits {
			out = append(out, CreditLine{
				ID:           c.ID,
				Counterparty: c.Counterparty,
				Paid:         c.Paid(),
				Principal:    c.Principal,
				Remaining:    c.Remaining,
				Status:       c.Status(now),
				Overdue:      c.IsOverdue(now),
			})
		}
		return out
	}

	payable := b.Credits.TotalOutstandingLoans()
	receivable := b.Credits.TotalOutstandingLendings()
	return CreditReport{
		Loans:        lines(b.Credits.Loans()),
		Lendings:     lines(b.Credits.Lendings()),
		TotalPayable: payable,
		TotalOwed:    receivable,
		Difference:   receivable.Sub(payable),
	}
}

// NewCreditDetail projects a single loan or lending with its payment history
// and derived state.
func (b *Book) NewCreditDetail(kind CreditKind, id string) (CreditDetail, error) {
	lookup := b.Credits.Loan
	if kind == Lent {
		lookup = b.Credits.Lending
	}
	c, err := lookup(id)
	if err != nil {
		return CreditDetail{}, err
	}
	now := b.Credits.now()
	return CreditDetail{
		Credit:          c,
		Status:          c.Status(now),
		RemainingMonths: c.RemainingMonths(now),
	}, nil
}

// NewDueReport lists the loans and lendings that are due within a month or
// already overdue, with money still owed.
func (b *Book) NewDueReport() DueReport {
	now := b.Credits.now()
	report := DueReport{Date: now}

	add := func(credits []Credit) {
		for _, c := range credits {
			report.Items = append(report.Items, DueItem{
				ID:              c.ID,
				Kind:            c.Kind,
				Counterparty:    c.Counterparty,
				Remaining:       c.Remaining,
				Due:             c.Due,
				RemainingMonths: c.RemainingMonths(now),
				Overdue:         c.IsOverdue(now),
			})
		}
	}
	add(b.Credits.DueSoonLoans())
	add(b.Credits.DueSoonLendings())
	return report
}

package report

import (
	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"

	"github.com/shopspring/decimal"
)

// BuildTrialBalance lists every account whose net balance exceeds the
// tolerance, placing a net debit in the debit column and a net credit
// (as its absolute value) in the credit column. When every stored
// entry is individually balanced the two column totals agree by
// construction; Balanced reports that comparison within the tolerance.
func BuildTrialBalance(balances []domain.AccountBalance) *domain.TrialBalance {
	tb := &domain.TrialBalance{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, b := range balances {
		if b.NetBalance.Abs().LessThanOrEqual(journal.Tolerance) {
			continue
		}

		row := domain.TrialBalanceRow{
			Account:       b.Account,
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}
		if b.NetBalance.Sign() > 0 {
			row.DebitBalance = b.NetBalance
			tb.TotalDebit = tb.TotalDebit.Add(b.NetBalance)
		} else {
			row.CreditBalance = b.NetBalance.Abs()
			tb.TotalCredit = tb.TotalCredit.Add(b.NetBalance.Abs())
		}
		tb.Rows = append(tb.Rows, row)
	}

	tb.Balanced = journal.IsBalanced(tb.TotalDebit, tb.TotalCredit)
	return tb
}

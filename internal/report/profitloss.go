package report

import (
	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"github.com/shopspring/decimal"
)

// BuildProfitAndLoss classifies the balances into the income
// statement. Revenue accounts appear when they carry their normal
// credit balance (shown positive); expense accounts when they carry
// their normal debit balance. An account matching a P&L keyword but
// sitting on the wrong side is shown nowhere — the heuristic refuses
// to guess.
func BuildProfitAndLoss(balances []domain.AccountBalance, rs Ruleset) *domain.ProfitAndLoss {
	pl := &domain.ProfitAndLoss{
		Income:        []domain.LineItem{},
		Expenses:      []domain.LineItem{},
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, b := range balances {
		switch rs.Classify(b.Account) {
		case CategoryRevenue:
			if b.NetBalance.Sign() < 0 {
				amount := b.NetBalance.Abs()
				pl.Income = append(pl.Income, domain.LineItem{Account: b.Account, Amount: amount})
				pl.TotalIncome = pl.TotalIncome.Add(amount)
			}
		case CategoryExpense:
			if b.NetBalance.Sign() > 0 {
				pl.Expenses = append(pl.Expenses, domain.LineItem{Account: b.Account, Amount: b.NetBalance})
				pl.TotalExpenses = pl.TotalExpenses.Add(b.NetBalance)
			}
		}
	}

	pl.NetProfit = pl.TotalIncome.Sub(pl.TotalExpenses)
	return pl
}

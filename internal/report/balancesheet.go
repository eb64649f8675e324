package report

import (
	"strings"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"

	"github.com/shopspring/decimal"
)

// RetainedEarningsAccount names the synthetic equity line that carries
// the period's net profit onto the balance sheet.
const RetainedEarningsAccount = "Retained Earnings"

// BuildBalanceSheet classifies the balances into assets, liabilities
// and equity. P&L accounts are skipped — their effect reaches the
// sheet as a single "Retained Earnings" equity line carrying the net
// profit from BuildProfitAndLoss, so both statements are fed by one
// figure. Asset categories expect a debit balance, liability and
// equity categories a credit balance; equity accounts containing
// "drawing" are debit-normal and reduce equity.
//
// UnclassifiedResidual is whatever the accounting equation still
// misses after retained earnings: assets − liabilities − equity. A
// residual beyond the tolerance means some balance matched no keyword
// and was dropped from the sheet.
func BuildBalanceSheet(balances []domain.AccountBalance, rs Ruleset) *domain.BalanceSheet {
	bs := &domain.BalanceSheet{
		Assets:           []domain.LineItem{},
		Liabilities:      []domain.LineItem{},
		Equity:           []domain.LineItem{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, b := range balances {
		category := rs.Classify(b.Account)
		if category.IsProfitAndLoss() || category == CategoryUnclassified {
			continue
		}

		item := domain.LineItem{Account: b.Account, Category: string(category)}

		switch category {
		case CategoryCurrentAsset, CategoryNonCurrentAsset:
			if b.NetBalance.Sign() > 0 {
				item.Amount = b.NetBalance
				bs.Assets = append(bs.Assets, item)
				bs.TotalAssets = bs.TotalAssets.Add(item.Amount)
			}
		case CategoryCurrentLiability, CategoryNonCurrentLiability:
			if b.NetBalance.Sign() < 0 {
				item.Amount = b.NetBalance.Abs()
				bs.Liabilities = append(bs.Liabilities, item)
				bs.TotalLiabilities = bs.TotalLiabilities.Add(item.Amount)
			}
		case CategoryEquity:
			if isDrawing(b.Account) {
				if b.NetBalance.Sign() > 0 {
					item.Amount = b.NetBalance.Neg()
					bs.Equity = append(bs.Equity, item)
					bs.TotalEquity = bs.TotalEquity.Add(item.Amount)
				}
			} else if b.NetBalance.Sign() < 0 {
				item.Amount = b.NetBalance.Abs()
				bs.Equity = append(bs.Equity, item)
				bs.TotalEquity = bs.TotalEquity.Add(item.Amount)
			}
		}
	}

	netProfit := BuildProfitAndLoss(balances, rs).NetProfit
	if netProfit.Abs().GreaterThan(journal.Tolerance) {
		bs.Equity = append(bs.Equity, domain.LineItem{
			Account:  RetainedEarningsAccount,
			Amount:   netProfit,
			Category: string(CategoryEquity),
		})
		bs.TotalEquity = bs.TotalEquity.Add(netProfit)
	}

	residual := bs.TotalAssets.Sub(bs.TotalLiabilities).Sub(bs.TotalEquity)
	if residual.Abs().GreaterThan(journal.Tolerance) {
		bs.UnclassifiedResidual = residual
	} else {
		bs.UnclassifiedResidual = decimal.Zero
	}

	return bs
}

func isDrawing(account string) bool {
	return strings.Contains(strings.ToLower(account), "drawing")
}

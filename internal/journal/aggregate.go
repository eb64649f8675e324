package journal

import (
	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"github.com/shopspring/decimal"
)

// Aggregate folds every posting of every entry into per-account
// balances. The account universe is exactly the set of names that
// appear in any posting — accounts are never declared up front. The
// result is ordered alphabetically by account name; the fold is
// order-independent, so permuting the entries yields identical output.
func Aggregate(entries []domain.JournalEntry) []domain.AccountBalance {
	type totals struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}

	byAccount := make(map[string]totals)
	for _, entry := range entries {
		for _, p := range entry.Postings {
			t, ok := byAccount[p.Account]
			if !ok {
				t = totals{debit: decimal.Zero, credit: decimal.Zero}
			}
			if p.Side == domain.SideDebit {
				t.debit = t.debit.Add(p.Amount)
			} else {
				t.credit = t.credit.Add(p.Amount)
			}
			byAccount[p.Account] = t
		}
	}

	balances := make([]domain.AccountBalance, 0, len(byAccount))
	for _, name := range sortedAccounts(byAccount) {
		t := byAccount[name]
		balances = append(balances, domain.AccountBalance{
			Account:     name,
			DebitTotal:  t.debit,
			CreditTotal: t.credit,
			NetBalance:  t.debit.Sub(t.credit),
		})
	}
	return balances
}

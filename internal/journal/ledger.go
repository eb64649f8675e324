package journal

import (
	"fmt"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"github.com/shopspring/decimal"
)

// BuildLedgers reconstructs, per account, the ordered list of postings
// that touched it. Debit lines read "To <contra>", credit lines
// "By <contra>", and every line carries a "J<id>" journal-folio marker
// back to its entry.
func BuildLedgers(entries []domain.JournalEntry) map[string]*domain.Ledger {
	ledgers := make(map[string]*domain.Ledger)

	for _, entry := range entries {
		folio := fmt.Sprintf("J%d", entry.ID)

		for _, p := range entry.Postings {
			ledger, ok := ledgers[p.Account]
			if !ok {
				ledger = &domain.Ledger{
					DebitTotal:  decimal.Zero,
					CreditTotal: decimal.Zero,
				}
				ledgers[p.Account] = ledger
			}

			line := domain.LedgerLine{
				Date:   entry.Date,
				Folio:  folio,
				Amount: p.Amount,
			}

			if p.Side == domain.SideDebit {
				line.Particulars = "To " + p.Contra
				ledger.DebitEntries = append(ledger.DebitEntries, line)
				ledger.DebitTotal = ledger.DebitTotal.Add(p.Amount)
			} else {
				line.Particulars = "By " + p.Contra
				ledger.CreditEntries = append(ledger.CreditEntries, line)
				ledger.CreditTotal = ledger.CreditTotal.Add(p.Amount)
			}
		}
	}

	return ledgers
}

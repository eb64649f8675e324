// Package export writes journal data as CSV. Monetary fields are
// formatted to two decimal places; the column not applicable to a
// posting's side is an empty string, not zero.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
)

// Journal writes one row per posting with the fixed column layout
// Entry ID, Date, Account Name, Debit, Credit, Narration.
func Journal(w io.Writer, entries []domain.JournalEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Entry ID", "Date", "Account Name", "Debit", "Credit", "Narration"}); err != nil {
		return err
	}

	for _, entry := range entries {
		for _, p := range entry.Postings {
			debit, credit := "", ""
			if p.Side == domain.SideDebit {
				debit = p.Amount.StringFixed(2)
			} else {
				credit = p.Amount.StringFixed(2)
			}
			row := []string{
				strconv.Itoa(entry.ID),
				entry.Date,
				p.Account,
				debit,
				credit,
				entry.Narration,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// JournalGrouped writes the classic journal-book layout: date and
// narration only on the first posting row of each entry, a blank
// separator row between entries.
func JournalGrouped(w io.Writer, entries []domain.JournalEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Account Name", "Debit", "Credit", "Narration"}); err != nil {
		return err
	}

	for _, entry := range entries {
		for i, p := range entry.Postings {
			date, narration := "", ""
			if i == 0 {
				date = entry.Date
				narration = entry.Narration
			}
			debit, credit := "", ""
			if p.Side == domain.SideDebit {
				debit = p.Amount.StringFixed(2)
			} else {
				credit = p.Amount.StringFixed(2)
			}
			if err := cw.Write([]string{date, p.Account, debit, credit, narration}); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{"", "", "", "", ""}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// TrialBalance writes the trial balance with a TOTAL footer row.
func TrialBalance(w io.Writer, tb *domain.TrialBalance) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Account Name", "Debit Balance", "Credit Balance"}); err != nil {
		return err
	}

	for _, row := range tb.Rows {
		debit, credit := "", ""
		if row.DebitBalance.Sign() > 0 {
			debit = row.DebitBalance.StringFixed(2)
		} else {
			credit = row.CreditBalance.StringFixed(2)
		}
		if err := cw.Write([]string{row.Account, debit, credit}); err != nil {
			return err
		}
	}

	footer := []string{"TOTAL", tb.TotalDebit.StringFixed(2), tb.TotalCredit.StringFixed(2)}
	if err := cw.Write(footer); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

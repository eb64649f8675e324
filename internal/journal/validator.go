// Package journal implements the bookkeeping core: entry validation,
// the in-memory journal store, balance aggregation and ledger
// reconstruction. Reports are pure functions of the store contents.
package journal

import (
	"sort"
	"strings"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"github.com/shopspring/decimal"
)

// Tolerance is the maximum difference between an entry's debit and
// credit totals (and between trial-balance columns) still considered
// balanced: 0.01 currency units.
var Tolerance = decimal.New(1, -2)

// ValidateEntry checks a proposed entry and returns its postings with
// contra-account narration filled in. Rules are applied in order, first
// failure wins:
//
//  1. date and narration must be non-empty
//  2. at least two postings with a non-empty account name and a
//     positive amount must survive filtering; a non-numeric amount is
//     an error rather than a filtered row
//  3. debit and credit totals must agree within Tolerance unless
//     allowUnbalanced is set (the force-save confirmation flow)
//
// Rows with both name and amount empty are skipped silently — front
// ends send fixed-size posting grids with trailing blank rows.
func ValidateEntry(date, narration string, inputs []domain.PostingInput, allowUnbalanced bool) ([]domain.Posting, error) {
	if strings.TrimSpace(date) == "" {
		return nil, &domain.ErrMissingField{Field: "date"}
	}
	if strings.TrimSpace(narration) == "" {
		return nil, &domain.ErrMissingField{Field: "narration"}
	}

	var (
		postings       []domain.Posting
		debitAccounts  []string
		creditAccounts []string
		totalDebit     = decimal.Zero
		totalCredit    = decimal.Zero
	)

	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		raw := strings.TrimSpace(in.Amount)
		if name == "" || raw == "" {
			continue
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &domain.ErrInvalidAmount{Account: name, Value: raw}
		}
		if amount.Sign() <= 0 {
			continue
		}

		side := in.Side
		if !side.Valid() {
			// Anything that isn't an explicit debit is treated as a
			// credit, mirroring the two-option selector of the UIs.
			side = domain.SideCredit
		}

		if side == domain.SideDebit {
			debitAccounts = append(debitAccounts, name)
			totalDebit = totalDebit.Add(amount)
		} else {
			creditAccounts = append(creditAccounts, name)
			totalCredit = totalCredit.Add(amount)
		}

		postings = append(postings, domain.Posting{
			Account: name,
			Side:    side,
			Amount:  amount,
		})
	}

	if len(postings) < 2 {
		return nil, &domain.ErrInsufficientPostings{Count: len(postings)}
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(Tolerance) && !allowUnbalanced {
		return nil, &domain.ErrUnbalanced{Debit: totalDebit, Credit: totalCredit}
	}

	contraDebit := strings.Join(creditAccounts, " & ")
	contraCredit := strings.Join(debitAccounts, " & ")
	for i := range postings {
		if postings[i].Side == domain.SideDebit {
			postings[i].Contra = contraDebit
		} else {
			postings[i].Contra = contraCredit
		}
	}

	return postings, nil
}

// IsBalanced reports whether debit and credit agree within Tolerance.
func IsBalanced(debit, credit decimal.Decimal) bool {
	return debit.Sub(credit).Abs().LessThanOrEqual(Tolerance)
}

// sortedAccounts returns the keys of m in alphabetical order. All
// reporting output is ordered by account name.
func sortedAccounts[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

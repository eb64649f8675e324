// Package domain defines the core data model of the journal:
// postings, entries, derived balances and report structures.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the debit/credit side of a posting.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Valid reports whether s is one of the two allowed sides.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// Posting is a single debit or credit line within a journal entry.
// Contra holds the names of the opposite-side accounts of the same
// entry, joined by " & ", for ledger narration ("To X & Y" / "By Z").
type Posting struct {
	Account string          `json:"account"`
	Side    Side            `json:"side"`
	Amount  decimal.Decimal `json:"amount"`
	Contra  string          `json:"contra_account"`
}

// PostingInput is a raw posting row as collected by a front end.
// Amount arrives as a string and is parsed during validation; it is a
// plain data record, deliberately decoupled from any UI widget.
type PostingInput struct {
	Name   string `json:"name"`
	Side   Side   `json:"side"`
	Amount string `json:"amount"`
}

// JournalEntry is a dated, narrated set of postings recorded as one
// transaction. Entries are immutable once stored; the only mutation is
// delete-and-recreate.
type JournalEntry struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"`
	Narration string    `json:"narration"`
	Postings  []Posting `json:"postings"`
	// Unbalanced marks an entry that was force-saved despite its debit
	// and credit totals differing by more than the tolerance.
	Unbalanced bool      `json:"unbalanced,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// DebitTotal sums the entry's debit postings.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	return e.sideTotal(SideDebit)
}

// CreditTotal sums the entry's credit postings.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	return e.sideTotal(SideCredit)
}

func (e JournalEntry) sideTotal(side Side) decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Postings {
		if p.Side == side {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// SubmitEntryRequest is the submit payload of the external interface.
type SubmitEntryRequest struct {
	Date            string         `json:"date"`
	Narration       string         `json:"narration"`
	Postings        []PostingInput `json:"postings"`
	AllowUnbalanced bool           `json:"allow_unbalanced,omitempty"`
}

// AccountBalance is the derived per-account position: total debits,
// total credits and their difference. It is never stored — always a
// full fold over the journal.
type AccountBalance struct {
	Account     string          `json:"account"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	NetBalance  decimal.Decimal `json:"net_balance"`
}

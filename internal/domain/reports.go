package domain

import "github.com/shopspring/decimal"

// EntryView is a journal entry annotated with its totals, as shown on
// the journal listing.
type EntryView struct {
	JournalEntry
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	IsBalanced  bool            `json:"is_balanced"`
}

// JournalView is the full journal listing with grand totals.
type JournalView struct {
	Entries     []EntryView     `json:"entries"`
	GrandDebit  decimal.Decimal `json:"grand_debit"`
	GrandCredit decimal.Decimal `json:"grand_credit"`
}

// TrialBalanceRow places an account's net balance in the debit or the
// credit column. The unused column is zero.
type TrialBalanceRow struct {
	Account       string          `json:"account"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalance lists every account with a non-zero net balance,
// alphabetically, with column totals.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
	Balanced    bool              `json:"balanced"`
}

// LineItem is one classified account on a financial statement.
// Category carries the classification bucket for balance-sheet items
// ("current_asset", "equity", ...); it is empty on P&L items where the
// section already names the bucket.
type LineItem struct {
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
}

// ProfitAndLoss is the income statement.
type ProfitAndLoss struct {
	Income        []LineItem      `json:"income"`
	Expenses      []LineItem      `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// BalanceSheet is the statement of financial position. Equity already
// includes the "Retained Earnings" line carrying the P&L net profit.
// UnclassifiedResidual is the amount by which the accounting equation
// still fails to close after that — nonzero only when some balance
// could not be classified, where the original residual plug would have
// silently absorbed it.
type BalanceSheet struct {
	Assets               []LineItem      `json:"assets"`
	Liabilities          []LineItem      `json:"liabilities"`
	Equity               []LineItem      `json:"equity"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	TotalEquity          decimal.Decimal `json:"total_equity"`
	UnclassifiedResidual decimal.Decimal `json:"unclassified_residual"`
}

// FinancialSummary bundles the three statements built from one journal
// snapshot.
type FinancialSummary struct {
	TrialBalance  *TrialBalance  `json:"trial_balance"`
	ProfitAndLoss *ProfitAndLoss `json:"profit_and_loss"`
	BalanceSheet  *BalanceSheet  `json:"balance_sheet"`
}

// LedgerLine is one side of a ledger account: the conventional
// "To/By <contra>" narration, the journal folio ("J<id>") and the
// posted amount.
type LedgerLine struct {
	Date        string          `json:"date"`
	Particulars string          `json:"particulars"`
	Folio       string          `json:"folio"`
	Amount      decimal.Decimal `json:"amount"`
}

// Ledger is the chronological activity of a single account.
type Ledger struct {
	DebitEntries  []LedgerLine    `json:"debit_entries"`
	CreditEntries []LedgerLine    `json:"credit_entries"`
	DebitTotal    decimal.Decimal `json:"debit_total"`
	CreditTotal   decimal.Decimal `json:"credit_total"`
}

// JournalMetrics is the snapshot served by GET /v1/metrics/journal.
type JournalMetrics struct {
	EntriesAccepted  int64   `json:"entries_accepted"`
	EntriesRejected  int64   `json:"entries_rejected"`
	EntriesForced    int64   `json:"entries_forced"`
	EntriesDeleted   int64   `json:"entries_deleted"`
	ReportsBuilt     int64   `json:"reports_built"`
	ExportsWritten   int64   `json:"exports_written"`
	SessionsCreated  int64   `json:"sessions_created"`
	RejectionRate    float64 `json:"rejection_rate"`
	Period           string  `json:"period"`
}

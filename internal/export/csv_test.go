package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/export"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"
	"github.com/Sharmaisbatman/AcctFlow/internal/report"

	"github.com/shopspring/decimal"
)

func sampleEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		{
			ID: 1, Date: "2024-01-15", Narration: "Cash sale",
			Postings: []domain.Posting{
				{Account: "Cash", Side: domain.SideDebit, Amount: decimal.RequireFromString("1000.50"), Contra: "Sales"},
				{Account: "Sales", Side: domain.SideCredit, Amount: decimal.RequireFromString("1000.50"), Contra: "Cash"},
			},
		},
		{
			ID: 2, Date: "2024-01-20", Narration: "Rent, January",
			Postings: []domain.Posting{
				{Account: "Rent Expense", Side: domain.SideDebit, Amount: decimal.NewFromInt(300), Contra: "Cash"},
				{Account: "Cash", Side: domain.SideCredit, Amount: decimal.NewFromInt(300), Contra: "Rent Expense"},
			},
		},
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	return records
}

func TestJournal_OneRowPerPosting(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Journal(&buf, sampleEntries()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records := parseCSV(t, buf.Bytes())
	if len(records) != 5 {
		t.Fatalf("expected header + 4 posting rows, got %d rows", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "Entry ID,Date,Account Name,Debit,Credit,Narration" {
		t.Errorf("unexpected header: %s", header)
	}

	first := records[1]
	if first[0] != "1" || first[1] != "2024-01-15" || first[2] != "Cash" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[3] != "1000.50" || first[4] != "" {
		t.Errorf("debit posting must leave the credit column empty: %v", first)
	}

	second := records[2]
	if second[3] != "" || second[4] != "1000.50" {
		t.Errorf("credit posting must leave the debit column empty: %v", second)
	}
}

func TestJournal_NarrationWithCommaSurvivesQuoting(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Journal(&buf, sampleEntries()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records := parseCSV(t, buf.Bytes())
	if records[3][5] != "Rent, January" {
		t.Errorf("expected quoted narration to round-trip, got %q", records[3][5])
	}
}

func TestJournal_ColumnSumsMatchAggregate(t *testing.T) {
	entries := sampleEntries()

	var buf bytes.Buffer
	if err := export.Journal(&buf, entries); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for _, row := range parseCSV(t, buf.Bytes())[1:] {
		if row[3] != "" {
			debits = debits.Add(decimal.RequireFromString(row[3]))
		}
		if row[4] != "" {
			credits = credits.Add(decimal.RequireFromString(row[4]))
		}
	}

	wantDebit, wantCredit := decimal.Zero, decimal.Zero
	for _, b := range journal.Aggregate(entries) {
		wantDebit = wantDebit.Add(b.DebitTotal)
		wantCredit = wantCredit.Add(b.CreditTotal)
	}

	if !debits.Equal(wantDebit) || !credits.Equal(wantCredit) {
		t.Errorf("CSV sums %s/%s disagree with aggregate %s/%s",
			debits, credits, wantDebit, wantCredit)
	}
}

func TestJournalGrouped_DateOnFirstRowOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := export.JournalGrouped(&buf, sampleEntries()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records := parseCSV(t, buf.Bytes())
	// Header, then per entry: 2 posting rows + 1 separator.
	if len(records) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(records))
	}
	if records[1][0] != "2024-01-15" || records[1][4] != "Cash sale" {
		t.Errorf("first posting row carries date and narration: %v", records[1])
	}
	if records[2][0] != "" || records[2][4] != "" {
		t.Errorf("second posting row must leave date and narration blank: %v", records[2])
	}
	for _, field := range records[3] {
		if field != "" {
			t.Fatalf("expected a blank separator row, got %v", records[3])
		}
	}
}

func TestTrialBalance_TotalFooter(t *testing.T) {
	tb := report.BuildTrialBalance(journal.Aggregate(sampleEntries()))

	var buf bytes.Buffer
	if err := export.TrialBalance(&buf, tb); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records := parseCSV(t, buf.Bytes())
	footer := records[len(records)-1]
	if footer[0] != "TOTAL" {
		t.Fatalf("expected TOTAL footer, got %v", footer)
	}
	if footer[1] != "1000.50" || footer[2] != "1000.50" {
		t.Errorf("unexpected footer totals: %v", footer)
	}
}

func TestJournal_EmptyJournalStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Journal(&buf, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records := parseCSV(t, buf.Bytes())
	if len(records) != 1 {
		t.Fatalf("expected only the header row, got %d rows", len(records))
	}
}

package service

import (
	"context"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"

	"go.uber.org/zap"
)

// SeedSampleEntries appends a handful of classic textbook transactions
// to the session's journal, for demos and manual testing. Returns the
// number of entries added.
func (s *JournalService) SeedSampleEntries(ctx context.Context, store *journal.Store) (int, error) {
	_, span := tracer.Start(ctx, "JournalService.SeedSampleEntries")
	defer span.End()

	samples := []domain.SubmitEntryRequest{
		{
			Date:      "2024-01-01",
			Narration: "Owner invested capital",
			Postings: []domain.PostingInput{
				{Name: "Cash", Side: domain.SideDebit, Amount: "50000"},
				{Name: "Owner Capital", Side: domain.SideCredit, Amount: "50000"},
			},
		},
		{
			Date:      "2024-01-05",
			Narration: "Purchased office equipment",
			Postings: []domain.PostingInput{
				{Name: "Office Equipment", Side: domain.SideDebit, Amount: "12000"},
				{Name: "Cash", Side: domain.SideCredit, Amount: "12000"},
			},
		},
		{
			Date:      "2024-01-10",
			Narration: "Cash sales for the week",
			Postings: []domain.PostingInput{
				{Name: "Cash", Side: domain.SideDebit, Amount: "8500"},
				{Name: "Sales", Side: domain.SideCredit, Amount: "8500"},
			},
		},
		{
			Date:      "2024-01-15",
			Narration: "Paid monthly office rent",
			Postings: []domain.PostingInput{
				{Name: "Rent Expense", Side: domain.SideDebit, Amount: "2500"},
				{Name: "Cash", Side: domain.SideCredit, Amount: "2500"},
			},
		},
		{
			Date:      "2024-01-20",
			Narration: "Purchased supplies on credit",
			Postings: []domain.PostingInput{
				{Name: "Office Expense", Side: domain.SideDebit, Amount: "1200"},
				{Name: "Accounts Payable", Side: domain.SideCredit, Amount: "1200"},
			},
		},
	}

	for _, req := range samples {
		if _, err := s.SubmitEntry(ctx, store, req); err != nil {
			return 0, err
		}
	}

	s.logger.Info("sample entries seeded", zap.Int("count", len(samples)))
	return len(samples), nil
}

// Package service provides the business logic layer (use cases).
// JournalService is the external interface of the bookkeeping core:
// entry submission and deletion, report generation, ledger building
// and CSV export. The journal store is always passed in explicitly —
// each session owns its own store, and the service holds no ambient
// journal state.
package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/export"
	"github.com/Sharmaisbatman/AcctFlow/internal/infra/observability"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"
	"github.com/Sharmaisbatman/AcctFlow/internal/report"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service/journal")

// JournalService orchestrates validation, the store and the report
// builders.
type JournalService struct {
	ruleset report.Ruleset
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewJournalService creates a journal service using the given
// classification ruleset.
func NewJournalService(rs report.Ruleset, metrics *observability.Metrics, logger *zap.Logger) *JournalService {
	return &JournalService{ruleset: rs, metrics: metrics, logger: logger}
}

// ============================================================
// Entries
// ============================================================

// SubmitEntry validates and stores a proposed entry. Validation runs
// strictly before any store mutation, so a rejected entry leaves the
// journal untouched.
func (s *JournalService) SubmitEntry(ctx context.Context, store *journal.Store, req domain.SubmitEntryRequest) (*domain.JournalEntry, error) {
	_, span := tracer.Start(ctx, "JournalService.SubmitEntry")
	defer span.End()
	span.SetAttributes(attribute.Int("postings.count", len(req.Postings)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("submit_entry", time.Since(start))
	}()

	postings, err := journal.ValidateEntry(req.Date, req.Narration, req.Postings, req.AllowUnbalanced)
	if err != nil {
		s.metrics.IncrEntry(observability.EntryRejected)
		var unbalanced *domain.ErrUnbalanced
		if errors.As(err, &unbalanced) {
			s.logger.Warn("entry rejected as unbalanced",
				zap.String("debit", unbalanced.Debit.StringFixed(2)),
				zap.String("credit", unbalanced.Credit.StringFixed(2)),
			)
		} else {
			s.logger.Debug("entry rejected", zap.Error(err))
		}
		return nil, err
	}

	// The entry may still be unbalanced here when the caller forced it.
	debit, credit := sideTotals(postings)
	forced := !journal.IsBalanced(debit, credit)

	entry := store.Append(req.Date, req.Narration, postings, forced)

	if forced {
		s.metrics.IncrEntry(observability.EntryForced)
		s.logger.Warn("unbalanced entry force-saved",
			zap.Int("entry_id", entry.ID),
			zap.String("debit", debit.StringFixed(2)),
			zap.String("credit", credit.StringFixed(2)),
		)
	} else {
		s.metrics.IncrEntry(observability.EntryAccepted)
	}

	s.logger.Info("journal entry recorded",
		zap.Int("entry_id", entry.ID),
		zap.Int("postings", len(entry.Postings)),
	)
	return &entry, nil
}

// DeleteEntry removes an entry by id. Unknown ids yield ErrNotFound.
func (s *JournalService) DeleteEntry(ctx context.Context, store *journal.Store, id int) error {
	_, span := tracer.Start(ctx, "JournalService.DeleteEntry")
	defer span.End()
	span.SetAttributes(attribute.Int("entry.id", id))

	if !store.Delete(id) {
		return &domain.ErrNotFound{Resource: "journal entry", ID: strconv.Itoa(id)}
	}

	s.metrics.IncrEntryDeleted()
	s.logger.Info("journal entry deleted", zap.Int("entry_id", id))
	return nil
}

// ListEntries returns the journal listing with per-entry and grand
// totals.
func (s *JournalService) ListEntries(ctx context.Context, store *journal.Store) *domain.JournalView {
	_, span := tracer.Start(ctx, "JournalService.ListEntries")
	defer span.End()

	entries := store.List()
	view := &domain.JournalView{Entries: make([]domain.EntryView, 0, len(entries))}

	for _, e := range entries {
		debit := e.DebitTotal()
		credit := e.CreditTotal()
		view.Entries = append(view.Entries, domain.EntryView{
			JournalEntry: e,
			TotalDebit:   debit,
			TotalCredit:  credit,
			IsBalanced:   journal.IsBalanced(debit, credit),
		})
		view.GrandDebit = view.GrandDebit.Add(debit)
		view.GrandCredit = view.GrandCredit.Add(credit)
	}
	return view
}

// ClearEntries empties the session's journal and resets its id
// counter.
func (s *JournalService) ClearEntries(ctx context.Context, store *journal.Store) {
	_, span := tracer.Start(ctx, "JournalService.ClearEntries")
	defer span.End()

	store.Clear()
	s.logger.Info("journal cleared")
}

// ============================================================
// Reports
// ============================================================

// TrialBalance builds the trial balance from the current journal.
func (s *JournalService) TrialBalance(ctx context.Context, store *journal.Store) *domain.TrialBalance {
	_, span := tracer.Start(ctx, "JournalService.TrialBalance")
	defer span.End()

	s.metrics.IncrReport("trial_balance")
	return report.BuildTrialBalance(journal.Aggregate(store.List()))
}

// ProfitAndLoss builds the income statement.
func (s *JournalService) ProfitAndLoss(ctx context.Context, store *journal.Store) *domain.ProfitAndLoss {
	_, span := tracer.Start(ctx, "JournalService.ProfitAndLoss")
	defer span.End()

	s.metrics.IncrReport("profit_loss")
	return report.BuildProfitAndLoss(journal.Aggregate(store.List()), s.ruleset)
}

// BalanceSheet builds the statement of financial position.
func (s *JournalService) BalanceSheet(ctx context.Context, store *journal.Store) *domain.BalanceSheet {
	_, span := tracer.Start(ctx, "JournalService.BalanceSheet")
	defer span.End()

	s.metrics.IncrReport("balance_sheet")
	return report.BuildBalanceSheet(journal.Aggregate(store.List()), s.ruleset)
}

// FinancialSummary builds all three statements concurrently over one
// journal snapshot, so the reports are mutually consistent even while
// other requests keep appending entries.
func (s *JournalService) FinancialSummary(ctx context.Context, store *journal.Store) (*domain.FinancialSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, span := tracer.Start(ctx, "JournalService.FinancialSummary")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("summary", time.Since(start))
	}()

	balances := journal.Aggregate(store.List())
	summary := &domain.FinancialSummary{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary.TrialBalance = report.BuildTrialBalance(balances)
		return nil
	})
	g.Go(func() error {
		summary.ProfitAndLoss = report.BuildProfitAndLoss(balances, s.ruleset)
		return nil
	})
	g.Go(func() error {
		summary.BalanceSheet = report.BuildBalanceSheet(balances, s.ruleset)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.IncrReport("summary")
	return summary, nil
}

// Ledgers rebuilds every account ledger with contra narration.
func (s *JournalService) Ledgers(ctx context.Context, store *journal.Store) map[string]*domain.Ledger {
	_, span := tracer.Start(ctx, "JournalService.Ledgers")
	defer span.End()

	s.metrics.IncrReport("ledgers")
	return journal.BuildLedgers(store.List())
}

// ============================================================
// Export
// ============================================================

// ExportJournal writes the journal as CSV, one row per posting.
// An empty journal is reported as not found, matching the front ends'
// "no entries to export" behavior. Write failures do not corrupt
// in-memory state — export only reads a snapshot.
func (s *JournalService) ExportJournal(ctx context.Context, store *journal.Store, w io.Writer) error {
	_, span := tracer.Start(ctx, "JournalService.ExportJournal")
	defer span.End()

	entries := store.List()
	if len(entries) == 0 {
		return &domain.ErrNotFound{Resource: "journal entries", ID: "export"}
	}

	if err := export.Journal(w, entries); err != nil {
		s.logger.Error("journal export failed", zap.Error(err))
		return err
	}
	s.metrics.IncrExport("journal")
	return nil
}

// ExportTrialBalance writes the trial balance as CSV with a TOTAL
// footer.
func (s *JournalService) ExportTrialBalance(ctx context.Context, store *journal.Store, w io.Writer) error {
	_, span := tracer.Start(ctx, "JournalService.ExportTrialBalance")
	defer span.End()

	entries := store.List()
	if len(entries) == 0 {
		return &domain.ErrNotFound{Resource: "journal entries", ID: "export"}
	}

	tb := report.BuildTrialBalance(journal.Aggregate(entries))
	if err := export.TrialBalance(w, tb); err != nil {
		s.logger.Error("trial balance export failed", zap.Error(err))
		return err
	}
	s.metrics.IncrExport("trial_balance")
	return nil
}

func sideTotals(postings []domain.Posting) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, p := range postings {
		if p.Side == domain.SideDebit {
			debit = debit.Add(p.Amount)
		} else {
			credit = credit.Add(p.Amount)
		}
	}
	return debit, credit
}

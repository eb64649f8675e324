package handler

import (
	"net/http"

	"github.com/Sharmaisbatman/AcctFlow/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Reports — GET /v1/reports/*, GET /v1/ledgers
// ============================================================

func trialBalanceHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reports/trial-balance")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.TrialBalance(ctx, storeFromContext(ctx)))
	}
}

func profitLossHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reports/profit-loss")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.ProfitAndLoss(ctx, storeFromContext(ctx)))
	}
}

func balanceSheetHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reports/balance-sheet")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.BalanceSheet(ctx, storeFromContext(ctx)))
	}
}

func summaryHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reports/summary")
		defer span.End()

		summary, err := svc.FinancialSummary(ctx, storeFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func ledgersHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/ledgers")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.Ledgers(ctx, storeFromContext(ctx)))
	}
}

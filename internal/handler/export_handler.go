package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// CSV export — GET /v1/export/*
// ============================================================

// Exports render into a buffer first: a failure must produce a clean
// JSON error, not a half-written CSV body.

func exportJournalHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/export/journal")
		defer span.End()

		var buf bytes.Buffer
		if err := svc.ExportJournal(ctx, storeFromContext(ctx), &buf); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeCSV(w, "journal_entries", &buf)
	}
}

func exportTrialBalanceHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/export/trial-balance")
		defer span.End()

		var buf bytes.Buffer
		if err := svc.ExportTrialBalance(ctx, storeFromContext(ctx), &buf); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeCSV(w, "trial_balance", &buf)
	}
}

func writeCSV(w http.ResponseWriter, prefix string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

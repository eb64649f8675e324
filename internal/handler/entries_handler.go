package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// ============================================================
// Entries — POST/GET/DELETE /v1/entries
// ============================================================

func submitEntryHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/entries")
		defer span.End()

		var req domain.SubmitEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.Int("postings.count", len(req.Postings)))

		entry, err := svc.SubmitEntry(ctx, storeFromContext(ctx), req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

func listEntriesHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/entries")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.ListEntries(ctx, storeFromContext(ctx)))
	}
}

func deleteEntryHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/entries/{entryId}")
		defer span.End()

		id, err := strconv.Atoi(chi.URLParam(r, "entryId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "entry id must be an integer")
			return
		}
		span.SetAttributes(attribute.Int("entry.id", id))

		if err := svc.DeleteEntry(ctx, storeFromContext(ctx), id); err != nil {
			handleServiceError(w, err, logger)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func clearEntriesHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/entries")
		defer span.End()

		svc.ClearEntries(ctx, storeFromContext(ctx))
		w.WriteHeader(http.StatusNoContent)
	}
}

func seedSampleHandler(svc *service.JournalService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/dev/sample-entries")
		defer span.End()

		count, err := svc.SeedSampleEntries(ctx, storeFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]int{"entries_added": count})
	}
}

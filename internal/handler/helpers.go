package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"

	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

// unbalancedResponse carries both totals so a front end can show the
// difference and offer the force-save confirmation.
type unbalancedResponse struct {
	Error  string `json:"error"`
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var missingField *domain.ErrMissingField
	var insufficientPostings *domain.ErrInsufficientPostings
	var invalidAmount *domain.ErrInvalidAmount
	var unbalanced *domain.ErrUnbalanced
	var notFound *domain.ErrNotFound
	var unauthorized *domain.ErrUnauthorized

	switch {
	case errors.As(err, &missingField):
		logger.Debug("missing field", zap.String("field", missingField.Field))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &insufficientPostings):
		logger.Debug("insufficient postings", zap.Int("count", insufficientPostings.Count))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalidAmount):
		logger.Debug("invalid amount",
			zap.String("account", invalidAmount.Account),
			zap.String("value", invalidAmount.Value),
		)
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unbalanced):
		logger.Debug("unbalanced entry rejected",
			zap.String("debit", unbalanced.Debit.StringFixed(2)),
			zap.String("credit", unbalanced.Credit.StringFixed(2)),
		)
		writeJSON(w, http.StatusUnprocessableEntity, unbalancedResponse{
			Error:  err.Error(),
			Debit:  unbalanced.Debit.StringFixed(2),
			Credit: unbalanced.Credit.StringFixed(2),
		})
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unauthorized):
		logger.Warn("unauthorized", zap.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

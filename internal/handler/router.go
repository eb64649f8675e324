package handler

import (
	"net/http"

	"github.com/Sharmaisbatman/AcctFlow/internal/infra/observability"
	"github.com/Sharmaisbatman/AcctFlow/internal/service"
	"github.com/Sharmaisbatman/AcctFlow/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterOptions bundles the router's collaborators.
type RouterOptions struct {
	Service     *service.JournalService
	Sessions    *session.Registry
	Metrics     *observability.Metrics
	Logger      *zap.Logger
	CORSOrigins []string
	DevTools    bool
}

// NewRouter creates the HTTP router with all routes and middleware.
// Every /v1 route runs behind the session middleware: the journal it
// operates on is the one owned by the request's session.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{SessionTokenHeader},
		AllowCredentials: false,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Use(SessionMiddleware(opts.Sessions, opts.Metrics, logger))

		// Journal entries
		r.Post("/entries", submitEntryHandler(opts.Service, logger))
		r.Get("/entries", listEntriesHandler(opts.Service, logger))
		r.Delete("/entries/{entryId}", deleteEntryHandler(opts.Service, logger))
		r.Delete("/entries", clearEntriesHandler(opts.Service, logger))

		// Reports
		r.Get("/reports/trial-balance", trialBalanceHandler(opts.Service, logger))
		r.Get("/reports/profit-loss", profitLossHandler(opts.Service, logger))
		r.Get("/reports/balance-sheet", balanceSheetHandler(opts.Service, logger))
		r.Get("/reports/summary", summaryHandler(opts.Service, logger))
		r.Get("/ledgers", ledgersHandler(opts.Service, logger))

		// CSV export
		r.Get("/export/journal", exportJournalHandler(opts.Service, logger))
		r.Get("/export/trial-balance", exportTrialBalanceHandler(opts.Service, logger))

		// Metrics snapshot
		r.Get("/metrics/journal", journalMetricsHandler(opts.Metrics))

		// Dev tools (demo data)
		if opts.DevTools {
			r.Post("/dev/sample-entries", seedSampleHandler(opts.Service, logger))
		}
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func journalMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Snapshot())
	}
}

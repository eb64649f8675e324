package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/handler"
	"github.com/Sharmaisbatman/AcctFlow/internal/infra/observability"
	"github.com/Sharmaisbatman/AcctFlow/internal/report"
	"github.com/Sharmaisbatman/AcctFlow/internal/service"
	"github.com/Sharmaisbatman/AcctFlow/internal/session"

	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	sessions := session.NewRegistry(time.Hour, "test-secret", time.Hour)
	metrics := observability.NewMetrics(func() float64 { return float64(sessions.Len()) })
	svc := service.NewJournalService(report.DefaultRuleset(), metrics, logger)

	return handler.NewRouter(handler.RouterOptions{
		Service:     svc,
		Sessions:    sessions,
		Metrics:     metrics,
		Logger:      logger,
		CORSOrigins: []string{"*"},
		DevTools:    true,
	})
}

// sessionClient replays the session token across requests, the way a
// browser would replay the cookie.
type sessionClient struct {
	router http.Handler
	token  string
}

func (c *sessionClient) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	if token := rec.Header().Get(handler.SessionTokenHeader); token != "" {
		c.token = token
	}
	return rec
}

func cashSale(amount string) domain.SubmitEntryRequest {
	return domain.SubmitEntryRequest{
		Date:      "2024-01-15",
		Narration: "Cash sale",
		Postings: []domain.PostingInput{
			{Name: "Cash", Side: domain.SideDebit, Amount: amount},
			{Name: "Sales", Side: domain.SideCredit, Amount: amount},
		},
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestSubmitEntry(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	rec := client.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var entry domain.JournalEntry
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.ID != 1 {
		t.Errorf("expected entry id 1, got %d", entry.ID)
	}
	if entry.Unbalanced {
		t.Error("a balanced entry must not be flagged")
	}
	if len(entry.Postings) != 2 || entry.Postings[0].Contra != "Sales" {
		t.Errorf("unexpected postings: %+v", entry.Postings)
	}
	if client.token == "" {
		t.Error("expected a session token on the response")
	}
}

func TestSubmitEntry_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/entries", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitEntry_MissingDate(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	req := cashSale("1000")
	req.Date = ""
	rec := client.do(t, http.MethodPost, "/v1/entries", req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d. Body: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitEntry_UnbalancedRejectedWithTotals(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	rec := client.do(t, http.MethodPost, "/v1/entries", domain.SubmitEntryRequest{
		Date:      "2024-01-15",
		Narration: "off by 100",
		Postings: []domain.PostingInput{
			{Name: "Cash", Side: domain.SideDebit, Amount: "500"},
			{Name: "Sales", Side: domain.SideCredit, Amount: "400"},
		},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Error  string `json:"error"`
		Debit  string `json:"debit"`
		Credit string `json:"credit"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Debit != "500.00" || resp.Credit != "400.00" {
		t.Errorf("expected totals 500.00/400.00, got %s/%s", resp.Debit, resp.Credit)
	}
}

func TestSubmitEntry_ForceSave(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	rec := client.do(t, http.MethodPost, "/v1/entries", domain.SubmitEntryRequest{
		Date:            "2024-01-15",
		Narration:       "forced",
		AllowUnbalanced: true,
		Postings: []domain.PostingInput{
			{Name: "Cash", Side: domain.SideDebit, Amount: "500"},
			{Name: "Sales", Side: domain.SideCredit, Amount: "400"},
		},
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var entry domain.JournalEntry
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !entry.Unbalanced {
		t.Error("expected the entry to be flagged unbalanced")
	}
}

func TestDeleteEntry(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	client.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	rec := client.do(t, http.MethodDelete, "/v1/entries/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = client.do(t, http.MethodDelete, "/v1/entries/1", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on re-delete, got %d", rec.Code)
	}

	rec = client.do(t, http.MethodDelete, "/v1/entries/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-integer id, got %d", rec.Code)
	}
}

func TestTrialBalanceFlow(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	client.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	rec := client.do(t, http.MethodGet, "/v1/reports/trial-balance", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var tb domain.TrialBalance
	if err := json.NewDecoder(rec.Body).Decode(&tb); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tb.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tb.Rows))
	}
	if !tb.Balanced {
		t.Error("expected a balanced trial balance")
	}
	if tb.TotalDebit.StringFixed(2) != "1000.00" {
		t.Errorf("expected total debit 1000.00, got %s", tb.TotalDebit)
	}
}

func TestSessionIsolation(t *testing.T) {
	router := newTestRouter(t)
	first := &sessionClient{router: router}
	second := &sessionClient{router: router}

	first.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	rec := second.do(t, http.MethodGet, "/v1/entries", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view domain.JournalView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(view.Entries) != 0 {
		t.Errorf("expected an empty journal in a fresh session, got %d entries", len(view.Entries))
	}

	rec = first.do(t, http.MethodGet, "/v1/entries", nil)
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(view.Entries) != 1 {
		t.Errorf("expected the first session to keep its entry, got %d", len(view.Entries))
	}
}

func TestExportJournalCSV(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	client.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	rec := client.do(t, http.MethodGet, "/v1/export/journal", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d. Body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "journal_entries") {
		t.Errorf("unexpected Content-Disposition: %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Entry ID,Date,Account Name") {
		t.Errorf("unexpected CSV header: %q", rec.Body.String())
	}
}

func TestExportJournal_EmptyJournal(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	rec := client.do(t, http.MethodGet, "/v1/export/journal", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an empty journal, got %d", rec.Code)
	}
}

func TestJournalMetricsSnapshot(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	client.do(t, http.MethodPost, "/v1/entries", cashSale("1000"))

	rec := client.do(t, http.MethodGet, "/v1/metrics/journal", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var snapshot domain.JournalMetrics
	if err := json.NewDecoder(rec.Body).Decode(&snapshot); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snapshot.EntriesAccepted < 1 {
		t.Errorf("expected at least one accepted entry, got %d", snapshot.EntriesAccepted)
	}
}

func TestSeedSampleEntries(t *testing.T) {
	client := &sessionClient{router: newTestRouter(t)}

	rec := client.do(t, http.MethodPost, "/v1/dev/sample-entries", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d. Body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["entries_added"] != 5 {
		t.Errorf("expected 5 sample entries, got %d", resp["entries_added"])
	}
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sharmaisbatman/AcctFlow/internal/infra/observability"
	"github.com/Sharmaisbatman/AcctFlow/internal/journal"
	"github.com/Sharmaisbatman/AcctFlow/internal/session"

	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "acctflow_session"

// SessionTokenHeader is the response header a client without cookie
// support should read the token from and echo back as a Bearer token.
const SessionTokenHeader = "X-Session-Token"

type ctxKey int

const storeCtxKey ctxKey = iota

// SessionMiddleware resolves the request's session journal and puts
// its store on the context. A request without a usable token gets a
// fresh session transparently — the journal is per-session scratch
// space, so there is nothing to refuse.
func SessionMiddleware(sessions *session.Registry, metrics *observability.Metrics, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, store, token, created, err := sessions.Resolve(requestToken(r))
			if err != nil {
				logger.Error("session resolution failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if created {
				metrics.IncrSessionCreated()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionTokenHeader, token)

			ctx := context.WithValue(r.Context(), storeCtxKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestToken extracts the session token from the Authorization
// header or the session cookie.
func requestToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// storeFromContext returns the session's journal store. The session
// middleware guarantees presence on /v1 routes.
func storeFromContext(ctx context.Context) *journal.Store {
	store, _ := ctx.Value(storeCtxKey).(*journal.Store)
	return store
}

// Package session maps signed session tokens to per-session journal
// stores. Every session owns exactly one store; there is no
// cross-session sharing. Idle sessions expire and their journals are
// discarded with them — the journal is session-scoped by design.
package session

import (
	"sync"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/journal"

	"github.com/google/uuid"
)

type record struct {
	store     *journal.Store
	expiresAt time.Time
}

// Registry is a thread-safe TTL registry of session journals.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record
	ttl     time.Duration

	tokens *TokenSigner
}

// NewRegistry creates a registry whose sessions expire after ttl of
// inactivity. Tokens are signed with secret and carry their own
// tokenTTL expiry. A background goroutine sweeps expired sessions.
func NewRegistry(ttl time.Duration, secret string, tokenTTL time.Duration) *Registry {
	r := &Registry{
		records: make(map[string]*record),
		ttl:     ttl,
		tokens:  NewTokenSigner(secret, tokenTTL),
	}
	go r.sweep()
	return r
}

// Create opens a new session with an empty journal and returns its id,
// store and signed token.
func (r *Registry) Create() (id string, store *journal.Store, token string, err error) {
	id = uuid.New().String()
	store = journal.NewStore()

	token, err = r.tokens.Sign(id)
	if err != nil {
		return "", nil, "", err
	}

	r.mu.Lock()
	r.records[id] = &record{store: store, expiresAt: time.Now().Add(r.ttl)}
	r.mu.Unlock()

	return id, store, token, nil
}

// Get returns the store for a session id, extending its expiry.
// Returns false for unknown or expired sessions.
func (r *Registry) Get(id string) (*journal.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok || time.Now().After(rec.expiresAt) {
		return nil, false
	}
	rec.expiresAt = time.Now().Add(r.ttl)
	return rec.store, true
}

// Resolve turns a token (possibly empty or stale) into a live session.
// An empty, invalid or expired token yields a fresh session; created
// reports whether that happened, and token is always the token the
// client should keep using.
func (r *Registry) Resolve(tokenIn string) (id string, store *journal.Store, token string, created bool, err error) {
	if tokenIn != "" {
		if sid, perr := r.tokens.Parse(tokenIn); perr == nil {
			if st, ok := r.Get(sid); ok {
				return sid, st, tokenIn, false, nil
			}
		}
	}

	id, store, token, err = r.Create()
	if err != nil {
		return "", nil, "", false, err
	}
	return id, store, token, true, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// sweep periodically drops expired sessions.
func (r *Registry) sweep() {
	ticker := time.NewTicker(r.ttl)
	defer ticker.Stop()

	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for id, rec := range r.records {
			if now.After(rec.expiresAt) {
				delete(r.records, id)
			}
		}
		r.mu.Unlock()
	}
}

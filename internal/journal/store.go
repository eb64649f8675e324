package journal

import (
	"sync"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
)

// Store is the ordered, append-only (with delete-by-id) collection of
// accepted journal entries — the source of truth for every report.
// Each session owns one Store; the mutex is there because the HTTP
// layer can serve concurrent requests for the same session.
type Store struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
	nextID  int
}

// NewStore creates an empty journal with the id counter at 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append stores a validated entry, assigns the next id and returns the
// stored value. Ids are never reused, even after deletion.
func (s *Store) Append(date, narration string, postings []domain.Posting, unbalanced bool) domain.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.JournalEntry{
		ID:         s.nextID,
		Date:       date,
		Narration:  narration,
		Postings:   postings,
		Unbalanced: unbalanced,
		CreatedAt:  time.Now().UTC(),
	}
	s.entries = append(s.entries, entry)
	s.nextID++
	return entry
}

// Delete removes the entry with the given id. It reports whether an
// entry was removed; deleting an unknown id is a no-op.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the entries in insertion order. The slice is a copy;
// callers cannot mutate the store through it.
func (s *Store) List() []domain.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear empties the store and resets the id counter to 1.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.nextID = 1
}

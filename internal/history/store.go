package history

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// MaxHistory is the default capacity bound of the store.
const MaxHistory = 1000

// Store holds clipboard entries newest-first, bounded at a fixed capacity.
// Every mutation rewrites the backing file synchronously; a failed write is
// logged and in-memory state stays authoritative.
type Store struct {
	path    string
	max     int
	now     func() time.Time
	entries []Entry // newest first
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithCapacity overrides the default MaxHistory bound.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the history file at path, falling back to an empty store when
// the file is absent, unreadable, or malformed. It never fails: a broken
// history file costs the old entries, not the process.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		max:  MaxHistory,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns a copy of the stored entries, newest first.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Get returns the entry with the given id.
func (s *Store) Get(id int64) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Ingest offers newly observed clipboard text to the store. Empty text and
// text already present anywhere in the store (exact match) are ignored.
// Otherwise a new entry is inserted at the front, evicting per policy when
// the store is at capacity, and the store is persisted. Reports whether an
// entry was added.
func (s *Store) Ingest(text string) bool {
	if text == "" {
		return false
	}
	for _, e := range s.entries {
		if e.Content == text {
			return false
		}
	}

	now := s.now()
	id := now.Unix()
	// Ids derive from second-granularity timestamps; two captures within the
	// same second would collide and make ToggleFavorite/Delete ambiguous.
	// Bump past the newest existing id so ids stay unique and strictly
	// descending front-to-back.
	if len(s.entries) > 0 && id <= s.entries[0].ID {
		id = s.entries[0].ID + 1
	}

	if len(s.entries) >= s.max {
		s.evict()
	}
	s.entries = slices.Insert(s.entries, 0, Entry{
		ID:        id,
		Content:   text,
		Timestamp: now.Unix(),
	})
	s.save()
	return true
}

// evict removes the oldest non-favorite entry. When every entry is a
// favorite, the oldest entry goes regardless of its flag.
func (s *Store) evict() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !s.entries[i].Favorite {
			s.entries = slices.Delete(s.entries, i, i+1)
			return
		}
	}
	s.entries = s.entries[:len(s.entries)-1]
}

// ToggleFavorite flips the favorite flag on the entry with the given id.
// Unknown ids are a no-op. Reports whether an entry changed.
func (s *Store) ToggleFavorite(id int64) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Favorite = !s.entries[i].Favorite
			s.save()
			return true
		}
	}
	return false
}

// Delete removes the entry with the given id. Unknown ids are a no-op.
// Reports whether an entry was removed.
func (s *Store) Delete(id int64) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = slices.Delete(s.entries, i, i+1)
			s.save()
			return true
		}
	}
	return false
}

// ClearAll empties the store.
func (s *Store) ClearAll() {
	s.entries = nil
	s.save()
}

// ClearNonFavorites retains only favorited entries.
func (s *Store) ClearNonFavorites() {
	s.entries = slices.DeleteFunc(s.entries, func(e Entry) bool {
		return !e.Favorite
	})
	s.save()
}

// load reads the persisted history. Any failure leaves the store empty: a
// single structurally invalid field rejects the whole file.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("history file unreadable, starting empty", "path", s.path, "err", err)
		}
		return
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("history file malformed, starting empty", "path", s.path, "err", err)
		return
	}
	// json zero-fills missing fields, so structural validity is checked here:
	// entries never have empty content or non-positive ids/timestamps, and a
	// file claiming otherwise is rejected whole.
	for i, e := range entries {
		if e.Content == "" || e.ID <= 0 || e.Timestamp <= 0 {
			slog.Warn("history file malformed, starting empty",
				"path", s.path, "entry", i)
			return
		}
	}
	if len(entries) > s.max {
		entries = entries[:s.max]
	}
	s.entries = entries
}

// save rewrites the whole history file. Write failures are logged; the
// in-memory state is kept and simply not durable until the next save.
func (s *Store) save() {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		slog.Warn("history not saved", "path", s.path, "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		slog.Warn("history not saved", "path", s.path, "err", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		slog.Warn("history not saved", "path", s.path, "err", err)
	}
}

package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testClock returns a clock that advances one second per call, so every
// ingest lands on a distinct timestamp unless a test wants otherwise.
func testClock(start int64) func() time.Time {
	t := start
	return func() time.Time {
		t++
		return time.Unix(t, 0)
	}
}

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	return Open(path, WithCapacity(capacity), WithClock(testClock(1_700_000_000)))
}

func TestIngestOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	s.Ingest("B")

	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Content != "B" || got[1].Content != "A" {
		t.Errorf("order = [%q, %q], want [B, A]", got[0].Content, got[1].Content)
	}
}

func TestIngestDuplicateIsNoOp(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	s.Ingest("B")
	before := s.Entries()

	if s.Ingest("A") {
		t.Error("Ingest of duplicate content reported an insert")
	}
	after := s.Entries()
	if len(after) != len(before) {
		t.Fatalf("len changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("entry %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestIngestEmptyIsNoOp(t *testing.T) {
	s := newTestStore(t, 10)
	if s.Ingest("") {
		t.Error("Ingest of empty text reported an insert")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestIngestScenarioABA(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	s.Ingest("B")
	s.Ingest("A")

	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Content != "B" || got[1].Content != "A" {
		t.Errorf("order = [%q, %q], want [B, A]", got[0].Content, got[1].Content)
	}
}

func TestCapacityNeverExceeded(t *testing.T) {
	const capacity = 25
	s := newTestStore(t, capacity)
	for i := 0; i < capacity*3; i++ {
		s.Ingest(fmt.Sprintf("entry-%d", i))
		if s.Len() > capacity {
			t.Fatalf("Len = %d after %d ingests, capacity %d", s.Len(), i+1, capacity)
		}
	}
	if s.Len() != capacity {
		t.Errorf("Len = %d, want %d", s.Len(), capacity)
	}
}

func TestEvictionDropsOldestNonFavorite(t *testing.T) {
	s := newTestStore(t, 2)
	s.Ingest("A")
	s.Ingest("B")
	s.Ingest("C")

	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Content != "C" || got[1].Content != "B" {
		t.Errorf("order = [%q, %q], want [C, B]", got[0].Content, got[1].Content)
	}
}

func TestEvictionSkipsFavorites(t *testing.T) {
	s := newTestStore(t, 2)
	s.Ingest("B")
	s.Ingest("C")

	b, ok := findByContent(s, "B")
	if !ok {
		t.Fatal("entry B not found")
	}
	s.ToggleFavorite(b.ID)

	s.Ingest("D")

	got := s.Entries()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// C was the oldest non-favorite among [C, B]; B survives on its flag.
	if got[0].Content != "D" || got[1].Content != "B" {
		t.Errorf("order = [%q, %q], want [D, B]", got[0].Content, got[1].Content)
	}
}

func TestEvictionAllFavoritesDropsOldest(t *testing.T) {
	const capacity = 3
	s := newTestStore(t, capacity)
	for i := 0; i < capacity; i++ {
		s.Ingest(fmt.Sprintf("fav-%d", i))
	}
	for _, e := range s.Entries() {
		s.ToggleFavorite(e.ID)
	}

	s.Ingest("newcomer")

	got := s.Entries()
	if len(got) != capacity {
		t.Fatalf("len = %d, want %d", len(got), capacity)
	}
	if got[0].Content != "newcomer" {
		t.Errorf("front = %q, want newcomer", got[0].Content)
	}
	for _, e := range got {
		if e.Content == "fav-0" {
			t.Error("oldest favorite survived eviction in an all-favorite store")
		}
	}
}

func TestToggleFavorite(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	e := s.Entries()[0]

	if !s.ToggleFavorite(e.ID) {
		t.Fatal("ToggleFavorite reported no change for a known id")
	}
	if got, _ := s.Get(e.ID); !got.Favorite {
		t.Error("Favorite = false after one toggle")
	}
	s.ToggleFavorite(e.ID)
	if got, _ := s.Get(e.ID); got.Favorite {
		t.Error("Favorite = true after double toggle")
	}

	if s.ToggleFavorite(999) {
		t.Error("ToggleFavorite reported a change for an unknown id")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	s.Ingest("B")
	e := s.Entries()[1] // A

	if !s.Delete(e.ID) {
		t.Fatal("Delete reported no change for a known id")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if s.Delete(e.ID) {
		t.Error("Delete reported a change for an already-removed id")
	}
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("A")
	s.Ingest("B")
	s.ClearAll()
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestClearNonFavorites(t *testing.T) {
	s := newTestStore(t, 10)
	s.Ingest("keep")
	s.Ingest("drop")
	keep, _ := findByContent(s, "keep")
	s.ToggleFavorite(keep.ID)

	s.ClearNonFavorites()

	got := s.Entries()
	if len(got) != 1 || got[0].Content != "keep" {
		t.Errorf("entries = %+v, want only the favorite", got)
	}
}

func TestSameSecondIngestsGetDistinctIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	frozen := time.Unix(1_700_000_000, 0)
	s := Open(path, WithClock(func() time.Time { return frozen }))

	s.Ingest("first")
	s.Ingest("second")

	got := s.Entries()
	if got[0].ID == got[1].ID {
		t.Fatalf("colliding ids: %d", got[0].ID)
	}
	if got[0].ID <= got[1].ID {
		t.Errorf("ids not descending front-to-back: %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Timestamp != frozen.Unix() || got[1].Timestamp != frozen.Unix() {
		t.Error("timestamps should keep the real capture time")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := Open(path, WithClock(testClock(1_700_000_000)))
	s.Ingest("alpha")
	s.Ingest("beta")
	s.Ingest("gamma")
	beta, _ := findByContent(s, "beta")
	s.ToggleFavorite(beta.ID)
	want := s.Entries()

	reloaded := Open(path)
	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestLoadMalformedFileYieldsEmptyStore(t *testing.T) {
	for name, body := range map[string]string{
		"not json":        "{{{",
		"wrong type":      `{"id": 1}`,
		"bad id field":    `[{"id": "oops", "content": "x", "timestamp": 1, "favorite": false}]`,
		"bad favorite":    `[{"id": 1, "content": "x", "timestamp": 1, "favorite": "yes"}]`,
		"bad timestamp":   `[{"id": 1, "content": "x", "timestamp": "later", "favorite": false}]`,
		"missing content": `[{"id": 1, "timestamp": 1, "favorite": false}]`,
		"empty content":   `[{"id": 1, "content": "", "timestamp": 1, "favorite": false}]`,
		"zero id":         `[{"id": 0, "content": "x", "timestamp": 1, "favorite": false}]`,
		"negative stamp":  `[{"id": 1, "content": "x", "timestamp": -5, "favorite": false}]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.json")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			s := Open(path)
			if s.Len() != 0 {
				t.Errorf("Len = %d, want 0 (whole load rejected)", s.Len())
			}
		})
	}
}

func TestSaveWritesJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s := Open(path, WithClock(testClock(1_700_000_000)))
	s.Ingest("only")
	s.Delete(s.Entries()[0].ID)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("history file not written: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty store persisted as %q, want []", data)
	}
}

func findByContent(s *Store, content string) (Entry, bool) {
	for _, e := range s.Entries() {
		if e.Content == content {
			return e, true
		}
	}
	return Entry{}, false
}

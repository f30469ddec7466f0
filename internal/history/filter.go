package history

import "strings"

// Filter returns the entries matching the given search query and favorites
// flag, preserving store order (newest first). The query matches as a
// case-insensitive substring; an empty query matches everything. Both
// conditions are ANDed. Filter is a pure projection and never mutates the
// store.
func (s *Store) Filter(query string, favoritesOnly bool) []Entry {
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if favoritesOnly && !e.Favorite {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Content), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

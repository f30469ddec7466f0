// Package history implements the clipboard history store: a bounded,
// newest-first, deduplicated sequence of text snapshots persisted as a JSON
// array on disk. The store is single-writer; it performs no locking.
package history

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Entry is one recorded clipboard snapshot.
type Entry struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // unix seconds at capture time
	Favorite  bool   `json:"favorite"`
}

// Preview returns Content shortened to at most max bytes. Longer content is
// cut to max-3 bytes with a "..." marker appended; the cut never splits a
// multibyte rune, so the preview is always valid UTF-8.
func (e Entry) Preview(max int) string {
	if max < 4 {
		max = 4
	}
	if len(e.Content) <= max {
		return e.Content
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(e.Content[cut]) {
		cut--
	}
	return e.Content[:cut] + "..."
}

// Age renders the entry's age relative to now, e.g. "42s ago", "3m ago",
// "7h ago", "2d ago". Sub-unit remainders are truncated.
func (e Entry) Age(now time.Time) string {
	diff := now.Unix() - e.Timestamp
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < 60:
		return fmt.Sprintf("%ds ago", diff)
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh ago", diff/3600)
	default:
		return fmt.Sprintf("%dd ago", diff/86400)
	}
}

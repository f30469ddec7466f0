// Package clip provides read/write access to the system clipboard for plain
// text. The concrete backend wraps golang.design/x/clipboard; tests use a
// fake that satisfies the same interface.
package clip

import "errors"

// ErrNoText is returned by ReadText when the clipboard is empty or holds a
// format other than text.
var ErrNoText = errors.New("clipboard holds no text")

// Backend is the clipboard capability consumed by the poller and dispatcher.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text. It returns ErrNoText when
	// the clipboard is empty or non-text; callers treat that as "no change".
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error

	// Close releases any resources held by the backend.
	Close()
}

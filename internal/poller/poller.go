// Package poller feeds clipboard changes into the history store. It owns no
// goroutine or timer: the UI's redraw tick calls Poll, keeping every store
// access on the single logical thread that renders the interface.
package poller

import (
	"time"

	"copycat/internal/clip"
	"copycat/internal/history"
)

// DefaultInterval is the minimum time between two clipboard reads.
const DefaultInterval = 500 * time.Millisecond

// Poller reads the clipboard at most once per interval and ingests new text.
type Poller struct {
	backend  clip.Backend
	store    *history.Store
	interval time.Duration
	lastSeen string
	lastPoll time.Time
}

// New returns a Poller over the given backend and store. A non-positive
// interval falls back to DefaultInterval.
func New(backend clip.Backend, store *history.Store, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		backend:  backend,
		store:    store,
		interval: interval,
	}
}

// Interval returns the configured minimum poll interval.
func (p *Poller) Interval() time.Duration { return p.interval }

// Poll reads the clipboard once if the interval has elapsed since the last
// read. Text that is non-empty and differs from the last observed text is
// ingested into the store. Read failures count as "no change": the clipboard
// may be transiently empty or holding a non-text format. Reports whether an
// entry was added.
func (p *Poller) Poll(now time.Time) bool {
	if !p.lastPoll.IsZero() && now.Sub(p.lastPoll) < p.interval {
		return false
	}
	p.lastPoll = now

	text, err := p.backend.ReadText()
	if err != nil {
		return false
	}
	if text == "" || text == p.lastSeen {
		return false
	}
	p.lastSeen = text
	return p.store.Ingest(text)
}

// MarkSeen records text as already observed so that a clipboard write made
// by this process is not captured again on the next poll.
func (p *Poller) MarkSeen(text string) {
	p.lastSeen = text
}

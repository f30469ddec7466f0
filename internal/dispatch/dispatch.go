// Package dispatch decouples user intents from store mutation order. Intents
// raised while the read-only view of one interaction cycle is being produced
// are queued, then drained against the store afterwards, so the view never
// observes a half-applied cycle.
package dispatch

import (
	"log/slog"

	"copycat/internal/clip"
	"copycat/internal/history"
	"copycat/internal/poller"
)

// Kind identifies a user intent.
type Kind int

const (
	KindToggleFavorite Kind = iota
	KindSelectAndCopy
	KindCopy
	KindDelete
)

// Intent is one queued user action.
type Intent struct {
	Kind    Kind
	ID      int64
	Content string
}

// Dispatcher queues intents and applies them in arrival order. Later intents
// on the same id see the effects of earlier ones.
type Dispatcher struct {
	store   *history.Store
	backend clip.Backend
	poll    *poller.Poller // may be nil; told about our own clipboard writes

	queue       []Intent
	selected    int64 // id of the last select-and-copy target
	hasSelected bool
}

// New returns a Dispatcher over the given store and clipboard backend.
// poll may be nil when no poller is running (CLI one-shot commands).
func New(store *history.Store, backend clip.Backend, poll *poller.Poller) *Dispatcher {
	return &Dispatcher{store: store, backend: backend, poll: poll}
}

// ToggleFavorite queues a favorite flip for id.
func (d *Dispatcher) ToggleFavorite(id int64) {
	d.queue = append(d.queue, Intent{Kind: KindToggleFavorite, ID: id})
}

// SelectAndCopy queues a copy of content to the OS clipboard and records id
// as the currently selected entry when drained.
func (d *Dispatcher) SelectAndCopy(id int64, content string) {
	d.queue = append(d.queue, Intent{Kind: KindSelectAndCopy, ID: id, Content: content})
}

// Copy queues a copy of content to the OS clipboard without selection.
func (d *Dispatcher) Copy(content string) {
	d.queue = append(d.queue, Intent{Kind: KindCopy, Content: content})
}

// Delete queues removal of the entry with the given id.
func (d *Dispatcher) Delete(id int64) {
	d.queue = append(d.queue, Intent{Kind: KindDelete, ID: id})
}

// Pending returns the number of queued intents.
func (d *Dispatcher) Pending() int { return len(d.queue) }

// Selected returns the id recorded by the most recent drained select-and-copy.
// Selection is presentation state only; it is never persisted.
func (d *Dispatcher) Selected() (int64, bool) {
	return d.selected, d.hasSelected
}

// Drain applies all queued intents in the order they were collected and
// empties the queue. Clipboard write failures are logged and skipped; store
// mutations from other intents still apply.
func (d *Dispatcher) Drain() {
	for _, in := range d.queue {
		switch in.Kind {
		case KindToggleFavorite:
			d.store.ToggleFavorite(in.ID)
		case KindDelete:
			d.store.Delete(in.ID)
		case KindSelectAndCopy:
			d.selected = in.ID
			d.hasSelected = true
			d.writeClipboard(in.Content)
		case KindCopy:
			d.writeClipboard(in.Content)
		}
	}
	d.queue = d.queue[:0]
}

func (d *Dispatcher) writeClipboard(content string) {
	if err := d.backend.WriteText(content); err != nil {
		slog.Warn("clipboard write failed", "err", err)
		return
	}
	if d.poll != nil {
		d.poll.MarkSeen(content)
	}
}

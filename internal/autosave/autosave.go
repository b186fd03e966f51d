// Package autosave debounces edits to the active document and guarantees at
// most one in-flight save per document.
package autosave

import (
	"time"
)

// Payload is the content snapshot handed to the bridge when a save fires.
type Payload struct {
	Title   string
	Content string
}

// Coordinator is the per-document save state machine: idle, pending
// (payload waiting on the debounce deadline), or saving (bridge call
// outstanding). It is driven from a single event loop and holds no locks;
// timer fires and call completions are validated by token so anything stale
// is dropped instead of racing.
type Coordinator struct {
	docID    string
	debounce time.Duration
	now      func() time.Time

	pending *Payload
	saving  bool

	// timerToken invalidates scheduled debounce timers; saveSeq invalidates
	// completions from superseded documents.
	timerToken int
	saveSeq    int

	lastSaved time.Time
	saveErr   error
}

// New returns a coordinator with the given debounce window.
func New(debounce time.Duration) *Coordinator {
	return &Coordinator{
		debounce: debounce,
		now:      time.Now,
	}
}

// DocID reports which document the coordinator currently tracks.
func (c *Coordinator) DocID() string { return c.docID }

// Dirty reports whether edits are waiting to be persisted.
func (c *Coordinator) Dirty() bool { return c.pending != nil }

// Saving reports whether a save call is outstanding.
func (c *Coordinator) Saving() bool { return c.saving }

// Err returns the last save failure, cleared by the next successful save.
func (c *Coordinator) Err() error { return c.saveErr }

// LastSaved returns when the last save resolved successfully.
func (c *Coordinator) LastSaved() time.Time { return c.lastSaved }

// Reset switches the coordinator to a new document. Pending state is
// discarded and any outstanding timer or save completion for the previous
// document becomes stale. Callers flush before resetting when they want the
// previous document's edits kept.
func (c *Coordinator) Reset(docID string) {
	c.docID = docID
	c.pending = nil
	c.saving = false
	c.saveErr = nil
	c.timerToken++
	c.saveSeq++
}

// Schedule records content as the latest pending payload and restarts the
// debounce window. The returned token arms exactly one timer; a stale token
// fires into nothing.
func (c *Coordinator) Schedule(title, content string) (token int, delay time.Duration) {
	c.pending = &Payload{Title: title, Content: content}
	c.timerToken++
	return c.timerToken, c.debounce
}

// Fire is called when a debounce timer expires. It returns the payload to
// save and true only when the token is current, a payload is pending, and no
// save is in flight. While saving, pending edits stay queued for the
// completion to pick up.
func (c *Coordinator) Fire(token int) (Payload, int, bool) {
	if token != c.timerToken || c.pending == nil || c.saving {
		return Payload{}, 0, false
	}
	return c.beginSave()
}

func (c *Coordinator) beginSave() (Payload, int, bool) {
	payload := *c.pending
	c.pending = nil
	c.saving = true
	c.saveSeq++
	return payload, c.saveSeq, true
}

// Complete resolves the in-flight save identified by seq. Stale sequences
// (document switched underneath the call) are ignored. On failure the
// pending payload is discarded rather than retried; the error is surfaced
// until the next successful save. On success, content scheduled while the
// call was outstanding immediately becomes the next single-flight save.
func (c *Coordinator) Complete(seq int, err error) (Payload, int, bool) {
	if seq != c.saveSeq || !c.saving {
		return Payload{}, 0, false
	}

	c.saving = false

	if err != nil {
		c.saveErr = err
		c.pending = nil
		return Payload{}, 0, false
	}

	c.saveErr = nil
	c.lastSaved = c.now()

	if c.pending == nil {
		return Payload{}, 0, false
	}
	return c.beginSave()
}

// Flush hands back the pending payload for a final teardown save. It
// returns false while a save is in flight: flushing concurrently would race
// the outstanding write, so that window is accepted as lossy and the caller
// re-triggers persistence after the in-flight save resolves if needed.
func (c *Coordinator) Flush() (Payload, bool) {
	if c.saving || c.pending == nil {
		return Payload{}, false
	}

	payload := *c.pending
	c.pending = nil
	c.timerToken++
	return payload, true
}

package autosave

import (
	"errors"
	"testing"
	"time"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *time.Time) {
	t.Helper()

	clock := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)
	c := New(2 * time.Second)
	c.now = func() time.Time { return clock }
	c.Reset("note-1")
	return c, &clock
}

func TestLastScheduledPayloadWins(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.Schedule("Draft", "first")
	c.Schedule("Draft", "second")
	token, _ := c.Schedule("Draft", "third")

	payload, _, ok := c.Fire(token)
	if !ok {
		t.Fatalf("expected current token to fire")
	}
	if payload.Content != "third" {
		t.Fatalf("expected latest payload, got %q", payload.Content)
	}
	if c.Dirty() {
		t.Fatalf("expected pending cleared after fire")
	}
}

func TestStaleTimerTokenDoesNotFire(t *testing.T) {
	c, _ := newTestCoordinator(t)

	stale, _ := c.Schedule("Draft", "old")
	c.Schedule("Draft", "new")

	if _, _, ok := c.Fire(stale); ok {
		t.Fatalf("expected stale token to be ignored")
	}
	if !c.Dirty() {
		t.Fatalf("expected payload to remain pending")
	}
}

func TestEditsDuringSaveChainIntoNextSave(t *testing.T) {
	c, _ := newTestCoordinator(t)

	token, _ := c.Schedule("Draft", "first")
	first, seq, ok := c.Fire(token)
	if !ok || first.Content != "first" {
		t.Fatalf("expected first payload to fire, got (%q, %v)", first.Content, ok)
	}

	// Edits arrive while the call is outstanding. The timer for them fires
	// into nothing because a save is already in flight.
	queued, _ := c.Schedule("Draft", "second")
	if _, _, ok := c.Fire(queued); ok {
		t.Fatalf("expected fire during in-flight save to be suppressed")
	}

	next, nextSeq, ok := c.Complete(seq, nil)
	if !ok {
		t.Fatalf("expected completion to chain the queued payload")
	}
	if next.Content != "second" {
		t.Fatalf("expected queued payload, got %q", next.Content)
	}
	if !c.Saving() {
		t.Fatalf("expected chained save to be in flight")
	}

	if _, _, ok := c.Complete(nextSeq, nil); ok {
		t.Fatalf("expected nothing left to chain")
	}
	if c.Saving() || c.Dirty() {
		t.Fatalf("expected coordinator idle after chain drained")
	}
}

func TestFailedSaveDiscardsPendingAndSurfacesError(t *testing.T) {
	c, _ := newTestCoordinator(t)

	token, _ := c.Schedule("Draft", "first")
	_, seq, _ := c.Fire(token)
	c.Schedule("Draft", "second")

	saveErr := errors.New("host unreachable")
	if _, _, ok := c.Complete(seq, saveErr); ok {
		t.Fatalf("expected failed completion not to chain")
	}

	if !errors.Is(c.Err(), saveErr) {
		t.Fatalf("expected save error surfaced, got %v", c.Err())
	}
	if c.Dirty() || c.Saving() {
		t.Fatalf("expected pending discarded after failure")
	}

	// The next successful save clears the error.
	token, _ = c.Schedule("Draft", "third")
	_, seq, _ = c.Fire(token)
	c.Complete(seq, nil)
	if c.Err() != nil {
		t.Fatalf("expected error cleared by success, got %v", c.Err())
	}
}

func TestFlushReturnsPendingPayload(t *testing.T) {
	c, _ := newTestCoordinator(t)

	token, _ := c.Schedule("Draft", "unsaved")

	payload, ok := c.Flush()
	if !ok || payload.Content != "unsaved" {
		t.Fatalf("expected flush to return pending payload, got (%q, %v)", payload.Content, ok)
	}
	if c.Dirty() {
		t.Fatalf("expected pending cleared by flush")
	}
	if _, _, ok := c.Fire(token); ok {
		t.Fatalf("expected flushed timer token to be stale")
	}
}

func TestFlushWhileSavingDropsPending(t *testing.T) {
	c, _ := newTestCoordinator(t)

	token, _ := c.Schedule("Draft", "first")
	c.Fire(token)
	c.Schedule("Draft", "second")

	if _, ok := c.Flush(); ok {
		t.Fatalf("expected flush during in-flight save to return nothing")
	}
}

func TestResetInvalidatesInFlightCompletion(t *testing.T) {
	c, _ := newTestCoordinator(t)

	token, _ := c.Schedule("Draft", "first")
	_, seq, _ := c.Fire(token)

	c.Reset("note-2")

	if _, _, ok := c.Complete(seq, nil); ok {
		t.Fatalf("expected completion for previous document to be dropped")
	}
	if c.Saving() || c.Dirty() {
		t.Fatalf("expected clean state for new document")
	}
	if c.DocID() != "note-2" {
		t.Fatalf("expected tracked document updated, got %q", c.DocID())
	}
}

func TestSuccessfulSaveRecordsTime(t *testing.T) {
	c, clock := newTestCoordinator(t)

	token, delay := c.Schedule("Draft", "body")
	if delay != 2*time.Second {
		t.Fatalf("expected configured debounce, got %v", delay)
	}

	*clock = clock.Add(delay)
	_, seq, _ := c.Fire(token)
	c.Complete(seq, nil)

	if !c.LastSaved().Equal(*clock) {
		t.Fatalf("expected last saved at %v, got %v", *clock, c.LastSaved())
	}
}

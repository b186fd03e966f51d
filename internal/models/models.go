// Package models defines the wire types shared with the desktop host.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp wraps time.Time with tolerant JSON decoding. The host emits
// RFC3339, but older builds emitted bare dates; dateparse accepts both.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Note is the cached copy of a host-owned note. Local edits may run ahead of
// storage until the auto-saver flushes.
type Note struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	ParentID    string    `json:"parentId,omitempty"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsFavorite  bool      `json:"isFavorite"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Tab references an open note. Tab ids are distinct from note ids so a note
// could eventually be open in more than one view.
type Tab struct {
	ID     string `json:"id"`
	NoteID string `json:"noteId"`
	Title  string `json:"title"`
}

// SyncStatus mirrors the host sync engine's state. It is never mutated
// locally, only replaced by poll responses.
type SyncStatus struct {
	QueueLength   int       `json:"queueLength"`
	Processing    bool      `json:"processing"`
	Authenticated bool      `json:"authenticated"`
	LastSync      Timestamp `json:"lastSync,omitempty"`
}

// DriveAccount describes the connected cloud account.
type DriveAccount struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photoUrl"`
	Authorized bool   `json:"authorized"`
}

// User is the application account reported by the host.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SearchResult is one ranked match from the host's full-text search.
type SearchResult struct {
	Note    Note    `json:"note"`
	Snippet string  `json:"snippet"`
	Rank    float64 `json:"rank"`
}

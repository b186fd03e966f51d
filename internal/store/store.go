// Package store holds the client-side mirrors of host-owned collections:
// the notes of the active workspace and the workspace list itself. Stores
// apply results, they never call the bridge; all mutations flow through the
// host first and land here on success.
package store

import (
	"sort"
	"time"

	"github.com/notaterm/nota/internal/models"
)

// NoteStore mirrors the active workspace's notes.
type NoteStore struct {
	now func() time.Time

	notes   []models.Note
	current string
	loading bool
	err     error
}

func NewNoteStore() *NoteStore {
	return &NoteStore{now: time.Now}
}

func (s *NoteStore) Notes() []models.Note { return s.notes }
func (s *NoteStore) Loading() bool { return s.loading }
func (s *NoteStore) Err() error { return s.err }

// Current returns the note open in the editor, if any.
func (s *NoteStore) Current() (models.Note, bool) {
	return s.ByID(s.current)
}

func (s *NoteStore) ByID(id string) (models.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Active returns the notes shown in the sidebar tree, trash excluded.
func (s *NoteStore) Active() []models.Note {
	var out []models.Note
	for _, n := range s.notes {
		if !n.IsDeleted {
			out = append(out, n)
		}
	}
	return out
}

// Favorites returns the pinned section of the sidebar.
func (s *NoteStore) Favorites() []models.Note {
	var out []models.Note
	for _, n := range s.notes {
		if n.IsFavorite && !n.IsDeleted {
			out = append(out, n)
		}
	}
	return out
}

// Trashed returns soft-deleted notes.
func (s *NoteStore) Trashed() []models.Note {
	var out []models.Note
	for _, n := range s.notes {
		if n.IsDeleted {
			out = append(out, n)
		}
	}
	return out
}

// Children returns the notes nested under parentID, newest first.
func (s *NoteStore) Children(parentID string) []models.Note {
	var out []models.Note
	for _, n := range s.notes {
		if n.ParentID == parentID && !n.IsDeleted {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.Time.After(out[j].UpdatedAt.Time)
	})
	return out
}

// BeginLoad marks a workspace load in progress.
func (s *NoteStore) BeginLoad() {
	s.loading = true
}

// ApplyLoad lands a workspace load. A failed load keeps the previous list on
// screen and surfaces the error.
func (s *NoteStore) ApplyLoad(notes []models.Note, err error) {
	s.loading = false
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.notes = notes
	if _, ok := s.ByID(s.current); !ok {
		s.current = ""
	}
}

// SetCurrent points the editor at a note.
func (s *NoteStore) SetCurrent(id string) {
	s.current = id
}

// ApplyCreate appends a note the host accepted and opens it.
func (s *NoteStore) ApplyCreate(note models.Note) {
	s.notes = append(s.notes, note)
	s.current = note.ID
}

// ApplyUpdate records a saved title and content. The host stamps its own
// update time on the next load; until then the local clock keeps ordering
// sensible.
func (s *NoteStore) ApplyUpdate(id, title, content string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Title = title
			s.notes[i].Content = content
			s.notes[i].UpdatedAt = models.Timestamp{Time: s.now()}
			return
		}
	}
}

// ApplyDelete removes a note the host deleted.
func (s *NoteStore) ApplyDelete(id string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	if s.current == id {
		s.current = ""
	}
}

// ApplyToggleFavorite flips a note's favorite flag after the host confirms.
func (s *NoteStore) ApplyToggleFavorite(id string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].IsFavorite = !s.notes[i].IsFavorite
			return
		}
	}
}

// WorkspaceStore mirrors the workspace list.
type WorkspaceStore struct {
	workspaces []models.Workspace
	current    string
	err        error
}

func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{}
}

func (s *WorkspaceStore) Workspaces() []models.Workspace { return s.workspaces }
func (s *WorkspaceStore) Err() error { return s.err }
func (s *WorkspaceStore) CurrentID() string { return s.current }

func (s *WorkspaceStore) Current() (models.Workspace, bool) {
	for _, ws := range s.workspaces {
		if ws.ID == s.current {
			return ws, true
		}
	}
	return models.Workspace{}, false
}

// ApplyLoad lands the workspace list. When no workspace is selected, or the
// selected one vanished, the first workspace becomes current.
func (s *WorkspaceStore) ApplyLoad(workspaces []models.Workspace, err error) {
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.workspaces = workspaces

	if _, ok := s.Current(); !ok {
		s.current = ""
	}
	if s.current == "" && len(workspaces) > 0 {
		s.current = workspaces[0].ID
	}
}

// ApplyCreate appends a workspace the host accepted and switches to it.
func (s *WorkspaceStore) ApplyCreate(ws models.Workspace) {
	s.workspaces = append(s.workspaces, ws)
	s.current = ws.ID
}

// SetCurrent switches workspaces. Unknown ids are rejected.
func (s *WorkspaceStore) SetCurrent(id string) bool {
	for _, ws := range s.workspaces {
		if ws.ID == id {
			s.current = id
			return true
		}
	}
	return false
}

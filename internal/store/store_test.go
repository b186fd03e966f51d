package store

import (
	"errors"
	"testing"
	"time"

	"github.com/notaterm/nota/internal/models"
)

func seededNoteStore(t *testing.T) *NoteStore {
	t.Helper()

	s := NewNoteStore()
	s.now = func() time.Time {
		return time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	}
	s.ApplyLoad([]models.Note{
		{ID: "n1", Title: "Inbox"},
		{ID: "n2", Title: "Projects", IsFavorite: true},
		{ID: "n3", Title: "Old", IsDeleted: true},
	}, nil)
	return s
}

func TestFailedLoadKeepsPreviousNotes(t *testing.T) {
	s := seededNoteStore(t)

	s.BeginLoad()
	s.ApplyLoad(nil, errors.New("host unreachable"))

	if len(s.Notes()) != 3 {
		t.Fatalf("expected previous notes kept, got %d", len(s.Notes()))
	}
	if s.Err() == nil {
		t.Fatalf("expected load error surfaced")
	}
	if s.Loading() {
		t.Fatalf("expected loading cleared")
	}

	s.ApplyLoad([]models.Note{{ID: "n9"}}, nil)
	if s.Err() != nil {
		t.Fatalf("expected error cleared by successful load")
	}
}

func TestSidebarViewsFilterTrashAndFavorites(t *testing.T) {
	s := seededNoteStore(t)

	if got := len(s.Active()); got != 2 {
		t.Fatalf("expected 2 active notes, got %d", got)
	}
	if favs := s.Favorites(); len(favs) != 1 || favs[0].ID != "n2" {
		t.Fatalf("expected n2 favorited, got %+v", favs)
	}
	if trash := s.Trashed(); len(trash) != 1 || trash[0].ID != "n3" {
		t.Fatalf("expected n3 in trash, got %+v", trash)
	}
}

func TestApplyUpdateStampsLocalTime(t *testing.T) {
	s := seededNoteStore(t)

	s.ApplyUpdate("n1", "Inbox", "new body")

	note, _ := s.ByID("n1")
	if note.Content != "new body" {
		t.Fatalf("expected content applied, got %q", note.Content)
	}
	if note.UpdatedAt.Time.IsZero() {
		t.Fatalf("expected update time stamped")
	}
}

func TestApplyDeleteClearsCurrent(t *testing.T) {
	s := seededNoteStore(t)
	s.SetCurrent("n1")

	s.ApplyDelete("n1")

	if _, ok := s.Current(); ok {
		t.Fatalf("expected current cleared after delete")
	}
	if _, ok := s.ByID("n1"); ok {
		t.Fatalf("expected note removed")
	}
}

func TestReloadDropsStaleCurrent(t *testing.T) {
	s := seededNoteStore(t)
	s.SetCurrent("n1")

	s.ApplyLoad([]models.Note{{ID: "n5"}}, nil)

	if _, ok := s.Current(); ok {
		t.Fatalf("expected current cleared when note absent from reload")
	}
}

func TestApplyToggleFavorite(t *testing.T) {
	s := seededNoteStore(t)

	s.ApplyToggleFavorite("n1")
	if note, _ := s.ByID("n1"); !note.IsFavorite {
		t.Fatalf("expected n1 favorited")
	}

	s.ApplyToggleFavorite("n1")
	if note, _ := s.ByID("n1"); note.IsFavorite {
		t.Fatalf("expected n1 unfavorited")
	}
}

func TestChildrenSortNewestFirst(t *testing.T) {
	s := NewNoteStore()
	old := models.Timestamp{Time: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)}
	recent := models.Timestamp{Time: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)}
	s.ApplyLoad([]models.Note{
		{ID: "c1", ParentID: "p", UpdatedAt: old},
		{ID: "c2", ParentID: "p", UpdatedAt: recent},
		{ID: "other", ParentID: ""},
	}, nil)

	children := s.Children("p")
	if len(children) != 2 || children[0].ID != "c2" {
		t.Fatalf("expected newest child first, got %+v", children)
	}
}

func TestWorkspaceLoadSelectsFirstWhenNoneCurrent(t *testing.T) {
	s := NewWorkspaceStore()

	s.ApplyLoad([]models.Workspace{{ID: "w1"}, {ID: "w2"}}, nil)

	if s.CurrentID() != "w1" {
		t.Fatalf("expected first workspace selected, got %q", s.CurrentID())
	}
}

func TestWorkspaceSetCurrentRejectsUnknown(t *testing.T) {
	s := NewWorkspaceStore()
	s.ApplyLoad([]models.Workspace{{ID: "w1"}}, nil)

	if s.SetCurrent("w9") {
		t.Fatalf("expected unknown workspace rejected")
	}
	if s.CurrentID() != "w1" {
		t.Fatalf("expected selection unchanged, got %q", s.CurrentID())
	}
}

func TestWorkspaceCreateSwitches(t *testing.T) {
	s := NewWorkspaceStore()
	s.ApplyLoad([]models.Workspace{{ID: "w1"}}, nil)

	s.ApplyCreate(models.Workspace{ID: "w2", Name: "Research"})

	if s.CurrentID() != "w2" {
		t.Fatalf("expected new workspace selected, got %q", s.CurrentID())
	}
}

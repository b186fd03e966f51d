package tabs_test

import (
	"testing"

	"github.com/notaterm/nota/internal/models"
	"github.com/notaterm/nota/internal/tabs"
)

func note(id, title string) models.Note {
	return models.Note{ID: id, Title: title}
}

func openThree(t *testing.T) *tabs.Manager {
	t.Helper()

	m := tabs.NewManager()
	m.Open(note("n1", "First"))
	m.Open(note("n2", "Second"))
	m.Open(note("n3", "Third"))
	return m
}

func titles(m *tabs.Manager) []string {
	var out []string
	for _, tab := range m.Tabs() {
		out = append(out, tab.Title)
	}
	return out
}

func TestOpenDeduplicatesByNote(t *testing.T) {
	m := openThree(t)

	m.Open(note("n1", "First"))

	if len(m.Tabs()) != 3 {
		t.Fatalf("expected reopen to reuse tab, got %d tabs", len(m.Tabs()))
	}
	active, ok := m.Active()
	if !ok || active.NoteID != "n1" {
		t.Fatalf("expected first tab activated, got %+v", active)
	}
}

func TestCloseActivePicksNextThenPrevious(t *testing.T) {
	m := openThree(t)
	strip := m.Tabs()

	// Close the middle tab while it is active: the tab after it wins.
	m.Activate(strip[1].ID)
	noteID, ok := m.Close(strip[1].ID)
	if !ok || noteID != "n3" {
		t.Fatalf("expected successor n3, got (%q, %v)", noteID, ok)
	}

	// Close the last tab while active: the previous one wins.
	noteID, ok = m.Close(strip[2].ID)
	if !ok || noteID != "n1" {
		t.Fatalf("expected successor n1, got (%q, %v)", noteID, ok)
	}
}

func TestCloseOnlyTabLeavesNothingActive(t *testing.T) {
	m := tabs.NewManager()
	m.Open(note("n1", "Only"))

	noteID, ok := m.Close(m.Tabs()[0].ID)
	if ok || noteID != "" {
		t.Fatalf("expected empty workspace, got (%q, %v)", noteID, ok)
	}
	if m.ActiveID() != "" {
		t.Fatalf("expected no active tab, got %q", m.ActiveID())
	}
}

func TestCloseInactiveKeepsActive(t *testing.T) {
	m := openThree(t)
	strip := m.Tabs()

	m.Activate(strip[0].ID)
	noteID, ok := m.Close(strip[2].ID)
	if !ok || noteID != "n1" {
		t.Fatalf("expected active tab untouched, got (%q, %v)", noteID, ok)
	}
}

func TestCloseUnknownTabIsNoop(t *testing.T) {
	m := openThree(t)

	noteID, ok := m.Close("tab-99")
	if !ok || noteID != "n3" {
		t.Fatalf("expected active tab unchanged, got (%q, %v)", noteID, ok)
	}
	if len(m.Tabs()) != 3 {
		t.Fatalf("expected strip unchanged, got %d tabs", len(m.Tabs()))
	}
}

func TestReorderMovesFirstToEnd(t *testing.T) {
	m := openThree(t)

	m.Reorder(0, 2)

	got := titles(m)
	want := []string{"Second", "Third", "First"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	// The moved tab was active and stays active.
	active, _ := m.Active()
	if active.Title != "First" {
		t.Fatalf("expected moved tab to stay active, got %q", active.Title)
	}
}

func TestReorderOutOfRangeIsNoop(t *testing.T) {
	m := openThree(t)

	m.Reorder(0, 5)
	m.Reorder(-1, 1)

	got := titles(m)
	want := []string{"First", "Second", "Third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order unchanged %v, got %v", want, got)
		}
	}
}

func TestRefreshTitleUpdatesMatchingTab(t *testing.T) {
	m := openThree(t)

	m.RefreshTitle("n2", "Renamed")

	if got := m.Tabs()[1].Title; got != "Renamed" {
		t.Fatalf("expected renamed tab, got %q", got)
	}
}

func TestCloseForNoteClosesDeletedNotesTab(t *testing.T) {
	m := openThree(t)

	noteID, ok := m.CloseForNote("n3")
	if !ok || noteID != "n2" {
		t.Fatalf("expected fallback to previous tab, got (%q, %v)", noteID, ok)
	}
	if len(m.Tabs()) != 2 {
		t.Fatalf("expected tab removed, got %d tabs", len(m.Tabs()))
	}
}

func TestTabIDsAreNotNoteIDs(t *testing.T) {
	m := tabs.NewManager()
	m.Open(note("n1", "First"))
	id := m.Tabs()[0].ID

	m.Close(id)
	m.Open(note("n1", "First"))

	if m.Tabs()[0].ID == id {
		t.Fatalf("expected reopened note to get a fresh tab id")
	}
}

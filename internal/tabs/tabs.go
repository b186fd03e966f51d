// Package tabs manages the ordered strip of open documents and which one is
// active.
package tabs

import (
	"fmt"

	"github.com/notaterm/nota/internal/models"
)

// Manager owns the open tab list. Tab identity is independent of note
// identity so closing and reopening a note yields a fresh tab.
type Manager struct {
	tabs     []models.Tab
	activeID string
	nextID   int
}

func NewManager() *Manager {
	return &Manager{nextID: 1}
}

// Tabs returns the strip in display order.
func (m *Manager) Tabs() []models.Tab { return m.tabs }

// ActiveID returns the active tab's id, or empty when no tab is open.
func (m *Manager) ActiveID() string { return m.activeID }

// Active returns the active tab when one exists.
func (m *Manager) Active() (models.Tab, bool) {
	for _, tab := range m.tabs {
		if tab.ID == m.activeID {
			return tab, true
		}
	}
	return models.Tab{}, false
}

func (m *Manager) indexOf(id string) int {
	for i, tab := range m.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Open activates the existing tab for the note when one is already open,
// otherwise appends a new tab and activates it. It returns the active tab's
// note id.
func (m *Manager) Open(note models.Note) string {
	for _, tab := range m.tabs {
		if tab.NoteID == note.ID {
			m.activeID = tab.ID
			return tab.NoteID
		}
	}

	tab := models.Tab{
		ID:     fmt.Sprintf("tab-%d", m.nextID),
		NoteID: note.ID,
		Title:  note.Title,
	}
	m.nextID++
	m.tabs = append(m.tabs, tab)
	m.activeID = tab.ID
	return tab.NoteID
}

// Close removes the tab. Closing the active tab activates its successor: the
// tab that held the next position, else the previous one, else nothing.
// Closing an inactive tab leaves the active tab alone. It returns the note id
// to display next and whether any tab remains active.
func (m *Manager) Close(id string) (string, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return m.activeNoteID()
	}

	wasActive := id == m.activeID
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)

	if !wasActive {
		return m.activeNoteID()
	}

	succ, ok := Successor(m.tabs, i)
	if !ok {
		m.activeID = ""
		return "", false
	}
	m.activeID = succ.ID
	return succ.NoteID, true
}

// Successor picks the tab to activate after a close at position closed,
// given the remaining tabs. The tab now occupying the closed position wins,
// falling back to the one before it.
func Successor(remaining []models.Tab, closed int) (models.Tab, bool) {
	if len(remaining) == 0 {
		return models.Tab{}, false
	}
	if closed < len(remaining) {
		return remaining[closed], true
	}
	return remaining[len(remaining)-1], true
}

func (m *Manager) activeNoteID() (string, bool) {
	tab, ok := m.Active()
	if !ok {
		return "", false
	}
	return tab.NoteID, true
}

// Activate switches to the tab and returns its note id.
func (m *Manager) Activate(id string) (string, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return "", false
	}
	m.activeID = id
	return m.tabs[i].NoteID, true
}

// Reorder moves the tab at from to position to, shifting the tabs between
// them. Out-of-range positions leave the strip untouched. The active tab
// stays active regardless of where it lands.
func (m *Manager) Reorder(from, to int) {
	if from < 0 || from >= len(m.tabs) || to < 0 || to >= len(m.tabs) || from == to {
		return
	}

	tab := m.tabs[from]
	m.tabs = append(m.tabs[:from], m.tabs[from+1:]...)

	rest := append([]models.Tab{}, m.tabs[to:]...)
	m.tabs = append(m.tabs[:to], tab)
	m.tabs = append(m.tabs, rest...)
}

// RefreshTitle updates tab labels after a rename. Every tab showing the note
// picks up the new title.
func (m *Manager) RefreshTitle(noteID, title string) {
	for i := range m.tabs {
		if m.tabs[i].NoteID == noteID {
			m.tabs[i].Title = title
		}
	}
}

// CloseForNote closes whatever tab shows the note, used when a note is
// deleted out from under its tab.
func (m *Manager) CloseForNote(noteID string) (string, bool) {
	for _, tab := range m.tabs {
		if tab.NoteID == noteID {
			return m.Close(tab.ID)
		}
	}
	return m.activeNoteID()
}

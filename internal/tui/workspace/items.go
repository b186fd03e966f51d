package workspace

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/notaterm/nota/internal/models"
	"github.com/notaterm/nota/internal/store"
)

type sidebarItem struct {
	note models.Note
}

func (i sidebarItem) Title() string {
	if i.note.IsFavorite {
		return "★ " + displayTitle(i.note)
	}
	return displayTitle(i.note)
}

func (i sidebarItem) Description() string {
	if i.note.UpdatedAt.Time.IsZero() {
		return ""
	}
	return i.note.UpdatedAt.Time.Format("Jan 2 15:04")
}

func (i sidebarItem) FilterValue() string { return displayTitle(i.note) }

func displayTitle(n models.Note) string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// buildSidebarItems orders the sidebar: favorites first, then the rest.
func buildSidebarItems(notes *store.NoteStore) []list.Item {
	var items []list.Item
	for _, n := range notes.Favorites() {
		items = append(items, sidebarItem{note: n})
	}
	for _, n := range notes.Active() {
		if n.IsFavorite {
			continue
		}
		items = append(items, sidebarItem{note: n})
	}
	return items
}

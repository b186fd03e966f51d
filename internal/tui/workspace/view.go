package workspace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/notaterm/nota/internal/outline"
	syncctl "github.com/notaterm/nota/internal/sync"
	"github.com/notaterm/nota/utils"
)

const sidebarWidth = 32

func (m *Model) sidebarVisible() bool {
	return !m.state.Config.UI.SidebarCollapsed
}

func (m *Model) editorWidth() int {
	width := m.width
	if m.sidebarVisible() {
		width -= sidebarWidth
	}
	h, _ := m.styles.app.GetFrameSize()
	width -= h
	if m.showPreview {
		width /= 2
	}
	if width < 20 {
		width = 20
	}
	return width
}

func (m *Model) contentHeight() int {
	_, v := m.styles.app.GetFrameSize()
	// Tab bar and status bar each take a line plus the tab bar border.
	height := m.height - v - 3
	if height < 5 {
		height = 5
	}
	return height
}

func (m *Model) resize() {
	height := m.contentHeight()
	m.sidebar.SetSize(sidebarWidth-2, height)
	editorWidth := m.editorWidth()
	m.titleInput.Width = editorWidth - 2
	m.body.SetWidth(editorWidth)
	m.body.SetHeight(height - 3)
	m.searchInput.Width = 50
	if m.showPreview {
		m.renderPreview()
	}
}

func renderMarkdown(content string, width int, style string) string {
	return utils.RenderMarkdownPreview(content, width, style)
}

func (m *Model) View() string {
	if m.state.Sync.OnboardingOpen() {
		return m.styles.app.Render(m.onboardingView())
	}
	if m.state.Search.IsOpen() {
		return m.styles.app.Render(m.searchView())
	}

	var columns []string
	if m.sidebarVisible() {
		columns = append(columns, m.styles.sidebar.Render(m.sidebar.View()))
	}
	columns = append(columns, m.editorView())

	main := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	layout := lipgloss.JoinVertical(
		lipgloss.Left,
		m.tabBarView(),
		main,
		m.statusView(),
	)
	return m.styles.app.Render(layout)
}

func (m *Model) tabBarView() string {
	strip := m.state.Tabs.Tabs()
	if len(strip) == 0 {
		return m.styles.tabBar.Width(m.width - 4).Render(m.styles.muted.Render("no open notes"))
	}

	var rendered []string
	for _, tab := range strip {
		label := tab.Title
		if label == "" {
			label = "Untitled"
		}
		if tab.ID == m.state.Tabs.ActiveID() {
			rendered = append(rendered, m.styles.activeTab.Render(label))
		} else {
			rendered = append(rendered, m.styles.tab.Render(label))
		}
	}
	return m.styles.tabBar.Width(m.width - 4).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (m *Model) editorView() string {
	if _, ok := m.state.Notes.Current(); !ok {
		empty := m.styles.muted.Render("Select a note from the sidebar, or press ctrl+n to create one.")
		return m.styles.editor.Height(m.contentHeight()).Render(empty)
	}

	editor := lipgloss.JoinVertical(
		lipgloss.Left,
		m.titleInput.View(),
		"",
		m.body.View(),
		m.outlineView(),
	)
	editor = m.styles.editor.Render(editor)

	if !m.showPreview {
		return editor
	}

	preview := m.styles.preview.Render(
		lipgloss.NewStyle().
			Height(m.contentHeight()).
			MaxHeight(m.contentHeight()).
			Render(fmt.Sprintf("%s\n%s", m.styles.title.Render("Preview"), m.preview)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
}

func (m *Model) outlineView() string {
	headings := outline.Extract(m.body.Value())
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Outline:")
	for i, h := range headings {
		if i >= 6 {
			b.WriteString(fmt.Sprintf("  (+%d more)", len(headings)-i))
			break
		}
		b.WriteString("  " + strings.Repeat("·", h.Level) + " " + h.Text)
	}
	return m.styles.outline.Render(b.String())
}

func (m *Model) searchView() string {
	sc := m.state.Search

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	switch {
	case sc.Err() != nil:
		b.WriteString(m.styles.statusErr.Render(fmt.Sprintf("search failed: %v", sc.Err())))
	case sc.Loading():
		b.WriteString(m.styles.muted.Render("searching..."))
	case len(sc.Results()) == 0:
		b.WriteString(m.styles.muted.Render("no results"))
	default:
		for i, result := range sc.Results() {
			title := displayTitle(result.Note)
			line := fmt.Sprintf("%s  %s", title, m.styles.muted.Render(result.Snippet))
			if i == sc.SelectedIndex() {
				line = m.styles.activeTab.Render(title) + "  " + m.styles.muted.Render(result.Snippet)
			}
			b.WriteString(line + "\n")
		}
	}

	return m.styles.overlay.Width(m.width - 8).Render(b.String())
}

func (m *Model) onboardingView() string {
	sc := m.state.Sync

	var b strings.Builder
	switch sc.OnboardingStep() {
	case syncctl.StepWelcome:
		b.WriteString(m.styles.title.Render("Welcome to nota"))
		b.WriteString("\n\nYour notes live on this machine and sync to Google Drive when you connect an account.\n")
		b.WriteString("\nPress enter to continue, esc to skip.")

	case syncctl.StepConnect:
		b.WriteString(m.styles.title.Render("Connect Google Drive"))
		b.WriteString("\n\n")
		switch {
		case sc.Authenticating():
			b.WriteString("Waiting for authorization in your browser...\n\n")
			b.WriteString(m.styles.muted.Render(sc.AuthURL()))
		case sc.AuthErr() != nil:
			b.WriteString(m.styles.statusErr.Render(sc.AuthErr().Error()))
			b.WriteString("\n\nPress enter to retry, esc to skip.")
		default:
			b.WriteString("Press enter to open the consent page in your browser.")
		}

	default:
		b.WriteString(m.styles.title.Render("All set"))
		b.WriteString("\n\nYour notes will sync in the background.\n\nPress enter to start writing.")
	}

	return m.styles.overlay.Width(m.width - 8).Render(b.String())
}

func (m *Model) statusView() string {
	var parts []string

	if ws, ok := m.state.Spaces.Current(); ok {
		parts = append(parts, ws.Name)
	}

	switch {
	case m.state.Autosave.Saving():
		parts = append(parts, "saving...")
	case m.state.Autosave.Err() != nil:
		parts = append(parts, m.styles.statusErr.Render("save failed"))
	case m.state.Autosave.Dirty():
		parts = append(parts, "unsaved")
	case !m.state.Autosave.LastSaved().IsZero():
		parts = append(parts, "saved "+m.state.Autosave.LastSaved().Format("15:04:05"))
	}

	if m.state.Sync.Syncing() {
		parts = append(parts, "syncing...")
	} else if status := m.state.Sync.Status(); status != nil {
		if status.Authenticated {
			parts = append(parts, fmt.Sprintf("queue %d", status.QueueLength))
		} else {
			parts = append(parts, "offline")
		}
	}
	if err := m.state.Sync.SyncErr(); err != nil {
		parts = append(parts, m.styles.statusErr.Render("sync error"))
	}
	if m.prefsErr != nil {
		parts = append(parts, m.styles.statusErr.Render("preferences not saved"))
	}

	return m.styles.status.Render(strings.Join(parts, "  •  "))
}

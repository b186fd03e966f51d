package workspace

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/notaterm/nota/internal/theme"
)

type styles struct {
	app       lipgloss.Style
	title     lipgloss.Style
	sidebar   lipgloss.Style
	tabBar    lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	editor    lipgloss.Style
	preview   lipgloss.Style
	outline   lipgloss.Style
	overlay   lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		app: lipgloss.NewStyle().Padding(1, 2),

		title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Padding(0, 1),

		sidebar: lipgloss.NewStyle().
			MarginRight(1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Border),

		tabBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border),

		tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		activeTab: lipgloss.NewStyle().
			Foreground(p.AccentText).
			Background(p.Accent).
			Bold(true).
			Padding(0, 1),

		editor: lipgloss.NewStyle().
			MarginLeft(1),

		preview: lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Border),

		outline: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginLeft(1),

		overlay: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		status: lipgloss.NewStyle().
			Foreground(p.Muted),

		statusErr: lipgloss.NewStyle().
			Foreground(p.Danger),

		muted: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

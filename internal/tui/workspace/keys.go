package workspace

import "github.com/charmbracelet/bubbles/key"

type workspaceKeyMap struct {
	quit          key.Binding
	search        key.Binding
	newNote       key.Binding
	deleteNote    key.Binding
	favorite      key.Binding
	closeTab      key.Binding
	nextTab       key.Binding
	prevTab       key.Binding
	moveTabLeft   key.Binding
	moveTabRight  key.Binding
	toggleSidebar key.Binding
	togglePreview key.Binding
	toggleFocus   key.Binding
	cycleTheme    key.Binding
	syncNow       key.Binding

	minimizeWindow key.Binding
	maximizeWindow key.Binding
	openNote      key.Binding
	exitOverlay   key.Binding
	submit        key.Binding
}

func newWorkspaceKeyMap() *workspaceKeyMap {
	return &workspaceKeyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		search: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "search"),
		),
		newNote: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new note"),
		),
		deleteNote: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete note"),
		),
		favorite: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "favorite"),
		),
		closeTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
		moveTabLeft: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "move tab left"),
		),
		moveTabRight: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "move tab right"),
		),
		toggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle sidebar"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "toggle preview"),
		),
		toggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		cycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle theme"),
		),
		syncNow: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "sync now"),
		),
		minimizeWindow: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("f10", "minimize window"),
		),
		maximizeWindow: key.NewBinding(
			key.WithKeys("f11"),
			key.WithHelp("f11", "maximize window"),
		),
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		exitOverlay: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
	}
}

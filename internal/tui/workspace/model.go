// Package workspace is the main TUI: sidebar, tab strip, editor with
// debounced auto-save, the search overlay, and the onboarding flow.
package workspace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notaterm/nota/internal/cache"
	"github.com/notaterm/nota/internal/constants"
	"github.com/notaterm/nota/internal/state"
	syncctl "github.com/notaterm/nota/internal/sync"
	"github.com/notaterm/nota/internal/theme"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusTitle
	focusBody
)

type Model struct {
	state  *state.State
	keys   *workspaceKeyMap
	styles styles

	sidebar     list.Model
	titleInput  textinput.Model
	body        textarea.Model
	searchInput textinput.Model

	focus       focusArea
	width       int
	height      int
	showPreview bool
	preview     string

	// prefsErr is the last preference-persistence failure, cleared by the
	// next successful write.
	prefsErr error
}

func NewModel(s *state.State) *Model {
	keys := newWorkspaceKeyMap()
	st := newStyles(s.Palette)

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(s.Palette.Accent).
		BorderForeground(s.Palette.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(s.Palette.Muted).
		BorderForeground(s.Palette.Accent)

	sidebar := list.New(nil, delegate, 0, 0)
	sidebar.Title = "Notes"
	sidebar.Styles.Title = st.title
	sidebar.SetShowStatusBar(false)
	sidebar.SetShowHelp(false)
	sidebar.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.openNote, keys.search, keys.newNote}
	}

	title := textinput.New()
	title.Placeholder = "Untitled"
	title.Prompt = ""

	body := textarea.New()
	body.Placeholder = "Start writing..."
	body.ShowLineNumbers = false

	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes..."
	searchInput.Prompt = "/ "

	return &Model{
		state:       s,
		keys:        keys,
		styles:      st,
		sidebar:     sidebar,
		titleInput:  title,
		body:        body,
		searchInput: searchInput,
		focus:       focusSidebar,
		showPreview: false,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadWorkspacesCmd(m.state.Bridge),
		pollStatusCmd(m.state.Bridge),
		statusTickCmd(),
	}
	if m.state.Config.Token == "" {
		m.state.Sync.ShowOnboarding()
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case workspacesLoadedMsg:
		m.state.Spaces.ApplyLoad(msg.workspaces, msg.err)
		if id := m.state.Spaces.CurrentID(); id != "" {
			m.state.Notes.BeginLoad()
			return m, loadNotesCmd(m.state.Bridge, id)
		}
		return m, nil

	case notesLoadedMsg:
		if msg.workspaceID != m.state.Spaces.CurrentID() {
			return m, nil
		}
		m.state.Notes.ApplyLoad(msg.notes, msg.err)
		m.sidebar.SetItems(buildSidebarItems(m.state.Notes))
		return m, nil

	case noteCreatedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.state.Notes.ApplyCreate(msg.note)
		m.sidebar.SetItems(buildSidebarItems(m.state.Notes))
		return m, m.openNote(msg.note.ID)

	case noteDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.state.Notes.ApplyDelete(msg.noteID)
		m.state.Previews.Invalidate(msg.noteID)
		m.sidebar.SetItems(buildSidebarItems(m.state.Notes))
		noteID, ok := m.state.Tabs.CloseForNote(msg.noteID)
		if !ok {
			m.clearEditor()
			return m, nil
		}
		return m, m.showNote(noteID)

	case favoriteToggledMsg:
		if msg.err != nil {
			return m, nil
		}
		m.state.Notes.ApplyToggleFavorite(msg.noteID)
		m.sidebar.SetItems(buildSidebarItems(m.state.Notes))
		return m, nil

	case saveTimerMsg:
		payload, seq, ok := m.state.Autosave.Fire(msg.token)
		if !ok {
			return m, nil
		}
		return m, saveNoteCmd(m.state.Bridge, m.state.Autosave.DocID(), seq, payload.Title, payload.Content)

	case noteSavedMsg:
		return m.handleSaved(msg)

	case searchTimerMsg:
		query, ok := m.state.Search.Fire(msg.token)
		if !ok {
			return m, nil
		}
		return m, searchCmd(m.state.Bridge, query)

	case searchDoneMsg:
		m.state.Search.Complete(msg.query, msg.results, msg.err)
		return m, nil

	case authStartedMsg:
		if msg.err != nil {
			m.state.Sync.CompleteSync(msg.err)
			return m, nil
		}
		interval := m.state.Sync.BeginAuth(msg.authURL)
		return m, authPollTickCmd(interval)

	case authPollTickMsg:
		if !m.state.Sync.Authenticating() {
			return m, nil
		}
		return m, pollAuthCmd(m.state.Bridge)

	case authPolledMsg:
		if m.state.Sync.HandleAuthPoll(msg.authorized, msg.err) {
			return m, authPollTickCmd(constants.AuthPollInterval)
		}
		return m, nil

	case statusTickMsg:
		return m, tea.Batch(pollStatusCmd(m.state.Bridge), statusTickCmd())

	case statusPolledMsg:
		m.state.Sync.ApplyStatus(msg.status, msg.err)
		return m, nil

	case syncTriggeredMsg:
		m.state.Sync.CompleteSync(msg.err)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) handleSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.seq < 0 {
		// Teardown flush for a document no longer open.
		if msg.err == nil {
			m.applySaved(msg)
		}
		return m, nil
	}

	if msg.noteID == m.state.Autosave.DocID() {
		next, nextSeq, ok := m.state.Autosave.Complete(msg.seq, msg.err)
		if msg.err == nil {
			m.applySaved(msg)
		}
		if ok {
			return m, saveNoteCmd(m.state.Bridge, msg.noteID, nextSeq, next.Title, next.Content)
		}
		return m, nil
	}

	if msg.err == nil {
		m.applySaved(msg)
	}
	return m, nil
}

func (m *Model) applySaved(msg noteSavedMsg) {
	m.state.Notes.ApplyUpdate(msg.noteID, msg.title, msg.body)
	m.state.Tabs.RefreshTitle(msg.noteID, msg.title)
	m.state.Previews.Invalidate(msg.noteID)
	m.sidebar.SetItems(buildSidebarItems(m.state.Notes))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Sync.OnboardingOpen() {
		return m.handleOnboardingKey(msg)
	}
	if m.state.Search.IsOpen() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, m.teardown()

	case key.Matches(msg, m.keys.search):
		m.state.Search.Open()
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.newNote):
		return m, createNoteCmd(m.state.Bridge, m.state.Spaces.CurrentID(), "Untitled")

	case key.Matches(msg, m.keys.deleteNote):
		if tab, ok := m.state.Tabs.Active(); ok {
			return m, deleteNoteCmd(m.state.Bridge, tab.NoteID)
		}
		return m, nil

	case key.Matches(msg, m.keys.favorite):
		if tab, ok := m.state.Tabs.Active(); ok {
			return m, toggleFavoriteCmd(m.state.Bridge, tab.NoteID)
		}
		return m, nil

	case key.Matches(msg, m.keys.closeTab):
		return m.closeActiveTab()

	case key.Matches(msg, m.keys.nextTab):
		return m.stepTab(1)

	case key.Matches(msg, m.keys.prevTab):
		return m.stepTab(-1)

	case key.Matches(msg, m.keys.moveTabLeft):
		m.moveActiveTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.moveTabRight):
		m.moveActiveTab(1)
		return m, nil

	case key.Matches(msg, m.keys.toggleSidebar):
		_, err := m.state.Config.ToggleSidebar()
		m.prefsErr = err
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.togglePreview):
		m.showPreview = !m.showPreview
		if m.showPreview {
			m.renderPreview()
		}
		return m, nil

	case key.Matches(msg, m.keys.cycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.minimizeWindow):
		return m, windowCmd(m.state.Bridge.MinimizeWindow)

	case key.Matches(msg, m.keys.maximizeWindow):
		return m, windowCmd(m.state.Bridge.MaximizeWindow)

	case key.Matches(msg, m.keys.syncNow):
		m.state.Sync.BeginSync()
		return m, triggerSyncCmd(m.state.Bridge)

	case key.Matches(msg, m.keys.toggleFocus):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.openNote) && m.focus == focusSidebar:
		if item, ok := m.sidebar.SelectedItem().(sidebarItem); ok {
			return m, m.openNote(item.note.ID)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitOverlay):
		m.state.Search.Close()
		m.searchInput.Blur()
		return m, nil

	case msg.String() == "up":
		m.state.Search.MoveUp()
		return m, nil

	case msg.String() == "down":
		m.state.Search.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.submit):
		note, ok := m.state.Search.Choose()
		if !ok {
			return m, nil
		}
		m.searchInput.Blur()
		return m, m.openNote(note.ID)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	token, delay, fire := m.state.Search.SetQuery(m.searchInput.Value())
	if !fire {
		return m, cmd
	}
	return m, tea.Batch(cmd, searchTimerCmd(token, delay))
}

func (m *Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sc := m.state.Sync

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, m.teardown()

	case key.Matches(msg, m.keys.exitOverlay):
		sc.HideOnboarding()
		return m, nil

	case msg.String() == "left":
		sc.PrevStep()
		return m, nil

	case key.Matches(msg, m.keys.submit), msg.String() == "right":
		switch sc.OnboardingStep() {
		case syncctl.StepWelcome:
			sc.NextStep()
			return m, nil
		case syncctl.StepConnect:
			if sc.Authenticating() {
				return m, nil
			}
			return m, startAuthCmd(m.state.Bridge)
		default:
			sc.HideOnboarding()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.focus {
	case focusSidebar:
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		cmds = append(cmds, cmd)

	case focusTitle:
		before := m.titleInput.Value()
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		cmds = append(cmds, cmd)
		if m.titleInput.Value() != before {
			cmds = append(cmds, m.scheduleSave())
		}

	case focusBody:
		before := m.body.Value()
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		cmds = append(cmds, cmd)
		if m.body.Value() != before {
			cmds = append(cmds, m.scheduleSave())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) scheduleSave() tea.Cmd {
	if m.state.Autosave.DocID() == "" {
		return nil
	}
	token, delay := m.state.Autosave.Schedule(m.titleInput.Value(), m.body.Value())
	return saveTimerCmd(token, delay)
}

// openNote flushes the current document, activates (or opens) a tab for the
// note, and points the editor at it.
func (m *Model) openNote(noteID string) tea.Cmd {
	flush := m.flushCurrent()

	note, ok := m.state.Notes.ByID(noteID)
	if !ok {
		return flush
	}
	m.state.Tabs.Open(note)
	return tea.Batch(flush, m.showNote(noteID))
}

// showNote loads a note into the editor without touching the tab strip.
func (m *Model) showNote(noteID string) tea.Cmd {
	note, ok := m.state.Notes.ByID(noteID)
	if !ok {
		m.clearEditor()
		return nil
	}

	m.state.Notes.SetCurrent(noteID)
	m.state.Autosave.Reset(noteID)
	m.titleInput.SetValue(note.Title)
	m.body.SetValue(note.Content)
	if m.focus == focusSidebar {
		m.focus = focusBody
	}
	m.syncFocus()
	if m.showPreview {
		m.renderPreview()
	}
	return nil
}

func (m *Model) clearEditor() {
	m.state.Notes.SetCurrent("")
	m.state.Autosave.Reset("")
	m.titleInput.SetValue("")
	m.body.SetValue("")
	m.preview = ""
	m.focus = focusSidebar
	m.syncFocus()
}

// flushCurrent persists unsaved edits of the document being left.
func (m *Model) flushCurrent() tea.Cmd {
	docID := m.state.Autosave.DocID()
	payload, ok := m.state.Autosave.Flush()
	if !ok || docID == "" {
		return nil
	}
	return flushNoteCmd(m.state.Bridge, docID, payload.Title, payload.Content)
}

func (m *Model) closeActiveTab() (tea.Model, tea.Cmd) {
	active := m.state.Tabs.ActiveID()
	if active == "" {
		return m, nil
	}

	flush := m.flushCurrent()
	noteID, ok := m.state.Tabs.Close(active)
	if !ok {
		m.clearEditor()
		return m, flush
	}
	return m, tea.Batch(flush, m.showNote(noteID))
}

func (m *Model) stepTab(delta int) (tea.Model, tea.Cmd) {
	strip := m.state.Tabs.Tabs()
	if len(strip) == 0 {
		return m, nil
	}

	current := 0
	for i, tab := range strip {
		if tab.ID == m.state.Tabs.ActiveID() {
			current = i
			break
		}
	}

	next := (current + delta + len(strip)) % len(strip)
	noteID, ok := m.state.Tabs.Activate(strip[next].ID)
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.flushCurrent(), m.showNote(noteID))
}

func (m *Model) moveActiveTab(delta int) {
	strip := m.state.Tabs.Tabs()
	for i, tab := range strip {
		if tab.ID == m.state.Tabs.ActiveID() {
			m.state.Tabs.Reorder(i, i+delta)
			return
		}
	}
}

func (m *Model) cycleFocus() {
	sidebarVisible := !m.state.Config.UI.SidebarCollapsed

	switch m.focus {
	case focusSidebar:
		m.focus = focusTitle
	case focusTitle:
		m.focus = focusBody
	default:
		if sidebarVisible {
			m.focus = focusSidebar
		} else {
			m.focus = focusTitle
		}
	}
	m.syncFocus()
}

func (m *Model) syncFocus() {
	m.titleInput.Blur()
	m.body.Blur()
	switch m.focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusBody:
		m.body.Focus()
	}
}

func (m *Model) cycleTheme() {
	var next string
	switch m.state.Config.UI.ThemeMode {
	case "system":
		next = "light"
	case "light":
		next = "dark"
	default:
		next = "system"
	}
	m.prefsErr = m.state.Config.SetThemeMode(next)

	m.state.Variant = theme.Resolve(theme.Mode(next), theme.DetectDark())
	m.state.Palette = theme.PaletteFor(m.state.Variant)
	m.styles = newStyles(m.state.Palette)
	if m.showPreview {
		m.renderPreview()
	}
}

func (m *Model) renderPreview() {
	note, ok := m.state.Notes.Current()
	if !ok {
		m.preview = ""
		return
	}

	width := m.editorWidth()
	key := cache.Key{
		NoteID: note.ID,
		Revision: cache.RevisionFor(
			note.UpdatedAt.Time.Format("2006-01-02T15:04:05.000"),
			width,
			m.state.Palette.GlamourSty,
		),
	}
	if rendered, hit := m.state.Previews.Get(key); hit {
		m.preview = rendered
		return
	}

	rendered := renderMarkdown(m.body.Value(), width, m.state.Palette.GlamourSty)
	m.state.Previews.Put(key, rendered)
	m.preview = rendered
}

// teardown flushes unsaved edits and tells the host its window can close
// before quitting. The flush races process exit; a save already in flight is
// left to the host.
func (m *Model) teardown() tea.Cmd {
	var cmds []tea.Cmd
	if flush := m.flushCurrent(); flush != nil {
		cmds = append(cmds, flush)
	}
	cmds = append(cmds, windowCmd(m.state.Bridge.CloseWindow), tea.Quit)
	return tea.Sequence(cmds...)
}

// errProgramCrash marks a panic recovered from the program loop.
var errProgramCrash = errors.New("workspace crashed")

// runSession invokes one program session and converts a panic anywhere in
// the update or view path into errProgramCrash instead of killing the
// process.
func runSession(run func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errProgramCrash, r)
		}
	}()
	return run()
}

// promptRestart shows the failure screen and asks whether to relaunch.
// Restarting rebuilds the session from config and the host; in-memory edits
// from the crashed session are lost.
func promptRestart(in io.Reader, out io.Writer, cause error) bool {
	fmt.Fprintf(out, "\n%v\n\nPress enter to restart, q to quit: ", cause)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(line))
	return answer == "" || answer == "r"
}

func Run(s *state.State) error {
	for {
		err := runSession(func() error {
			program := tea.NewProgram(
				NewModel(s),
				tea.WithInput(os.Stdin),
				tea.WithAltScreen(),
				tea.WithoutCatchPanics(),
			)
			_, runErr := program.Run()
			return runErr
		})
		if err == nil {
			return nil
		}
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		}
		if !errors.Is(err, errProgramCrash) {
			log.Fatalf("Error running program: %v", err)
		}
		if !promptRestart(os.Stdin, os.Stdout, err) {
			return err
		}
	}
}

package workspace

import "github.com/notaterm/nota/internal/models"

type workspacesLoadedMsg struct {
	workspaces []models.Workspace
	err        error
}

type notesLoadedMsg struct {
	workspaceID string
	notes       []models.Note
	err         error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type favoriteToggledMsg struct {
	noteID string
	err    error
}

type saveTimerMsg struct {
	token int
}

type noteSavedMsg struct {
	noteID string
	seq    int
	title  string
	body   string
	err    error
}

type searchTimerMsg struct {
	token int
}

type searchDoneMsg struct {
	query   string
	results []models.SearchResult
	err     error
}

type authStartedMsg struct {
	authURL string
	err     error
}

type authPollTickMsg struct{}

type authPolledMsg struct {
	authorized bool
	err        error
}

type statusTickMsg struct{}

type statusPolledMsg struct {
	status models.SyncStatus
	err    error
}

type syncTriggeredMsg struct {
	err error
}

package workspace

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notaterm/nota/internal/bridge"
	"github.com/notaterm/nota/internal/constants"
)

const bridgeTimeout = 10 * time.Second

func bridgeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), bridgeTimeout)
}

func loadWorkspacesCmd(client bridge.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		workspaces, err := client.ListWorkspaces(ctx)
		return workspacesLoadedMsg{workspaces: workspaces, err: err}
	}
}

func loadNotesCmd(client bridge.Client, workspaceID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		notes, err := client.ListNotes(ctx, workspaceID)
		return notesLoadedMsg{workspaceID: workspaceID, notes: notes, err: err}
	}
}

func createNoteCmd(client bridge.Client, workspaceID, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		note, err := client.CreateNote(ctx, workspaceID, title, "", "")
		if err != nil {
			return noteCreatedMsg{err: err}
		}
		return noteCreatedMsg{note: *note}
	}
}

func saveNoteCmd(client bridge.Client, noteID string, seq int, title, body string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		err := client.UpdateNote(ctx, noteID, title, body)
		return noteSavedMsg{noteID: noteID, seq: seq, title: title, body: body, err: err}
	}
}

func deleteNoteCmd(client bridge.Client, noteID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		return noteDeletedMsg{noteID: noteID, err: client.DeleteNote(ctx, noteID)}
	}
}

func toggleFavoriteCmd(client bridge.Client, noteID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		return favoriteToggledMsg{noteID: noteID, err: client.ToggleFavorite(ctx, noteID)}
	}
}

func searchCmd(client bridge.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		results, err := client.SearchNotes(ctx, query)
		return searchDoneMsg{query: query, results: results, err: err}
	}
}

func startAuthCmd(client bridge.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		authURL, err := client.StartDriveAuth(ctx)
		return authStartedMsg{authURL: authURL, err: err}
	}
}

func pollAuthCmd(client bridge.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		authorized, err := client.IsDriveAuthenticated(ctx)
		return authPolledMsg{authorized: authorized, err: err}
	}
}

func pollStatusCmd(client bridge.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		status, err := client.GetSyncStatus(ctx)
		if err != nil {
			return statusPolledMsg{err: err}
		}
		return statusPolledMsg{status: *status}
	}
}

func triggerSyncCmd(client bridge.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		return syncTriggeredMsg{err: client.TriggerSync(ctx)}
	}
}

// windowCmd issues a fire-and-forget window-chrome call. The host reports
// nothing back, so no message is produced.
func windowCmd(op func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		op(ctx)
		return nil
	}
}

func saveTimerCmd(token int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return saveTimerMsg{token: token}
	})
}

func searchTimerCmd(token int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchTimerMsg{token: token}
	})
}

func authPollTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return authPollTickMsg{}
	})
}

func statusTickCmd() tea.Cmd {
	return tea.Tick(constants.SyncStatusInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// flushNoteCmd persists a teardown flush without reporting back through the
// autosave coordinator; the document it belonged to is already gone.
func flushNoteCmd(client bridge.Client, noteID, title, body string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := bridgeCtx()
		defer cancel()

		err := client.UpdateNote(ctx, noteID, title, body)
		return noteSavedMsg{noteID: noteID, seq: -1, title: title, body: body, err: err}
	}
}

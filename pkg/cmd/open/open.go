package open

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/models"
	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/pkg/cmd"
	"github.com/notaterm/nota/utils"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Pick a note with a fuzzy finder and print it.",
		Long: heredoc.Doc(`
			Fuzzy-find over the notes of the current workspace, with a live
			preview, and print the selected note rendered to the terminal.
		`),
		Example: "nota open or nota open standup",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			ctx := command.Context()

			ws, err := cmd.ResolveWorkspace(ctx, s)
			if err != nil {
				return err
			}

			notes, err := s.Bridge.ListNotes(ctx, ws.ID)
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}
			if len(notes) == 0 {
				fmt.Println("No notes in this workspace yet. Create one with 'nota new [title]'.")
				return nil
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			note, err := pick(notes, query)
			if err != nil {
				return err
			}

			fmt.Print(utils.RenderMarkdownPreview(note.Content, 100, s.Palette.GlamourSty))
			return nil
		},
	}

	return command
}

func pick(notes []models.Note, query string) (models.Note, error) {
	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return notes[i].Content
		}),
	}
	if query != "" {
		opts = append(opts, fuzzyfinder.WithQuery(query))
	}

	idx, err := fuzzyfinder.Find(
		notes,
		func(i int) string {
			if notes[i].Title == "" {
				return "Untitled"
			}
			return notes[i].Title
		},
		opts...,
	)
	if err != nil {
		return models.Note{}, fmt.Errorf("no note selected: %w", err)
	}

	return notes[idx], nil
}

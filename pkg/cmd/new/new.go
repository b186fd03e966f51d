package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/pkg/cmd"
	"github.com/notaterm/nota/utils"
)

func NewCmdNew(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Create a note in the current workspace and print its id.
			The note body starts empty; open it in the workspace to write.
		`),
		Example: "nota new 'cli research' or nota new standup --parent 3f2a",
		Args: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf(
					"error: No title given. Try again with 'nota new [title]'",
				)
			}
			return nil
		},
		RunE: func(command *cobra.Command, args []string) error {
			return run(command, args, s)
		},
	}

	command.Flags().
		StringP(
			"parent",
			"p",
			"",
			"Nest the new note under the note with this id",
		)
	return command
}

func run(command *cobra.Command, args []string, s *state.State) error {
	title := strings.Join(args, " ")
	if err := utils.ValidateName(title); err != nil {
		return err
	}

	parentID, _ := command.Flags().GetString("parent")

	ctx := command.Context()
	ws, err := cmd.ResolveWorkspace(ctx, s)
	if err != nil {
		return err
	}

	note, err := s.Bridge.CreateNote(ctx, ws.ID, title, "", parentID)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	fmt.Printf("Created %q in %s (%s)\n", note.Title, ws.Name, note.ID)
	return nil
}

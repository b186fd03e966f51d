package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/notaterm/nota/internal/models"
	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/pkg/cmd"
)

type frontmatter struct {
	Title     string `yaml:"title"`
	Workspace string `yaml:"workspace"`
	Created   string `yaml:"created,omitempty"`
	Updated   string `yaml:"updated,omitempty"`
	Favorite  bool   `yaml:"favorite,omitempty"`
}

func NewCmdExport(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "export [note-id]",
		Aliases: []string{"e"},
		Short:   "Export a note as markdown with frontmatter.",
		Long: heredoc.Doc(`
			Write a note to a markdown file with YAML frontmatter, for use in
			other tools. With --copy the note goes to the clipboard instead.
		`),
		Example: "nota export 3f2a --out standup.md or nota export 3f2a --copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return run(command, args, s)
		},
	}

	command.Flags().StringP("out", "o", "", "File to write (defaults to the note title)")
	command.Flags().BoolP("copy", "c", false, "Copy to the clipboard instead of writing a file")
	return command
}

func run(command *cobra.Command, args []string, s *state.State) error {
	ctx := command.Context()

	ws, err := cmd.ResolveWorkspace(ctx, s)
	if err != nil {
		return err
	}

	notes, err := s.Bridge.ListNotes(ctx, ws.ID)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	var note *models.Note
	for i := range notes {
		if notes[i].ID == args[0] {
			note = &notes[i]
			break
		}
	}
	if note == nil {
		return fmt.Errorf("no note with id %q in %s", args[0], ws.Name)
	}

	rendered, err := render(*note, ws.Name)
	if err != nil {
		return err
	}

	if copyFlag, _ := command.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.WriteAll(rendered); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Copied %q to the clipboard\n", note.Title)
		return nil
	}

	out, _ := command.Flags().GetString("out")
	if out == "" {
		out = fileName(*note)
	}

	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Exported %q to %s\n", note.Title, out)
	return nil
}

func render(note models.Note, workspace string) (string, error) {
	fm := frontmatter{
		Title:     note.Title,
		Workspace: workspace,
		Favorite:  note.IsFavorite,
	}
	if !note.CreatedAt.Time.IsZero() {
		fm.Created = note.CreatedAt.Time.Format(time.RFC3339)
	}
	if !note.UpdatedAt.Time.IsZero() {
		fm.Updated = note.UpdatedAt.Time.Format(time.RFC3339)
	}

	encoded, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	return fmt.Sprintf("---\n%s---\n\n%s", encoded, note.Content), nil
}

func fileName(note models.Note) string {
	title := note.Title
	if title == "" {
		title = "untitled-" + note.ID
	}
	title = strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	return title + ".md"
}

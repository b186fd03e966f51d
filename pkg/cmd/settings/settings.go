package settings

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:   "settings",
		Short: "Adjust preferences.",
		Long: heredoc.Doc(`
			Interactive pickers for local preferences. Preferences persist to
			the config file; note content is never stored there.
		`),
	}

	command.AddCommand(
		newCmdTheme(s),
		newCmdSidebar(s),
	)

	return command
}

func newCmdTheme(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Pick the theme mode.",
		RunE: func(command *cobra.Command, args []string) error {
			sel := selection.New(
				"Please select a theme mode.",
				[]string{"system", "light", "dark"},
			)
			sel.Filter = nil

			choice, err := sel.RunPrompt()
			if err != nil {
				return err
			}

			if err := s.Config.SetThemeMode(choice); err != nil {
				return err
			}

			fmt.Printf("Theme mode set to %q\n", choice)
			return nil
		},
	}
}

func newCmdSidebar(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "sidebar",
		Short: "Toggle the sidebar default.",
		RunE: func(command *cobra.Command, args []string) error {
			collapsed, err := s.Config.ToggleSidebar()
			if err != nil {
				return err
			}

			if collapsed {
				fmt.Println("Sidebar starts collapsed.")
			} else {
				fmt.Println("Sidebar starts expanded.")
			}
			return nil
		},
	}
}

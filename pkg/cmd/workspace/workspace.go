package workspace

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/utils"
)

func NewCmdWorkspace(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces.",
		Long: heredoc.Doc(`
			List, create, and switch between the workspaces on the host.
			The active workspace is what the main view and commands operate on.
		`),
	}

	command.AddCommand(
		newCmdList(s),
		newCmdCreate(s),
		newCmdUse(s),
	)

	return command
}

func newCmdList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workspaces.",
		RunE: func(command *cobra.Command, args []string) error {
			workspaces, err := s.Bridge.ListWorkspaces(command.Context())
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			for _, ws := range workspaces {
				marker := " "
				if ws.ID == s.Config.CurrentWorkspace {
					marker = "*"
				}
				fmt.Printf("%s %s  %s\n", marker, ws.ID, ws.Name)
			}
			return nil
		},
	}
}

func newCmdCreate(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "create [name]",
		Aliases: []string{"c"},
		Short:   "Create a workspace and switch to it.",
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			name := args[0]
			if err := utils.ValidateName(name); err != nil {
				return err
			}

			ws, err := s.Bridge.CreateWorkspace(command.Context(), name)
			if err != nil {
				return fmt.Errorf("failed to create workspace: %w", err)
			}

			if err := s.Config.SetCurrentWorkspace(ws.ID); err != nil {
				return err
			}

			fmt.Printf("Created and switched to %q (%s)\n", ws.Name, ws.ID)
			return nil
		},
	}
}

func newCmdUse(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "use [name]",
		Aliases: []string{"u"},
		Short:   "Switch the active workspace.",
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			workspaces, err := s.Bridge.ListWorkspaces(command.Context())
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			for _, ws := range workspaces {
				if ws.ID == args[0] || ws.Name == args[0] {
					if err := s.Config.SetCurrentWorkspace(ws.ID); err != nil {
						return err
					}
					fmt.Printf("Switched to %q\n", ws.Name)
					return nil
				}
			}

			return fmt.Errorf("no workspace named %q", args[0])
		},
	}
}

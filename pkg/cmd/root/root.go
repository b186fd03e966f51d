package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/internal/tui/workspace"
	"github.com/notaterm/nota/pkg/cmd/account"
	"github.com/notaterm/nota/pkg/cmd/drive"
	"github.com/notaterm/nota/pkg/cmd/export"
	"github.com/notaterm/nota/pkg/cmd/new"
	"github.com/notaterm/nota/pkg/cmd/open"
	"github.com/notaterm/nota/pkg/cmd/settings"
	wscmd "github.com/notaterm/nota/pkg/cmd/workspace"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "nota",
		Aliases: []string{"nt"},
		Short:   "Notes with tabs, search, and background Drive sync.",
		Long: `A terminal front end for your local note host. Launches the workspace
  by default: a sidebar, tabs, and an editor that saves as you type.

  nota
  nota new "standup notes"
  nota open
  `,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workspace.Run(s)
		},
	}

	cmd.PersistentFlags().
		StringP(
			"workspace",
			"w",
			"",
			"Workspace to use for this command.",
		)
	viper.BindPFlag("workspace", cmd.PersistentFlags().Lookup("workspace"))

	cmd.AddCommand(
		new.NewCmdNew(s),
		open.NewCmdOpen(s),
		wscmd.NewCmdWorkspace(s),
		account.NewCmdAccount(s),
		drive.NewCmdDrive(s),
		export.NewCmdExport(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}

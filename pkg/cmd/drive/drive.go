package drive

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/constants"
	"github.com/notaterm/nota/internal/state"
)

func NewCmdDrive(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "drive",
		Aliases: []string{"d"},
		Short:   "Manage Google Drive sync.",
		Long: heredoc.Doc(`
			Connect a Google Drive account, check the sync queue, trigger a
			sync, or disconnect. The host does the actual syncing; these
			commands just talk to it.
		`),
	}

	command.AddCommand(
		newCmdConnect(s),
		newCmdStatus(s),
		newCmdSync(s),
		newCmdDisconnect(s),
	)

	return command
}

func newCmdConnect(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "connect",
		Aliases: []string{"c"},
		Short:   "Connect a Google Drive account.",
		RunE: func(command *cobra.Command, args []string) error {
			ctx := command.Context()

			authURL, err := s.Bridge.StartDriveAuth(ctx)
			if err != nil {
				return fmt.Errorf("failed to start Drive authorization: %w", err)
			}

			fmt.Println("Open this page in your browser to authorize:")
			fmt.Println("  " + authURL)
			fmt.Println("Waiting for authorization...")

			deadline := time.Now().Add(constants.AuthPollTimeout)
			for time.Now().Before(deadline) {
				time.Sleep(constants.AuthPollInterval)

				authorized, err := s.Bridge.IsDriveAuthenticated(ctx)
				if err != nil {
					continue
				}
				if authorized {
					account, err := s.Bridge.GetDriveAccountInfo(ctx)
					if err == nil {
						fmt.Printf("Connected as %s\n", account.Email)
					} else {
						fmt.Println("Connected.")
					}
					return nil
				}
			}

			return fmt.Errorf("Authentication timeout. Please try again.")
		},
	}
}

func newCmdStatus(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Show sync queue and account state.",
		RunE: func(command *cobra.Command, args []string) error {
			ctx := command.Context()

			status, err := s.Bridge.GetSyncStatus(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch sync status: %w", err)
			}

			if !status.Authenticated {
				fmt.Println("Drive is not connected. Run 'nota drive connect'.")
				return nil
			}

			account, err := s.Bridge.GetDriveAccountInfo(ctx)
			if err == nil {
				fmt.Printf("Account:    %s\n", account.Email)
			}
			fmt.Printf("Queue:      %d pending\n", status.QueueLength)
			if status.Processing {
				fmt.Println("Processing: yes")
			}
			if !status.LastSync.Time.IsZero() {
				fmt.Printf("Last sync:  %s\n", status.LastSync.Time.Format(time.RFC1123))
			}
			return nil
		},
	}
}

func newCmdSync(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Trigger a sync now.",
		RunE: func(command *cobra.Command, args []string) error {
			if err := s.Bridge.TriggerSync(command.Context()); err != nil {
				return fmt.Errorf("failed to trigger sync: %w", err)
			}
			fmt.Println("Sync started.")
			return nil
		},
	}
}

func newCmdDisconnect(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the Drive account.",
		RunE: func(command *cobra.Command, args []string) error {
			if err := s.Bridge.SignOutDrive(command.Context()); err != nil {
				return fmt.Errorf("failed to disconnect: %w", err)
			}
			fmt.Println("Drive disconnected. Notes stay on this machine.")
			return nil
		},
	}
}

package account

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/utils"
)

// Hardcoded until the host hands out per-install secrets.
var SECRET = "xK7qM2vL9pR4tW8nB3cF6hJ1dS5gA0zYeU+IoPasWqzXrTyVbNmQwErTyUiOpAsD"

func NewCmdAccount(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Manage the signed-in account.",
		Long: heredoc.Doc(`
			Show, sign in, and sign out the account the host syncs under.
		`),
	}

	command.AddCommand(
		newCmdStatus(s),
		newCmdLogin(s),
		newCmdLogout(s),
	)

	return command
}

func newCmdStatus(s *state.State) *cobra.Command {
	command := &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Show who is signed in.",
		RunE: func(command *cobra.Command, args []string) error {
			offline, _ := command.Flags().GetBool("offline")
			if offline {
				return statusFromToken(s)
			}

			ctx := command.Context()
			authed, err := s.Bridge.IsAuthenticated(ctx)
			if err != nil {
				return fmt.Errorf("failed to reach the host: %w", err)
			}
			if !authed {
				fmt.Println("Not signed in. Run 'nota account login'.")
				return nil
			}

			user, err := s.Bridge.GetCurrentUser(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch account: %w", err)
			}

			fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	command.Flags().BoolP("offline", "o", false, "Decode the stored session token instead of asking the host")
	return command
}

// statusFromToken reads the stored session token so status works while the
// host is down.
func statusFromToken(s *state.State) error {
	if s.Config.Token == "" {
		fmt.Println("Not signed in. Run 'nota account login'.")
		return nil
	}

	claims, err := utils.GetClaims(s.Config.Token, SECRET)
	if err != nil {
		return fmt.Errorf("stored session token is invalid: %w", err)
	}

	if email, ok := claims["email"].(string); ok {
		fmt.Printf("Signed in as %s\n", email)
	}
	if exp, ok := claims["exp"].(float64); ok {
		fmt.Printf("Session expires %s\n", time.Unix(int64(exp), 0).Format(time.RFC1123))
	}
	return nil
}

func newCmdLogin(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "login",
		Aliases: []string{"l"},
		Short:   "Sign in with Google.",
		Long: heredoc.Doc(`
			Ask the host to start a Google sign-in. The consent page opens in
			your browser; the host stores the session when you approve.
		`),
		RunE: func(command *cobra.Command, args []string) error {
			if s.Config.Token != "" {
				fmt.Println(
					"You are already signed in. Run 'nota account logout' first to change accounts.",
				)
				return nil
			}

			if err := s.Bridge.GoogleSignIn(command.Context()); err != nil {
				return fmt.Errorf("failed to start sign-in: %w", err)
			}

			fmt.Println("Check your browser to finish signing in.")
			return nil
		},
	}
}

func newCmdLogout(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session.",
		RunE: func(command *cobra.Command, args []string) error {
			if err := s.Bridge.Logout(command.Context()); err != nil {
				return fmt.Errorf("failed to sign out: %w", err)
			}

			if err := s.Config.ChangeToken(""); err != nil {
				return err
			}

			fmt.Println("Signed out.")
			return nil
		},
	}
}

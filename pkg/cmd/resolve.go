package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/notaterm/nota/internal/models"
	"github.com/notaterm/nota/internal/state"
)

// ResolveWorkspace picks the workspace a command operates on: the
// --workspace flag (by name or id), then the configured current workspace,
// then the host's first workspace.
func ResolveWorkspace(ctx context.Context, s *state.State) (models.Workspace, error) {
	workspaces, err := s.Bridge.ListWorkspaces(ctx)
	if err != nil {
		return models.Workspace{}, fmt.Errorf("failed to list workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		return models.Workspace{}, fmt.Errorf("no workspaces exist. Create one with 'nota workspace create [name]'")
	}

	if override := viper.GetString("workspace"); override != "" {
		for _, ws := range workspaces {
			if ws.ID == override || ws.Name == override {
				return ws, nil
			}
		}
		return models.Workspace{}, fmt.Errorf("no workspace named %q", override)
	}

	if current := s.Config.CurrentWorkspace; current != "" {
		for _, ws := range workspaces {
			if ws.ID == current {
				return ws, nil
			}
		}
	}

	return workspaces[0], nil
}

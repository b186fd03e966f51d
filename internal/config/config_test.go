package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/notaterm/nota/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	path := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	encoded, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.HostAddr == "" {
		t.Fatalf("expected default host address")
	}
	if cfg.UI.ThemeMode != "system" {
		t.Fatalf("expected default theme mode 'system', got %q", cfg.UI.ThemeMode)
	}
	if cfg.UI.SidebarCollapsed {
		t.Fatalf("expected sidebar expanded by default")
	}
}

func TestLoadAcceptsSupportedThemeModes(t *testing.T) {
	for _, mode := range []string{"system", "light", "dark"} {
		mode := mode
		t.Run(mode, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, map[string]any{
				"ui": map[string]any{"theme_mode": mode},
			})

			cfg, err := config.Load(home)
			if err != nil {
				t.Fatalf("expected load to succeed for mode %q: %v", mode, err)
			}
			if cfg.UI.ThemeMode != mode {
				t.Fatalf("expected mode %q, got %q", mode, cfg.UI.ThemeMode)
			}
		})
	}
}

func TestLoadRejectsUnsupportedThemeMode(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"ui": map[string]any{"theme_mode": "solarized"},
	})

	_, err := config.Load(home)
	if err == nil {
		t.Fatalf("expected load to fail for unsupported theme mode")
	}
	if !strings.Contains(err.Error(), "solarized") {
		t.Fatalf("expected error to name the bad mode, got %v", err)
	}
}

func TestSaveRoundTripsPreferences(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("initial load failed: %v", err)
	}

	if err := cfg.SetThemeMode("dark"); err != nil {
		t.Fatalf("SetThemeMode failed: %v", err)
	}
	if collapsed, err := cfg.ToggleSidebar(); err != nil || !collapsed {
		t.Fatalf("ToggleSidebar = (%v, %v), want (true, nil)", collapsed, err)
	}
	if err := cfg.SetCurrentWorkspace("ws-9"); err != nil {
		t.Fatalf("SetCurrentWorkspace failed: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if reloaded.UI.ThemeMode != "dark" {
		t.Fatalf("expected persisted theme 'dark', got %q", reloaded.UI.ThemeMode)
	}
	if !reloaded.UI.SidebarCollapsed {
		t.Fatalf("expected persisted sidebar collapse")
	}
	if reloaded.CurrentWorkspace != "ws-9" {
		t.Fatalf("expected persisted workspace, got %q", reloaded.CurrentWorkspace)
	}
}

func TestSetThemeModeRejectsInvalid(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := cfg.SetThemeMode("neon"); err == nil {
		t.Fatalf("expected invalid theme mode to be rejected")
	}
}

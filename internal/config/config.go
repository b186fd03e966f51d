package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/notaterm/nota/internal/constants"
)

// UIConfig is the persisted subset of UI state: preferences only, never
// note content.
type UIConfig struct {
	ThemeMode        string `yaml:"theme_mode"        json:"theme_mode"`
	SidebarCollapsed bool   `yaml:"sidebar_collapsed" json:"sidebar_collapsed"`
}

// Config is the front-end's local configuration. Everything else the
// application shows lives behind the desktop bridge.
type Config struct {
	HostAddr         string   `yaml:"host_addr"          json:"host_addr"`
	Token            string   `yaml:"token"              json:"token"`
	CurrentWorkspace string   `yaml:"current_workspace"  json:"current_workspace"`
	UI               UIConfig `yaml:"ui"                 json:"ui"`

	// Debounce overrides in milliseconds. Zero means the defaults.
	AutoSaveDebounceMS int `yaml:"autosave_debounce_ms" json:"autosave_debounce_ms"`
	SearchDebounceMS   int `yaml:"search_debounce_ms"   json:"search_debounce_ms"`

	path string `yaml:"-"`
}

var validThemeModes = []string{"system", "light", "dark"}

// ValidateThemeMode rejects anything but system, light, or dark.
func ValidateThemeMode(mode string) error {
	for _, valid := range validThemeModes {
		if mode == valid {
			return nil
		}
	}

	quoted := make([]string, len(validThemeModes))
	for i, name := range validThemeModes {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	return fmt.Errorf(
		"invalid theme mode: %q. Please choose from %s.",
		mode,
		strings.Join(quoted[:len(quoted)-1], ", ")+", or "+quoted[len(quoted)-1],
	)
}

func GetConfigPath(home string) string {
	return filepath.Join(
		home+constants.ConfigDir,
		fmt.Sprintf("%s.%s", constants.ConfigFile, constants.ConfigFileType),
	)
}

// EnsureConfigExists creates the config directory and an empty config file
// when they are missing.
func EnsureConfigExists(home string) error {
	path := GetConfigPath(home)
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	}

	return nil
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.HostAddr) == "" {
		cfg.HostAddr = constants.DefaultHostAddr
	}
	if strings.TrimSpace(cfg.UI.ThemeMode) == "" {
		cfg.UI.ThemeMode = "system"
	}
}

// Load reads the config file under home, applying defaults for anything
// unset. An empty file yields a fully defaulted config.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ensureDefaults()
	if err := ValidateThemeMode(cfg.UI.ThemeMode); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return fmt.Errorf("config has no backing file")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(cfg.path, data, 0o644)
}

// ChangeToken persists a new session token.
func (cfg *Config) ChangeToken(token string) error {
	cfg.Token = token
	return cfg.Save()
}

// SetThemeMode validates and persists the theme preference.
func (cfg *Config) SetThemeMode(mode string) error {
	if err := ValidateThemeMode(mode); err != nil {
		return err
	}
	cfg.UI.ThemeMode = mode
	return cfg.Save()
}

// ToggleSidebar flips and persists the sidebar-collapsed flag, returning the
// new value.
func (cfg *Config) ToggleSidebar() (bool, error) {
	cfg.UI.SidebarCollapsed = !cfg.UI.SidebarCollapsed
	return cfg.UI.SidebarCollapsed, cfg.Save()
}

// SetCurrentWorkspace persists the active workspace id.
func (cfg *Config) SetCurrentWorkspace(id string) error {
	cfg.CurrentWorkspace = id
	return cfg.Save()
}

package state

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/notaterm/nota/internal/autosave"
	"github.com/notaterm/nota/internal/bridge"
	"github.com/notaterm/nota/internal/cache"
	"github.com/notaterm/nota/internal/config"
	"github.com/notaterm/nota/internal/constants"
	"github.com/notaterm/nota/internal/search"
	"github.com/notaterm/nota/internal/store"
	"github.com/notaterm/nota/internal/sync"
	"github.com/notaterm/nota/internal/tabs"
	"github.com/notaterm/nota/internal/theme"
)

// State wires the front end together: local config, the bridge to the
// desktop host, the stores mirroring host data, and the controllers the
// event loop drives. Commands and the TUI share one instance.
type State struct {
	Config   *config.Config
	Bridge   bridge.Client
	Home     string
	Notes    *store.NoteStore
	Spaces   *store.WorkspaceStore
	Tabs     *tabs.Manager
	Autosave *autosave.Coordinator
	Search   *search.Controller
	Sync     *sync.Controller
	Previews *cache.PreviewCache
	Variant  theme.Variant
	Palette  theme.Palette
}

const previewCacheSize = 32

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	variant := theme.Resolve(theme.Mode(cfg.UI.ThemeMode), theme.DetectDark())

	return &State{
		Config:   cfg,
		Bridge:   bridge.NewHTTPClient(cfg.HostAddr, cfg.Token),
		Home:     home,
		Notes:    store.NewNoteStore(),
		Spaces:   store.NewWorkspaceStore(),
		Tabs:     tabs.NewManager(),
		Autosave: autosave.New(autosaveDebounce(cfg)),
		Search:   search.NewController(searchDebounce(cfg)),
		Sync:     sync.NewController(),
		Previews: cache.NewPreviewCache(previewCacheSize),
		Variant:  variant,
		Palette:  theme.PaletteFor(variant),
	}, nil
}

func autosaveDebounce(cfg *config.Config) time.Duration {
	if cfg.AutoSaveDebounceMS > 0 {
		return time.Duration(cfg.AutoSaveDebounceMS) * time.Millisecond
	}
	return constants.AutoSaveDebounce
}

func searchDebounce(cfg *config.Config) time.Duration {
	if cfg.SearchDebounceMS > 0 {
		return time.Duration(cfg.SearchDebounceMS) * time.Millisecond
	}
	return constants.SearchDebounce
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

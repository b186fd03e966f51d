package constants

import "time"

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.nota/`

	// DefaultHostAddr is where the desktop runtime listens for bridge calls.
	DefaultHostAddr = `http://localhost:6474`

	// AutoSaveDebounce is the quiet period after the last edit before the
	// active document is persisted.
	AutoSaveDebounce = 2000 * time.Millisecond

	// SearchDebounce is the quiet period after the last keystroke before a
	// search call is issued.
	SearchDebounce = 300 * time.Millisecond

	// AuthPollInterval and AuthPollTimeout bound the Drive authentication
	// polling loop started by the onboarding flow.
	AuthPollInterval = 1000 * time.Millisecond
	AuthPollTimeout  = 120000 * time.Millisecond

	// SyncStatusInterval is how often the sync badge refreshes while
	// authenticated.
	SyncStatusInterval = 10000 * time.Millisecond
)

// Package sync tracks cloud account state for the front end: the Google
// auth handshake, the background sync status poll, and the onboarding flow
// that walks a new user through connecting an account.
package sync

import (
	"errors"
	"time"

	"github.com/notaterm/nota/internal/constants"
	"github.com/notaterm/nota/internal/models"
)

// ErrAuthTimeout is surfaced when the auth poll exhausts its window without
// the host reporting an authorized account.
var ErrAuthTimeout = errors.New("Authentication timeout. Please try again.")

// Onboarding step indices. Welcome explains the app, connect starts the
// auth handshake, done confirms and closes.
const (
	StepWelcome = 0
	StepConnect = 1
	StepDone    = 2
)

// Controller holds account and sync state. Like the other controllers it is
// a pure state machine: the event loop arms poll timers from the intervals
// it returns and feeds poll results back in.
type Controller struct {
	now func() time.Time

	authenticated  bool
	authenticating bool
	authURL        string
	authDeadline   time.Time
	authErr        error

	account *models.DriveAccount
	status  *models.SyncStatus
	syncing bool
	syncErr error

	onboardingOpen bool
	onboardingStep int
}

func NewController() *Controller {
	return &Controller{now: time.Now}
}

func (c *Controller) Authenticated() bool { return c.authenticated }
func (c *Controller) Authenticating() bool { return c.authenticating }
func (c *Controller) AuthURL() string { return c.authURL }
func (c *Controller) AuthErr() error { return c.authErr }
func (c *Controller) Account() *models.DriveAccount { return c.account }
func (c *Controller) Status() *models.SyncStatus { return c.status }
func (c *Controller) Syncing() bool { return c.syncing }
func (c *Controller) SyncErr() error { return c.syncErr }

// BeginAuth records the consent URL the host handed back and starts the
// poll window. It returns the interval the event loop should poll at.
func (c *Controller) BeginAuth(authURL string) time.Duration {
	c.authenticating = true
	c.authURL = authURL
	c.authErr = nil
	c.authDeadline = c.now().Add(constants.AuthPollTimeout)
	return constants.AuthPollInterval
}

// HandleAuthPoll feeds one poll result in. Poll errors are ignored so a
// transient host hiccup does not abort the handshake. It returns whether
// polling should continue. Success flips the account to authenticated and
// advances onboarding past the connect step; exhausting the window surfaces
// ErrAuthTimeout as a terminal state.
func (c *Controller) HandleAuthPoll(authorized bool, err error) bool {
	if !c.authenticating {
		return false
	}

	if err == nil && authorized {
		c.authenticating = false
		c.authenticated = true
		c.authURL = ""
		c.authErr = nil
		if c.onboardingOpen && c.onboardingStep == StepConnect {
			c.onboardingStep = StepDone
		}
		return false
	}

	if !c.now().Before(c.authDeadline) {
		c.authenticating = false
		c.authURL = ""
		c.authErr = ErrAuthTimeout
		return false
	}

	return true
}

// CancelAuth abandons the handshake without recording an error.
func (c *Controller) CancelAuth() {
	c.authenticating = false
	c.authURL = ""
}

// ApplyAccount records the connected account details.
func (c *Controller) ApplyAccount(account models.DriveAccount, err error) {
	if err != nil {
		return
	}
	c.account = &account
	c.authenticated = account.Authorized
}

// ApplyStatus feeds one status poll in. Failures keep the previous status
// on screen and surface the error; the next successful poll clears it. It
// returns the interval until the next poll.
func (c *Controller) ApplyStatus(status models.SyncStatus, err error) time.Duration {
	if err != nil {
		c.syncErr = err
		return constants.SyncStatusInterval
	}

	c.syncErr = nil
	c.status = &status
	c.authenticated = status.Authenticated
	return constants.SyncStatusInterval
}

// BeginSync marks a manual sync as requested.
func (c *Controller) BeginSync() {
	c.syncing = true
	c.syncErr = nil
}

// CompleteSync resolves a manual sync trigger.
func (c *Controller) CompleteSync(err error) {
	c.syncing = false
	c.syncErr = err
}

// SignOut drops all account and sync state.
func (c *Controller) SignOut() {
	c.authenticated = false
	c.authenticating = false
	c.authURL = ""
	c.authErr = nil
	c.account = nil
	c.status = nil
	c.syncing = false
	c.syncErr = nil
}

// ShowOnboarding opens the flow at the welcome step.
func (c *Controller) ShowOnboarding() {
	c.onboardingOpen = true
	c.onboardingStep = StepWelcome
}

// HideOnboarding closes the flow wherever it stands.
func (c *Controller) HideOnboarding() {
	c.onboardingOpen = false
}

func (c *Controller) OnboardingOpen() bool { return c.onboardingOpen }
func (c *Controller) OnboardingStep() int { return c.onboardingStep }

// NextStep advances onboarding, clamping at the final step.
func (c *Controller) NextStep() {
	if c.onboardingStep < StepDone {
		c.onboardingStep++
	}
}

// PrevStep steps back, clamping at the first step.
func (c *Controller) PrevStep() {
	if c.onboardingStep > StepWelcome {
		c.onboardingStep--
	}
}

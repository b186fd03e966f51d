// Package search drives the search overlay: debounced queries, stale-result
// suppression, and keyboard selection over the result list.
package search

import (
	"strings"
	"time"

	"github.com/notaterm/nota/internal/models"
)

// Controller is the overlay's state machine. Queries are debounced with a
// token per keystroke; completions are matched against the query text so a
// slow response for an earlier query never overwrites results for the
// current one.
type Controller struct {
	open     bool
	query    string
	debounce time.Duration

	token   int
	loading bool

	results  []models.SearchResult
	selected int
	err      error
}

func NewController(debounce time.Duration) *Controller {
	return &Controller{debounce: debounce}
}

func (c *Controller) IsOpen() bool { return c.open }
func (c *Controller) Query() string { return c.query }
func (c *Controller) Loading() bool { return c.loading }
func (c *Controller) Err() error { return c.err }
func (c *Controller) Results() []models.SearchResult { return c.results }
func (c *Controller) SelectedIndex() int { return c.selected }

// Open shows the overlay with a blank slate.
func (c *Controller) Open() {
	c.open = true
	c.reset()
}

// Close hides the overlay and discards its state.
func (c *Controller) Close() {
	c.open = false
	c.reset()
}

func (c *Controller) reset() {
	c.query = ""
	c.token++
	c.loading = false
	c.results = nil
	c.selected = 0
	c.err = nil
}

// SetQuery records a keystroke and restarts the debounce window. Blank
// queries short-circuit: results clear immediately and no timer is armed.
func (c *Controller) SetQuery(query string) (token int, delay time.Duration, fire bool) {
	c.query = query
	c.token++

	if strings.TrimSpace(query) == "" {
		c.loading = false
		c.results = nil
		c.selected = 0
		c.err = nil
		return 0, 0, false
	}

	return c.token, c.debounce, true
}

// Fire is called when a debounce timer expires. Only the latest token issues
// a query; earlier timers fire into nothing.
func (c *Controller) Fire(token int) (string, bool) {
	if token != c.token || strings.TrimSpace(c.query) == "" {
		return "", false
	}
	c.loading = true
	return c.query, true
}

// Complete applies a finished query. Responses for anything but the text
// currently in the input are stale and dropped. Failures clear the result
// list and surface the error.
func (c *Controller) Complete(query string, results []models.SearchResult, err error) {
	if query != c.query {
		return
	}

	c.loading = false

	if err != nil {
		c.results = nil
		c.selected = 0
		c.err = err
		return
	}

	c.err = nil
	c.results = results
	if c.selected >= len(results) {
		c.selected = 0
	}
}

// MoveUp moves the selection toward the first result.
func (c *Controller) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves the selection toward the last result.
func (c *Controller) MoveDown() {
	if c.selected < len(c.results)-1 {
		c.selected++
	}
}

// Selected returns the highlighted result when one exists.
func (c *Controller) Selected() (models.SearchResult, bool) {
	if len(c.results) == 0 || c.selected < 0 || c.selected >= len(c.results) {
		return models.SearchResult{}, false
	}
	return c.results[c.selected], true
}

// Choose closes the overlay and returns the note to open.
func (c *Controller) Choose() (models.Note, bool) {
	result, ok := c.Selected()
	if !ok {
		return models.Note{}, false
	}
	c.Close()
	return result.Note, true
}

package bridge

import (
	"context"
	"net/http"
)

// WindowController exposes the host's window-chrome commands. These are
// fire-and-forget: the host owns the window and reports nothing back, so
// errors are dropped.
type WindowController interface {
	MinimizeWindow(ctx context.Context)
	MaximizeWindow(ctx context.Context)
	CloseWindow(ctx context.Context)
}

func (c *HTTPClient) MinimizeWindow(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/v1/window/minimize", nil, nil)
}

func (c *HTTPClient) MaximizeWindow(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/v1/window/maximize", nil, nil)
}

func (c *HTTPClient) CloseWindow(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/v1/window/close", nil, nil)
}

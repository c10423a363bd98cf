package handler

import "net/http"

// Response renders a single HTTP response: it sets headers and status and
// writes the body. A non-nil error is passed to the router's error handler,
// which owns the wire format for failures.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc processes one request through a typed context and returns the
// Response that renders the result. Binding, validation, and shaping all
// happen before the Response is produced, so rendering stays side-effect
// free until the handler has decided what to send.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler renders errors surfaced by handlers or their responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps a HandlerFunc with cross-cutting behavior. Chains compose
// outside-in: the first middleware registered sees the request first.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

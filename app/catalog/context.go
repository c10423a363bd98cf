package catalog

import (
	"context"
	"net/http"
	"time"
)

// Context is the request context for catalog handlers. It carries the store
// alongside the usual request state so handlers stay free of globals.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string
	store  Store
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} { return c.r.Context().Done() }

// Err delegates to the request's context.
func (c *Context) Err() error { return c.r.Context().Err() }

// Value delegates to the request's context.
func (c *Context) Value(key any) any { return c.r.Context().Value(key) }

// SetValue stores a value in the request's context, retrievable via Value.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Request returns the HTTP request.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the HTTP response writer.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the captured path parameter for key, or "".
func (c *Context) Param(key string) string { return c.params[key] }

// Params returns every captured path parameter.
func (c *Context) Params() map[string]string { return c.params }

// Store returns the catalog store.
func (c *Context) Store() Store { return c.store }

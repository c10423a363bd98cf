package router

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Context is the default request context used when no custom factory is
// configured. It carries the request, the response writer, the captured path
// parameters, and request-scoped values set by middleware.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params map[string]string

	mu     sync.RWMutex
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params}
}

// Request returns the underlying HTTP request.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the response writer for the request.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the captured path parameter for key, or "" when absent.
func (c *Context) Param(key string) string { return c.params[key] }

// Params returns every captured path parameter.
func (c *Context) Params() map[string]string { return c.params }

// SetValue stores a request-scoped value, retrievable via Value.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Deadline implements context.Context by delegating to the request context.
func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }

// Done implements context.Context by delegating to the request context.
func (c *Context) Done() <-chan struct{} { return c.r.Context().Done() }

// Err implements context.Context by delegating to the request context.
func (c *Context) Err() error { return c.r.Context().Err() }

// Value returns values set via SetValue before falling back to the request
// context.
func (c *Context) Value(key any) any {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v
	}
	return c.r.Context().Value(key)
}

var _ context.Context = (*Context)(nil)

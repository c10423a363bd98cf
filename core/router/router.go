package router

import (
	"net/http"

	"github.com/TylerBromley/bindkit/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
// It matches registered patterns in declaration order, captures named path
// segments, and supports middleware chaining.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])

	// Method registers a handler for the given HTTP methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware applied to every matched handler.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options. The router supports
// generic context types for type-safe request handling; custom context types
// require WithContextFactory.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}

// Package middleware provides reusable HTTP middleware compatible with the
// typed handler chain: request ID propagation and structured request logging.
package middleware

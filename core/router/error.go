package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TylerBromley/bindkit/core/handler"
)

var (
	// ErrNoContextFactory indicates a custom context type was used without
	// providing WithContextFactory.
	ErrNoContextFactory = errors.New("no context factory provided")

	// ErrRouteNotFound indicates no registered pattern matched the request
	// path. It is distinct from validation failures: an unknown path is 404,
	// a matched path with bad parameters is not.
	ErrRouteNotFound = &routeError{status: http.StatusNotFound, msg: "route not found"}

	// ErrMethodNotAllowed indicates the path matched but no route accepts
	// the request method.
	ErrMethodNotAllowed = &routeError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}

	// ErrNilResponse indicates a handler returned a nil response.
	ErrNilResponse = &routeError{status: http.StatusInternalServerError, msg: "nil response"}
)

// routeError is a routing failure carrying its HTTP status.
type routeError struct {
	status int
	msg    string
}

func (e *routeError) Error() string   { return e.msg }
func (e *routeError) StatusCode() int { return e.status }

// statusCode is implemented by errors carrying their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes plain text errors, mapping the status from the
// error when it provides one.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError is implemented by the error handed to error handlers when a
// handler panics, exposing the panic value and captured stack.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any { return e.value }

func (e *panicError) Stack() []byte { return e.stack }

// Unwrap lets errors.Is and errors.As see through recovered error panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

package response

import (
	"errors"
	"net/http"

	"github.com/TylerBromley/bindkit/core/binder"
	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/schema"
)

// HTTPError represents a structured error response that implements the error
// interface.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with attached details.
func (e HTTPError) WithDetails(details any) HTTPError {
	e.Details = details
	return e
}

// Predefined HTTP errors.
var (
	ErrBadRequest = HTTPError{
		Status:  http.StatusBadRequest,
		Code:    "bad_request",
		Message: http.StatusText(http.StatusBadRequest),
	}

	ErrNotFound = HTTPError{
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: http.StatusText(http.StatusNotFound),
	}

	ErrMethodNotAllowed = HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Code:    "method_not_allowed",
		Message: http.StatusText(http.StatusMethodNotAllowed),
	}

	ErrRequestEntityTooLarge = HTTPError{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    "request_entity_too_large",
		Message: http.StatusText(http.StatusRequestEntityTooLarge),
	}

	ErrUnsupportedMediaType = HTTPError{
		Status:  http.StatusUnsupportedMediaType,
		Code:    "unsupported_media_type",
		Message: http.StatusText(http.StatusUnsupportedMediaType),
	}

	ErrUnprocessableEntity = HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Code:    "validation_failed",
		Message: http.StatusText(http.StatusUnprocessableEntity),
	}

	ErrInternalServerError = HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_server_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
)

// statusCode is implemented by errors carrying their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// ConvertError maps any error to an HTTPError. Validation failures become
// 422 with every field error listed; binder transport failures map to their
// HTTP equivalents; anything else falls back to 500.
func ConvertError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var verrs schema.Errors
	if errors.As(err, &verrs) {
		return ValidationError(verrs)
	}

	switch {
	case errors.Is(err, binder.ErrMalformedBody):
		return ErrBadRequest.WithMessage(err.Error())
	case errors.Is(err, binder.ErrFailedToParseForm):
		return ErrBadRequest.WithMessage(err.Error())
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.WithMessage(err.Error())
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge.WithMessage(err.Error())
	}

	if sc, ok := err.(statusCode); ok {
		return HTTPError{
			Status:  sc.StatusCode(),
			Code:    "error",
			Message: err.Error(),
		}
	}

	return ErrInternalServerError
}

// ValidationError builds the 422 response for a set of field errors,
// preserving their order.
func ValidationError(errs schema.Errors) HTTPError {
	details := make([]map[string]any, 0, len(errs))
	for _, e := range errs {
		d := map[string]any{
			"source":  e.Source,
			"path":    e.Path,
			"kind":    e.Kind,
			"message": e.Message,
		}
		if len(e.Params) > 0 {
			d["params"] = e.Params
		}
		details = append(details, d)
	}
	return ErrUnprocessableEntity.WithDetails(details)
}

// Error returns a handler response that propagates the given error to the
// router's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

// JSONErrorHandler renders errors as structured JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ConvertError(err)
	_ = JSONWithStatus(httpErr, httpErr.Status)(ctx.ResponseWriter(), ctx.Request())
}

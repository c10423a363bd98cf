package binder

import "errors"

// Error variables define transport-level binding failures, as opposed to the
// per-field validation errors carried by schema.Errors.
var (
	// ErrMalformedBody indicates the request body is not well-formed JSON.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a
	// media type the binder does not support for the declared sources.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge indicates the request body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// multipart boundaries or invalid URL-encoded data.
	ErrFailedToParseForm = errors.New("failed to parse form data")
)

package binder

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultMaxBodySize is the maximum size for JSON request bodies (1MB).
const DefaultMaxBodySize = 1 << 20

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// decodeBody reads and decodes the JSON request body. Numbers decode as
// json.Number so integral and fractional values stay distinguishable. An
// empty body returns (nil, false, nil) so absent bodies and absent fields
// resolve the same way.
func decodeBody(r *http.Request) (any, bool, error) {
	if r.Body == nil {
		return nil, false, nil
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != "application/json" {
			return nil, false, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}
	}

	// +1 byte so oversized bodies are detectable without buffering them whole
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if len(body) > DefaultMaxBodySize {
		return nil, false, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxBodySize)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, false, nil
	}

	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	// trailing data after the JSON value is a malformed body, not extra input
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, false, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedBody)
	}

	return doc, true, nil
}

// parseFormValues parses URL-encoded or multipart form data and returns the
// field values keyed by form name.
func parseFormValues(r *http.Request) (map[string][]string, error) {
	ct := r.Header.Get("Content-Type")
	mediaType := ct
	if idx := strings.Index(ct, ";"); idx != -1 {
		mediaType = strings.TrimSpace(ct[:idx])
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.PostForm, nil

	case strings.HasPrefix(mediaType, "multipart/form-data"):
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		if r.MultipartForm == nil {
			return map[string][]string{}, nil
		}
		return r.MultipartForm.Value, nil

	default:
		return nil, fmt.Errorf("%w: got %q, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}
}

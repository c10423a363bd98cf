package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// Missing reports a required field without a default that was absent
	// from the request.
	Missing ErrorKind = "missing"

	// TypeMismatch reports a raw value that could not be coerced to the
	// declared type, including unknown enum literals and malformed URLs.
	TypeMismatch ErrorKind = "type_mismatch"

	// ConstraintViolation reports a successfully coerced value that failed
	// a declared constraint.
	ConstraintViolation ErrorKind = "constraint_violation"
)

// Error is a single validation failure tied to a field path.
type Error struct {
	Source  Source         `json:"source"`
	Path    []string       `json:"path"`
	Kind    ErrorKind      `json:"kind"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s %s: %s: %s", e.Source, strings.Join(e.Path, "."), e.Kind, e.Message)
}

// Errors aggregates every validation failure of one request in declaration
// order. It implements error; binding never stops at the first failure.
type Errors []Error

// Error summarizes the first few entries.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(errs[i].Error())
	}
	if len(errs) > lim {
		fmt.Fprintf(&b, "; ... (total %d)", len(errs))
	}
	return b.String()
}

func missingError(source Source, path []string) Error {
	return Error{
		Source:  source,
		Path:    path,
		Kind:    Missing,
		Message: "field is required",
	}
}

func mismatchError(source Source, path []string, msg string, params map[string]any) Error {
	return Error{
		Source:  source,
		Path:    path,
		Kind:    TypeMismatch,
		Message: msg,
		Params:  params,
	}
}

func constraintError(source Source, path []string, msg string, params map[string]any) Error {
	return Error{
		Source:  source,
		Path:    path,
		Kind:    ConstraintViolation,
		Message: msg,
		Params:  params,
	}
}

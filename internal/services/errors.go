package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindIllFormedInput ErrorKind = "ILL_FORMED_INPUT"
	KindUpstream       ErrorKind = "UPSTREAM"
	KindMalformedJSON  ErrorKind = "MALFORMED_JSON"
	KindSchemaMismatch ErrorKind = "SCHEMA_MISMATCH"
)

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first classified error in err's chain, or ""
// when there is none.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// ValidationError reports an inbound record that violates its field constraints.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Kind() ErrorKind {
	return KindIllFormedInput
}

// UpstreamError reports a failed call to the completion endpoint.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Kind() ErrorKind {
	return KindUpstream
}

// ParseError reports model output that could not be shaped into a response record.
type ParseError struct {
	ErrKind ErrorKind
	Err     error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Kind() ErrorKind {
	return e.ErrKind
}

func malformedJSON(err error) *ParseError {
	return &ParseError{ErrKind: KindMalformedJSON, Err: fmt.Errorf("invalid JSON in model response: %w", err)}
}

func schemaMismatch(format string, args ...any) *ParseError {
	return &ParseError{ErrKind: KindSchemaMismatch, Err: fmt.Errorf(format, args...)}
}

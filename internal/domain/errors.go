package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed audit request. No network call is
// made when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// FetchError reports a non-2xx response from the audited site.
type FetchError struct {
	URL        string
	StatusCode int
	StatusText string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.StatusText)
}

// TransportError wraps DNS, connection and timeout failures.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AnalyzerError reports an unexpected failure inside one analyzer.
type AnalyzerError struct {
	Dimension Dimension
	Err       error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("%s analyzer: %v", e.Dimension, e.Err)
}

func (e *AnalyzerError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsFetch(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}

func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsAnalyzer(err error) bool {
	var target *AnalyzerError
	return errors.As(err, &target)
}

// IsTargetUnreachable reports whether err originates from the audited site
// rather than from this program.
func IsTargetUnreachable(err error) bool {
	return IsFetch(err) || IsTransport(err)
}

// Package errors provides structured error types for the packaging
// pipeline. Errors carry a category, a stable code, and enough context
// (platform, file path) for the orchestrator to decide whether a failure
// is platform-scoped or fatal to the whole run.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeManifest ErrorType = "manifest"
	ErrorTypePlatform ErrorType = "platform"
	ErrorTypeRender   ErrorType = "render"
	ErrorTypeEmit     ErrorType = "emit"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeNetwork  ErrorType = "network"
)

// PackagerError is a structured error with packaging context.
type PackagerError struct {
	Type        ErrorType
	Code        string
	Message     string
	Platform    string
	FilePath    string
	Cause       error
	Recoverable bool
}

// Error implements the error interface.
func (e *PackagerError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Platform != "" {
		parts = append(parts, "platform:"+e.Platform)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PackagerError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type and code.
func (e *PackagerError) Is(target error) bool {
	var t *PackagerError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithPlatform attaches the platform being processed.
func (e *PackagerError) WithPlatform(platform string) *PackagerError {
	e.Platform = platform

	return e
}

// WithFile attaches the file path involved in the failure.
func (e *PackagerError) WithFile(path string) *PackagerError {
	e.FilePath = path

	return e
}

// Error creation functions

// NewManifestFetchError wraps a network or parse failure while fetching
// the web app manifest. Always recoverable: generation proceeds with a
// configuration derived from the URL alone.
func NewManifestFetchError(url string, cause error) *PackagerError {
	return &PackagerError{
		Type:        ErrorTypeManifest,
		Code:        "manifest_fetch",
		Message:     fmt.Sprintf("could not fetch manifest from %s", url),
		Cause:       cause,
		Recoverable: true,
	}
}

// NewUnsupportedPlatformError reports a platform outside the supported
// set. A configuration mistake by the caller, never retried.
func NewUnsupportedPlatformError(name string) *PackagerError {
	return &PackagerError{
		Type:        ErrorTypePlatform,
		Code:        "unsupported_platform",
		Message:     fmt.Sprintf("unsupported platform %q (supported: android, ios, macos, windows)", name),
		Recoverable: false,
	}
}

// NewRenderError reports a required scalar field that is still empty
// after defaulting. Aborts rendering for the current platform only.
func NewRenderError(field string) *PackagerError {
	return &PackagerError{
		Type:        ErrorTypeRender,
		Code:        "missing_field",
		Message:     fmt.Sprintf("required field %q is empty", field),
		Recoverable: false,
	}
}

// NewEmitError wraps a filesystem write failure for a single output file.
func NewEmitError(path string, cause error) *PackagerError {
	return &PackagerError{
		Type:        ErrorTypeEmit,
		Code:        "write_failed",
		Message:     "failed to write file",
		FilePath:    path,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewConfigError reports invalid tool configuration (bad URL, bad output
// path). Fatal to the run: no platform can proceed.
func NewConfigError(message string, cause error) *PackagerError {
	return &PackagerError{
		Type:        ErrorTypeConfig,
		Code:        "invalid_config",
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// IsRecoverable reports whether err is a PackagerError marked recoverable.
func IsRecoverable(err error) bool {
	var pe *PackagerError
	if errors.As(err, &pe) {
		return pe.Recoverable
	}

	return false
}

// IsType reports whether err is a PackagerError of the given type.
func IsType(err error, t ErrorType) bool {
	var pe *PackagerError
	if errors.As(err, &pe) {
		return pe.Type == t
	}

	return false
}

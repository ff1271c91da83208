// Package toolerr defines the errors tool calls can fail with and the
// accessors used to turn any of them into a structured failure.
package toolerr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidArguments     = "INVALID_ARGUMENTS"
	CodeUnknownTool          = "UNKNOWN_TOOL"
	CodeUnknownAction        = "UNKNOWN_ACTION"
	CodeInternal             = "INTERNAL_ERROR"
)

// ErrorCode is an error carrying a machine readable code.
type ErrorCode interface {
	error
	ErrorCode() string
}

// GetErrorCode returns the code of the first error in err's chain that has
// one, or CodeInternal.
func GetErrorCode(err error) string {
	var cerr ErrorCode
	if errors.As(err, &cerr) {
		if code := cerr.ErrorCode(); code != "" {
			return code
		}
	}
	return CodeInternal
}

// ErrorSuggestions is an error carrying ordered remediation hints.
type ErrorSuggestions interface {
	error
	Suggestions() []string
}

func GetErrorSuggestions(err error) []string {
	var serr ErrorSuggestions
	if errors.As(err, &serr) {
		return serr.Suggestions()
	}
	return nil
}

// ErrorDetails is an error carrying structured side-channel detail.
type ErrorDetails interface {
	error
	Details() map[string]any
}

func GetErrorDetails(err error) map[string]any {
	var derr ErrorDetails
	if errors.As(err, &derr) {
		return derr.Details()
	}
	return nil
}

// IsCoded reports whether err or anything it wraps carries a code.
func IsCoded(err error) bool {
	var cerr ErrorCode
	return errors.As(err, &cerr)
}

// ValidationError is raised before any request is sent when an argument breaks
// a naming, format or presence rule.
type ValidationError struct {
	Field   string
	Code    string
	Message string
	Hints   []string
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, code, message string, suggestions ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    code,
		Message: message,
		Hints:   suggestions,
	}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) ErrorCode() string { return e.Code }

func (e *ValidationError) Suggestions() []string { return e.Hints }

func (e *ValidationError) Details() map[string]any {
	if e.Field == "" {
		return nil
	}
	return map[string]any{"field": e.Field}
}

// NotFoundError is raised when a human supplied name cannot be resolved to an
// identifier.
type NotFoundError struct {
	Code       string
	Resource   string
	Identifier string
	Hints      []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
}

func (e *NotFoundError) ErrorCode() string { return e.Code }

func (e *NotFoundError) Suggestions() []string { return e.Hints }

func (e *NotFoundError) Details() map[string]any {
	return map[string]any{
		"resource":   e.Resource,
		"identifier": e.Identifier,
	}
}

// UnknownToolError is returned when no handler accepts a tool name.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

func (e *UnknownToolError) ErrorCode() string { return CodeUnknownTool }

// UnknownActionError is returned when a family tool receives an action it
// does not implement.
type UnknownActionError struct {
	Tool    string
	Action  string
	Actions []string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q for tool %s", e.Action, e.Tool)
}

func (e *UnknownActionError) ErrorCode() string { return CodeUnknownAction }

func (e *UnknownActionError) Suggestions() []string {
	if len(e.Actions) == 0 {
		return nil
	}
	return []string{"Valid actions for " + e.Tool + ": " + strings.Join(e.Actions, ", ")}
}

func (e *UnknownActionError) Details() map[string]any {
	return map[string]any{"tool": e.Tool, "action": e.Action}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeRateLimited        = "RATE_LIMITED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeAPIError           = "API_ERROR"
	CodeNetworkError       = "NETWORK_ERROR"
	CodeRequestError       = "REQUEST_ERROR"
)

const (
	MessageUnauthorized       = "Authentication failed: the API token is invalid or has expired."
	MessageForbidden          = "Permission denied: the API token is not allowed to access this resource."
	MessageNotFound           = "The requested resource was not found."
	MessageConflict           = "The request conflicts with the current state of the resource."
	MessageRateLimited        = "Rate limit exceeded: too many requests were sent to the API. Wait before retrying."
	MessageServiceUnavailable = "The API is temporarily unavailable. Try again later."
	MessageUnknown            = "An unknown API error occurred."
	MessageNetwork            = "Could not reach the API. Check your network connection and the configured base URL."
)

// Error is a failed API call. Message is the normalized, user facing text;
// the status code and raw body are kept for diagnostics only.
type Error struct {
	Code          string
	Message       string
	StatusCode    int
	ResponseBody  []byte
	OriginalError error

	// Hints replace the suggestions derived from Code when set.
	Hints []string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) ErrorCode() string {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.OriginalError
}

func (e *Error) Details() map[string]any {
	if e.StatusCode == 0 {
		return nil
	}
	return map[string]any{"statusCode": e.StatusCode}
}

func (e *Error) Suggestions() []string {
	if len(e.Hints) > 0 {
		return e.Hints
	}
	switch e.Code {
	case CodeUnauthorized:
		return []string{"Check that SKYPORT_API_TOKEN holds a valid, unexpired token"}
	case CodeForbidden:
		return []string{"Check the token's permissions and the configured team scope (SKYPORT_TEAM_ID)"}
	case CodeRateLimited:
		return []string{"Wait a moment before sending more requests"}
	case CodeNetworkError:
		return []string{"Check your network connection", "Check SKYPORT_API_BASE_URL and SKYPORT_VM_BASE_URL"}
	}
	return nil
}

func (e *Error) ResponseBodyString() string {
	return string(e.ResponseBody)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// WithHints sets the suggestions of the *Error in err's chain, if any, and
// returns err.
func WithHints(err error, hints ...string) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		apiErr.Hints = hints
	}
	return err
}

// errorFromResponse maps a non-2xx response to an *Error.
func errorFromResponse(status int, body []byte) *Error {
	apiErr := &Error{
		StatusCode:   status,
		ResponseBody: body,
	}

	serverMessage := messageFromBody(body)

	switch status {
	case http.StatusUnauthorized:
		apiErr.Code, apiErr.Message = CodeUnauthorized, MessageUnauthorized
	case http.StatusForbidden:
		apiErr.Code, apiErr.Message = CodeForbidden, MessageForbidden
	case http.StatusNotFound:
		apiErr.Code, apiErr.Message = CodeNotFound, firstNonEmpty(serverMessage, MessageNotFound)
	case http.StatusConflict:
		apiErr.Code, apiErr.Message = CodeConflict, firstNonEmpty(serverMessage, MessageConflict)
	case http.StatusTooManyRequests:
		apiErr.Code, apiErr.Message = CodeRateLimited, MessageRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		apiErr.Code, apiErr.Message = CodeServiceUnavailable, MessageServiceUnavailable
	default:
		apiErr.Code, apiErr.Message = CodeAPIError, firstNonEmpty(serverMessage, MessageUnknown)
	}

	return apiErr
}

// messageFromBody returns the body's "message" field, else its "error" field,
// when either is a non-empty string.
func messageFromBody(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"message", "error"} {
		if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// sessionExpiredMessage is the user-facing message attached to every 403
// so callers can show it without string-matching backend bodies.
const sessionExpiredMessage = "session expired, please log in again"

// APIError is the one error shape every backend failure is normalized
// into: transport failures, HTTP failures with JSON bodies, HTTP failures
// with text bodies, and authorization expiry.
type APIError struct {
	// Message is user-presentable, resolved from the response body when
	// possible.
	Message string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Details carries the backend's structured validation payload, when a
	// JSON body provided one.
	Details json.RawMessage
	// AuthError marks a 403: the stored token has been cleared and the
	// caller should redirect to login.
	AuthError bool
	// Err is the underlying transport error for StatusCode 0.
	Err error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsStatus reports whether err (or any wrapped error) is an APIError with
// the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsAuthError reports whether err marks an invalidated session.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthError
}

// newAPIError resolves the error message and validation details from a
// non-2xx response body. Message preference: a message/error/mensaje field
// in a JSON body, then the raw text body, then the HTTP status text.
func newAPIError(status int, isJSON bool, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	if isJSON {
		var payload map[string]json.RawMessage
		if json.Unmarshal(body, &payload) == nil && payload != nil {
			e.Message = firstString(payload, "message", "error", "mensaje")
			switch {
			case payload["errors"] != nil:
				e.Details = payload["errors"]
			case payload["detalle"] != nil:
				e.Details = payload["detalle"]
			default:
				e.Details = json.RawMessage(body)
			}
		}
	}
	if e.Message == "" {
		e.Message = string(body)
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func firstString(payload map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		raw, ok := payload[k]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	return ""
}

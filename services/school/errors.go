package schoolsvc

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ConnectionErrMsg is the fixed user-facing message shown when the backend
// never responded at all.
const ConnectionErrMsg = "Connection error. Please check if backend is running."

// APIError is a non-2xx response from the backend, carrying the decoded
// server message (or the HTTP status text when none was decodable).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("school api: %s (HTTP %d)", e.Message, e.StatusCode)
}

type connectionError struct {
	err error
}

func (e *connectionError) Error() string {
	return "school api: connection error: " + e.err.Error()
}

// IsUnauthorized reports whether err is a 401 from the backend; the sole
// session-invalidation signal.
func IsUnauthorized(err error) bool {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsConnectionError reports whether the request never completed.
func IsConnectionError(err error) bool {
	_, ok := errors.Cause(err).(*connectionError)
	return ok
}

// ErrorMessage extracts the message to surface to the user for a failed
// call, falling back to `fallback` when the server provided none.
func ErrorMessage(err error, fallback string) string {
	switch e := errors.Cause(err).(type) {
	case *APIError:
		if e.Message != "" {
			return e.Message
		}
	case *connectionError:
		return ConnectionErrMsg
	}
	return fallback
}

package dto

import "errors"

// APIError is an application-level failure reported by the backend
// through success=false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "unknown error"
	}
	return e.Message
}

// IsAPIError reports whether err carries a backend supplied message.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

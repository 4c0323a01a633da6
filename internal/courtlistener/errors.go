// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package courtlistener

import "errors"

// ErrorKind classifies a failed API call. Callers branch on the kind;
// the message is the single human-readable line shown to the user.
type ErrorKind int

const (
	// KindAuth covers HTTP 401 and 403: missing or invalid credential.
	KindAuth ErrorKind = iota
	// KindRateLimit covers HTTP 429.
	KindRateLimit
	// KindNotFound covers HTTP 404.
	KindNotFound
	// KindRemote covers any other non-2xx status.
	KindRemote
	// KindTimeout covers requests that exceeded the configured timeout.
	KindTimeout
	// KindConnection covers DNS failures, refused and reset connections.
	KindConnection
)

// APIError is the normalized form of every gateway failure. Error()
// returns one descriptive line, never a stack trace or a bare status code.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string { return e.Message }

// KindOf returns the ErrorKind of err and true when err is an APIError.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
)

var (
	// ErrSessionCookieNotFound is returned when a login response does not carry the SID cookie.
	ErrSessionCookieNotFound = errors.New("session cookie not found in login response")
	// ErrUnexpectedPayload is returned when a response body can not be interpreted.
	ErrUnexpectedPayload = errors.New("unexpected response payload")
	// ErrBackoff is returned when login attempts are suspended after repeated failures.
	ErrBackoff = errors.New("too many failed login attempts: backoff is in use")
	// ErrMissingCredentials is returned when there is nothing to log in with.
	ErrMissingCredentials = errors.New("credentials are empty: login first")
)

// unauthorizedStatuses are the codes qBittorrent uses for a missing, expired or banned session.
var unauthorizedStatuses = []int{http.StatusUnauthorized, http.StatusForbidden}

// HTTPError provides a way to pass more meaningful information regarding http errors without breaking interfaces.
type HTTPError struct {
	Err        error
	StatusCode int
	Body       string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%s, status code: %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// IsUnauthorized checks if the error was caused by the server rejecting the session or the credentials.
func IsUnauthorized(err error) bool {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}

	return funk.ContainsInt(unauthorizedStatuses, httpErr.StatusCode)
}

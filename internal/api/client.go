package api

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Client is a wrapper around the qBittorrent HTTP Client with session handling capabilities.
// A request rejected with 401 or 403 drops the session and is repeated once with a fresh one.
type Client interface {
	// SpeedLimitsMode returns true if alternative speed limits are enabled.
	SpeedLimitsMode() (bool, error)
	// RequestToggle flips the alternative speed limits mode.
	// The remote endpoint has no "set" semantics: the caller is responsible for
	// checking that the current state differs from targetState.
	RequestToggle(targetState bool) error
	// Ping checks if qBittorrent is available and accepts the session.
	Ping() error
}

type apiClient struct {
	httpClient HTTPClient
	auth       Authenticator
}

// NewAPIClient returns a new instance of Client.
func NewAPIClient(http HTTPClient, auth Authenticator) Client {
	return &apiClient{
		httpClient: http,
		auth:       auth,
	}
}

func (a *apiClient) SpeedLimitsMode() (bool, error) {
	var enabled bool

	err := a.withSession(func(session *Session) error {
		var err error

		enabled, err = a.httpClient.SpeedLimitsMode(session)

		return err
	})

	return enabled, err
}

func (a *apiClient) RequestToggle(targetState bool) error {
	log.WithField("target_state", targetState).Debug("client: requesting speed limits mode toggle")

	return a.withSession(a.httpClient.ToggleSpeedLimitsMode)
}

func (a *apiClient) Ping() error {
	return a.withSession(func(session *Session) error {
		_, err := a.httpClient.Version(session)

		return err
	})
}

func (a *apiClient) withSession(call func(session *Session) error) error {
	session, err := a.auth.EnsureSession()
	if err != nil {
		return a.sessionError(err)
	}

	err = call(session)
	if err == nil || !IsUnauthorized(err) {
		return err
	}

	log.WithError(err).Info("client: session rejected, authenticating again")

	a.auth.Invalidate()

	session, err = a.auth.Authenticate()
	if err != nil {
		return a.sessionError(err)
	}

	return call(session)
}

func (a *apiClient) sessionError(err error) error {
	return fmt.Errorf("unable to get session: %w", err)
}

package api

import (
	"sync"

	"github.com/futurehomeno/cliffhanger/backoff"
	"github.com/futurehomeno/cliffhanger/notification"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
)

const notificationQBittorrentStatusOffline = "qbittorrent_status_offline"

// Notifier is a service responsible for sending push notifications.
type Notifier interface {
	Event(event *notification.Event) error
}

// Authenticator is the interface for the qBittorrent authenticator.
// It is the single owner of the WebUI session.
type Authenticator interface {
	// Authenticate logs in with the configured credentials and replaces the held session.
	// On failure the held session is dropped.
	// Subsequent failures are throttled by the login backoff.
	Authenticate() (*Session, error)
	// Login is an explicit login requested by the user. It skips and resets the login backoff.
	Login() (*Session, error)
	// Session returns the currently held session, if any.
	Session() (*Session, bool)
	// EnsureSession returns a session valid for the next call according to the configured session policy,
	// authenticating if needed.
	EnsureSession() (*Session, error)
	// Invalidate drops the held session.
	Invalidate()
}

type authenticator struct {
	mu                  sync.Mutex
	cfg                 *config.Service
	http                HTTPClient
	notificationManager Notifier
	backoff             backoff.Stateful

	session  *Session
	notified bool
}

// NewAuthenticator creates a new instance of the Authenticator.
func NewAuthenticator(http HTTPClient, cfgSvc *config.Service, notify Notifier) Authenticator {
	backoffCfg := cfgSvc.GetAuthBackoffCfg()

	return &authenticator{
		cfg:                 cfgSvc,
		http:                http,
		notificationManager: notify,
		backoff: backoff.NewStateful(
			backoffCfg.InitialBackoff,
			backoffCfg.RepeatedBackoff,
			backoffCfg.FinalBackoff,
			backoffCfg.InitialFailureCount,
			backoffCfg.RepeatedFailureCount,
		),
	}
}

func (a *authenticator) Authenticate() (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.authenticate()
}

func (a *authenticator) Login() (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = nil

	credentials := a.cfg.GetCredentials()
	if credentials.Empty() {
		return nil, ErrMissingCredentials
	}

	a.backoff.Reset()

	return a.login(credentials)
}

func (a *authenticator) Session() (*Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.session, a.session != nil
}

func (a *authenticator) EnsureSession() (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cfg.GetSessionPolicy() == config.SessionPolicyReuse && a.session != nil {
		if !a.session.OlderThan(a.cfg.GetSessionTimeout()) {
			return a.session, nil
		}

		log.WithField("issued_at", a.session.IssuedAt).
			Debug("authenticator: session is too old, authenticating again")
	}

	return a.authenticate()
}

func (a *authenticator) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = nil
}

// authenticate relies on mutex protection within a caller.
func (a *authenticator) authenticate() (*Session, error) {
	a.session = nil

	credentials := a.cfg.GetCredentials()
	if credentials.Empty() {
		log.Warn("authenticator: no credentials configured")

		return nil, ErrMissingCredentials
	}

	if a.backoff.Should() {
		log.Warn("authenticator: skipping login, backoff is in use")

		return nil, ErrBackoff
	}

	return a.login(credentials)
}

// login relies on mutex protection within a caller.
func (a *authenticator) login(credentials config.Credentials) (*Session, error) {
	session, err := a.http.Login(credentials.Username, credentials.Password)
	if err != nil {
		a.backoff.Fail()

		log.WithError(err).
			WithField("username", credentials.Username).
			Error("authenticator: failed to authenticate")

		if errors.Is(err, ErrSessionCookieNotFound) || IsUnauthorized(err) {
			a.notifyOffline()
		}

		return nil, errors.Wrap(err, "authentication failed")
	}

	a.backoff.Reset()
	a.notified = false
	a.session = session

	log.Debug("authenticator: authenticated successfully")

	return session, nil
}

// notifyOffline sends a single push notification per failure streak.
func (a *authenticator) notifyOffline() {
	if a.notified || a.notificationManager == nil {
		return
	}

	err := a.notificationManager.Event(&notification.Event{EventName: notificationQBittorrentStatusOffline})
	if err != nil {
		log.WithError(err).Error("authenticator: failed to send push notification")

		return
	}

	a.notified = true
}

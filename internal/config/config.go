package config

import (
	"strings"
	"sync"
	"time"

	"github.com/futurehomeno/cliffhanger/config"
	"github.com/futurehomeno/cliffhanger/storage"
	"github.com/pkg/errors"
)

const (
	// SessionPolicyReuse caches the session and re-authenticates only when it is missing, too old or rejected.
	SessionPolicyReuse = "reuse"
	// SessionPolicyAlways re-authenticates before every call.
	SessionPolicyAlways = "always"

	defaultHTTPTimeout     = 10 * time.Second
	defaultPollingInterval = 30 * time.Second
	defaultSessionTimeout  = 55 * time.Minute
)

// Config is a model containing all application configuration settings.
type Config struct {
	config.Default

	APIURL   string `json:"apiUrl"`
	Username string `json:"username"`
	Password string `json:"password"`

	PollingInterval string `json:"pollingInterval"`
	HTTPTimeout     string `json:"httpTimeout"`
	SessionTimeout  string `json:"sessionTimeout"`
	SessionPolicy   string `json:"sessionPolicy"`
	ConfirmToggle   bool   `json:"confirmToggle"`

	AuthBackoff BackoffConfig `json:"authBackoff"`
}

// BackoffConfig configures the backoff applied after failed login attempts.
type BackoffConfig struct {
	InitialBackoff       time.Duration `json:"initialBackoff"`
	RepeatedBackoff      time.Duration `json:"repeatedBackoff"`
	FinalBackoff         time.Duration `json:"finalBackoff"`
	InitialFailureCount  uint32        `json:"initialFailureCount"`
	RepeatedFailureCount uint32        `json:"repeatedFailureCount"`
}

// New creates new instance of a configuration object.
func New(workDir string) *Config {
	return &Config{
		Default: config.NewDefault(workDir),
	}
}

// Factory is a factory method returning the configuration object without default settings.
func Factory() interface{} {
	return &Config{}
}

// Credentials represent qBittorrent WebUI credentials.
type Credentials struct {
	Username string
	Password string
}

// Empty checks if credentials are empty.
func (c Credentials) Empty() bool {
	return c.Username == "" && c.Password == ""
}

// Service is a configuration service responsible for:
// - providing concurrency safe access to settings
// - persistence of settings
type Service struct {
	storage.Storage[any]
	lock *sync.RWMutex
}

// NewService creates a new configuration service.
func NewService(storage storage.Storage[any]) *Service {
	return &Service{
		Storage: storage,
		lock:    &sync.RWMutex{},
	}
}

// GetAPIURL returns the qBittorrent WebUI address without trailing slashes.
func (cs *Service) GetAPIURL() string {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return strings.TrimRight(cs.model().APIURL, "/")
}

// SetAPIURL allows to safely set and persist configuration settings.
func (cs *Service) SetAPIURL(url string) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	cs.model().APIURL = strings.TrimSpace(url)

	return cs.Storage.Save()
}

// GetCredentials allows to safely access a configuration setting.
func (cs *Service) GetCredentials() Credentials {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return Credentials{
		Username: cs.model().Username,
		Password: cs.model().Password,
	}
}

// SetCredentials allows to safely set and persist configuration settings.
func (cs *Service) SetCredentials(credentials Credentials) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	cs.model().Username = credentials.Username
	cs.model().Password = credentials.Password

	return cs.Storage.Save()
}

// ClearCredentials removes stored credentials.
func (cs *Service) ClearCredentials() error {
	return cs.SetCredentials(Credentials{})
}

// SetLogLevel allows to safely set and persist configuration settings.
func (cs *Service) SetLogLevel(logLevel string) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	cs.model().LogLevel = logLevel

	return cs.Storage.Save()
}

// GetPollingInterval allows to safely access a configuration setting.
func (cs *Service) GetPollingInterval() time.Duration {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return parseDuration(cs.model().PollingInterval, defaultPollingInterval)
}

// SetPollingInterval allows to safely set and persist configuration settings.
func (cs *Service) SetPollingInterval(interval time.Duration) error {
	return cs.setDuration(interval, func(c *Config, s string) { c.PollingInterval = s })
}

// GetHTTPTimeout allows to safely access a configuration setting.
func (cs *Service) GetHTTPTimeout() time.Duration {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return parseDuration(cs.model().HTTPTimeout, defaultHTTPTimeout)
}

// SetHTTPTimeout allows to safely set and persist configuration settings.
func (cs *Service) SetHTTPTimeout(timeout time.Duration) error {
	return cs.setDuration(timeout, func(c *Config, s string) { c.HTTPTimeout = s })
}

// GetSessionTimeout returns the maximum age of a cached session. Zero means no age limit.
func (cs *Service) GetSessionTimeout() time.Duration {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	if cs.model().SessionTimeout == "" {
		return defaultSessionTimeout
	}

	d, err := time.ParseDuration(cs.model().SessionTimeout)
	if err != nil || d < 0 {
		return defaultSessionTimeout
	}

	return d
}

// SetSessionTimeout allows to safely set and persist configuration settings.
func (cs *Service) SetSessionTimeout(timeout time.Duration) error {
	return cs.setDuration(timeout, func(c *Config, s string) { c.SessionTimeout = s })
}

// GetSessionPolicy returns the session policy, falling back to SessionPolicyReuse.
func (cs *Service) GetSessionPolicy() string {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	if cs.model().SessionPolicy == SessionPolicyAlways {
		return SessionPolicyAlways
	}

	return SessionPolicyReuse
}

// SetSessionPolicy allows to safely set and persist configuration settings.
func (cs *Service) SetSessionPolicy(policy string) error {
	if policy != SessionPolicyReuse && policy != SessionPolicyAlways {
		return errors.Errorf("unsupported session policy %q", policy)
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	cs.model().SessionPolicy = policy

	return cs.Storage.Save()
}

// GetConfirmToggle tells whether the state is read back after a toggle.
func (cs *Service) GetConfirmToggle() bool {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return cs.model().ConfirmToggle
}

// SetConfirmToggle allows to safely set and persist configuration settings.
func (cs *Service) SetConfirmToggle(confirm bool) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	cs.model().ConfirmToggle = confirm

	return cs.Storage.Save()
}

// GetAuthBackoffCfg allows to safely access a configuration setting.
func (cs *Service) GetAuthBackoffCfg() BackoffConfig {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	return cs.model().AuthBackoff
}

func (cs *Service) setDuration(d time.Duration, set func(c *Config, s string)) error {
	if d < 0 {
		return errors.Errorf("duration must not be negative, got %s", d)
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.model().ConfiguredAt = time.Now().Format(time.RFC3339)
	set(cs.model(), d.String())

	return cs.Storage.Save()
}

func (cs *Service) model() *Config {
	return cs.Storage.Model().(*Config) //nolint:forcetypeassert
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}

	return d
}

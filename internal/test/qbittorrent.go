package test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

// QBittorrentServer is a fake qBittorrent WebUI exposing the endpoints used by the adapter.
type QBittorrentServer struct {
	*httptest.Server

	mu sync.Mutex

	username string
	password string

	enabled       bool
	sessionID     string
	loginStatus   int
	stateBody     *string
	toggleStatus  int
	toggleDelay   time.Duration
	rejectSession int

	logins  int
	reads   int
	toggles int
}

// NewQBittorrentServer starts a fake qBittorrent server. It is closed on test cleanup.
func NewQBittorrentServer(t *testing.T, enabled bool) *QBittorrentServer {
	t.Helper()

	s := &QBittorrentServer{
		username:     Username,
		password:     Password,
		enabled:      enabled,
		sessionID:    SessionID,
		loginStatus:  http.StatusOK,
		toggleStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/auth/login", s.login)
	mux.HandleFunc("/api/v2/transfer/speedLimitsMode", s.authorized(s.speedLimitsMode))
	mux.HandleFunc("/api/v2/transfer/toggleSpeedLimitsMode", s.authorized(s.toggleSpeedLimitsMode))
	mux.HandleFunc("/api/v2/app/version", s.authorized(s.version))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Enabled returns the current alternative speed limits mode.
func (s *QBittorrentServer) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled
}

// SetEnabled changes the alternative speed limits mode behind the adapter's back.
func (s *QBittorrentServer) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
}

// SetLoginStatus forces the status code returned by the login endpoint.
func (s *QBittorrentServer) SetLoginStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loginStatus = code
}

// SetStateBody overrides the body returned by the speed limits mode endpoint.
func (s *QBittorrentServer) SetStateBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateBody = &body
}

// SetToggleStatus forces the status code returned by the toggle endpoint.
func (s *QBittorrentServer) SetToggleStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toggleStatus = code
}

// SetToggleDelay delays toggle responses, widening the window between a read and a flip.
func (s *QBittorrentServer) SetToggleDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.toggleDelay = d
}

// ExpireSessions makes the next n authorized requests fail with 403 as if the session timed out.
func (s *QBittorrentServer) ExpireSessions(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rejectSession = n
}

// Logins returns the number of login requests received.
func (s *QBittorrentServer) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.logins
}

// Reads returns the number of state requests received.
func (s *QBittorrentServer) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reads
}

// Toggles returns the number of toggle requests received.
func (s *QBittorrentServer) Toggles() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.toggles
}

func (s *QBittorrentServer) login(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logins++

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	if s.loginStatus != http.StatusOK {
		w.WriteHeader(s.loginStatus)

		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)

		return
	}

	if r.PostForm.Get("username") != s.username || r.PostForm.Get("password") != s.password {
		_, _ = w.Write([]byte("Fails."))

		return
	}

	http.SetCookie(w, &http.Cookie{Name: "SID", Value: s.sessionID, Path: "/", HttpOnly: true})
	_, _ = w.Write([]byte("Ok."))
}

func (s *QBittorrentServer) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()

		cookie, err := r.Cookie("SID")
		if err != nil || cookie.Value != s.sessionID || s.rejectSession > 0 {
			if s.rejectSession > 0 {
				s.rejectSession--
			}

			s.mu.Unlock()

			log.Infof("qBittorrent test server: rejecting request to %s", r.URL.Path)
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("Forbidden"))

			return
		}

		s.mu.Unlock()

		next(w, r)
	}
}

func (s *QBittorrentServer) speedLimitsMode(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++

	if s.stateBody != nil {
		_, _ = w.Write([]byte(*s.stateBody))

		return
	}

	value := 0
	if s.enabled {
		value = 1
	}

	_, _ = w.Write([]byte(strconv.Itoa(value)))
}

func (s *QBittorrentServer) toggleSpeedLimitsMode(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	delay := s.toggleDelay
	s.mu.Unlock()

	time.Sleep(delay)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.toggles++

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)

		return
	}

	if s.toggleStatus != http.StatusOK {
		w.WriteHeader(s.toggleStatus)

		return
	}

	s.enabled = !s.enabled
}

func (s *QBittorrentServer) version(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("v4.6.2"))
}

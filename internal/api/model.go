package api

import (
	"time"

	"github.com/michalkurzeja/go-clock"
)

const sessionCookieName = "SID"

// Session is a qBittorrent WebUI session obtained on login.
type Session struct {
	// ID is the raw value of the SID cookie.
	ID       string
	IssuedAt time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:       id,
		IssuedAt: clock.Now().UTC(),
	}
}

// Cookie returns the session formatted as a Cookie header value, e.g. SID=abc123.
func (s *Session) Cookie() string {
	return sessionCookieName + "=" + s.ID
}

// String implements fmt.Stringer.
func (s *Session) String() string {
	return s.Cookie()
}

// OlderThan checks if the session was issued more than d ago. A non-positive d never expires a session.
func (s *Session) OlderThan(d time.Duration) bool {
	if d <= 0 {
		return false
	}

	return clock.Now().UTC().Sub(s.IssuedAt) > d
}

package config_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/test/fakes"
)

func TestService_Durations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		cfg                 *config.Config
		wantPollingInterval time.Duration
		wantHTTPTimeout     time.Duration
		wantSessionTimeout  time.Duration
	}{
		{
			name:                "defaults are used for empty settings",
			cfg:                 &config.Config{},
			wantPollingInterval: 30 * time.Second,
			wantHTTPTimeout:     10 * time.Second,
			wantSessionTimeout:  55 * time.Minute,
		},
		{
			name: "configured settings are parsed",
			cfg: &config.Config{
				PollingInterval: "1m",
				HTTPTimeout:     "3s",
				SessionTimeout:  "10m",
			},
			wantPollingInterval: time.Minute,
			wantHTTPTimeout:     3 * time.Second,
			wantSessionTimeout:  10 * time.Minute,
		},
		{
			name: "zero session timeout disables the age limit",
			cfg: &config.Config{
				PollingInterval: "0s",
				HTTPTimeout:     "0s",
				SessionTimeout:  "0s",
			},
			wantPollingInterval: 30 * time.Second,
			wantHTTPTimeout:     10 * time.Second,
		},
		{
			name: "malformed settings fall back to defaults",
			cfg: &config.Config{
				PollingInterval: "often",
				HTTPTimeout:     "-1s",
				SessionTimeout:  "forever",
			},
			wantPollingInterval: 30 * time.Second,
			wantHTTPTimeout:     10 * time.Second,
			wantSessionTimeout:  55 * time.Minute,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newService(tt.cfg)

			assert.Equal(t, tt.wantPollingInterval, s.GetPollingInterval())
			assert.Equal(t, tt.wantHTTPTimeout, s.GetHTTPTimeout())
			assert.Equal(t, tt.wantSessionTimeout, s.GetSessionTimeout())
		})
	}
}

func TestService_SetDurations(t *testing.T) {
	t.Parallel()

	s := newService(&config.Config{})

	assert.NoError(t, s.SetPollingInterval(5*time.Second))
	assert.NoError(t, s.SetHTTPTimeout(2*time.Second))
	assert.NoError(t, s.SetSessionTimeout(0))
	assert.Error(t, s.SetHTTPTimeout(-time.Second))

	assert.Equal(t, 5*time.Second, s.GetPollingInterval())
	assert.Equal(t, 2*time.Second, s.GetHTTPTimeout())
	assert.Equal(t, time.Duration(0), s.GetSessionTimeout())
}

func TestService_SessionPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stored  string
		set     string
		wantErr bool
		want    string
	}{
		{
			name: "reuse is the default",
			want: config.SessionPolicyReuse,
		},
		{
			name:   "unknown stored policy falls back to reuse",
			stored: "sometimes",
			want:   config.SessionPolicyReuse,
		},
		{
			name: "always can be set",
			set:  config.SessionPolicyAlways,
			want: config.SessionPolicyAlways,
		},
		{
			name:    "unknown policy is rejected",
			stored:  config.SessionPolicyAlways,
			set:     "sometimes",
			wantErr: true,
			want:    config.SessionPolicyAlways,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newService(&config.Config{SessionPolicy: tt.stored})

			if tt.set != "" {
				err := s.SetSessionPolicy(tt.set)
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			}

			assert.Equal(t, tt.want, s.GetSessionPolicy())
		})
	}
}

func TestService_Credentials(t *testing.T) {
	t.Parallel()

	s := newService(&config.Config{})
	assert.True(t, s.GetCredentials().Empty())

	want := config.Credentials{Username: "admin", Password: "adminadmin"}
	assert.NoError(t, s.SetCredentials(want))

	if diff := cmp.Diff(want, s.GetCredentials()); diff != "" {
		t.Errorf("unexpected credentials (-want +got):\n%s", diff)
	}

	assert.NoError(t, s.ClearCredentials())
	assert.True(t, s.GetCredentials().Empty())
}

func TestService_APIURL(t *testing.T) {
	t.Parallel()

	s := newService(&config.Config{})

	assert.NoError(t, s.SetAPIURL(" http://192.168.1.10:8080/// "))
	assert.Equal(t, "http://192.168.1.10:8080", s.GetAPIURL())
}

func TestService_ConfirmToggle(t *testing.T) {
	t.Parallel()

	s := newService(&config.Config{})
	assert.False(t, s.GetConfirmToggle())

	assert.NoError(t, s.SetConfirmToggle(true))
	assert.True(t, s.GetConfirmToggle())

	assert.NoError(t, s.SetConfirmToggle(false))
	assert.False(t, s.GetConfirmToggle())
}

func newService(cfg *config.Config) *config.Service {
	return config.NewService(fakes.NewConfigStorage(cfg, config.Factory))
}

package qbittorrent_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/qbittorrent"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/test"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/test/fakes"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/test/mocks"
)

func TestToggle_Read(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		enabled     bool
		stateBody   string
		loginStatus int
		closeServer bool
		want        bool
	}{
		{
			name:    "enabled mode is reported as on",
			enabled: true,
			want:    true,
		},
		{
			name: "disabled mode is reported as off",
		},
		{
			name:      "non numeric payload is reported as off",
			enabled:   true,
			stateBody: "yes",
		},
		{
			name:        "failed authentication is reported as off",
			enabled:     true,
			loginStatus: http.StatusUnauthorized,
		},
		{
			name:        "transport error is reported as off",
			enabled:     true,
			closeServer: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := test.NewQBittorrentServer(t, tt.enabled)

			if tt.stateBody != "" {
				server.SetStateBody(tt.stateBody)
			}

			if tt.loginStatus != 0 {
				server.SetLoginStatus(tt.loginStatus)
			}

			toggle := newToggle(server, false)

			if tt.closeServer {
				server.Close()
			}

			assert.Equal(t, tt.want, toggle.Read())
		})
	}
}

func TestToggle_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		enabled      bool
		desired      bool
		stateBody    string
		toggleStatus int
		wantToggles  int
		wantEnabled  bool
	}{
		{
			name:        "enabling a disabled mode toggles once",
			desired:     true,
			wantToggles: 1,
			wantEnabled: true,
		},
		{
			name:        "enabling an enabled mode does nothing",
			enabled:     true,
			desired:     true,
			wantEnabled: true,
		},
		{
			name:        "disabling an enabled mode toggles once",
			enabled:     true,
			desired:     false,
			wantToggles: 1,
			wantEnabled: false,
		},
		{
			name:    "disabling a disabled mode does nothing",
			desired: false,
		},
		{
			name:        "unknown current state does nothing",
			enabled:     true,
			desired:     true,
			stateBody:   "garbage",
			wantEnabled: true,
		},
		{
			name:         "failed toggle leaves the state untouched",
			desired:      true,
			toggleStatus: http.StatusInternalServerError,
			wantToggles:  1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := test.NewQBittorrentServer(t, tt.enabled)

			if tt.stateBody != "" {
				server.SetStateBody(tt.stateBody)
			}

			if tt.toggleStatus != 0 {
				server.SetToggleStatus(tt.toggleStatus)
			}

			newToggle(server, true).Write(tt.desired)

			assert.Equal(t, tt.wantToggles, server.Toggles())
			assert.Equal(t, tt.wantEnabled, server.Enabled())
		})
	}
}

func TestToggle_WriteIsIdempotentUnderStableRemoteState(t *testing.T) {
	t.Parallel()

	server := test.NewQBittorrentServer(t, false)
	toggle := newToggle(server, false)

	for i := 0; i < 3; i++ {
		toggle.Write(true)
	}

	assert.Equal(t, 1, server.Toggles())
	assert.True(t, server.Enabled())
	assert.Equal(t, 1, server.Logins())
}

func TestToggle_WriteConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		confirm   bool
		mockCalls func(c *mocks.APIClient)
	}{
		{
			name:    "state is read back after toggle",
			confirm: true,
			mockCalls: func(c *mocks.APIClient) {
				c.On("SpeedLimitsMode").Return(false, nil).Once()
				c.On("RequestToggle", true).Return(nil).Once()
				c.On("SpeedLimitsMode").Return(true, nil).Once()
			},
		},
		{
			name:    "mismatch after toggle is not corrected",
			confirm: true,
			mockCalls: func(c *mocks.APIClient) {
				c.On("SpeedLimitsMode").Return(false, nil).Twice()
				c.On("RequestToggle", true).Return(nil).Once()
			},
		},
		{
			name: "state is not read back without confirmation",
			mockCalls: func(c *mocks.APIClient) {
				c.On("SpeedLimitsMode").Return(false, nil).Once()
				c.On("RequestToggle", true).Return(nil).Once()
			},
		},
		{
			name:    "failed toggle is not confirmed",
			confirm: true,
			mockCalls: func(c *mocks.APIClient) {
				c.On("SpeedLimitsMode").Return(false, nil).Once()
				c.On("RequestToggle", true).Return(errors.New("test error")).Once()
			},
		},
		{
			name:    "failed read does not toggle",
			confirm: true,
			mockCalls: func(c *mocks.APIClient) {
				c.On("SpeedLimitsMode").Return(false, errors.New("test error")).Once()
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewAPIClient(t)
			tt.mockCalls(client)

			qbittorrent.NewToggle(client, newConfigService(tt.confirm)).Write(true)
		})
	}
}

func TestController(t *testing.T) {
	t.Parallel()

	client := mocks.NewAPIClient(t)
	client.On("SpeedLimitsMode").Return(false, errors.New("test error")).Once()
	client.On("SpeedLimitsMode").Return(false, nil).Once()
	client.On("RequestToggle", true).Return(errors.New("test error")).Once()

	controller := qbittorrent.NewController(qbittorrent.NewToggle(client, newConfigService(false)))

	state, err := controller.BinarySwitchStateReport()
	assert.NoError(t, err)
	assert.False(t, state)

	assert.NoError(t, controller.SetBinarySwitchState(true))
}

// TestToggle_ConcurrentWritesRace documents that overlapping writes are not serialized.
// The remote endpoint flips the state, so two writers observing the same state may both flip it
// and the final state is not guaranteed to match the intent of the last caller.
func TestToggle_ConcurrentWritesRace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desired []bool
	}{
		{
			name:    "same intent",
			desired: []bool{true, true},
		},
		{
			name:    "opposite intents",
			desired: []bool{true, false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := test.NewQBittorrentServer(t, false)
			server.SetToggleDelay(50 * time.Millisecond)

			toggle := newToggle(server, false)

			// Authenticate upfront so both writers race on the state only.
			require.False(t, toggle.Read())

			var wg sync.WaitGroup

			for _, desired := range tt.desired {
				wg.Add(1)

				go func(desired bool) {
					defer wg.Done()

					toggle.Write(desired)
				}(desired)
			}

			wg.Wait()

			toggles := server.Toggles()
			enabled := server.Enabled()

			t.Logf("intents: %v, toggles: %d, final state: %t", tt.desired, toggles, enabled)

			assert.LessOrEqual(t, toggles, len(tt.desired))
			assert.Equal(t, toggles%2 == 1, enabled)
		})
	}
}

func newToggle(server *test.QBittorrentServer, confirm bool) qbittorrent.Toggle {
	cfgService := newConfigService(confirm)
	httpClient := api.NewHTTPClient(server.Client(), server.URL)
	client := api.NewAPIClient(httpClient, api.NewAuthenticator(httpClient, cfgService, nil))

	return qbittorrent.NewToggle(client, cfgService)
}

func newConfigService(confirm bool) *config.Service {
	cfg := &config.Config{
		Username:      test.Username,
		Password:      test.Password,
		SessionPolicy: config.SessionPolicyReuse,
		ConfirmToggle: confirm,
	}

	return config.NewService(fakes.NewConfigStorage(cfg, config.Factory))
}

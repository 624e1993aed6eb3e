package app

import (
	"fmt"

	"github.com/futurehomeno/cliffhanger/adapter"
	cliffApp "github.com/futurehomeno/cliffhanger/app"
	"github.com/futurehomeno/cliffhanger/lifecycle"
	"github.com/futurehomeno/cliffhanger/manifest"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/qbittorrent"
)

// Application is an interface representing a service responsible for preparing an application manifest and configuring app.
type Application interface {
	cliffApp.App
	cliffApp.LogginableApp
	cliffApp.CheckableApp
	cliffApp.InitializableApp
}

// New creates new instance of an Application.
func New(
	ad adapter.Adapter,
	cfgService *config.Service,
	lc *lifecycle.Lifecycle,
	mfLoader manifest.Loader,
	client api.Client,
	auth api.Authenticator,
) Application {
	return &application{
		ad:         ad,
		mfLoader:   mfLoader,
		lifecycle:  lc,
		cfgService: cfgService,
		client:     client,
		auth:       auth,
	}
}

type application struct {
	ad         adapter.Adapter
	cfgService *config.Service
	lifecycle  *lifecycle.Lifecycle
	mfLoader   manifest.Loader
	client     api.Client
	auth       api.Authenticator
}

func (a *application) GetManifest() (*manifest.Manifest, error) {
	mf, err := a.mfLoader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load manifest")
	}

	return mf, nil
}

func (a *application) Configure(_ interface{}) error {
	return nil
}

func (a *application) Uninstall() error {
	err := a.ad.DestroyAllThings()
	if err != nil {
		log.Info("app: failed to destroy all things")

		return errors.New("failed to destroy all things")
	}

	err = a.cfgService.Reset()
	if err != nil {
		log.Info("app: failed to reset config")

		return errors.New("failed to reset configuration")
	}

	a.auth.Invalidate()
	a.setNotConfigured()
	a.lifecycle.SetConnectionState(lifecycle.ConnStateDisconnected)

	return nil
}

// Login stores the WebUI credentials and keeps them only if qBittorrent accepts them.
func (a *application) Login(credentials *cliffApp.LoginCredentials) error {
	defer a.Check() //nolint:errcheck

	previous := a.cfgService.GetCredentials()

	err := a.cfgService.SetCredentials(config.Credentials{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		return errors.Wrap(err, "failed to store credentials")
	}

	if _, err := a.auth.Login(); err != nil {
		a.setNotConfigured()

		if restoreErr := a.cfgService.SetCredentials(previous); restoreErr != nil {
			log.WithError(restoreErr).Error("app: failed to restore previous credentials")
		}

		return errors.Wrap(err, fmt.Sprintf("failed to login as '%s'", credentials.Username))
	}

	if err := a.ad.EnsureThings([]*adapter.ThingSeed{qbittorrent.Seed()}); err != nil {
		a.setNotConfigured()

		return errors.Wrap(err, "failed to register the speed limits switch on login")
	}

	a.setConfigured()

	return nil
}

func (a *application) Check() error {
	if err := a.client.Ping(); err != nil {
		a.lifecycle.SetConnectionState(lifecycle.ConnStateDisconnected)

		return nil //nolint:nilerr
	}

	a.lifecycle.SetConnectionState(lifecycle.ConnStateConnected)

	return nil
}

func (a *application) Initialize() error {
	defer a.Check() //nolint:errcheck

	if err := a.ad.InitializeThings(); err != nil {
		return errors.Wrap(err, "failed to initialize things")
	}

	if err := a.cfgService.Save(); err != nil {
		return errors.Wrap(err, "failed to save configs at application initialization")
	}

	if a.cfgService.GetCredentials().Empty() || a.cfgService.GetAPIURL() == "" {
		a.setNotConfigured()

		return nil
	}

	a.setConfigured()

	return nil
}

func (a *application) Logout() error {
	if err := a.ad.DestroyAllThings(); err != nil {
		a.lifecycle.SetAppState(lifecycle.AppStateError, nil)

		return errors.Wrap(err, "failed to destroy all things")
	}

	if err := a.cfgService.ClearCredentials(); err != nil {
		a.lifecycle.SetAppState(lifecycle.AppStateError, nil)

		return errors.Wrap(err, "failed to clear credentials")
	}

	a.auth.Invalidate()
	a.setNotConfigured()
	a.lifecycle.SetConnectionState(lifecycle.ConnStateDisconnected)

	return nil
}

func (a *application) setConfigured() {
	a.lifecycle.SetAppState(lifecycle.AppStateRunning, nil)
	a.lifecycle.SetAuthState(lifecycle.AuthStateAuthenticated)
	a.lifecycle.SetConfigState(lifecycle.ConfigStateConfigured)
}

func (a *application) setNotConfigured() {
	a.lifecycle.SetAppState(lifecycle.AppStateNotConfigured, nil)
	a.lifecycle.SetAuthState(lifecycle.AuthStateNotAuthenticated)
	a.lifecycle.SetConfigState(lifecycle.ConfigStateNotConfigured)
}

package cmd

import (
	"net/http"

	"github.com/futurehomeno/cliffhanger/adapter"
	"github.com/futurehomeno/cliffhanger/adapter/service/parameters"
	"github.com/futurehomeno/cliffhanger/bootstrap"
	cliffCfg "github.com/futurehomeno/cliffhanger/config"
	"github.com/futurehomeno/cliffhanger/event"
	"github.com/futurehomeno/cliffhanger/lifecycle"
	"github.com/futurehomeno/cliffhanger/manifest"
	"github.com/futurehomeno/cliffhanger/notification"
	cliffRouter "github.com/futurehomeno/cliffhanger/router"
	"github.com/futurehomeno/cliffhanger/task"
	"github.com/futurehomeno/fimpgo"
	log "github.com/sirupsen/logrus"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/app"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/qbittorrent"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/routing"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/tasks"
)

// services is a container for services that are common dependencies.
var services = &serviceContainer{}

// serviceContainer is a type representing a dependency injection container to be used during bootstrap of the application.
type serviceContainer struct {
	configService *config.Service
	lifecycle     *lifecycle.Lifecycle
	mqtt          *fimpgo.MqttTransport

	application    app.Application
	manifestLoader manifest.Loader
	eventManager   event.Manager
	eventListener  event.Listener
	adapter        adapter.Adapter
	thingFactory   adapter.ThingFactory
	adapterState   adapter.State
	httpClient     *http.Client
	qbHTTPClient   api.HTTPClient
	qbAPIClient    api.Client
	authenticator  api.Authenticator
}

func resetContainer() {
	services = &serviceContainer{}
}

// getConfigService initiates a configuration service and loads the config.
func getConfigService() *config.Service {
	if services.configService == nil {
		workDir := bootstrap.GetConfigurationDirectory()
		cfg := config.New(workDir)
		services.configService = config.NewService(cliffCfg.NewStorage[any](cfg, workDir))

		err := services.configService.Load()
		if err != nil {
			log.WithError(err).Fatal("failed to load configuration")
		}
	}

	return services.configService
}

// getLifecycle creates or returns existing lifecycle service.
func getLifecycle() *lifecycle.Lifecycle {
	if services.lifecycle == nil {
		services.lifecycle = lifecycle.New()
	}

	return services.lifecycle
}

// getMQTT creates or returns existing MQTT broker service.
func getMQTT(cfg *config.Config) *fimpgo.MqttTransport {
	if services.mqtt == nil {
		services.mqtt = fimpgo.NewMqttTransport(
			cfg.MQTTServerURI,
			cfg.MQTTClientIDPrefix,
			cfg.MQTTUsername,
			cfg.MQTTPassword,
			true,
			1,
			1,
		)
	}

	services.mqtt.SetDefaultSource(routing.ResourceName)

	return services.mqtt
}

// getApplication creates or returns existing application.
func getApplication(cfg *config.Config) app.Application {
	if services.application == nil {
		services.application = app.New(
			getAdapter(cfg),
			getConfigService(),
			getLifecycle(),
			getManifestLoader(),
			getAPIClient(cfg),
			getAuthenticator(cfg),
		)
	}

	return services.application
}

// getManifestLoader creates or returns existing application manifestLoader.
func getManifestLoader() manifest.Loader {
	if services.manifestLoader == nil {
		services.manifestLoader = manifest.NewLoader(getConfigService().Model().(*config.Config).WorkDir)
	}

	return services.manifestLoader
}

// getAdapter creates or returns existing adapter service.
func getAdapter(cfg *config.Config) adapter.Adapter {
	if services.adapter == nil {
		services.adapter = adapter.NewAdapter(
			getMQTT(cfg),
			getEventManager(),
			getThingFactory(cfg),
			getAdapterState(),
			routing.ServiceName,
			"1",
		)
	}

	return services.adapter
}

// getEventManager creates or returns existing event manager service.
func getEventManager() event.Manager {
	if services.eventManager == nil {
		services.eventManager = event.NewManager()
	}

	return services.eventManager
}

// getEventListener creates or returns existing event listener service.
func getEventListener(cfg *config.Config) event.Listener {
	if services.eventListener == nil {
		services.eventListener = event.NewListener(
			getEventManager(),
			parameters.NewInclusionReportSentEventHandler(getAdapter(cfg)),
		)
	}

	return services.eventListener
}

// getAdapterState creates or returns existing adapter state service.
func getAdapterState() adapter.State {
	if services.adapterState == nil {
		var err error

		services.adapterState, err = adapter.NewState(getConfigService().Model().(*config.Config).WorkDir)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize adapter state")
		}
	}

	return services.adapterState
}

// getThingFactory creates or returns existing thing factory service.
func getThingFactory(cfg *config.Config) adapter.ThingFactory {
	if services.thingFactory == nil {
		services.thingFactory = qbittorrent.NewThingFactory(
			getAPIClient(cfg),
			getConfigService(),
		)
	}

	return services.thingFactory
}

// getHTTPClient creates or returns existing HTTP client with predefined timeout.
func getHTTPClient() *http.Client {
	if services.httpClient == nil {
		services.httpClient = &http.Client{
			Timeout: getConfigService().GetHTTPTimeout(),
		}
	}

	return services.httpClient
}

// getQBittorrentHTTPClient creates or returns existing qBittorrent WebUI HTTP client.
func getQBittorrentHTTPClient() api.HTTPClient {
	if services.qbHTTPClient == nil {
		services.qbHTTPClient = api.NewHTTPClient(
			getHTTPClient(),
			getConfigService().GetAPIURL(),
		)
	}

	return services.qbHTTPClient
}

// getAPIClient creates or returns existing session aware qBittorrent client.
func getAPIClient(cfg *config.Config) api.Client {
	if services.qbAPIClient == nil {
		services.qbAPIClient = api.NewAPIClient(
			getQBittorrentHTTPClient(),
			getAuthenticator(cfg),
		)
	}

	return services.qbAPIClient
}

func getAuthenticator(cfg *config.Config) api.Authenticator {
	if services.authenticator == nil {
		services.authenticator = api.NewAuthenticator(
			getQBittorrentHTTPClient(),
			getConfigService(),
			notification.NewNotification(getMQTT(cfg)),
		)
	}

	return services.authenticator
}

// newRouting creates new set of routing.
func newRouting(cfg *config.Config) []*cliffRouter.Routing {
	return routing.New(
		getConfigService(),
		getLifecycle(),
		getApplication(cfg),
		getAdapter(cfg),
	)
}

// newTasks creates new set of tasks.
func newTasks(cfg *config.Config) []*task.Task {
	return tasks.New(
		getConfigService(),
		getLifecycle(),
		getApplication(cfg),
		getAdapter(cfg),
	)
}

package routing

import (
	cliffAdapter "github.com/futurehomeno/cliffhanger/adapter"
	"github.com/futurehomeno/cliffhanger/adapter/service/outbinswitch"
	"github.com/futurehomeno/cliffhanger/app"
	cliffConfig "github.com/futurehomeno/cliffhanger/config"
	"github.com/futurehomeno/cliffhanger/lifecycle"
	"github.com/futurehomeno/cliffhanger/router"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
)

const (
	// ServiceName represents the adapter service name.
	ServiceName = "qbittorrent"
	// ResourceName is the source set on messages published by the adapter.
	ResourceName = "qbittorrent"
)

// New returns a new routing table.
func New(
	cfgSrv *config.Service,
	appLifecycle *lifecycle.Lifecycle,
	application app.App,
	adapter cliffAdapter.Adapter,
) []*router.Routing {
	return router.Combine(
		[]*router.Routing{
			cliffConfig.RouteCmdLogSetLevel(ServiceName, cfgSrv.SetLogLevel),
			cliffConfig.RouteCmdConfigSetString(ServiceName, "api_url", cfgSrv.SetAPIURL),
			cliffConfig.RouteCmdConfigSetDuration(ServiceName, "polling_interval", cfgSrv.SetPollingInterval),
			cliffConfig.RouteCmdConfigSetDuration(ServiceName, "http_timeout", cfgSrv.SetHTTPTimeout),
			cliffConfig.RouteCmdConfigSetDuration(ServiceName, "session_timeout", cfgSrv.SetSessionTimeout),
			cliffConfig.RouteCmdConfigSetString(ServiceName, "session_policy", cfgSrv.SetSessionPolicy),
			cliffConfig.RouteCmdConfigSetBool(ServiceName, "confirm_toggle", cfgSrv.SetConfirmToggle),
		},
		app.RouteApp(ServiceName, appLifecycle, cfgSrv, config.Factory, nil, application),
		cliffAdapter.RouteAdapter(adapter),
		outbinswitch.RouteService(adapter),
	)
}

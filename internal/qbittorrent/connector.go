package qbittorrent

import (
	"github.com/futurehomeno/cliffhanger/adapter"
	log "github.com/sirupsen/logrus"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
)

type connector struct {
	client api.Client
}

// NewConnector returns a connector reporting reachability of the qBittorrent WebUI.
func NewConnector(client api.Client) adapter.Connector {
	return &connector{
		client: client,
	}
}

func (c *connector) Connect(_ adapter.Thing) {
	log.Debug("connector: speed limits switch connected")
}

func (c *connector) Disconnect(_ adapter.Thing) {
	log.Debug("connector: speed limits switch disconnected")
}

func (c *connector) Connectivity() *adapter.ConnectivityDetails {
	ret := adapter.ConnectivityDetails{
		ConnectionStatus: adapter.ConnectionStatusDown,
		ConnectionType:   adapter.ConnectionTypeIndirect,
	}

	if err := c.client.Ping(); err == nil {
		ret.ConnectionStatus = adapter.ConnectionStatusUp
	}

	return &ret
}

func (c *connector) Ping() *adapter.PingDetails {
	if err := c.client.Ping(); err != nil {
		log.WithError(err).Debug("connector: ping failed")

		return &adapter.PingDetails{
			Status: adapter.PingResultFailed,
		}
	}

	return &adapter.PingDetails{
		Status: adapter.PingResultSuccess,
	}
}

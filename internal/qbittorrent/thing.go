package qbittorrent

import (
	"fmt"

	"github.com/futurehomeno/cliffhanger/adapter"
	"github.com/futurehomeno/cliffhanger/adapter/service/outbinswitch"
	"github.com/futurehomeno/fimpgo/fimptype"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
)

const (
	// ThingID is the ID of the only thing exposed by the adapter.
	ThingID = "AdvancedRateLimitsSwitch"
	// ThingName is the display name of the switch.
	ThingName = "Advanced Rate Limits"
)

// Info is an object representing persisted switch information.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Seed returns the seed of the speed limits switch thing.
func Seed() *adapter.ThingSeed {
	return &adapter.ThingSeed{
		ID: ThingID,
		Info: Info{
			ID:   ThingID,
			Name: ThingName,
		},
	}
}

type thingFactory struct {
	client     api.Client
	cfgService *config.Service
}

// NewThingFactory returns a new instance of adapter.ThingFactory.
func NewThingFactory(client api.Client, cfgService *config.Service) adapter.ThingFactory {
	return &thingFactory{
		client:     client,
		cfgService: cfgService,
	}
}

func (t *thingFactory) Create(ad adapter.Adapter, publisher adapter.Publisher, thingState adapter.ThingState) (adapter.Thing, error) {
	info := &Info{}

	if err := thingState.Info(info); err != nil {
		return nil, fmt.Errorf("factory: failed to retrieve information: %w", err)
	}

	controller := NewController(NewToggle(t.client, t.cfgService))

	groups := []string{"ch_0"}

	return adapter.NewThing(publisher, thingState, &adapter.ThingConfig{
		Connector:       NewConnector(t.client),
		InclusionReport: t.inclusionReport(info, thingState, groups),
	}, t.newOutBinSwitchService(publisher, ad, thingState, groups, controller)), nil
}

func (t *thingFactory) inclusionReport(info *Info, thingState adapter.ThingState, groups []string) *fimptype.ThingInclusionReport {
	return &fimptype.ThingInclusionReport{
		Address:        thingState.Address(),
		ProductHash:    "qBittorrent - WebUI - " + info.ID,
		ProductName:    info.Name,
		ProductId:      info.ID,
		DeviceId:       info.ID,
		CommTechnology: "ip",
		ManufacturerId: "qBittorrent",
		PowerSource:    "ac",
		WakeUpInterval: "-1",
		Groups:         groups,
	}
}

func (t *thingFactory) newOutBinSwitchService(
	publisher adapter.ServicePublisher,
	ad adapter.Adapter,
	thingState adapter.ThingState,
	groups []string,
	controller Controller,
) adapter.Service {
	return outbinswitch.NewService(publisher, &outbinswitch.Config{
		Specification: outbinswitch.Specification(
			ad.Name(),
			ad.Address(),
			thingState.Address(),
			groups,
		),
		Controller: controller,
	})
}

package routing

import (
	"github.com/futurehomeno/cliffhanger/discovery"
)

// GetDiscoveryResource returns a service discovery configuration.
func GetDiscoveryResource() *discovery.Resource {
	return &discovery.Resource{
		ResourceName:           ServiceName,
		ResourceType:           discovery.ResourceTypeAd,
		ResourceFullName:       "qBittorrent",
		Description:            "Alternative speed limits switch for qBittorrent",
		Author:                 "support@futurehome.no",
		IsInstanceConfigurable: false,
		Version:                "1",
		InstanceID:             "1",
		AdapterInfo: discovery.AdapterInfo{
			Technology:            "qbittorrent",
			FwVersion:             "all",
			NetworkManagementType: "inclusion_exclusion",
		},
	}
}

package qbittorrent

import (
	log "github.com/sirupsen/logrus"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/api"
	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
)

// Toggle bridges a binary switch and the alternative speed limits mode of qBittorrent.
//
// Reads are fail-closed: whenever the state can not be determined the switch is reported as off.
// Writes are not serialized. The remote endpoint flips the state instead of setting it, so two
// overlapping writes may both observe the same state and flip it twice.
type Toggle interface {
	// Read returns the current alternative speed limits mode, or false if it can not be determined.
	Read() bool
	// Write requests the alternative speed limits mode to become desired.
	Write(desired bool)
}

type toggle struct {
	client     api.Client
	cfgService *config.Service
}

// NewToggle returns a new instance of Toggle.
func NewToggle(client api.Client, cfgService *config.Service) Toggle {
	return &toggle{
		client:     client,
		cfgService: cfgService,
	}
}

func (t *toggle) Read() bool {
	enabled, err := t.read()
	if err != nil {
		return false
	}

	return enabled
}

func (t *toggle) Write(desired bool) {
	current, err := t.read()
	if err != nil {
		log.WithField("desired", desired).
			Warn("toggle: current state is unknown, skipping the toggle")

		return
	}

	if current == desired {
		log.WithField("state", current).
			Debug("toggle: alternative speed limits mode already in desired state")

		return
	}

	if err := t.client.RequestToggle(desired); err != nil {
		log.WithError(err).
			WithField("desired", desired).
			Error("toggle: failed to toggle alternative speed limits mode")

		return
	}

	log.WithField("from", current).
		WithField("to", desired).
		Info("toggle: alternative speed limits mode toggled")

	if !t.cfgService.GetConfirmToggle() {
		return
	}

	confirmed, err := t.read()
	if err != nil {
		return
	}

	if confirmed != desired {
		log.WithField("desired", desired).
			WithField("observed", confirmed).
			Warn("toggle: observed state differs from the requested one, another toggle might have interleaved")
	}
}

func (t *toggle) read() (bool, error) {
	enabled, err := t.client.SpeedLimitsMode()
	if err != nil {
		log.WithError(err).Error("toggle: failed to read alternative speed limits mode, reporting off")

		return false, err
	}

	log.WithField("enabled", enabled).Debug("toggle: alternative speed limits mode read")

	return enabled, nil
}

package qbittorrent

import (
	"github.com/futurehomeno/cliffhanger/adapter/service/outbinswitch"
)

// Controller represents the speed limits switch controller.
type Controller interface {
	outbinswitch.Controller
}

// NewController returns a new instance of Controller.
func NewController(toggle Toggle) Controller {
	return &controller{
		toggle: toggle,
	}
}

type controller struct {
	toggle Toggle
}

// SetBinarySwitchState never fails: toggle errors are logged and the reported state stays as it was.
func (c *controller) SetBinarySwitchState(value bool) error {
	c.toggle.Write(value)

	return nil
}

// BinarySwitchStateReport never fails: an unknown state is reported as off.
func (c *controller) BinarySwitchStateReport() (bool, error) {
	return c.toggle.Read(), nil
}

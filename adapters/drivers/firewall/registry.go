// Package firewalldrv hosts management-plane drivers implementing
// model.FirewallPort. Drivers register themselves by name from their
// init() function.
package firewalldrv

import (
	"fmt"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
)

// Factory is a constructor function for a firewall driver.
type Factory func(settings map[string]string) (model.FirewallPort, error)

var registry = map[string]Factory{}

// Register makes a driver available by the given name.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// New builds the named driver with the given settings.
func New(name string, settings map[string]string) (model.FirewallPort, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownDriver, name)
	}
	return factory(settings)
}

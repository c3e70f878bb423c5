// Package updatercfg defines the configuration schema (structs) for pfwupdater.yml.
// This package is intended for YAML -> struct deserialization.
// Loading helpers and validations are implemented separately.
package updatercfg

// Root is the root structure of pfwupdater.yml.
type Root struct {
	Version  string   `yaml:"version"`
	DNS      DNS      `yaml:"dns"`
	Firewall Firewall `yaml:"firewall"`
	Logging  Logging  `yaml:"logging"`
}

// DNS holds the resolver defaults applied when an object carries no
// server override of its own.
type DNS struct {
	Servers []string `yaml:"servers"` // default nameservers, host or host:port
	Timeout string   `yaml:"timeout"` // per-query timeout, Go duration string
}

// Firewall selects the management-plane driver.
type Firewall struct {
	Driver   string            `yaml:"driver"`   // e.g., "proxmox"
	Settings map[string]string `yaml:"settings"` // driver-specific settings
}

// Logging configures log output.
type Logging struct {
	Format string `yaml:"format"` // "human", "text", or "json"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
}

package updatercfg

import (
	"fmt"
	"time"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if err := r.DNS.validate(); err != nil {
		return fmt.Errorf("dns: %w", err)
	}
	if err := r.Firewall.validate(); err != nil {
		return fmt.Errorf("firewall: %w", err)
	}
	if err := r.Logging.validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (d *DNS) validate() error {
	for i, s := range d.Servers {
		if s == "" {
			return fmt.Errorf("servers[%d]: empty server", i)
		}
	}
	if d.Timeout != "" {
		t, err := time.ParseDuration(d.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if t <= 0 {
			return fmt.Errorf("timeout: must be positive, got %s", d.Timeout)
		}
	}
	return nil
}

func (f *Firewall) validate() error {
	if f.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	return nil
}

func (l *Logging) validate() error {
	switch l.Format {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("format: invalid format %q, must be %q, %q, or %q", l.Format, "human", "text", "json")
	}
	switch l.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level: invalid level %q", l.Level)
	}
	return nil
}

package updatercfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file is given.
func Default() *Root {
	return &Root{
		Version: "v1",
		DNS: DNS{
			Timeout: "5s",
		},
		Firewall: Firewall{
			Driver: "proxmox",
		},
		Logging: Logging{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads a YAML file from the given path and returns a deserialized Root.
// Fields absent from the file keep their Default() values. It performs no
// validation beyond YAML decoding; validation is handled elsewhere.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return cfg, nil
}

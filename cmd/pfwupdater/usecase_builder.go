package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	firewalldrv "github.com/base23gmbh/proxmox-firewall-updater/adapters/drivers/firewall"
	"github.com/base23gmbh/proxmox-firewall-updater/adapters/resolver"
	"github.com/base23gmbh/proxmox-firewall-updater/config/updatercfg"
	syncuc "github.com/base23gmbh/proxmox-firewall-updater/usecase/sync"
)

// loadConfig reads the file named by --config, falling back to built-in
// defaults when the flag is empty.
func loadConfig(cmd *cobra.Command) (*updatercfg.Root, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return updatercfg.Default(), nil
	}
	cfg, err := updatercfg.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// buildSyncUseCase creates the sync use case with the configured
// firewall driver and DNS resolver.
func buildSyncUseCase(cmd *cobra.Command) (*syncuc.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	fw, err := firewalldrv.New(cfg.Firewall.Driver, cfg.Firewall.Settings)
	if err != nil {
		return nil, err
	}

	var timeout time.Duration
	if cfg.DNS.Timeout != "" {
		timeout, err = time.ParseDuration(cfg.DNS.Timeout)
		if err != nil {
			return nil, fmt.Errorf("dns.timeout: %w", err)
		}
	}

	return &syncuc.UseCase{
		Ports: &syncuc.Ports{
			Firewall: fw,
			Resolver: resolver.New(&resolver.Options{Timeout: timeout}),
		},
		DNSServers: cfg.DNS.Servers,
	}, nil
}

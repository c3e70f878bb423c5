// Package sync reconciles firewall address objects against DNS
// resolution results driven by comment directives.
package sync

import (
	"context"
	"time"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
)

// Ports bundles the external capabilities the sync use case consumes.
type Ports struct {
	Firewall model.FirewallPort
	Resolver model.Resolver
}

// UseCase provides application logic for DNS-driven reconciliation.
type UseCase struct {
	Ports *Ports

	// DNSServers is the caller-supplied default resolver list. A
	// comment-level #dns-servers directive takes precedence; absent
	// both, the system resolver is used.
	DNSServers []string

	// Sleep pauses between repeated queries of one domain. Injected so
	// tests run without wall-clock delays; nil means a real sleep that
	// honors context cancellation.
	Sleep func(ctx context.Context, d time.Duration)
}

func (u *UseCase) sleep(ctx context.Context, d time.Duration) {
	if u.Sleep != nil {
		u.Sleep(ctx, d)
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

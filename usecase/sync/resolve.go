package sync

import (
	"context"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
	"github.com/base23gmbh/proxmox-firewall-updater/internal/logging"
)

// resolveDomains resolves every domain in order, repeating each lookup
// Queries times with Delay strictly between successive lookups of the
// same domain. Results merge into one slice in first-occurrence order
// with exact-string duplicates removed. Individual lookup failures are
// logged and skipped; all domains failing yields an empty slice, which
// is a valid outcome.
func (u *UseCase) resolveDomains(ctx context.Context, domains []string, policy model.ResolvePolicy) []string {
	logger := logging.FromContext(ctx)
	servers := u.lookupServers(policy.Servers)

	var merged []string
	seen := make(map[string]struct{})
	for _, domain := range domains {
		for q := 0; q < policy.Queries; q++ {
			if q > 0 && policy.Delay > 0 {
				u.sleep(ctx, policy.Delay)
			}
			addrs, err := u.Ports.Resolver.Resolve(ctx, domain, servers)
			if err != nil {
				logger.Warn(ctx, "lookup failed", "domain", domain, "query", q+1, "queries", policy.Queries, "error", err)
				continue
			}
			if len(addrs) == 0 {
				logger.Warn(ctx, "lookup returned no addresses", "domain", domain, "query", q+1, "queries", policy.Queries)
				continue
			}
			logger.Debug(ctx, "lookup result", "domain", domain, "query", q+1, "addresses", addrs)
			for _, addr := range addrs {
				if _, ok := seen[addr]; ok {
					continue
				}
				seen[addr] = struct{}{}
				merged = append(merged, addr)
			}
		}
	}
	return merged
}

// lookupServers applies the server precedence chain: comment override,
// then the configured default, then the system resolver (nil).
func (u *UseCase) lookupServers(o model.ServerOverride) []string {
	switch o.Mode {
	case model.ServerModeExplicit:
		return o.Servers
	case model.ServerModeSystem:
		return nil
	default:
		return u.DNSServers
	}
}

package model

import "context"

// Resolver performs a single DNS lookup for one domain. An empty
// servers slice means the system resolver; otherwise exactly the given
// servers are queried. An unresolvable name may return an empty slice
// without an error.
type Resolver interface {
	Resolve(ctx context.Context, domain string, servers []string) ([]string, error)
}

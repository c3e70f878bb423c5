// Package directive extracts DNS reconciliation directives from the
// free-text comments of firewall address objects.
//
// A comment may carry, anywhere and in any order, mixed with arbitrary
// prose:
//
//	#resolve=example.com,other.org   domains to resolve (canonical form)
//	#resolve: example.com            legacy form, kept for compatibility
//	#queries=3                      lookups per domain (default 1)
//	#delay=5                        seconds between lookups (default 3)
//	#dns-servers=1.1.1.1,8.8.8.8    resolvers to use for this object
//	#dns-servers=system             force the system resolver
//
// Parsing never fails: a missing or malformed directive yields an empty
// domain list and default option values.
package directive

import (
	"strconv"
	"strings"
	"time"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
)

const (
	markerResolve       = "#resolve="
	markerResolveLegacy = "#resolve: "
	markerQueries       = "#queries="
	markerDelay         = "#delay="
	markerServers       = "#dns-servers="
)

// Option defaults. A non-positive or unparsable directive value keeps
// the default silently.
const (
	DefaultQueries = 1
	DefaultDelay   = 3 * time.Second
)

// Directive is the structured result of parsing one object comment.
type Directive struct {
	Domains []string // first-seen order, empty pieces dropped, duplicates kept
	Policy  model.ResolvePolicy
}

// Parse extracts the directive from comment. It never returns an
// error; an object without a usable #resolve directive simply has no
// domains and is skipped by the caller.
func Parse(comment string) Directive {
	d := Directive{
		Policy: model.ResolvePolicy{
			Queries: DefaultQueries,
			Delay:   DefaultDelay,
		},
	}
	d.Domains = parseDomains(comment)
	if n, ok := intValue(comment, markerQueries); ok && n > 0 {
		d.Policy.Queries = n
	}
	if f, ok := floatValue(comment, markerDelay); ok && f > 0 {
		d.Policy.Delay = time.Duration(f * float64(time.Second))
	}
	d.Policy.Servers = parseServers(comment)
	return d
}

// value returns the text between the marker and the next space (or the
// end of the comment), and whether the marker is present at all.
func value(comment, marker string) (string, bool) {
	i := strings.Index(comment, marker)
	if i < 0 {
		return "", false
	}
	rest := comment[i+len(marker):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	return rest, true
}

// splitList splits a comma-separated value, trims each piece and drops
// empty ones.
func splitList(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// parseDomains prefers the canonical #resolve= marker; the legacy
// "#resolve: " form (exact colon-space) is consulted only when the
// canonical marker is absent.
func parseDomains(comment string) []string {
	if v, ok := value(comment, markerResolve); ok {
		return splitList(v)
	}
	if v, ok := value(comment, markerResolveLegacy); ok {
		return splitList(v)
	}
	return nil
}

func parseServers(comment string) model.ServerOverride {
	v, ok := value(comment, markerServers)
	if !ok || v == "" {
		return model.ServerOverride{Mode: model.ServerModeUnset}
	}
	if v == "system" {
		return model.ServerOverride{Mode: model.ServerModeSystem}
	}
	servers := splitList(v)
	if len(servers) == 0 {
		return model.ServerOverride{Mode: model.ServerModeUnset}
	}
	return model.ServerOverride{Mode: model.ServerModeExplicit, Servers: servers}
}

func intValue(comment, marker string) (int, bool) {
	v, ok := value(comment, marker)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatValue(comment, marker string) (float64, bool) {
	v, ok := value(comment, marker)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

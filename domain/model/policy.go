package model

import "time"

// ServerMode distinguishes the three DNS server override states a
// comment directive can express.
type ServerMode int

const (
	// ServerModeUnset means no #dns-servers directive was present; the
	// caller-supplied default (if any) applies.
	ServerModeUnset ServerMode = iota
	// ServerModeSystem forces the system resolver even when the caller
	// supplies a default server list (#dns-servers=system).
	ServerModeSystem
	// ServerModeExplicit uses exactly the servers listed in the directive.
	ServerModeExplicit
)

// ServerOverride is the tagged DNS server override extracted from a
// comment. Servers is meaningful only for ServerModeExplicit.
type ServerOverride struct {
	Mode    ServerMode
	Servers []string
}

// ResolvePolicy controls how the domains of one address object are
// resolved. It is derived from the object comment on every pass and
// never persisted.
type ResolvePolicy struct {
	Queries int            // lookups per domain, >= 1
	Delay   time.Duration  // pause between successive lookups of one domain
	Servers ServerOverride
}

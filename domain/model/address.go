package model

import "strings"

// ObjectKind identifies the two flavors of firewall address objects.
type ObjectKind string

const (
	// KindSet is a named multi-address group (Proxmox IPSet).
	KindSet ObjectKind = "ipset"
	// KindAlias is a named single-address binding (Proxmox Alias).
	KindAlias ObjectKind = "alias"
)

// Entry is one addressable member of a firewall address object. A SET
// object with N members yields N entries sharing Name, Comment and
// Kind; an ALIAS yields exactly one.
type Entry struct {
	Name    string     // object name, unique within a kind
	Address string     // CIDR, literal address, or a reference token (SET only)
	Comment string     // free text, carries #resolve= directives
	Kind    ObjectKind
}

// Reference tokens are non-IP set members that cross-reference other
// management-plane objects. They are exempt from DNS-driven removal.
var referencePrefixes = []string{"dc/", "guest/"}

// IsReferenceToken reports whether addr is a cross-reference to another
// management-plane object rather than a DNS-managed address.
func IsReferenceToken(addr string) bool {
	for _, p := range referencePrefixes {
		if strings.HasPrefix(addr, p) {
			return true
		}
	}
	return false
}

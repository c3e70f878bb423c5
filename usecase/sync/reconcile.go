package sync

import "github.com/base23gmbh/proxmox-firewall-updater/domain/model"

// Delta is the minimal membership change bringing a SET object in line
// with its resolved addresses.
type Delta struct {
	ToAdd    []string // resolved order
	ToRemove []string // current-membership order
}

// Empty reports whether the object is already consistent.
func (d Delta) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// reconcileSet computes the delta between a set's current membership
// and the resolved addresses.
//
// An empty resolved slice means DNS was temporarily unavailable, not
// that the domain stopped resolving: no changes are made at all.
// Reference tokens (dc/..., guest/...) in the membership are never
// removal candidates.
func reconcileSet(membership, resolved []string) Delta {
	if len(resolved) == 0 {
		return Delta{}
	}
	current := make(map[string]struct{}, len(membership))
	for _, addr := range membership {
		current[addr] = struct{}{}
	}
	want := make(map[string]struct{}, len(resolved))
	for _, addr := range resolved {
		want[addr] = struct{}{}
	}
	var d Delta
	for _, addr := range resolved {
		if _, ok := current[addr]; !ok {
			d.ToAdd = append(d.ToAdd, addr)
		}
	}
	for _, addr := range membership {
		if _, ok := want[addr]; ok {
			continue
		}
		if model.IsReferenceToken(addr) {
			continue
		}
		d.ToRemove = append(d.ToRemove, addr)
	}
	return d
}

// reconcileAlias returns the replacement address for an alias and
// whether an update is needed. Only the first resolved address is ever
// considered.
func reconcileAlias(current string, resolved []string) (string, bool) {
	if len(resolved) == 0 {
		return "", false
	}
	if resolved[0] == current {
		return "", false
	}
	return resolved[0], true
}

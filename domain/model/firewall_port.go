package model

import "context"

// FirewallPort abstracts the management plane holding address objects.
// Implementations live under adapters/drivers/firewall/<name>.
type FirewallPort interface {
	// ListEntries returns all entries of the given kind. A SET object
	// with N members yields N entries sharing name, comment and kind;
	// a kind with no objects yields an empty slice.
	ListEntries(ctx context.Context, kind ObjectKind) ([]*Entry, error)

	// Membership returns the address strings currently held by the
	// named object. For an ALIAS this is a single-element slice.
	Membership(ctx context.Context, kind ObjectKind, name string) ([]string, error)

	// CreateOrUpdateEntry adds a member to a SET, or replaces the
	// singleton address (and comment) of an ALIAS.
	CreateOrUpdateEntry(ctx context.Context, entry *Entry) error

	// DeleteEntry removes one member from a SET. Aliases have no
	// member entries to delete; the call is a no-op for them.
	DeleteEntry(ctx context.Context, entry *Entry) error
}

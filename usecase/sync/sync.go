package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
	"github.com/base23gmbh/proxmox-firewall-updater/internal/directive"
	"github.com/base23gmbh/proxmox-firewall-updater/internal/logging"
)

// SyncInput holds parameters for one reconciliation pass.
type SyncInput struct {
	Kinds  []model.ObjectKind `json:"kinds,omitempty"` // empty means both kinds
	DryRun bool               `json:"dry_run,omitempty"`
}

// SyncOutput holds the per-object results of a pass.
type SyncOutput struct {
	Results []Result `json:"results"`
}

// Result actions.
const (
	ActionSkipped   = "skipped"   // nothing resolved this pass, object left untouched
	ActionUnchanged = "unchanged" // membership already matches DNS
	ActionPlanned   = "planned"   // dry run, changes computed but not applied
	ActionUpdated   = "updated"   // changes applied
	ActionFailed    = "failed"    // a management-plane mutation failed
)

// Result describes the reconciliation outcome for one address object.
type Result struct {
	Name    string           `json:"name"`
	Kind    model.ObjectKind `json:"kind"`
	Domains []string         `json:"domains"`
	Action  string           `json:"action"`
	Added   []string         `json:"added,omitempty"`
	Removed []string         `json:"removed,omitempty"`
	Message string           `json:"message,omitempty"`
}

// Sync runs one reconciliation pass over the requested kinds. Objects
// are independent: a failure on one object is recorded in its Result
// and does not stop the pass. A failure to list one kind aborts that
// kind only; the error is joined into the returned error while the
// other kinds still run.
func (u *UseCase) Sync(ctx context.Context, in *SyncInput) (*SyncOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	kinds := in.Kinds
	if len(kinds) == 0 {
		kinds = []model.ObjectKind{model.KindSet, model.KindAlias}
	}

	out := &SyncOutput{}
	var errs []error
	for _, kind := range kinds {
		results, err := u.syncKind(ctx, kind, in.DryRun)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Results = append(out.Results, results...)
	}
	return out, errors.Join(errs...)
}

// syncKind reconciles every directive-carrying object of one kind.
func (u *UseCase) syncKind(ctx context.Context, kind model.ObjectKind, dryRun bool) ([]Result, error) {
	logger := logging.FromContext(ctx)

	entries, err := u.Ports.Firewall.ListEntries(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s objects: %w", kind, err)
	}

	// Collapse the fan-out: one object per name, first-seen order. The
	// comment is replicated on every member entry, so any one will do.
	type object struct {
		entry *model.Entry
		dir   directive.Directive
	}
	var objects []object
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		d := directive.Parse(e.Comment)
		if len(d.Domains) == 0 {
			continue
		}
		objects = append(objects, object{entry: e, dir: d})
	}

	logger.Info(ctx, "objects to check", "kind", kind, "count", len(objects), "dry_run", dryRun)

	results := make([]Result, 0, len(objects))
	for _, o := range objects {
		switch kind {
		case model.KindAlias:
			results = append(results, u.syncAlias(ctx, o.entry, o.dir, dryRun))
		default:
			results = append(results, u.syncSet(ctx, o.entry, o.dir, dryRun))
		}
	}
	return results, nil
}

func (u *UseCase) syncSet(ctx context.Context, entry *model.Entry, dir directive.Directive, dryRun bool) Result {
	res := Result{Name: entry.Name, Kind: model.KindSet, Domains: dir.Domains}

	resolved := u.resolveDomains(ctx, dir.Domains, dir.Policy)
	if len(resolved) == 0 {
		res.Action = ActionSkipped
		res.Message = "no addresses resolved for any domain"
		return res
	}

	membership, err := u.Ports.Firewall.Membership(ctx, model.KindSet, entry.Name)
	if err != nil {
		res.Action = ActionFailed
		res.Message = fmt.Sprintf("read membership: %v", err)
		return res
	}

	delta := reconcileSet(membership, resolved)
	if delta.Empty() {
		res.Action = ActionUnchanged
		return res
	}
	res.Added = delta.ToAdd
	res.Removed = delta.ToRemove
	if dryRun {
		res.Action = ActionPlanned
		return res
	}

	for _, addr := range delta.ToRemove {
		e := &model.Entry{Name: entry.Name, Address: addr, Comment: entry.Comment, Kind: model.KindSet}
		if err := u.Ports.Firewall.DeleteEntry(ctx, e); err != nil {
			res.Action = ActionFailed
			res.Message = fmt.Sprintf("remove %s: %v", addr, err)
			return res
		}
	}
	for _, addr := range delta.ToAdd {
		e := &model.Entry{Name: entry.Name, Address: addr, Comment: entry.Comment, Kind: model.KindSet}
		if err := u.Ports.Firewall.CreateOrUpdateEntry(ctx, e); err != nil {
			res.Action = ActionFailed
			res.Message = fmt.Sprintf("add %s: %v", addr, err)
			return res
		}
	}
	res.Action = ActionUpdated
	return res
}

// syncAlias resolves only the first listed domain; aliases hold a
// single address and additional domains are parsed but unused.
func (u *UseCase) syncAlias(ctx context.Context, entry *model.Entry, dir directive.Directive, dryRun bool) Result {
	res := Result{Name: entry.Name, Kind: model.KindAlias, Domains: dir.Domains}

	resolved := u.resolveDomains(ctx, dir.Domains[:1], dir.Policy)
	if len(resolved) == 0 {
		res.Action = ActionSkipped
		res.Message = fmt.Sprintf("cannot resolve domain %s", dir.Domains[0])
		return res
	}

	addr, changed := reconcileAlias(entry.Address, resolved)
	if !changed {
		res.Action = ActionUnchanged
		return res
	}
	res.Message = fmt.Sprintf("%s -> %s", entry.Address, addr)
	if dryRun {
		res.Action = ActionPlanned
		return res
	}

	e := &model.Entry{Name: entry.Name, Address: addr, Comment: entry.Comment, Kind: model.KindAlias}
	if err := u.Ports.Firewall.CreateOrUpdateEntry(ctx, e); err != nil {
		res.Action = ActionFailed
		res.Message = fmt.Sprintf("set %s: %v", addr, err)
		return res
	}
	res.Action = ActionUpdated
	return res
}

package proxmox

import (
	"encoding/json"
	"fmt"

	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
)

// listObject mirrors one element of a pvesh ipset/alias listing. IPSet
// detail queries nest members under "entries"; alias listings carry
// the cidr at the top level.
type listObject struct {
	Name    string      `json:"name"`
	CIDR    string      `json:"cidr"`
	Comment string      `json:"comment"`
	Entries []listEntry `json:"entries"`
}

type listEntry struct {
	CIDR    string `json:"cidr"`
	Comment string `json:"comment"`
}

// parseEntries fans a listing out to one Entry per member. The group
// level comment is replicated onto every member of a set; it is the
// group comment that carries the resolve directive.
func parseEntries(data []byte, kind model.ObjectKind) ([]*model.Entry, error) {
	var objects []listObject
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("decode %s listing: %w", kind, err)
	}
	var out []*model.Entry
	for _, o := range objects {
		if kind == model.KindSet && len(o.Entries) > 0 {
			for _, e := range o.Entries {
				out = append(out, &model.Entry{Name: o.Name, Address: e.CIDR, Comment: o.Comment, Kind: kind})
			}
			continue
		}
		out = append(out, &model.Entry{Name: o.Name, Address: o.CIDR, Comment: o.Comment, Kind: kind})
	}
	return out, nil
}

// parseMembership decodes a single-object query. A set query returns a
// JSON array of members; an alias query returns one object.
func parseMembership(data []byte, kind model.ObjectKind) ([]string, error) {
	if kind == model.KindAlias {
		var obj listObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("decode alias: %w", err)
		}
		return []string{obj.CIDR}, nil
	}
	var entries []listEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode ipset members: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.CIDR)
	}
	return out, nil
}

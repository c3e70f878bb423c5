// Package proxmox implements the firewall management-plane port
// against the Proxmox VE cluster firewall, using the pvesh CLI.
package proxmox

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	firewalldrv "github.com/base23gmbh/proxmox-firewall-updater/adapters/drivers/firewall"
	"github.com/base23gmbh/proxmox-firewall-updater/domain/model"
)

// DriverName is the registry key of this driver.
const DriverName = "proxmox"

func init() {
	firewalldrv.Register(DriverName, New)
}

// runFunc executes a command and returns its stdout. Injected so tests
// run without pvesh.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Driver talks to the Proxmox cluster firewall through pvesh.
type Driver struct {
	pvesh string
	run   runFunc
}

// New builds the driver. Settings: "pvesh" overrides the binary path.
func New(settings map[string]string) (model.FirewallPort, error) {
	pvesh := settings["pvesh"]
	if pvesh == "" {
		pvesh = "pvesh"
	}
	return &Driver{pvesh: pvesh, run: runCommand}, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%w: %s %s: %s", model.ErrTransport, name, strings.Join(args, " "), detail)
	}
	return stdout.Bytes(), nil
}

func endpoint(kind model.ObjectKind) (string, error) {
	switch kind {
	case model.KindSet:
		return "cluster/firewall/ipset", nil
	case model.KindAlias:
		return "cluster/firewall/aliases", nil
	}
	return "", fmt.Errorf("%w: %s", model.ErrKindInvalid, kind)
}

// ListEntries lists all objects of a kind, fanned out to one entry per
// member.
func (d *Driver) ListEntries(ctx context.Context, kind model.ObjectKind) ([]*model.Entry, error) {
	ep, err := endpoint(kind)
	if err != nil {
		return nil, err
	}
	out, err := d.run(ctx, d.pvesh, "get", ep, "--output-format", "json")
	if err != nil {
		return nil, err
	}
	return parseEntries(out, kind)
}

// Membership returns the addresses currently held by the named object.
func (d *Driver) Membership(ctx context.Context, kind model.ObjectKind, name string) ([]string, error) {
	ep, err := endpoint(kind)
	if err != nil {
		return nil, err
	}
	out, err := d.run(ctx, d.pvesh, "get", ep+"/"+name, "--output-format", "json")
	if err != nil {
		return nil, err
	}
	return parseMembership(out, kind)
}

// CreateOrUpdateEntry adds a member to a set, or replaces an alias's
// address keeping its comment.
func (d *Driver) CreateOrUpdateEntry(ctx context.Context, entry *model.Entry) error {
	switch entry.Kind {
	case model.KindSet:
		_, err := d.run(ctx, d.pvesh, "create", "cluster/firewall/ipset/"+entry.Name, "--cidr", entry.Address)
		return err
	case model.KindAlias:
		args := []string{"set", "cluster/firewall/aliases/" + entry.Name, "--cidr", entry.Address}
		if entry.Comment != "" {
			args = append(args, "--comment", entry.Comment)
		}
		_, err := d.run(ctx, d.pvesh, args...)
		return err
	}
	return fmt.Errorf("%w: %s", model.ErrKindInvalid, entry.Kind)
}

// DeleteEntry removes one member from a set. Aliases have no member
// entries, so the call is a no-op for them.
func (d *Driver) DeleteEntry(ctx context.Context, entry *model.Entry) error {
	if entry.Kind != model.KindSet {
		return nil
	}
	_, err := d.run(ctx, d.pvesh, "delete", "cluster/firewall/ipset/"+entry.Name+"/"+entry.Address)
	return err
}

package updatercfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pfwupdater.yml")

	content := `
version: v1
dns:
  servers:
    - 192.168.1.1
    - 1.1.1.1:53
  timeout: 3s
firewall:
  driver: proxmox
  settings:
    pvesh: /usr/bin/pvesh
logging:
  format: json
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Version != "v1" {
		t.Errorf("expected version v1, got %s", cfg.Version)
	}
	if len(cfg.DNS.Servers) != 2 || cfg.DNS.Servers[0] != "192.168.1.1" {
		t.Errorf("unexpected dns servers: %v", cfg.DNS.Servers)
	}
	if cfg.DNS.Timeout != "3s" {
		t.Errorf("unexpected dns timeout: %s", cfg.DNS.Timeout)
	}
	if cfg.Firewall.Driver != "proxmox" || cfg.Firewall.Settings["pvesh"] != "/usr/bin/pvesh" {
		t.Errorf("unexpected firewall: %+v", cfg.Firewall)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoad_DefaultsKeptForAbsentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pfwupdater.yml")

	content := `
dns:
  servers:
    - 10.0.0.53
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Firewall.Driver != "proxmox" {
		t.Errorf("expected default driver proxmox, got %s", cfg.Firewall.Driver)
	}
	if cfg.DNS.Timeout != "5s" {
		t.Errorf("expected default timeout 5s, got %s", cfg.DNS.Timeout)
	}
	if cfg.Logging.Format != "human" {
		t.Errorf("expected default format human, got %s", cfg.Logging.Format)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/path/does/not/exist.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pfwupdater.yml")

	if err := os.WriteFile(path, []byte("dns: [broken"), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "unmarshal") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Firewall.Driver != "proxmox" {
		t.Errorf("unexpected default driver: %s", cfg.Firewall.Driver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

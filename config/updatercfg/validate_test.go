package updatercfg

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Root)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(r *Root) {},
		},
		{
			name: "explicit servers are valid",
			mutate: func(r *Root) {
				r.DNS.Servers = []string{"192.168.1.1", "1.1.1.1:53"}
			},
		},
		{
			name: "empty dns server",
			mutate: func(r *Root) {
				r.DNS.Servers = []string{"192.168.1.1", ""}
			},
			wantErr: "servers[1]",
		},
		{
			name: "bad timeout",
			mutate: func(r *Root) {
				r.DNS.Timeout = "fast"
			},
			wantErr: "timeout",
		},
		{
			name: "negative timeout",
			mutate: func(r *Root) {
				r.DNS.Timeout = "-1s"
			},
			wantErr: "must be positive",
		},
		{
			name: "missing driver",
			mutate: func(r *Root) {
				r.Firewall.Driver = ""
			},
			wantErr: "driver is required",
		},
		{
			name: "bad log format",
			mutate: func(r *Root) {
				r.Logging.Format = "xml"
			},
			wantErr: "invalid format",
		},
		{
			name: "bad log level",
			mutate: func(r *Root) {
				r.Logging.Level = "verbose"
			},
			wantErr: "invalid level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

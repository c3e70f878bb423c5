package model

import "testing"

func TestIsReferenceToken(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"dc/dc1", true},
		{"guest/vm1", true},
		{"dc/", true},
		{"192.168.1.1", false},
		{"10.0.0.0/24", false},
		{"dcx/1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsReferenceToken(tt.addr); got != tt.want {
			t.Errorf("IsReferenceToken(%q) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}

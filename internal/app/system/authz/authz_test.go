package authz_test

import (
	"testing"

	"github.com/dalemusser/ecotrack/internal/app/system/authz"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		owner     string
		want      bool
	}{
		{"exact match", "a@x.com", "a@x.com", true},
		{"case-insensitive match", "A@X.com", "a@x.com", true},
		{"different principal", "b@x.com", "a@x.com", false},
		{"empty principal", "", "a@x.com", false},
		{"empty owner", "a@x.com", "", false},
		{"both empty", "", "", false},
		{"whitespace principal", "  a@x.com  ", "a@x.com", true},
		{"substring is not a match", "a@x.co", "a@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authz.CanMutate(tt.principal, tt.owner); got != tt.want {
				t.Errorf("CanMutate(%q, %q) = %v, want %v", tt.principal, tt.owner, got, tt.want)
			}
		})
	}
}

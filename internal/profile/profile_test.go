package profile

import (
	"testing"

	"github.com/hy4ri/workout-tui/internal/host"
)

func TestDisplayNameAndInitials(t *testing.T) {
	tests := []struct {
		name         string
		user         *host.User
		wantName     string
		wantInitials string
	}{
		{"full name", &host.User{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace", "AL"},
		{"first only", &host.User{FirstName: "ada"}, "ada", "A"},
		{"username fallback", &host.User{Username: "lifter"}, "@lifter", "L"},
		{"cyrillic", &host.User{FirstName: "иван", LastName: "петров"}, "иван петров", "ИП"},
		{"blank fields", &host.User{FirstName: "  "}, Guest, "?"},
		{"nil user", nil, Guest, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.user); got != tt.wantName {
				t.Errorf("DisplayName() = %q, want %q", got, tt.wantName)
			}
			if got := Initials(tt.user); got != tt.wantInitials {
				t.Errorf("Initials() = %q, want %q", got, tt.wantInitials)
			}
		})
	}
}

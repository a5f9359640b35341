// Package profile formats the host-supplied identity for the header.
package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hy4ri/workout-tui/internal/host"
)

// Guest is shown when the host supplies no identity.
const Guest = "Guest"

// DisplayName returns "First Last", else "@username", else Guest.
func DisplayName(u *host.User) string {
	if u == nil {
		return Guest
	}
	name := strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(u.FirstName),
		strings.TrimSpace(u.LastName),
	}, " "))
	if name != "" {
		return name
	}
	if un := strings.TrimSpace(u.Username); un != "" {
		return "@" + un
	}
	return Guest
}

// Initials returns up to two upper-cased initials for the avatar.
func Initials(u *host.User) string {
	if u == nil {
		return "?"
	}
	var out []rune
	for _, part := range []string{u.FirstName, u.LastName} {
		if r, ok := firstLetter(part); ok {
			out = append(out, unicode.ToUpper(r))
		}
	}
	if len(out) == 0 {
		if r, ok := firstLetter(u.Username); ok {
			out = append(out, unicode.ToUpper(r))
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

func firstLetter(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}

package kernel

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

	// street number (optionally suffixed, e.g. 12B), street name, then optional ", part" segments
	addressRegex = regexp.MustCompile(`^\d+[A-Za-z]?\s+[A-Za-z0-9'.\-]+(\s+[A-Za-z0-9'.\-]+)*(,\s*[A-Za-z0-9'.\-]+(\s+[A-Za-z0-9'.\-]+)*)*$`)
)

// IsIDInvalid reports whether id is not a usable store identifier.
func IsIDInvalid(id int) bool {
	return id <= 0
}

// IsEmailInvalid reports whether email does not match the address grammar.
func IsEmailInvalid(email string) bool {
	return !emailRegex.MatchString(strings.TrimSpace(email))
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsAddressInvalid reports whether address does not have the
// "<number> <street>[, <suburb>][, <city>]..." shape.
func IsAddressInvalid(address string) bool {
	return !addressRegex.MatchString(strings.TrimSpace(address))
}

package extraction

import (
	"regexp"
	"strings"
)

var (
	angleAddrPattern = regexp.MustCompile(`<([^>]+)>`)
	bareAddrPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// ExtractEmailAddress pulls a bare address out of a "From" header in
// either "Display Name <addr>" or bare-address form. When neither
// pattern matches, the trimmed input is returned as a best-effort
// fallback.
func ExtractEmailAddress(from string) string {
	if from == "" {
		return ""
	}
	if m := angleAddrPattern.FindStringSubmatch(from); m != nil {
		return m[1]
	}
	if m := bareAddrPattern.FindString(from); m != "" {
		return m
	}
	return strings.TrimSpace(from)
}

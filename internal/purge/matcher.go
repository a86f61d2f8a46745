package purge

import "strings"

// Matches reports whether name matches any of patterns. A pattern without
// "*" must equal name. "*suffix" matches names ending in suffix and
// "prefix*" matches names starting with prefix. Patterns are tried in order
// and a wildcard anywhere else in the pattern never matches.
func Matches(name string, patterns []string) bool {
	for _, p := range patterns {
		switch {
		case !strings.Contains(p, "*"):
			if name == p {
				return true
			}
		case strings.HasPrefix(p, "*"):
			if strings.HasSuffix(name, p[1:]) {
				return true
			}
		case strings.HasSuffix(p, "*"):
			if strings.HasPrefix(name, p[:len(p)-1]) {
				return true
			}
		}
	}
	return false
}

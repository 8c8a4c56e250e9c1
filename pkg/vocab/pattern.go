package vocab

import (
	"regexp"
	"strings"
)

// BoundedPattern compiles the whole-item matcher for token inside a
// pipe-delimited derivative list. The token must sit between
// start-of-string or a pipe on the left and a pipe or end-of-string on
// the right, with optional surrounding spaces, so "act" never matches
// inside "reaction". The token is regex-escaped before interpolation.
// Patterns are built per lookup; the vocabulary content, not the pattern
// shape, is what varies.
func BoundedPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|\|)\s*` + regexp.QuoteMeta(token) + `\s*(\||$)`)
}

// containsWholeItem reports whether list carries token as a whole
// delimited item.
func containsWholeItem(list, token string) bool {
	if strings.TrimSpace(list) == "" {
		return false
	}
	return BoundedPattern(token).MatchString(list)
}

package intake

import (
	"regexp"
	"strings"
)

// Deliberately permissive: non-whitespace @ non-whitespace . non-whitespace.
// Not RFC 5322; the record store and email service do their own bouncing.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// FirstMissing returns the name of the first required field that is empty
// after trimming, or "" when all are present.
func FirstMissing(sub map[string]string, required ...string) string {
	for _, field := range required {
		if strings.TrimSpace(sub[field]) == "" {
			return field
		}
	}
	return ""
}

package logging

import "strings"

// secretKeyPatterns are substrings of attribute keys whose values are masked.
// Matching is case-insensitive.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"CREDENTIAL",
	"API_KEY",
	"PRIVATE",
}

// shouldMask reports whether an attribute key names sensitive data.
func shouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// maskValue keeps the last four characters of long values. Characters are
// counted in runes so the result stays valid UTF-8.
func maskValue(value string) string {
	r := []rune(value)
	if len(r) <= 4 {
		return "********"
	}
	return "****" + string(r[len(r)-4:])
}

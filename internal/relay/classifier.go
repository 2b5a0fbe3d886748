package relay

import (
	"regexp"
	"strings"
)

// Injection indicator patterns, evaluated in order against the lower-cased
// value. This is a best-effort literal blocklist: no percent-decoding, no
// Unicode confusable folding, no SQL parsing. It catches the textbook
// payloads and nothing more.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\bor\b|\band\b)\s+\d+=\d+`),
	regexp.MustCompile(`--`),
	regexp.MustCompile(`;`),
	regexp.MustCompile(`'`),
	regexp.MustCompile(`"`),
	regexp.MustCompile(`union\s+select`),
	regexp.MustCompile(`sleep\(`),
}

// LooksLikeInjection reports whether value matches any indicator pattern.
func LooksLikeInjection(value string) bool {
	value = strings.ToLower(value)
	for _, p := range injectionPatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

package extract

import (
	"regexp"
	"strings"
)

var (
	domainTermRe = regexp.MustCompile(
		`(?i)\b(entity|repository|service|controller|table|column|join|select|where|index|optimization|performance|query|sql|database|hibernate|jpa|spring|batch|cache|fetch|lazy|eager)\b`)

	// Capitalized or mixed-case words that look like identifiers.
	mixedCaseRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:[A-Z][a-z]+)*|[a-z]+(?:[A-Z][a-z]+)+)\b`)
)

// ContentKeywords extracts keywords from free-form prose such as chat
// messages: everything CodeKeywords finds, a whitelist of database and
// persistence-layer terms, and the camelCase parts of every identifier-like
// word in the text.
func ContentKeywords(text string) []string {
	if text == "" {
		return nil
	}

	words := CodeKeywords(text)

	for _, m := range domainTermRe.FindAllStringSubmatch(text, -1) {
		words = append(words, strings.ToLower(m[1]))
	}

	for _, m := range mixedCaseRe.FindAllStringSubmatch(text, -1) {
		words = append(words, splitCamelParts(m[1])...)
	}

	return words
}

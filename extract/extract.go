// Package extract turns SQL queries, source code and prose content into
// raw keyword lists. The extraction is deliberately regex-shaped: the
// semantics of each extractor are defined by its patterns, and Normalize
// is the only filtering step on top of them.
package extract

import (
	"strings"
	"unicode"
)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "of": {}, "is": {},
	"are": {}, "and": {}, "or": {}, "to": {}, "from": {}, "for": {},
	"with": {}, "by": {}, "at": {}, "as": {}, "be": {}, "this": {},
	"that": {}, "it": {}, "if": {}, "not": {}, "but": {}, "can": {},
	"get": {}, "set": {}, "new": {}, "old": {}, "all": {}, "any": {},
	"has": {}, "had": {},
}

// Normalize lowercases and trims each word, drops words of length two or
// less, stopwords and purely numeric words, and removes duplicates. The
// result preserves first-encounter order.
func Normalize(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if len(word) <= 2 {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		if isNumeric(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

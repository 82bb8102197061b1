package extract

import (
	"strings"
	"unicode"
)

// SplitCamel splits a camelCase or PascalCase identifier into its word
// parts. An uppercase run followed by a lowercase letter keeps its last
// letter as the start of the next word ("HTTPServer" splits into "HTTP"
// and "Server"); digits and punctuation act as separators and belong to no
// part.
func SplitCamel(s string) []string {
	var parts []string
	runes := []rune(s)

	i := 0
	for i < len(runes) {
		switch {
		case unicode.IsLower(runes[i]):
			j := i
			for j < len(runes) && unicode.IsLower(runes[j]) {
				j++
			}
			parts = append(parts, string(runes[i:j]))
			i = j
		case unicode.IsUpper(runes[i]):
			j := i
			for j < len(runes) && unicode.IsUpper(runes[j]) {
				j++
			}
			if j < len(runes) && unicode.IsLower(runes[j]) {
				// The last upper starts the next word.
				if j-i > 1 {
					parts = append(parts, string(runes[i:j-1]))
				}
				k := j
				for k < len(runes) && unicode.IsLower(runes[k]) {
					k++
				}
				parts = append(parts, string(runes[j-1:k]))
				i = k
			} else {
				parts = append(parts, string(runes[i:j]))
				i = j
			}
		default:
			i++
		}
	}
	return parts
}

// splitCamelParts splits an identifier and keeps only the parts long enough
// to act as retrieval keywords, lowercased.
func splitCamelParts(word string) []string {
	var out []string
	for _, part := range SplitCamel(word) {
		if len(part) > 2 {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

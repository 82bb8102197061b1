package extract

import (
	"regexp"
	"strings"
)

var (
	typeDeclRe   = regexp.MustCompile(`(?i)(?:class|interface|enum)\s+([A-Za-z][A-Za-z0-9_]*)`)
	annotationRe = regexp.MustCompile(`@([A-Za-z][A-Za-z0-9_]*)`)
	methodDeclRe = regexp.MustCompile(`(?:public|private|protected)?\s*\w+\s+([a-z][A-Za-z0-9_]*)\s*\(`)
	fieldDeclRe  = regexp.MustCompile(`(?:private|public|protected)\s+\w+\s+([a-zA-Z][a-zA-Z0-9_]*)`)
	packageRe    = regexp.MustCompile(`package\s+([a-zA-Z][a-zA-Z0-9_.]*)`)
)

// CodeKeywords extracts keywords from Java/Kotlin-shaped source code:
// class/interface/enum names, annotations, lowercase-initial method names
// (camel-split), access-modifier fields, and package path segments.
func CodeKeywords(src string) []string {
	if src == "" {
		return nil
	}

	var words []string

	for _, m := range typeDeclRe.FindAllStringSubmatch(src, -1) {
		words = append(words, strings.ToLower(m[1]))
	}

	for _, m := range annotationRe.FindAllStringSubmatch(src, -1) {
		words = append(words, strings.ToLower(m[1]))
	}

	for _, m := range methodDeclRe.FindAllStringSubmatch(src, -1) {
		words = append(words, splitCamelParts(m[1])...)
	}

	for _, m := range fieldDeclRe.FindAllStringSubmatch(src, -1) {
		words = append(words, strings.ToLower(m[1]))
	}

	for _, m := range packageRe.FindAllStringSubmatch(src, -1) {
		for _, part := range strings.Split(m[1], ".") {
			if len(part) > 2 {
				words = append(words, strings.ToLower(part))
			}
		}
	}

	return words
}

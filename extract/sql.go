package extract

import (
	"regexp"
	"strings"
)

var (
	tableRe = regexp.MustCompile(`(?i)(?:FROM|JOIN|UPDATE|INTO|TABLE)\s+([a-zA-Z0-9_]+)`)

	sqlReservedRe = regexp.MustCompile(
		`(?i)\b(SELECT|FROM|WHERE|JOIN|ON|AND|OR|ORDER|BY|GROUP|HAVING|LIMIT|DISTINCT|COUNT|SUM|AVG|MAX|MIN)\b`)

	identifierRe = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9_]*`)

	sqlOperationRe = regexp.MustCompile(
		`(?i)\b(CREATE|ALTER|DROP|INDEX|CONSTRAINT|PRIMARY|FOREIGN|KEY|BATCH|CACHE|FETCH|LAZY|EAGER)\b`)
)

// SQLKeywords extracts keywords from a SQL query and the repository method
// that issues it: table names after FROM/JOIN/UPDATE/INTO/TABLE,
// column-shaped identifiers left after stripping reserved words, DDL and
// operational terms, plus the camelCase parts of the method name and the
// method name itself. An empty query yields nothing.
func SQLKeywords(sql, methodName string) []string {
	if sql == "" {
		return nil
	}

	var words []string

	for _, m := range tableRe.FindAllStringSubmatch(sql, -1) {
		words = append(words, m[1])
	}

	cleaned := sqlReservedRe.ReplaceAllString(sql, "")
	for _, ident := range identifierRe.FindAllString(cleaned, -1) {
		if len(ident) > 2 {
			words = append(words, strings.ToLower(ident))
		}
	}

	for _, m := range sqlOperationRe.FindAllStringSubmatch(sql, -1) {
		words = append(words, strings.ToLower(m[1]))
	}

	if methodName != "" {
		words = append(words, splitCamelParts(methodName)...)
		words = append(words, strings.ToLower(methodName))
	}

	return words
}

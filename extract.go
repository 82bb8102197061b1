package raglite

import (
	"sort"

	"github.com/sqltuner/rag-lite/extract"
)

// KeywordSet is a set of normalized lowercase retrieval keywords.
type KeywordSet map[string]struct{}

// NewKeywordSet builds a set from the given words, as-is. Use
// extract.Normalize first when the words come from raw text.
func NewKeywordSet(words ...string) KeywordSet {
	set := make(KeywordSet, len(words))
	set.Add(words...)
	return set
}

// Add inserts the given words into the set.
func (s KeywordSet) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Contains reports whether word is in the set.
func (s KeywordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of keywords in the set.
func (s KeywordSet) Len() int { return len(s) }

// Sorted returns the keywords in lexicographic order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// BaselineTerms are always added to the extracted keyword set, so retrieval
// has a signal even for sparse payloads.
var BaselineTerms = []string{
	"index", "optimization", "performance", "query", "sql", "jpa", "hibernate",
}

// ExtractKeywords turns a payload into a normalized keyword set: SQL
// extraction over queries, content extraction over message bodies, source
// code extraction over the canonical renderings of repositories and
// entities, unioned with BaselineTerms. Missing payload sections contribute
// nothing.
func ExtractKeywords(p Payload) KeywordSet {
	var words []string

	for _, q := range p.Queries {
		words = append(words, extract.SQLKeywords(q.SQL, q.MethodName)...)
	}
	for _, m := range p.Messages {
		words = append(words, extract.ContentKeywords(m.Content)...)
	}
	for _, repo := range p.Repositories {
		words = append(words, extract.CodeKeywords(repo.Describe())...)
	}
	for _, entity := range p.Entities {
		words = append(words, extract.CodeKeywords(entity.Describe())...)
	}

	words = append(words, BaselineTerms...)

	return NewKeywordSet(extract.Normalize(words)...)
}

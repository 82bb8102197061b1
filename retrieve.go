package raglite

import (
	"fmt"
	"sort"

	"github.com/sqltuner/rag-lite/kb"
)

const (
	defaultMaxPayloadSnippets = 4
	defaultMaxKBSnippets      = 3

	// Repository and entity blobs are long; only this many leading runes
	// make it into a snippet.
	payloadSnippetPrefixLen = 400
)

// Retriever ranks payload-embedded text blobs and knowledge-base chunks
// against a keyword set. The knowledge base is optional; without one,
// retrieval degrades to payload-only context.
type Retriever struct {
	KB *kb.Base

	MaxPayloadSnippets int
	MaxKBSnippets      int
}

type scoredSnippet struct {
	text  string
	score float64
}

// SearchPayload scores every repository, entity and query in the payload
// and returns the top-ranked labeled snippets, best first. Ties keep their
// encounter order: repositories, then entities, then queries.
func (r Retriever) SearchPayload(keywords KeywordSet, p Payload) []string {
	var snippets []scoredSnippet

	for _, repo := range p.Repositories {
		blob := repo.Describe()
		if score := Score(blob, keywords); score > 0 {
			snippets = append(snippets, scoredSnippet{
				text:  fmt.Sprintf("Repository: %s\n%s...", repo.Name(), truncateRunes(blob, payloadSnippetPrefixLen)),
				score: score,
			})
		}
	}

	for _, entity := range p.Entities {
		blob := entity.Describe()
		if score := Score(blob, keywords); score > 0 {
			snippets = append(snippets, scoredSnippet{
				text:  fmt.Sprintf("Entity: %s\n%s...", entity.Name(), truncateRunes(blob, payloadSnippetPrefixLen)),
				score: score,
			})
		}
	}

	for _, query := range p.Queries {
		blob := query.Describe()
		if score := Score(blob, keywords); score > 0 {
			method := query.MethodName
			if method == "" {
				method = "Unknown"
			}
			snippets = append(snippets, scoredSnippet{
				text:  fmt.Sprintf("Query: %s\n%s", method, blob),
				score: score,
			})
		}
	}

	return topTexts(snippets, r.maxPayloadSnippets())
}

// SearchKB scores every cached knowledge-base chunk and returns the
// top-ranked chunk contents, best first. A missing knowledge-base file
// yields no snippets and no error; any other read failure is returned.
func (r Retriever) SearchKB(keywords KeywordSet) ([]string, error) {
	if r.KB == nil {
		return nil, nil
	}

	chunks, err := r.KB.Chunks()
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base chunks: %w", err)
	}

	var snippets []scoredSnippet
	for _, chunk := range chunks {
		if score := Score(chunk.Content, keywords); score > 0 {
			snippets = append(snippets, scoredSnippet{text: chunk.Content, score: score})
		}
	}

	return topTexts(snippets, r.maxKBSnippets()), nil
}

func (r Retriever) maxPayloadSnippets() int {
	if r.MaxPayloadSnippets > 0 {
		return r.MaxPayloadSnippets
	}
	return defaultMaxPayloadSnippets
}

func (r Retriever) maxKBSnippets() int {
	if r.MaxKBSnippets > 0 {
		return r.MaxKBSnippets
	}
	return defaultMaxKBSnippets
}

func topTexts(snippets []scoredSnippet, limit int) []string {
	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].score > snippets[j].score
	})

	if len(snippets) > limit {
		snippets = snippets[:limit]
	}
	texts := make([]string, len(snippets))
	for i, s := range snippets {
		texts[i] = s.text
	}
	return texts
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

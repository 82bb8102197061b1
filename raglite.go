// Package raglite enriches LLM-bound SQL optimization payloads with
// retrieved context. It extracts keywords from the payload's own queries,
// messages, repositories and entities, scores payload blobs and
// knowledge-base chunks by naive keyword overlap, and injects the
// top-ranked snippets into the last user message.
package raglite

import "context"

// Describable is implemented by payload structures that can render
// themselves as a canonical text blob for keyword extraction and
// relevance scoring.
type Describable interface {
	Describe() string
}

// LLM defines the interface for chat completion providers. Implementations
// live in the llm package; the server uses one to optionally relay the
// enriched messages.
type LLM interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

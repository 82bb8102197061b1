package raglite

import (
	"fmt"
	"log/slog"
)

// Enrich runs the full retrieval pipeline against the payload: keyword
// extraction, payload and knowledge-base search, context formatting,
// budget truncation, and injection into the last user message. The payload
// is mutated in place; Enrich reports whether it was.
//
// Enrich is not idempotent: context is appended, not replaced, so running
// it again on its own output grows the user message further.
func Enrich(p *Payload, retriever Retriever, budget Budget, logger *slog.Logger) (bool, error) {
	logger = logger.With(
		slog.String("package", "raglite"),
		slog.String("function", "Enrich"),
	)

	keywords := ExtractKeywords(*p)
	if keywords.Len() == 0 {
		logger.Warn("No keywords extracted, skipping enrichment")
		return false, nil
	}
	logger.Debug("Extracted keywords", "count", keywords.Len())

	payloadSnippets := retriever.SearchPayload(keywords, *p)
	kbSnippets, err := retriever.SearchKB(keywords)
	if err != nil {
		return false, fmt.Errorf("failed to search knowledge base: %w", err)
	}
	logger.Debug("Retrieved snippets",
		"payload", len(payloadSnippets), "knowledgeBase", len(kbSnippets))

	if len(payloadSnippets) == 0 && len(kbSnippets) == 0 {
		logger.Info("No relevant context found")
		return false, nil
	}

	contextText, truncated := budget.Apply(FormatContext(payloadSnippets, kbSnippets))
	if truncated {
		logger.Warn("Context truncated to fit token budget", "maxTokens", budget.maxTokens())
	}

	if !injectContext(p, contextText) {
		logger.Info("No user message to enrich")
		return false, nil
	}

	logger.Info("Context injected",
		"payloadSnippets", len(payloadSnippets),
		"knowledgeBaseSnippets", len(kbSnippets),
		"contextChars", len(contextText))

	return true, nil
}

package raglite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sqltuner/rag-lite/internal"
)

const (
	codeContextHeader   = "=== RELEVANT CODE CONTEXT ==="
	knowledgeBaseHeader = "=== OPTIMIZATION KNOWLEDGE BASE ==="

	truncationMarker    = "\n\n[Context truncated due to token limit]"
	analysisInstruction = "\n\nBased on the above context, please provide your analysis and recommendations.\n"
)

const (
	defaultMaxContextTokens = 30000
	defaultCharsPerToken    = 4
)

// FormatContext renders the retrieved snippets into the labeled context
// block that gets appended to the prompt. Each section lists its snippets
// numbered from 1, separated by blank lines; an empty section is omitted
// entirely.
func FormatContext(payloadSnippets, kbSnippets []string) string {
	var parts []string

	if len(payloadSnippets) > 0 {
		parts = append(parts, codeContextHeader)
		for i, snippet := range payloadSnippets {
			parts = append(parts, fmt.Sprintf("Context %d:", i+1), snippet, "")
		}
	}

	if len(kbSnippets) > 0 {
		parts = append(parts, knowledgeBaseHeader)
		for i, snippet := range kbSnippets {
			parts = append(parts, fmt.Sprintf("Knowledge %d:", i+1), snippet, "")
		}
	}

	return strings.Join(parts, "\n")
}

// Budget is the soft size limit for injected context. The character budget
// is MaxContextTokens × CharsPerToken; the 4-chars-per-token default is a
// heuristic with no precision guarantee, which is why both knobs are
// configurable. When CountTokens is set (see TiktokenCounter), it decides
// whether the context exceeds the budget; the cut position stays at the
// character boundary so marker placement is deterministic.
type Budget struct {
	MaxContextTokens int
	CharsPerToken    int
	CountTokens      func(string) int
}

func (b Budget) maxTokens() int {
	if b.MaxContextTokens > 0 {
		return b.MaxContextTokens
	}
	return defaultMaxContextTokens
}

func (b Budget) maxChars() int {
	charsPerToken := b.CharsPerToken
	if charsPerToken <= 0 {
		charsPerToken = defaultCharsPerToken
	}
	return b.maxTokens() * charsPerToken
}

// Apply truncates text to the budget, appending the truncation marker when
// a cut was made. It reports whether the text was truncated.
func (b Budget) Apply(text string) (string, bool) {
	over := false
	if b.CountTokens != nil {
		over = b.CountTokens(text) > b.maxTokens()
	} else {
		over = utf8.RuneCountInString(text) > b.maxChars()
	}
	if !over {
		return text, false
	}

	runes := []rune(text)
	cut := b.maxChars()
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + truncationMarker, true
}

// TiktokenCounter returns a Budget.CountTokens function backed by the
// GPT-4o encoding. Loading the encoding can fail, so callers get the error
// up front instead of per call.
func TiktokenCounter() (func(string) int, error) {
	return internal.NewTokenCounter()
}

// injectContext appends the context block, plus the trailing analysis
// instruction, to the last message authored by the user. It reports whether
// a message was mutated; at most one ever is.
func injectContext(p *Payload, contextText string) bool {
	addition := "\n\n" + contextText + analysisInstruction

	for i := len(p.Messages) - 1; i >= 0; i-- {
		if p.Messages[i].Role == "user" {
			p.Messages[i].Content += addition
			return true
		}
	}
	return false
}

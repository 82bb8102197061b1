package kb

import (
	"regexp"
	"strings"
)

const (
	// DefaultChunkSize is the maximum chunk length in words.
	DefaultChunkSize = 300
	// DefaultOverlap is the number of words adjacent chunks share when a
	// paragraph is split.
	DefaultOverlap = 50

	// Paragraphs shorter than this after trimming carry no useful signal
	// and are dropped.
	minParagraphLen = 50
)

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// Paragraph chunks content on blank-line boundaries. Paragraphs that fit
// within Size words become one chunk each; longer paragraphs are split into
// overlapping word windows advancing by Size−Overlap, the final window
// possibly short.
type Paragraph struct {
	Size    int
	Overlap int
}

// Chunk splits content into retrieval chunks.
func (p Paragraph) Chunk(content string) []string {
	if content == "" {
		return nil
	}

	size := p.Size
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := p.Overlap
	if overlap <= 0 {
		overlap = DefaultOverlap
	}
	step := size - overlap
	if step <= 0 {
		// The window must advance.
		step = size
	}

	var chunks []string
	for _, para := range blankLineRe.Split(content, -1) {
		if len(strings.TrimSpace(para)) < minParagraphLen {
			continue
		}

		words := strings.Fields(para)
		if len(words) <= size {
			chunks = append(chunks, strings.TrimSpace(para))
			continue
		}

		for i := 0; i < len(words); i += step {
			end := i + size
			if end > len(words) {
				end = len(words)
			}
			chunks = append(chunks, strings.Join(words[i:end], " "))
		}
	}
	return chunks
}

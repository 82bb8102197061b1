package kb

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown chunks a Markdown knowledge base section by section: the
// document is split at headings, and each section is then chunked by the
// Paragraph rules with the given Size and Overlap. Chunks never cross a
// heading boundary.
type Markdown struct {
	Size    int
	Overlap int
}

// Chunk splits Markdown content into retrieval chunks.
func (m Markdown) Chunk(content string) []string {
	source := []byte(content)
	reader := text.NewReader(source)
	doc := goldmark.New().Parser().Parse(reader)

	var offsets []int
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		start := heading.Lines().At(0).Start
		// Back up over the "#" markers to the start of the heading line.
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		offsets = append(offsets, start)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		// The walk callback never returns an error.
		return nil
	}

	paragraph := Paragraph{Size: m.Size, Overlap: m.Overlap}

	sort.Ints(offsets)
	var chunks []string
	prev := 0
	for _, offset := range offsets {
		if offset > prev {
			chunks = append(chunks, paragraph.Chunk(content[prev:offset])...)
		}
		prev = offset
	}
	chunks = append(chunks, paragraph.Chunk(content[prev:])...)
	return chunks
}

package kb_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqltuner/rag-lite/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%03d", i)
	}
	return strings.Join(parts, " ")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "info.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParagraphShortParagraphIsOneChunk(t *testing.T) {
	para := words(40)

	chunks := kb.Paragraph{}.Chunk("\n" + para + "\n")

	require.Len(t, chunks, 1)
	assert.Equal(t, para, chunks[0])
}

func TestParagraphDropsShortParagraphs(t *testing.T) {
	content := "too short\n\n" + words(40)

	chunks := kb.Paragraph{}.Chunk(content)

	require.Len(t, chunks, 1)
	assert.NotContains(t, chunks[0], "too short")
}

func TestParagraphSplitsLongParagraphs(t *testing.T) {
	// 620 words with size 300 and overlap 50 slide at step 250: windows at
	// word offsets 0, 250 and 500, the last one short.
	chunks := kb.Paragraph{Size: 300, Overlap: 50}.Chunk(words(620))

	require.Len(t, chunks, 3)
	assert.Len(t, strings.Fields(chunks[0]), 300)
	assert.Len(t, strings.Fields(chunks[1]), 300)
	assert.Len(t, strings.Fields(chunks[2]), 120)

	assert.True(t, strings.HasPrefix(chunks[0], "word000 "))
	assert.True(t, strings.HasPrefix(chunks[1], "word250 "))
	assert.True(t, strings.HasPrefix(chunks[2], "word500 "))

	// Adjacent chunks share the overlap region.
	assert.Contains(t, chunks[1], "word299")
}

func TestParagraphEmptyContent(t *testing.T) {
	assert.Empty(t, kb.Paragraph{}.Chunk(""))
}

func TestBaseLoadsAndCaches(t *testing.T) {
	path := writeFile(t, words(40)+"\n\n"+words(60))

	base := &kb.Base{Path: path}

	chunks, err := base.Chunks()
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.NotEmpty(t, chunks[0].ID)
	assert.NotZero(t, base.Fingerprint())

	// The cache never reloads, even when the file changes on disk.
	require.NoError(t, os.WriteFile(path, []byte(words(40)), 0o600))
	again, err := base.Chunks()
	require.NoError(t, err)
	assert.Equal(t, chunks, again)
}

func TestBaseMissingFileIsNotFatal(t *testing.T) {
	base := &kb.Base{Path: filepath.Join(t.TempDir(), "absent.txt")}

	require.NoError(t, base.Preload())

	chunks, err := base.Chunks()
	require.NoError(t, err)
	assert.Empty(t, chunks)
	assert.Zero(t, base.Fingerprint())
}

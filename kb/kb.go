// Package kb loads a flat knowledge-base text file, splits it into
// retrieval chunks, and caches the result for the lifetime of the process.
package kb

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/cespare/xxhash"
)

// DefaultPath is where the knowledge base lives unless configured
// otherwise.
const DefaultPath = "knowledgeBase/info.txt"

// Chunker splits knowledge-base content into retrieval chunks.
type Chunker interface {
	Chunk(content string) []string
}

// Chunk is a single knowledge-base excerpt. The ID is the xxhash of the
// content, useful for logging and deduplication.
type Chunk struct {
	ID      string
	Content string
}

// Base is the chunked knowledge base. The file is read and chunked at most
// once per Base, on first access; the cache is never invalidated short of
// a process restart. A missing file is not an error: the base caches an
// empty chunk list and retrieval degrades to payload-only context.
//
// Concurrent first access is safe; the load is guarded by a sync.Once.
// Call Preload at startup to surface read errors early instead.
type Base struct {
	// Path of the knowledge-base file; DefaultPath when empty.
	Path string
	// Chunker splits the file content; Paragraph{} when nil.
	Chunker Chunker
	// Logger receives load diagnostics; slog.Default() when nil.
	Logger *slog.Logger

	once        sync.Once
	chunks      []Chunk
	fingerprint uint64
	err         error
}

// Preload loads and chunks the knowledge base eagerly.
func (b *Base) Preload() error {
	_, err := b.Chunks()
	return err
}

// Chunks returns the cached chunk list, loading it on first call.
func (b *Base) Chunks() ([]Chunk, error) {
	b.once.Do(b.load)
	return b.chunks, b.err
}

// Fingerprint returns the xxhash of the raw file content, or zero when the
// file was absent.
func (b *Base) Fingerprint() uint64 {
	b.once.Do(b.load)
	return b.fingerprint
}

func (b *Base) load() {
	logger := b.logger()

	path := b.Path
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Knowledge base file not found, retrieval degrades to payload-only context",
				"path", path)
			return
		}
		b.err = fmt.Errorf("failed to read knowledge base: %w", err)
		return
	}

	chunker := b.Chunker
	if chunker == nil {
		chunker = Paragraph{}
	}

	contents := chunker.Chunk(string(data))
	chunks := make([]Chunk, len(contents))
	for i, content := range contents {
		chunks[i] = Chunk{
			ID:      fmt.Sprintf("%016x", xxhash.Sum64String(content)),
			Content: content,
		}
	}

	b.chunks = chunks
	b.fingerprint = xxhash.Sum64String(string(data))

	logger.Info("Knowledge base loaded and chunked",
		"path", path,
		"chunks", len(chunks),
		"fingerprint", fmt.Sprintf("%016x", b.fingerprint))
}

func (b *Base) logger() *slog.Logger {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("module", "kb"))
}

package internal

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// NewTokenCounter returns a token counting function backed by the GPT-4o
// encoding. The encoding is loaded once; per-call encode failures count as
// zero tokens.
func NewTokenCounter() (func(string) int, error) {
	enc, err := tokenizer.ForModel(tokenizer.GPT4o)
	if err != nil {
		return nil, fmt.Errorf("failed to get tokenizer: %w", err)
	}

	return func(content string) int {
		ids, _, err := enc.Encode(content)
		if err != nil {
			return 0
		}
		return len(ids)
	}, nil
}

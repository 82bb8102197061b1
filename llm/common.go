// Package llm provides chat completion clients implementing the
// raglite.LLM interface.
package llm

import "regexp"

var thinkTagRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

// RemoveThinkTags removes <think> tags and everything in between them from
// a string. Reasoning models emit these ahead of the actual answer.
func RemoveThinkTags(input string) string {
	return thinkTagRe.ReplaceAllString(input, "")
}

package raglite

import "strings"

// Scoring constants. These are fixed for output parity with the reference
// behavior: a keyword contributes count × length/5, and matching more than
// one distinct keyword multiplies the total by 1 + 0.1 × matched.
const (
	lengthWeightDivisor = 5
	multiMatchBonus     = 0.1
)

// Score computes a relevance score between a text blob and a keyword set.
// It is a crude frequency/length heuristic, not TF-IDF: each keyword adds
// its case-insensitive occurrence count weighted by its length, and
// matching several distinct keywords earns a multiplicative bonus. Empty
// text or an empty keyword set scores zero.
func Score(text string, keywords KeywordSet) float64 {
	if text == "" || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)

	var score float64
	matched := 0
	for keyword := range keywords {
		count := strings.Count(lower, strings.ToLower(keyword))
		if count == 0 {
			continue
		}
		score += float64(count) * float64(len(keyword)) / lengthWeightDivisor
		matched++
	}

	if matched > 1 {
		score *= 1 + float64(matched)*multiMatchBonus
	}
	return score
}

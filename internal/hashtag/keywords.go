// Package hashtag recommends and platform-optimizes hashtag sets for daily
// posts. Candidates come from five source pools plus the post's own content.
package hashtag

import (
	"regexp"
	"sort"
	"strings"
)

// stopWords are dropped before keyword counting.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {},
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// maxKeywords caps the extracted keyword list.
const maxKeywords = 15

// ExtractKeywords pulls the most frequent meaningful words out of the given
// text fragments. Words shorter than four characters and stop words are
// dropped; ties rank in first-seen order.
func ExtractKeywords(texts ...string) []string {
	joined := strings.ToLower(strings.Join(texts, " "))

	counts := make(map[string]int)
	var order []string
	for _, word := range wordPattern.FindAllString(joined, -1) {
		if _, stop := stopWords[word]; stop || len(word) <= 3 {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

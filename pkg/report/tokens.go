package report

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords is a small English stop list plus survey boilerplate. Enough to
// keep filler out of the top-token charts; not a linguistics project.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"bit": {}, "but": {}, "by": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "i": {}, "in": {}, "is": {}, "it": {}, "its": {},
	"more": {}, "much": {}, "my": {}, "no": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "so": {}, "that": {}, "the": {}, "there": {},
	"they": {}, "this": {}, "to": {}, "too": {}, "very": {}, "was": {},
	"were": {}, "wish": {}, "with": {}, "would": {}, "you": {},
	"feedback": {},
}

// TokenCount is one token and how often it appeared.
type TokenCount struct {
	Token string
	Count int
}

// Tokenize lowercases text, splits on non-letter runs and drops stop words
// and tokens shorter than three letters.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	var out []string
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if len(f) < 3 {
			continue
		}
		if _, skip := stopWords[f]; skip {
			continue
		}
		out = append(out, f)
	}
	return out
}

// TopTokens returns the k most frequent tokens across texts, most frequent
// first. Ties break alphabetically so the order is stable.
func TopTokens(texts []string, k int) []TokenCount {
	counts := map[string]int{}
	for _, t := range texts {
		for _, tok := range Tokenize(t) {
			counts[tok]++
		}
	}
	out := make([]TokenCount, 0, len(counts))
	for tok, n := range counts {
		out = append(out, TokenCount{Token: tok, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

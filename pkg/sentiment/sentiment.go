// Package sentiment scores free-text survey comments with the VADER
// lexicon and buckets the compound polarity into three labels.
package sentiment

import (
	"strings"

	"github.com/drankou/go-vader/vader"
)

// Label is the discrete polarity class of a comment.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Classify maps a polarity score in [-1, 1] to its label. The partition is
// exhaustive and exclusive: strictly positive scores are Positive, strictly
// negative scores are Negative, zero is Neutral.
func Classify(score float64) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	}
	return Neutral
}

// Analyzer wraps a VADER sentiment intensity analyzer. The zero value is
// not usable; construct with NewAnalyzer so the lexicon is loaded.
type Analyzer struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewAnalyzer loads the default VADER lexicon.
func NewAnalyzer() (*Analyzer, error) {
	a := &Analyzer{}
	if err := a.sia.Init(); err != nil {
		return nil, err
	}
	return a, nil
}

// Score returns the compound polarity in [-1, 1] and its label. Empty or
// whitespace-only text is Neutral with score 0; the lexicon is not
// consulted.
func (a *Analyzer) Score(text string) (float64, Label) {
	if strings.TrimSpace(text) == "" {
		return 0, Neutral
	}
	scores := a.sia.PolarityScores(text)
	compound := scores["compound"]
	return compound, Classify(compound)
}

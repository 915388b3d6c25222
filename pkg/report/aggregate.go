// Package report aggregates a cleaned, labeled dataset into the descriptive
// statistics behind the charts and the console insights.
package report

import (
	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
	"github.com/Clutch-254/event-feedback-analysis/pkg/stats"
	"github.com/Clutch-254/event-feedback-analysis/pkg/survey"
)

// Aggregates holds every summary the reporter and the chart renderers
// consume. Plain descriptive aggregation; no significance testing.
type Aggregates struct {
	Total        int
	AvgOverall   float64
	StdOverall   float64
	RatingCounts map[int]int
	MeanByYear   map[int]float64

	LikesCounts        map[sentiment.Label]int
	ImprovementsCounts map[sentiment.Label]int

	// TopPositive comes from positively-labeled likes, TopNegative from
	// negatively-labeled improvement comments.
	TopPositive []TokenCount
	TopNegative []TokenCount
}

// Aggregate computes all summaries for a cleaned, labeled dataset. topK
// bounds the token lists.
func Aggregate(ds survey.Dataset, topK int) (*Aggregates, error) {
	overall, err := ds.Float(survey.ColOverallRating)
	if err != nil {
		return nil, err
	}
	meanByYear, err := ds.MeanRatingByYear()
	if err != nil {
		return nil, err
	}

	agg := &Aggregates{
		Total:              len(ds),
		AvgOverall:         stats.Mean(overall),
		StdOverall:         stats.Std(overall),
		RatingCounts:       make(map[int]int),
		MeanByYear:         meanByYear,
		LikesCounts:        make(map[sentiment.Label]int),
		ImprovementsCounts: make(map[sentiment.Label]int),
	}

	var positiveLikes, negativeImprovements []string
	for i := range ds {
		r := &ds[i]
		agg.RatingCounts[int(r.OverallRating)]++
		agg.LikesCounts[r.LikesLabel]++
		agg.ImprovementsCounts[r.ImprovementsLabel]++
		if r.LikesLabel == sentiment.Positive {
			positiveLikes = append(positiveLikes, r.Likes)
		}
		if r.ImprovementsLabel == sentiment.Negative {
			negativeImprovements = append(negativeImprovements, r.Improvements)
		}
	}
	agg.TopPositive = TopTokens(positiveLikes, topK)
	agg.TopNegative = TopTokens(negativeImprovements, topK)
	return agg, nil
}

// Share returns the fraction of records carrying label in counts, in
// percent.
func Share(counts map[sentiment.Label]int, label sentiment.Label) float64 {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(counts[label]) / float64(total)
}

// LowestYear returns the year with the lowest mean rating and that mean.
// ok is false when means is empty.
func LowestYear(means map[int]float64) (year int, mean float64, ok bool) {
	for y, m := range means {
		if !ok || m < mean || (m == mean && y < year) {
			year, mean, ok = y, m, true
		}
	}
	return year, mean, ok
}

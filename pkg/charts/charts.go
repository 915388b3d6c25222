// Package charts renders the analysis PNGs with gonum/plot. Each renderer
// writes one fixed-named file into OutDir and returns the full path.
package charts

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Clutch-254/event-feedback-analysis/pkg/report"
	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
)

// Output file names.
const (
	RatingDistributionFile = "overall_rating_distribution.png"
	SentimentFile          = "sentiment_analysis_distribution.png"
	RatingByYearFile       = "rating_by_year.png"
	TopWordsFile           = "feedback_top_words.png"
)

var (
	positiveColor = color.RGBA{G: 140, A: 255}
	negativeColor = color.RGBA{R: 180, A: 255}
	barColor      = color.RGBA{R: 50, G: 50, B: 255, A: 255}
)

// Renderer writes chart files into OutDir.
type Renderer struct {
	OutDir string
}

// RatingDistribution draws the count of responses per overall rating 1..5.
func (r *Renderer) RatingDistribution(counts map[int]int) (string, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Overall Event Ratings"
	p.X.Label.Text = "Rating (1=Very Poor, 5=Very Good)"
	p.Y.Label.Text = "Number of Responses"

	values := make(plotter.Values, 5)
	names := make([]string, 5)
	for rating := 1; rating <= 5; rating++ {
		values[rating-1] = float64(counts[rating])
		names[rating-1] = fmt.Sprintf("%d", rating)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return "", err
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(names...)

	return r.save(p, RatingDistributionFile)
}

// SentimentDistribution draws label counts for both comment fields as
// grouped bars.
func (r *Renderer) SentimentDistribution(likes, improvements map[sentiment.Label]int) (string, error) {
	p := plot.New()
	p.Title.Text = "Sentiment of Feedback Comments"
	p.X.Label.Text = "Sentiment"
	p.Y.Label.Text = "Count"

	labels := []sentiment.Label{sentiment.Positive, sentiment.Neutral, sentiment.Negative}
	likeVals := make(plotter.Values, len(labels))
	improvVals := make(plotter.Values, len(labels))
	names := make([]string, len(labels))
	for i, l := range labels {
		likeVals[i] = float64(likes[l])
		improvVals[i] = float64(improvements[l])
		names[i] = string(l)
	}

	w := vg.Points(20)
	likeBars, err := plotter.NewBarChart(likeVals, w)
	if err != nil {
		return "", err
	}
	likeBars.Color = positiveColor
	likeBars.Offset = -w / 2

	improvBars, err := plotter.NewBarChart(improvVals, w)
	if err != nil {
		return "", err
	}
	improvBars.Color = negativeColor
	improvBars.Offset = w / 2

	p.Add(likeBars, improvBars)
	p.Legend.Add("What did you like?", likeBars)
	p.Legend.Add("What could be improved?", improvBars)
	p.Legend.Top = true
	p.NominalX(names...)

	return r.save(p, SentimentFile)
}

// RatingByYear draws the mean overall rating per year of study.
func (r *Renderer) RatingByYear(means map[int]float64) (string, error) {
	p := plot.New()
	p.Title.Text = "Average Overall Rating by Year of Study"
	p.X.Label.Text = "Year of Study"
	p.Y.Label.Text = "Average Rating"

	values := make(plotter.Values, 4)
	names := make([]string, 4)
	for year := 1; year <= 4; year++ {
		values[year-1] = means[year]
		names[year-1] = fmt.Sprintf("%d", year)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return "", err
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(names...)

	return r.save(p, RatingByYearFile)
}

// TopWords draws the most frequent tokens of positive likes and negative
// improvement comments in one chart. The two buckets occupy disjoint
// positions on the x axis, one bar series each so they keep their colors.
func (r *Renderer) TopWords(positive, negative []report.TokenCount) (string, error) {
	p := plot.New()
	p.Title.Text = "Top Words in Positive and Negative Feedback"
	p.Y.Label.Text = "Occurrences"

	total := len(positive) + len(negative)
	if total == 0 {
		total = 1
	}
	posVals := make(plotter.Values, total)
	negVals := make(plotter.Values, total)
	names := make([]string, total)
	for i, tc := range positive {
		posVals[i] = float64(tc.Count)
		names[i] = tc.Token
	}
	for i, tc := range negative {
		negVals[len(positive)+i] = float64(tc.Count)
		names[len(positive)+i] = tc.Token
	}

	posBars, err := plotter.NewBarChart(posVals, vg.Points(14))
	if err != nil {
		return "", err
	}
	posBars.Color = positiveColor

	negBars, err := plotter.NewBarChart(negVals, vg.Points(14))
	if err != nil {
		return "", err
	}
	negBars.Color = negativeColor

	p.Add(posBars, negBars)
	p.Legend.Add("Positive feedback", posBars)
	p.Legend.Add("Negative feedback", negBars)
	p.Legend.Top = true
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = -0.9
	p.X.Tick.Label.XAlign = -0.8

	return r.save(p, TopWordsFile)
}

// RenderAll writes all four charts and returns their paths.
func (r *Renderer) RenderAll(agg *report.Aggregates) ([]string, error) {
	var paths []string
	renderers := []func() (string, error){
		func() (string, error) { return r.RatingDistribution(agg.RatingCounts) },
		func() (string, error) { return r.SentimentDistribution(agg.LikesCounts, agg.ImprovementsCounts) },
		func() (string, error) { return r.RatingByYear(agg.MeanByYear) },
		func() (string, error) { return r.TopWords(agg.TopPositive, agg.TopNegative) },
	}
	for _, render := range renderers {
		path, err := render()
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.OutDir, name)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", err
	}
	return path, nil
}

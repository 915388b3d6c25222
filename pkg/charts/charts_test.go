package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clutch-254/event-feedback-analysis/pkg/report"
	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
)

func TestRenderAll(t *testing.T) {
	dir := t.TempDir()
	r := &Renderer{OutDir: dir}

	agg := &report.Aggregates{
		Total:        4,
		RatingCounts: map[int]int{1: 1, 4: 2, 5: 1},
		MeanByYear:   map[int]float64{1: 4.5, 2: 2.5},
		LikesCounts: map[sentiment.Label]int{
			sentiment.Positive: 3, sentiment.Neutral: 1,
		},
		ImprovementsCounts: map[sentiment.Label]int{
			sentiment.Negative: 2, sentiment.Neutral: 2,
		},
		TopPositive: []report.TokenCount{{Token: "speaker", Count: 3}, {Token: "venue", Count: 2}},
		TopNegative: []report.TokenCount{{Token: "crowded", Count: 2}},
	}

	paths, err := r.RenderAll(agg)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	want := []string{RatingDistributionFile, SentimentFile, RatingByYearFile, TopWordsFile}
	for i, name := range want {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
		info, err := os.Stat(paths[i])
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestTopWordsEmptyBuckets(t *testing.T) {
	r := &Renderer{OutDir: t.TempDir()}
	path, err := r.TopWords(nil, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

// Package dataprep cleans survey datasets before analysis: missing rating
// imputation, placeholder text for empty comments, and range coercion.
package dataprep

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Clutch-254/event-feedback-analysis/pkg/survey"
)

// NoFeedback is the placeholder written into empty comment fields.
const NoFeedback = "No feedback"

// Transform is one cleaning step applied to a dataset in place. Applying a
// transform to an already-clean dataset must be a no-op.
type Transform interface {
	Name() string
	Apply(ds survey.Dataset) error
}

// Cleaner chains transforms in order.
type Cleaner struct {
	steps []Transform
	log   *zap.Logger
}

func NewCleaner(log *zap.Logger, steps ...Transform) *Cleaner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cleaner{steps: steps, log: log}
}

// Default returns the standard cleaning chain: median-impute missing
// ratings, mode-impute missing year of study, fill empty comments, clamp
// ranges.
func Default(log *zap.Logger) *Cleaner {
	return NewCleaner(log,
		&ImputeRatings{Log: log},
		&ImputeYearOfStudy{},
		&FillEmptyComments{Placeholder: NoFeedback},
		&ClampRanges{},
	)
}

// Run applies every transform in order.
func (c *Cleaner) Run(ds survey.Dataset) error {
	for _, step := range c.steps {
		if err := step.Apply(ds); err != nil {
			return err
		}
		c.log.Debug("cleaning step applied", zap.String("step", step.Name()))
	}
	c.log.Info("dataset cleaned", zap.Int("rows", len(ds)))
	return nil
}

// ImputeRatings fills NaN entries in every rating column, the overall
// rating included, with the column median. The generator only omits aspect
// ratings, but ingested CSVs can miss any rating cell.
type ImputeRatings struct {
	Log *zap.Logger
}

func (t *ImputeRatings) Name() string { return "impute-ratings" }

func (t *ImputeRatings) Apply(ds survey.Dataset) error {
	for _, col := range survey.RatingColumns() {
		vals, err := ds.Float(col)
		if err != nil {
			return err
		}
		filled, median := ImputeMedian(vals)
		if filled == 0 {
			continue
		}
		if err := ds.SetFloat(col, vals); err != nil {
			return err
		}
		if t.Log != nil {
			t.Log.Info("imputed missing ratings",
				zap.String("column", col),
				zap.Int("filled", filled),
				zap.Float64("median", median))
		}
	}
	return nil
}

// ImputeYearOfStudy fills out-of-range year values with the mode of the
// valid ones. Only matters for ingested CSVs; the generator never omits
// the year.
type ImputeYearOfStudy struct{}

func (t *ImputeYearOfStudy) Name() string { return "impute-year-of-study" }

func (t *ImputeYearOfStudy) Apply(ds survey.Dataset) error {
	vals := make([]float64, len(ds))
	anyValid := false
	for i := range ds {
		if y := ds[i].YearOfStudy; y >= 1 && y <= 4 {
			vals[i] = float64(y)
			anyValid = true
		} else {
			vals[i] = math.NaN()
		}
	}
	if !anyValid {
		return nil
	}
	if filled, _ := ImputeMode(vals); filled == 0 {
		return nil
	}
	for i := range ds {
		ds[i].YearOfStudy = int(vals[i])
	}
	return nil
}

// FillEmptyComments replaces empty comment fields with Placeholder.
type FillEmptyComments struct {
	Placeholder string
}

func (t *FillEmptyComments) Name() string { return "fill-empty-comments" }

func (t *FillEmptyComments) Apply(ds survey.Dataset) error {
	for i := range ds {
		if strings.TrimSpace(ds[i].Likes) == "" {
			ds[i].Likes = t.Placeholder
		}
		if strings.TrimSpace(ds[i].Improvements) == "" {
			ds[i].Improvements = t.Placeholder
		}
	}
	return nil
}

// ClampRanges coerces ratings into [1, 5]. Values already in range are
// untouched, so reapplication is a no-op.
type ClampRanges struct{}

func (t *ClampRanges) Name() string { return "clamp-ranges" }

func (t *ClampRanges) Apply(ds survey.Dataset) error {
	for _, col := range survey.RatingColumns() {
		vals, err := ds.Float(col)
		if err != nil {
			return err
		}
		changed := false
		for i, v := range vals {
			switch {
			case v < 1:
				vals[i] = 1
				changed = true
			case v > 5:
				vals[i] = 5
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := ds.SetFloat(col, vals); err != nil {
			return err
		}
	}
	return nil
}

// MissingSummary reports per-column missing counts, printed before and
// after cleaning.
type MissingSummary struct {
	Ratings       map[string]int
	EmptyLikes    int
	EmptyComments int
}

// Summarize counts missing values in the dataset.
func Summarize(ds survey.Dataset) (MissingSummary, error) {
	s := MissingSummary{Ratings: make(map[string]int)}
	for _, col := range survey.RatingColumns() {
		n, err := ds.MissingRatings(col)
		if err != nil {
			return s, err
		}
		s.Ratings[col] = n
	}
	for i := range ds {
		if strings.TrimSpace(ds[i].Likes) == "" {
			s.EmptyLikes++
		}
		if strings.TrimSpace(ds[i].Improvements) == "" {
			s.EmptyComments++
		}
	}
	return s, nil
}

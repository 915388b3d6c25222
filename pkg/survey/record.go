package survey

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
)

// Canonical column names, shared by the CSV loader, the dataframe view and
// the aggregator.
const (
	ColRespondentID      = "RespondentID"
	ColTimestamp         = "Timestamp"
	ColOverallRating     = "OverallRating"
	ColSpeakerRating     = "SpeakerRating"
	ColWorkshopRating    = "WorkshopRating"
	ColFoodRating        = "FoodRating"
	ColLikes             = "WhatDidYouLike"
	ColImprovements      = "Improvements"
	ColAttendedEvents    = "AttendedEvents"
	ColYearOfStudy       = "YearOfStudy"
	ColLikesScore        = "LikesScore"
	ColLikesLabel        = "LikesLabel"
	ColImprovementsScore = "ImprovementsScore"
	ColImprovementsLabel = "ImprovementsLabel"
)

// AspectColumns are the 1-5 rating columns that may arrive with missing
// values and are median-imputed during cleaning.
var AspectColumns = []string{ColSpeakerRating, ColWorkshopRating, ColFoodRating}

// RatingColumns returns every 1-5 rating column, overall first. Ingested
// CSVs can miss any of them, so the cleaner imputes them all.
func RatingColumns() []string {
	return append([]string{ColOverallRating}, AspectColumns...)
}

// FeedbackRecord is one survey response. Rating fields use NaN to mark a
// missing value until cleaning fills it in. The sentiment fields are zero
// until ApplySentiment runs.
type FeedbackRecord struct {
	RespondentID   uuid.UUID
	Timestamp      time.Time
	OverallRating  float64
	SpeakerRating  float64
	WorkshopRating float64
	FoodRating     float64
	Likes          string
	Improvements   string
	AttendedEvents string
	YearOfStudy    int

	LikesScore        float64
	LikesLabel        sentiment.Label
	ImprovementsScore float64
	ImprovementsLabel sentiment.Label
}

// Dataset is an ordered collection of responses. It is mutated in place by
// cleaning and labeling and treated as read-only afterwards.
type Dataset []FeedbackRecord

// Float returns a copy of the named rating column.
func (d Dataset) Float(col string) ([]float64, error) {
	out := make([]float64, len(d))
	for i := range d {
		v, err := d[i].rating(col)
		if err != nil {
			return nil, err
		}
		out[i] = *v
	}
	return out, nil
}

// SetFloat writes vals back into the named rating column.
func (d Dataset) SetFloat(col string, vals []float64) error {
	if len(vals) != len(d) {
		return fmt.Errorf("survey: column %s: %d values for %d records", col, len(vals), len(d))
	}
	for i := range d {
		v, err := d[i].rating(col)
		if err != nil {
			return err
		}
		*v = vals[i]
	}
	return nil
}

func (r *FeedbackRecord) rating(col string) (*float64, error) {
	switch col {
	case ColOverallRating:
		return &r.OverallRating, nil
	case ColSpeakerRating:
		return &r.SpeakerRating, nil
	case ColWorkshopRating:
		return &r.WorkshopRating, nil
	case ColFoodRating:
		return &r.FoodRating, nil
	}
	return nil, fmt.Errorf("survey: unknown rating column %q", col)
}

// MissingRatings counts NaN entries in the named rating column.
func (d Dataset) MissingRatings(col string) (int, error) {
	vals, err := d.Float(col)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, v := range vals {
		if math.IsNaN(v) {
			n++
		}
	}
	return n, nil
}

// ApplySentiment scores both comment fields of every record in place.
func (d Dataset) ApplySentiment(a *sentiment.Analyzer) {
	for i := range d {
		d[i].LikesScore, d[i].LikesLabel = a.Score(d[i].Likes)
		d[i].ImprovementsScore, d[i].ImprovementsLabel = a.Score(d[i].Improvements)
	}
}

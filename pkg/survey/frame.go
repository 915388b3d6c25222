package survey

import (
	"io"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame exposes the dataset as a gota dataframe for grouping, aggregation
// and CSV export.
func (d Dataset) Frame() dataframe.DataFrame {
	n := len(d)
	ids := make([]string, n)
	timestamps := make([]string, n)
	overall := make([]float64, n)
	speaker := make([]float64, n)
	workshop := make([]float64, n)
	food := make([]float64, n)
	likes := make([]string, n)
	improvements := make([]string, n)
	attended := make([]string, n)
	years := make([]int, n)
	likesScore := make([]float64, n)
	likesLabel := make([]string, n)
	improvScore := make([]float64, n)
	improvLabel := make([]string, n)

	for i, r := range d {
		ids[i] = r.RespondentID.String()
		timestamps[i] = r.Timestamp.Format(time.RFC3339)
		overall[i] = r.OverallRating
		speaker[i] = r.SpeakerRating
		workshop[i] = r.WorkshopRating
		food[i] = r.FoodRating
		likes[i] = r.Likes
		improvements[i] = r.Improvements
		attended[i] = r.AttendedEvents
		years[i] = r.YearOfStudy
		likesScore[i] = r.LikesScore
		likesLabel[i] = string(r.LikesLabel)
		improvScore[i] = r.ImprovementsScore
		improvLabel[i] = string(r.ImprovementsLabel)
	}

	return dataframe.New(
		series.New(ids, series.String, ColRespondentID),
		series.New(timestamps, series.String, ColTimestamp),
		series.New(overall, series.Float, ColOverallRating),
		series.New(speaker, series.Float, ColSpeakerRating),
		series.New(workshop, series.Float, ColWorkshopRating),
		series.New(food, series.Float, ColFoodRating),
		series.New(likes, series.String, ColLikes),
		series.New(improvements, series.String, ColImprovements),
		series.New(attended, series.String, ColAttendedEvents),
		series.New(years, series.Int, ColYearOfStudy),
		series.New(likesScore, series.Float, ColLikesScore),
		series.New(likesLabel, series.String, ColLikesLabel),
		series.New(improvScore, series.Float, ColImprovementsScore),
		series.New(improvLabel, series.String, ColImprovementsLabel),
	)
}

// WriteCSV writes the dataset, including derived sentiment columns, as CSV.
func (d Dataset) WriteCSV(w io.Writer) error {
	df := d.Frame()
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}

// MeanRatingByYear computes the mean overall rating per year of study via
// a dataframe group-by.
func (d Dataset) MeanRatingByYear() (map[int]float64, error) {
	df := d.Frame()
	if df.Err != nil {
		return nil, df.Err
	}
	groups := df.GroupBy(ColYearOfStudy)
	if groups.Err != nil {
		return nil, groups.Err
	}
	agg := groups.Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_MEAN},
		[]string{ColOverallRating},
	)
	if agg.Err != nil {
		return nil, agg.Err
	}

	meanCol := ColOverallRating + "_MEAN"
	means := make(map[int]float64, agg.Nrow())
	for i := 0; i < agg.Nrow(); i++ {
		year, err := agg.Col(ColYearOfStudy).Elem(i).Int()
		if err != nil {
			// Group keys travel through gota as strings in some
			// versions; fall back to parsing.
			year, err = strconv.Atoi(agg.Col(ColYearOfStudy).Elem(i).String())
			if err != nil {
				return nil, err
			}
		}
		means[year] = agg.Col(meanCol).Elem(i).Float()
	}
	return means, nil
}

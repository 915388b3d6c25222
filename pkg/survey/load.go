package survey

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StreamRecords streams rows of a feedback CSV as FeedbackRecords through
// out. The first row must be a header naming the canonical columns; extra
// columns are ignored. Close the returned done chan to stop early.
func StreamRecords(path string, out chan<- FeedbackRecord) (done chan struct{}, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bufio.NewReader(file))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("survey: reading header of %s: %w", path, err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		file.Close()
		return nil, err
	}

	done = make(chan struct{})
	go func() {
		defer file.Close()
		defer close(out)
		for {
			select {
			case <-done:
				return
			default:
				rec, err := reader.Read()
				if err == io.EOF {
					return
				}
				if err != nil {
					// Skip malformed rows, same as any other
					// unparseable record.
					continue
				}
				// The send also watches done so a reader that stops
				// consuming does not strand this goroutine.
				select {
				case out <- parseRecord(rec, idx):
				case <-done:
					return
				}
			}
		}
	}()
	return done, nil
}

// Load collects a whole feedback CSV into a Dataset.
func Load(path string) (Dataset, error) {
	ch := make(chan FeedbackRecord)
	if _, err := StreamRecords(path, ch); err != nil {
		return nil, err
	}
	var ds Dataset
	for rec := range ch {
		ds = append(ds, rec)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("survey: %s has no data rows", path)
	}
	return ds, nil
}

// columnIndex maps canonical column names to positions in the header row.
type columnIndex map[string]int

func headerIndex(header []string) (columnIndex, error) {
	idx := columnIndex{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColOverallRating, ColLikes, ColImprovements, ColYearOfStudy} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("survey: header missing column %q", required)
		}
	}
	return idx, nil
}

func parseRecord(rec []string, idx columnIndex) FeedbackRecord {
	r := FeedbackRecord{
		RespondentID:   parseID(field(rec, idx, ColRespondentID)),
		Timestamp:      parseTime(field(rec, idx, ColTimestamp)),
		OverallRating:  parseRating(field(rec, idx, ColOverallRating)),
		SpeakerRating:  parseRating(field(rec, idx, ColSpeakerRating)),
		WorkshopRating: parseRating(field(rec, idx, ColWorkshopRating)),
		FoodRating:     parseRating(field(rec, idx, ColFoodRating)),
		Likes:          field(rec, idx, ColLikes),
		Improvements:   field(rec, idx, ColImprovements),
		AttendedEvents: field(rec, idx, ColAttendedEvents),
	}
	if y, err := strconv.Atoi(strings.TrimSpace(field(rec, idx, ColYearOfStudy))); err == nil {
		r.YearOfStudy = y
	}
	return r
}

func field(rec []string, idx columnIndex, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseRating turns empty or unparseable cells into NaN so the cleaner can
// impute them.
func parseRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "NaN" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseID(s string) uuid.UUID {
	if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
		return id
	}
	return uuid.New()
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return t
	}
	return time.Time{}
}

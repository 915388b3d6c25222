package survey

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `RespondentID,Timestamp,OverallRating,SpeakerRating,WorkshopRating,FoodRating,WhatDidYouLike,Improvements,AttendedEvents,YearOfStudy
1b4e28ba-2fa1-11d2-883f-0016d3cca427,2023-10-01T00:00:00Z,4,5,,3,The venue was excellent.,Better signage,Keynote,2
,2023-10-01T01:00:00Z,2,NaN,1,2,Nothing much,,Workshop,1
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	ds, err := Load(writeSample(t))
	require.NoError(t, err)
	require.Len(t, ds, 2)

	t.Run("fields parsed", func(t *testing.T) {
		assert.Equal(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", ds[0].RespondentID.String())
		assert.Equal(t, 4.0, ds[0].OverallRating)
		assert.Equal(t, "The venue was excellent.", ds[0].Likes)
		assert.Equal(t, 2, ds[0].YearOfStudy)
	})

	t.Run("empty and NaN cells become missing values", func(t *testing.T) {
		assert.True(t, math.IsNaN(ds[0].WorkshopRating))
		assert.True(t, math.IsNaN(ds[1].SpeakerRating))
		assert.Empty(t, ds[1].Improvements)
	})

	t.Run("rows without an id get a fresh one", func(t *testing.T) {
		assert.NotEqual(t, ds[0].RespondentID, ds[1].RespondentID)
		assert.NotEmpty(t, ds[1].RespondentID.String())
	})
}

func TestStreamRecordsEarlyStop(t *testing.T) {
	ds := Generate(GeneratorConfig{Rows: 50, Seed: 7})
	path := filepath.Join(t.TempDir(), "big.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ds.WriteCSV(f))
	require.NoError(t, f.Close())

	ch := make(chan FeedbackRecord)
	done, err := StreamRecords(path, ch)
	require.NoError(t, err)

	<-ch
	close(done)

	// The streamer must notice done and close ch even though nobody is
	// draining the remaining rows.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream did not stop after done was closed")
		}
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B\n1,2\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	ds := Generate(GeneratorConfig{Rows: 8, Seed: 3, MissingAspectFrac: 0, MissingCommentFrac: 0})
	path := filepath.Join(t.TempDir(), "out.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, ds.WriteCSV(f))
	require.NoError(t, f.Close())

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, len(ds))
	for i := range ds {
		assert.Equal(t, ds[i].RespondentID, got[i].RespondentID)
		assert.Equal(t, ds[i].OverallRating, got[i].OverallRating)
		assert.Equal(t, ds[i].Likes, got[i].Likes)
		assert.Equal(t, ds[i].YearOfStudy, got[i].YearOfStudy)
	}
}

package survey

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Comment pools cycled across the synthetic dataset. Ten variants each, so
// a 100-row run sees each comment ten times.
var likesPool = []string{
	"The keynote speaker was inspiring.",
	"I loved the hands-on workshop.",
	"The food was great and there were many options.",
	"Networking with professionals was the best part.",
	"The event was well-organized.",
	"Good food",
	"Nothing much",
	"The sessions were very informative.",
	"I enjoyed the variety of topics covered.",
	"The venue was excellent.",
}

var improvementsPool = []string{
	"The workshop was too crowded.",
	"More vegetarian food options would be nice.",
	"The breaks were too short.",
	"It was hard to find the rooms.",
	"The audio in the main hall was not clear.",
	"Better signage",
	"More interactive sessions",
	"The registration process was a bit slow.",
	"Wi-Fi was unstable.",
	"I wish there were more Q&A opportunities.",
}

var attendedPool = []string{
	"Keynote, Workshop, Networking",
	"Keynote, Workshop",
	"Networking",
	"Keynote, Networking",
	"Workshop",
	"Keynote",
	"Workshop, Networking",
	"Keynote, Workshop, Networking",
	"Networking",
	"Keynote, Workshop",
}

// GeneratorConfig controls the synthetic dataset.
type GeneratorConfig struct {
	Rows int
	Seed int64
	// Start of the hourly response timestamps.
	Start time.Time
	// Fraction of each aspect rating column set to NaN.
	MissingAspectFrac float64
	// Fraction of improvement comments blanked out.
	MissingCommentFrac float64
}

// DefaultGeneratorConfig mirrors the canonical 100-row survey with 10%
// missing aspect ratings and 5% blank improvement comments.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:               100,
		Seed:               42,
		Start:              time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
		MissingAspectFrac:  0.10,
		MissingCommentFrac: 0.05,
	}
}

// Generate fabricates a seeded survey dataset. The same config always
// produces the same dataset.
func Generate(cfg GeneratorConfig) Dataset {
	rng := rand.New(rand.NewSource(cfg.Seed))
	n := cfg.Rows
	ds := make(Dataset, n)
	for i := 0; i < n; i++ {
		ds[i] = FeedbackRecord{
			RespondentID:   newUUID(rng),
			Timestamp:      cfg.Start.Add(time.Duration(i) * time.Hour),
			OverallRating:  float64(1 + rng.Intn(5)),
			SpeakerRating:  float64(1 + rng.Intn(5)),
			WorkshopRating: float64(1 + rng.Intn(5)),
			FoodRating:     float64(1 + rng.Intn(5)),
			Likes:          likesPool[i%len(likesPool)],
			Improvements:   improvementsPool[i%len(improvementsPool)],
			AttendedEvents: attendedPool[i%len(attendedPool)],
			YearOfStudy:    1 + rng.Intn(4),
		}
	}

	// Knock out a fixed-size random sample per aspect column so the
	// cleaning step has something to impute.
	for _, col := range AspectColumns {
		for _, i := range sampleIndices(rng, n, cfg.MissingAspectFrac) {
			r := &ds[i]
			switch col {
			case ColSpeakerRating:
				r.SpeakerRating = math.NaN()
			case ColWorkshopRating:
				r.WorkshopRating = math.NaN()
			case ColFoodRating:
				r.FoodRating = math.NaN()
			}
		}
	}
	for _, i := range sampleIndices(rng, n, cfg.MissingCommentFrac) {
		ds[i].Improvements = ""
	}
	return ds
}

// sampleIndices picks frac*n distinct row indices.
func sampleIndices(rng *rand.Rand, n int, frac float64) []int {
	k := int(float64(n) * frac)
	if k <= 0 {
		return nil
	}
	return rng.Perm(n)[:k]
}

// newUUID draws respondent IDs from the seeded source so runs stay
// reproducible.
func newUUID(rng *rand.Rand) uuid.UUID {
	var b [16]byte
	rng.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return uuid.UUID(b)
}

package report

import (
	"fmt"
	"io"

	"github.com/Clutch-254/event-feedback-analysis/pkg/sentiment"
)

// WriteInsights prints the descriptive report and recommendations. The
// recommendations are canned text keyed off the aggregate numbers.
func WriteInsights(w io.Writer, agg *Aggregates) {
	fmt.Fprintln(w, "\n--- Key Insights and Recommendations ---")

	fmt.Fprintf(w, "\n1. Overall Satisfaction: The average rating for the event was %.2f out of 5 (std dev %.2f).\n", agg.AvgOverall, agg.StdOverall)
	switch {
	case agg.AvgOverall > 4:
		fmt.Fprintln(w, "   - Insight: Attendees were generally very satisfied with the event.")
	case agg.AvgOverall > 3:
		fmt.Fprintln(w, "   - Insight: Attendees were moderately satisfied, but there is room for improvement.")
	default:
		fmt.Fprintln(w, "   - Insight: Overall satisfaction is low, and significant improvements are needed.")
	}

	fmt.Fprintf(w, "\n2. Positive Feedback: %.1f%% of 'likes' feedback was clearly positive.\n",
		Share(agg.LikesCounts, sentiment.Positive))
	fmt.Fprintf(w, "   - Most mentioned: %s\n", tokenList(agg.TopPositive, 3))
	fmt.Fprintln(w, "   - Recommendation: Continue to invest in high-quality speakers and engaging workshops as these are key drivers of satisfaction.")

	fmt.Fprintf(w, "\n3. Areas for Improvement: %.1f%% of 'improvements' feedback was clearly negative.\n",
		Share(agg.ImprovementsCounts, sentiment.Negative))
	fmt.Fprintf(w, "   - Common themes: %s\n", tokenList(agg.TopNegative, 3))
	fmt.Fprintln(w, "   - Recommendations:")
	fmt.Fprintln(w, "     - Consider offering popular workshops multiple times or in larger rooms to manage capacity.")
	fmt.Fprintln(w, "     - Expand catering to include more diverse dietary options (e.g., vegetarian, vegan).")
	fmt.Fprintln(w, "     - Improve event navigation with clearer signage and perhaps a digital map.")

	if year, mean, ok := LowestYear(agg.MeanByYear); ok {
		fmt.Fprintf(w, "\n4. Attendee Demographics: Year %d students gave the lowest average ratings (%.2f).\n", year, mean)
		fmt.Fprintf(w, "   - Insight: This suggests the event content may be less relevant or engaging for students in year %d.\n", year)
		fmt.Fprintln(w, "   - Recommendation: Tailor some sessions or tracks specifically for different year groups to enhance relevance and engagement.")
	}

	fmt.Fprintln(w, "\n--- End of Report ---")
}

func tokenList(tokens []TokenCount, n int) string {
	if len(tokens) == 0 {
		return "(none)"
	}
	if n > len(tokens) {
		n = len(tokens)
	}
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("'%s'", tokens[i].Token)
	}
	return s
}

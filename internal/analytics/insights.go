package analytics

import (
	"fmt"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

// Insight thresholds. These are product decisions, kept in one place so the
// dashboard copy and the trigger levels stay in sync.
const (
	responseTimeWarnMs    = 5000.0
	responseTimeAdviseMs  = 3000.0
	confidenceWarnBelow   = 0.7
	confidenceAdviseBelow = 0.8
	errorRateAlertAbove   = 0.05
	errorRateAdviseAbove  = 0.03
	engagementAdviseBelow = 50.0
)

// insightView is the scope-independent slice of a metrics record the
// insight rules operate on.
type insightView struct {
	averageResponseTime float64
	averageConfidence   float64
	errorRate           float64
	engagementScore     float64
	hasEngagement       bool
	categories          map[domain.Category]int
	hours               map[int]int
}

// UserInsights derives the insight payload for one user's metrics.
func UserInsights(m UserMetrics) InsightsPayload {
	messages := m.TotalMessages
	if messages < 1 {
		messages = 1
	}
	return generateInsights(insightView{
		averageResponseTime: m.AverageResponseTime,
		averageConfidence:   m.AverageConfidence,
		errorRate:           float64(m.TotalErrors) / float64(messages),
		engagementScore:     m.EngagementScore,
		hasEngagement:       true,
		categories:          m.CategoryBreakdown,
		hours:               m.MostActiveHours,
	})
}

// SystemInsights derives the insight payload for system-wide metrics.
func SystemInsights(m SystemMetrics) InsightsPayload {
	return generateInsights(insightView{
		averageResponseTime: m.AverageResponseTime,
		averageConfidence:   m.AverageConfidence,
		errorRate:           m.ErrorRate,
		categories:          m.CategoryDistribution,
		hours:               m.PeakHours,
	})
}

func generateInsights(v insightView) InsightsPayload {
	payload := InsightsPayload{
		Performance:     []Insight{},
		Usage:           []Insight{},
		Recommendations: []string{},
	}

	if v.averageResponseTime > responseTimeWarnMs {
		payload.Performance = append(payload.Performance, Insight{
			Type:    InsightWarning,
			Message: "Response times are higher than optimal (>5s)",
			Value:   v.averageResponseTime,
		})
	}

	if v.averageConfidence < confidenceWarnBelow {
		payload.Performance = append(payload.Performance, Insight{
			Type:    InsightWarning,
			Message: "AI confidence scores are below recommended threshold",
			Value:   v.averageConfidence,
		})
	}

	if v.errorRate > errorRateAlertAbove {
		payload.Performance = append(payload.Performance, Insight{
			Type:    InsightError,
			Message: "Error rate is above acceptable threshold (>5%)",
			Value:   v.errorRate,
		})
	}

	if category, count, ok := TopCategory(v.categories); ok {
		payload.Usage = append(payload.Usage, Insight{
			Type:    InsightInfo,
			Message: fmt.Sprintf("Most common query category: %s", category),
			Value:   count,
		})
	}

	if hour, count, ok := PeakHour(v.hours); ok {
		payload.Usage = append(payload.Usage, Insight{
			Type:    InsightInfo,
			Message: fmt.Sprintf("Peak usage hour: %d:00", hour),
			Value:   count,
		})
	}

	if v.averageResponseTime > responseTimeAdviseMs {
		payload.Recommendations = append(payload.Recommendations,
			"Consider optimizing AI model or implementing response caching")
	}

	if v.errorRate > errorRateAdviseAbove {
		payload.Recommendations = append(payload.Recommendations,
			"Review error logs and implement better error handling")
	}

	if v.averageConfidence < confidenceAdviseBelow {
		payload.Recommendations = append(payload.Recommendations,
			"Consider fine-tuning the AI model or improving prompts")
	}

	if v.hasEngagement && v.engagementScore < engagementAdviseBelow {
		payload.Recommendations = append(payload.Recommendations,
			"Focus on improving user engagement and response quality")
	}

	return payload
}

// TopCategory returns the most frequent category. Ties break toward the
// lexicographically smaller category so results are deterministic across
// map iteration orders.
func TopCategory(categories map[domain.Category]int) (domain.Category, int, bool) {
	var best domain.Category
	bestCount := 0
	for category, count := range categories {
		if count > bestCount || (count == bestCount && bestCount > 0 && category < best) {
			best = category
			bestCount = count
		}
	}
	return best, bestCount, bestCount > 0
}

// PeakHour returns the busiest hour of day. Ties break toward the earlier
// hour, same reasoning as TopCategory.
func PeakHour(hours map[int]int) (int, int, bool) {
	bestHour := 0
	bestCount := 0
	for hour, count := range hours {
		if count > bestCount || (count == bestCount && bestCount > 0 && hour < bestHour) {
			bestHour = hour
			bestCount = count
		}
	}
	return bestHour, bestCount, bestCount > 0
}

// Package analytics reduces stored chat interaction events into
// conversation-, user-, and system-level metrics and derives dashboard
// insights from them. All functions are pure: aggregates are recomputed
// from the immutable event set on every call, so there is no cached state
// that can drift from the source events.
package analytics

import (
	"time"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

// dayKey buckets a timestamp into its calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// meanSampler accumulates samples for an arithmetic mean. Zero-valued
// samples are treated as unrecorded and skipped, matching how the event
// producers have historically omitted them.
type meanSampler struct {
	sum   float64
	count int
}

func (s *meanSampler) add(v float64) {
	if v == 0 {
		return
	}
	s.sum += v
	s.count++
}

func (s *meanSampler) mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// AggregateConversation reduces the events of one conversation into
// ConversationMetrics in a single pass. An empty slice yields all-zero
// counts and zero averages.
func AggregateConversation(events []*domain.Event) ConversationMetrics {
	metrics := ConversationMetrics{
		Categories: make(map[domain.Category]int),
	}

	var responseTimes, confidences meanSampler
	var first, last time.Time

	for _, event := range events {
		metrics.TotalEvents++

		// Duration derives from each event's own timestamp so
		// out-of-order arrival is tolerated.
		if first.IsZero() || event.CreatedAt.Before(first) {
			first = event.CreatedAt
		}
		if last.IsZero() || event.CreatedAt.After(last) {
			last = event.CreatedAt
		}

		switch event.EventType {
		case domain.EventMessageSent:
			metrics.MessagesSent++
		case domain.EventResponseReceived:
			metrics.ResponsesReceived++
			if data := event.ResponseReceived; data != nil {
				responseTimes.add(float64(data.ResponseTimeMs))
				confidences.add(data.Confidence)
				if data.Category != "" {
					metrics.Categories[data.Category]++
				}
			}
		case domain.EventError:
			metrics.Errors++
		}
	}

	metrics.AverageResponseTime = responseTimes.mean()
	metrics.AverageConfidence = confidences.mean()

	if metrics.TotalEvents >= 2 {
		metrics.ConversationDurationMs = last.Sub(first).Milliseconds()
	}

	return metrics
}

// AggregateUser reduces one user's events over a time window into
// UserMetrics. The caller has already filtered events to a single user and
// the window (now minus timeframe days, inclusive).
func AggregateUser(events []*domain.Event) UserMetrics {
	metrics := UserMetrics{
		MostActiveHours:   make(map[int]int),
		DailyActivity:     make(map[string]int),
		CategoryBreakdown: make(map[domain.Category]int),
	}

	var responseTimes, confidences meanSampler
	sessions := make(map[string]struct{})
	conversations := make(map[string]struct{})

	for _, event := range events {
		if event.SessionID != "" {
			sessions[event.SessionID] = struct{}{}
		}
		if event.ConversationID != "" {
			conversations[event.ConversationID] = struct{}{}
		}

		metrics.MostActiveHours[event.CreatedAt.Hour()]++
		metrics.DailyActivity[dayKey(event.CreatedAt)]++

		switch event.EventType {
		case domain.EventMessageSent:
			metrics.TotalMessages++
		case domain.EventResponseReceived:
			metrics.TotalResponses++
			if data := event.ResponseReceived; data != nil {
				responseTimes.add(float64(data.ResponseTimeMs))
				confidences.add(data.Confidence)
				if data.Category != "" {
					metrics.CategoryBreakdown[data.Category]++
				}
			}
		case domain.EventError:
			metrics.TotalErrors++
		}
	}

	metrics.TotalSessions = len(sessions)
	metrics.TotalConversations = len(conversations)
	metrics.AverageResponseTime = responseTimes.mean()
	metrics.AverageConfidence = confidences.mean()
	metrics.ActiveDays = len(metrics.DailyActivity)

	metrics.EngagementScore = engagementScore(
		metrics.TotalMessages,
		metrics.TotalErrors,
		metrics.ActiveDays,
		metrics.AverageConfidence,
	)

	return metrics
}

// engagementScore is a deliberately simple linear heuristic, not a
// calibrated metric. Bounded to [0, 100].
func engagementScore(messages, errors, activeDays int, avgConfidence float64) float64 {
	days := activeDays
	if days < 1 {
		days = 1
	}
	msgs := messages
	if msgs < 1 {
		msgs = 1
	}

	messagesPerDay := float64(messages) / float64(days)
	errorRate := float64(errors) / float64(msgs)

	score := messagesPerDay*10 + avgConfidence*50 - errorRate*30
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// AggregateSystem reduces all users' events over a time window into
// SystemMetrics. Same single-pass shape as AggregateUser, additionally
// tracking distinct active days per user for retention bucketing.
func AggregateSystem(events []*domain.Event) SystemMetrics {
	metrics := SystemMetrics{
		PeakHours:            make(map[int]int),
		CategoryDistribution: make(map[domain.Category]int),
	}

	var responseTimes, confidences meanSampler
	users := make(map[string]struct{})
	sessions := make(map[string]struct{})
	conversations := make(map[string]struct{})
	userActiveDays := make(map[string]map[string]struct{})

	for _, event := range events {
		if event.UserID != "" {
			users[event.UserID] = struct{}{}
			days := userActiveDays[event.UserID]
			if days == nil {
				days = make(map[string]struct{})
				userActiveDays[event.UserID] = days
			}
			days[dayKey(event.CreatedAt)] = struct{}{}
		}
		if event.SessionID != "" {
			sessions[event.SessionID] = struct{}{}
		}
		if event.ConversationID != "" {
			conversations[event.ConversationID] = struct{}{}
		}

		metrics.PeakHours[event.CreatedAt.Hour()]++

		switch event.EventType {
		case domain.EventMessageSent:
			metrics.TotalMessages++
		case domain.EventResponseReceived:
			metrics.TotalResponses++
			if data := event.ResponseReceived; data != nil {
				responseTimes.add(float64(data.ResponseTimeMs))
				confidences.add(data.Confidence)
				if data.Category != "" {
					metrics.CategoryDistribution[data.Category]++
				}
			}
		case domain.EventError:
			metrics.TotalErrors++
		}
	}

	metrics.TotalUsers = len(users)
	metrics.TotalSessions = len(sessions)
	metrics.TotalConversations = len(conversations)
	metrics.AverageResponseTime = responseTimes.mean()
	metrics.AverageConfidence = confidences.mean()

	if metrics.TotalMessages > 0 {
		metrics.ErrorRate = float64(metrics.TotalErrors) / float64(metrics.TotalMessages)
	}

	metrics.UserRetention = retentionTally(userActiveDays)

	return metrics
}

// retentionTally classifies each user by the ratio of their distinct active
// days to the maximum observed across all users. Raw fractional comparison,
// no rounding before thresholding.
func retentionTally(userActiveDays map[string]map[string]struct{}) RetentionTally {
	maxActiveDays := 0
	for _, days := range userActiveDays {
		if len(days) > maxActiveDays {
			maxActiveDays = len(days)
		}
	}
	if maxActiveDays < 1 {
		maxActiveDays = 1
	}

	var tally RetentionTally
	for _, days := range userActiveDays {
		rate := float64(len(days)) / float64(maxActiveDays)
		switch {
		case rate >= 0.7:
			tally.High++
		case rate >= 0.3:
			tally.Medium++
		default:
			tally.Low++
		}
	}
	return tally
}
